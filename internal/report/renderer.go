package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// Renderer renders an assembled report as JSON and as a human-readable
// markdown document
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the structured report to path
func (r *Renderer) RenderJSON(rpt *model.OpportunityReport, path string) error {
	data, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the document to path and returns the path
func (r *Renderer) RenderMarkdown(rpt *model.OpportunityReport, path string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(r.Document(rpt)), 0644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}

// Document renders the full markdown document
func (r *Renderer) Document(rpt *model.OpportunityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 소싱 기회 분석 보고서: %s\n\n", rpt.ProductName)
	if rpt.Category != "" {
		fmt.Fprintf(&b, "- 카테고리: %s\n", rpt.Category)
	}
	fmt.Fprintf(&b, "- 보고서 ID: %s\n", rpt.ReportID)
	fmt.Fprintf(&b, "- 생성 시각: %s\n", rpt.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	if rpt.Degraded {
		b.WriteString("- 상태: 일부 외부 서비스 실패로 축소된 보고서입니다\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## 종합 점수: %.0f / 100\n\n", rpt.Score.TotalScore)
	fmt.Fprintf(&b, "| 항목 | 점수 |\n|---|---|\n")
	fmt.Fprintf(&b, "| 키워드 수요 | %.0f |\n", rpt.Score.KeywordScore)
	fmt.Fprintf(&b, "| 마진 | %.0f |\n", rpt.Score.MarginScore)
	fmt.Fprintf(&b, "| 경쟁 강도 | %.0f |\n", rpt.Score.CompetitionScore)
	fmt.Fprintf(&b, "| 리스크 감점 | -%.0f |\n\n", rpt.Score.RiskScore)

	if len(rpt.TargetKeywords) > 0 {
		b.WriteString("## 키워드 요약\n\n")
		for _, kw := range rpt.TargetKeywords {
			fmt.Fprintf(&b, "- %s: 검색량 %d, 경쟁률 %.2f, 기회점수 %.0f\n",
				kw.Keyword, kw.SearchVolume, kw.CompetitionRate, kw.Opportunity)
		}
		b.WriteString("\n")
	}

	if rpt.Margin != nil {
		b.WriteString("## 마진 분석\n\n")
		fmt.Fprintf(&b, "- 마진율: %.1f%%\n", rpt.Margin.MarginPercent)
		fmt.Fprintf(&b, "- 총 비용: %.0f\n", rpt.Margin.TotalCost)
		fmt.Fprintf(&b, "- 손익분기 가격: %.0f\n", rpt.Margin.BreakevenPrice)
		fmt.Fprintf(&b, "- 수익성 판정: %s\n\n", viableLabel(rpt.Margin.IsViable))
	}

	if rpt.Reviews != nil {
		b.WriteString("## 리뷰 분석\n\n")
		fmt.Fprintf(&b, "- 전체 %d건: 불만 %d / 긍정 %d / 중립 %d\n",
			rpt.Reviews.TotalReviews, rpt.Reviews.ComplaintCount,
			rpt.Reviews.PositiveCount, rpt.Reviews.NeutralCount)
		for _, category := range sortedByCount(rpt.Reviews.CategoryCounts) {
			fmt.Fprintf(&b, "- %s 관련 불만: %d건\n", category, rpt.Reviews.CategoryCounts[category])
		}
		b.WriteString("\n")
	}

	if rpt.Validation != nil {
		b.WriteString("## 광고 문구 검증\n\n")
		fmt.Fprintf(&b, "- 주장 %d건: 통과 %d / 실패 %d / 경고 %d / 미검증 %d\n",
			rpt.Validation.TotalClaims, rpt.Validation.Passed, rpt.Validation.Failed,
			rpt.Validation.Warnings, rpt.Validation.Unverified)
		fmt.Fprintf(&b, "- 종합 판정: %s / 위험도: %s\n", rpt.Validation.OverallStatus, rpt.Validation.RiskLevel)
		for _, item := range rpt.Validation.Items {
			fmt.Fprintf(&b, "- [%s] \"%s\" — %s\n", item.Status, item.Claim.RawText, item.Explanation)
		}
		b.WriteString("\n")
	}

	if rpt.Enrichment != nil {
		b.WriteString("## AI 리뷰 인사이트\n\n")
		if rpt.Enrichment.Summary != "" {
			fmt.Fprintf(&b, "%s\n\n", rpt.Enrichment.Summary)
		}
		for _, issue := range rpt.Enrichment.TopIssues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		fmt.Fprintf(&b, "\n(생성: %s/%s — 점수 산정에는 반영되지 않습니다)\n\n",
			rpt.Enrichment.Provider, rpt.Enrichment.Model)
	}

	fmt.Fprintf(&b, "## 추천\n\n%s\n\n", rpt.Recommendation)

	if len(rpt.ActionItems) > 0 {
		b.WriteString("## 액션 아이템\n\n")
		for i, item := range rpt.ActionItems {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\ngenerated by marketlens\n")
	}

	return b.String()
}

// RenderSummary prints the short stdout summary
func (r *Renderer) RenderSummary(rpt *model.OpportunityReport, w io.Writer) {
	fmt.Fprintf(w, "\n%s — 종합 %.0f/100\n", rpt.ProductName, rpt.Score.TotalScore)
	fmt.Fprintf(w, "  키워드 %.0f | 마진 %.0f | 경쟁 %.0f | 리스크 -%.0f\n",
		rpt.Score.KeywordScore, rpt.Score.MarginScore,
		rpt.Score.CompetitionScore, rpt.Score.RiskScore)
	fmt.Fprintf(w, "  %s\n", rpt.Recommendation)
}

func viableLabel(viable bool) string {
	if viable {
		return "적합"
	}
	return "부적합"
}

func sortedByCount(counts map[string]int) []string {
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}
