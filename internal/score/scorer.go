package score

import (
	"fmt"
	"sort"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// Scorer combines precomputed numeric summaries into a composite
// opportunity score. It never classifies text itself: keyword scores,
// margin and competition rate arrive already computed, risks arrive as
// a list of identified risk strings.
type Scorer struct {
	cfg model.ScoringConfig
}

// NewScorer creates a scorer with the given weights. Zero weights fall
// back to the defaults (margin 0.40, keyword 0.35, competition 0.25,
// risk penalty fraction 0.30).
func NewScorer(cfg model.ScoringConfig) *Scorer {
	defaults := model.DefaultConfig().Scoring
	if cfg.MarginWeight == 0 {
		cfg.MarginWeight = defaults.MarginWeight
	}
	if cfg.KeywordWeight == 0 {
		cfg.KeywordWeight = defaults.KeywordWeight
	}
	if cfg.CompetitionWeight == 0 {
		cfg.CompetitionWeight = defaults.CompetitionWeight
	}
	if cfg.RiskWeight == 0 {
		cfg.RiskWeight = defaults.RiskWeight
	}
	return &Scorer{cfg: cfg}
}

// Score computes all sub-scores and the composite total. A nil
// competitionRate means no competition data was supplied; the component
// then contributes nothing instead of defaulting to the no-competition
// band, which would hand the full competition weight to data-free runs.
func (s *Scorer) Score(keywords []model.KeywordOpportunity, marginPercent float64, competitionRate *float64, risks []string) model.OpportunityScore {
	result := model.OpportunityScore{
		KeywordScore: KeywordScore(keywords),
		MarginScore:  MarginScore(marginPercent),
		RiskScore:    RiskScore(risks),
	}
	if competitionRate != nil {
		result.CompetitionScore = CompetitionScore(*competitionRate)
	}

	total := s.cfg.MarginWeight*result.MarginScore +
		s.cfg.KeywordWeight*result.KeywordScore +
		s.cfg.CompetitionWeight*result.CompetitionScore -
		s.cfg.RiskWeight*result.RiskScore

	result.TotalScore = clamp(total)
	return result
}

// MarginScore maps a margin percentage to a 0-100 band.
// The steps are fixed contracts: 30% and above is a healthy sourcing
// margin, negative margin is disqualifying.
func MarginScore(marginPercent float64) float64 {
	switch {
	case marginPercent >= 30:
		return 100
	case marginPercent >= 20:
		return 80
	case marginPercent >= 15:
		return 60
	case marginPercent >= 0:
		return 40
	default:
		return 0
	}
}

// CompetitionScore maps a competition rate (competing products per unit
// of search demand) to a 0-100 band; lower competition scores higher
func CompetitionScore(rate float64) float64 {
	switch {
	case rate <= 0.3:
		return 100
	case rate <= 0.5:
		return 80
	case rate <= 1.0:
		return 60
	case rate <= 5.0:
		return 20
	default:
		return 10
	}
}

// KeywordScore normalizes per-keyword opportunity scores into one 0-100
// number, weighting keywords by search volume so head keywords dominate.
// With no volume data it degrades to a plain average.
func KeywordScore(keywords []model.KeywordOpportunity) float64 {
	if len(keywords) == 0 {
		return 0
	}

	var weightedSum, volumeSum float64
	for _, kw := range keywords {
		weight := float64(kw.SearchVolume)
		if weight <= 0 {
			weight = 1
		}
		weightedSum += kw.Opportunity * weight
		volumeSum += weight
	}

	return clamp(weightedSum / volumeSum)
}

// RiskScore converts identified risks into a penalty magnitude:
// 20 points per distinct risk, capped at 100
func RiskScore(risks []string) float64 {
	distinct := make(map[string]bool)
	for _, risk := range risks {
		if risk != "" {
			distinct[risk] = true
		}
	}
	return clamp(float64(len(distinct)) * 20)
}

// Recommend derives the recommendation text from the composite score
// and the margin jointly
func (s *Scorer) Recommend(score model.OpportunityScore, marginPercent float64) string {
	switch {
	case score.TotalScore >= 70 && marginPercent >= 20:
		return "추천: 수요와 마진이 모두 우수한 후보입니다. 소싱을 진행하세요."
	case score.TotalScore < 40 || marginPercent < 0:
		return "비추천: 현재 조건으로는 수익성이 없습니다. 원가 구조나 상품 자체를 재검토하세요."
	default:
		return "조건부 검토: 가능성은 있으나 약점 보완이 선행되어야 합니다. 액션 아이템을 확인하세요."
	}
}

// ActionItems generates remediation items from weak points: low margin,
// weak keyword demand, heavy competition, and each complaint category
// observed in reviews
func (s *Scorer) ActionItems(score model.OpportunityScore, marginPercent float64, complaintCategories map[string]int) []string {
	var items []string

	if marginPercent < 15 {
		items = append(items, "마진이 낮습니다. 공급 단가 재협상 또는 판매가 조정을 검토하세요.")
	}
	if score.KeywordScore < 50 {
		items = append(items, "키워드 수요가 약합니다. 연관 키워드 발굴과 상품명 SEO를 보강하세요.")
	}
	if score.CompetitionScore <= 20 {
		items = append(items, "경쟁 강도가 높습니다. 차별화 포인트(구성품, 보증, 번들)를 마련하세요.")
	}

	for _, category := range categoriesByCount(complaintCategories) {
		items = append(items, remediationFor(category, complaintCategories[category]))
	}

	return items
}

// remediationFor maps a complaint category to a targeted action item
func remediationFor(category string, count int) string {
	remediation, ok := map[string]string{
		"품질":  "품질 불만이 반복됩니다. 입고 검수(QC) 기준을 강화하세요.",
		"배송":  "배송 불만이 있습니다. 물류 업체 리드타임과 포장 상태를 점검하세요.",
		"사이즈": "사이즈 불만이 있습니다. 상세페이지에 실측 사이즈 가이드를 추가하세요.",
		"가격":  "가격 불만이 있습니다. 구성 대비 가격 인식을 개선하거나 가격을 재조정하세요.",
		"내구성": "내구성 불만이 있습니다. 소재/구조 개선 또는 A/S 정책 보강을 검토하세요.",
		"상이":  "실물 상이 불만이 있습니다. 상품 이미지와 실물의 일치 여부를 점검하세요.",
	}[category]
	if !ok {
		remediation = fmt.Sprintf("'%s' 관련 불만이 접수되었습니다. 원인을 확인하세요.", category)
	}
	return fmt.Sprintf("%s (%d건)", remediation, count)
}

func categoriesByCount(counts map[string]int) []string {
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

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
