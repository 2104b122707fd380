package claims

import (
	"fmt"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// RenderReport renders a validation result as a human-readable document:
// a title naming the product, the four aggregate counts, and one entry
// per checked claim
func RenderReport(productName string, result model.ValidationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 광고 문구 검증 보고서: %s\n\n", productName)

	b.WriteString("## 요약\n\n")
	fmt.Fprintf(&b, "- 추출된 주장: %d건\n", result.TotalClaims)
	fmt.Fprintf(&b, "- 통과: %d건\n", result.Passed)
	fmt.Fprintf(&b, "- 실패: %d건\n", result.Failed)
	fmt.Fprintf(&b, "- 경고: %d건\n", result.Warnings)
	fmt.Fprintf(&b, "- 미검증: %d건\n", result.Unverified)
	fmt.Fprintf(&b, "- 종합 판정: %s / 위험도: %s\n\n", result.OverallStatus, result.RiskLevel)

	if len(result.Items) == 0 {
		b.WriteString("검증 가능한 주장이 추출되지 않았습니다.\n")
		return b.String()
	}

	b.WriteString("## 개별 판정\n\n")
	for i, item := range result.Items {
		fmt.Fprintf(&b, "%d. [%s] \"%s\" (%s)\n", i+1, item.Status, item.Claim.RawText, item.Claim.Type)
		fmt.Fprintf(&b, "   %s\n", item.Explanation)
	}

	return b.String()
}
