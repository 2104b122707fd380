package claims

import (
	"fmt"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// Validator checks extracted claims against a product's spec record.
// Missing spec fields degrade individual checks to UNVERIFIED; validation
// as a whole never fails on malformed copy.
type Validator struct {
	extractor *Extractor
	tolerance float64 // Relative tolerance for weight claims
}

// NewValidator creates a validator with the given relative weight
// tolerance (0.1 = 10%); values <= 0 fall back to 10%
func NewValidator(tolerance float64) *Validator {
	if tolerance <= 0 {
		tolerance = 0.10
	}
	return &Validator{
		extractor: NewExtractor(),
		tolerance: tolerance,
	}
}

// Validate extracts claims from the copy and checks each against the spec
func (v *Validator) Validate(copyText string, spec model.SpecRecord) model.ValidationResult {
	return v.ValidateClaims(v.extractor.Extract(copyText), spec)
}

// ValidateHTML extracts claims from an HTML product page and checks them
func (v *Validator) ValidateHTML(htmlContent string, spec model.SpecRecord) (model.ValidationResult, error) {
	extracted, err := v.extractor.ExtractHTML(htmlContent)
	if err != nil {
		return model.ValidationResult{}, err
	}
	return v.ValidateClaims(extracted, spec), nil
}

// ValidateClaims checks already-extracted claims, preserving their order
func (v *Validator) ValidateClaims(extracted []model.Claim, spec model.SpecRecord) model.ValidationResult {
	result := model.ValidationResult{
		TotalClaims: len(extracted),
	}

	for _, c := range extracted {
		item := v.check(c, spec)
		result.Items = append(result.Items, item)

		switch item.Status {
		case model.StatusPass:
			result.Passed++
		case model.StatusFail:
			result.Failed++
		case model.StatusWarning:
			result.Warnings++
		case model.StatusUnverified:
			result.Unverified++
		}
	}

	result.OverallStatus = overallStatus(result)
	result.RiskLevel = riskLevel(result)
	return result
}

// check validates a single claim
func (v *Validator) check(c model.Claim, spec model.SpecRecord) model.ValidationItem {
	item := model.ValidationItem{Claim: c}

	switch c.Type {
	case model.ClaimTypeWeight:
		item.Status, item.Explanation = v.checkWeight(c, spec)
	case model.ClaimTypeLoad:
		item.Status, item.Explanation = v.checkLoad(c, spec)
	case model.ClaimTypeExaggeration:
		// Superlatives are inherently unverifiable, never PASS/FAIL
		item.Status = model.StatusWarning
		item.Explanation = fmt.Sprintf("'%s'는 검증 불가능한 과장성 표현입니다", c.RawText)
	case model.ClaimTypeComparison:
		item.Status = model.StatusWarning
		item.Explanation = "외부 기준과의 비교는 스펙만으로 확인할 수 없습니다"
	}

	return item
}

func (v *Validator) checkWeight(c model.Claim, spec model.SpecRecord) (model.ClaimStatus, string) {
	if spec.WeightKg == nil {
		return model.StatusUnverified, "실제 무게 정보가 없어 검증할 수 없습니다"
	}
	if c.Value == nil {
		return model.StatusUnverified, "수치를 해석할 수 없습니다"
	}

	actual := *spec.WeightKg
	claimed := *c.Value

	switch {
	case claimed < actual*(1-v.tolerance):
		// Marketing claims lighter than reality: deceptive
		return model.StatusFail, fmt.Sprintf("표기 무게 %.1fkg가 실제 무게 %.1fkg보다 가볍게 기재되어 있습니다", claimed, actual)
	case claimed > actual*(1+v.tolerance):
		// Overstating weight is unfavorable to the seller, not deceptive
		return model.StatusPass, fmt.Sprintf("표기 무게 %.1fkg는 실제 무게 %.1fkg보다 무겁게 기재되어 과장 위험이 없습니다", claimed, actual)
	default:
		return model.StatusPass, fmt.Sprintf("표기 무게 %.1fkg는 실제 무게 %.1fkg와 허용 오차 내에서 일치합니다", claimed, actual)
	}
}

func (v *Validator) checkLoad(c model.Claim, spec model.SpecRecord) (model.ClaimStatus, string) {
	if spec.MaxLoadKg == nil {
		return model.StatusUnverified, "최대 하중 정보가 없어 검증할 수 없습니다"
	}
	if c.Value == nil {
		return model.StatusUnverified, "수치를 해석할 수 없습니다"
	}

	actual := *spec.MaxLoadKg
	claimed := *c.Value

	if claimed <= actual {
		return model.StatusPass, fmt.Sprintf("표기 하중 %.0fkg는 실제 최대 하중 %.0fkg 이내의 보수적 표기입니다", claimed, actual)
	}
	return model.StatusFail, fmt.Sprintf("표기 하중 %.0fkg가 실제 최대 하중 %.0fkg를 초과합니다 (안전 문제)", claimed, actual)
}

// overallStatus derives the aggregate status: any failure dominates,
// then warnings, then passes; claims that all degraded to UNVERIFIED
// (or an empty claim set) stay UNVERIFIED
func overallStatus(r model.ValidationResult) model.ClaimStatus {
	switch {
	case r.Failed > 0:
		return model.StatusFail
	case r.Warnings > 0:
		return model.StatusWarning
	case r.Passed > 0:
		return model.StatusPass
	default:
		return model.StatusUnverified
	}
}

func riskLevel(r model.ValidationResult) model.RiskLevel {
	switch {
	case r.Failed > 0:
		return model.RiskHigh
	case r.Warnings > 0:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
