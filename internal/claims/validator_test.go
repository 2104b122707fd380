package claims

import (
	"strings"
	"testing"

	"github.com/hyeonwoos/marketlens/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func chairSpec() model.SpecRecord {
	return model.SpecRecord{
		ProductName: "캠핑의자 A1",
		Category:    "캠핑용품",
		WeightKg:    floatPtr(2.5),
		MaxLoadKg:   floatPtr(120),
	}
}

func TestValidator_Validate_UnderstatedWeightFails(t *testing.T) {
	v := NewValidator(0.10)

	result := v.Validate("초경량 1.0kg 캠핑의자", chairSpec())

	if result.TotalClaims != 1 {
		t.Fatalf("TotalClaims = %d, want 1", result.TotalClaims)
	}
	if result.Items[0].Status != model.StatusFail {
		t.Errorf("Status = %s, want %s (claimed 1.0kg vs actual 2.5kg)", result.Items[0].Status, model.StatusFail)
	}
	if result.OverallStatus != model.StatusFail {
		t.Errorf("OverallStatus = %s, want %s", result.OverallStatus, model.StatusFail)
	}
	if result.RiskLevel != model.RiskHigh {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, model.RiskHigh)
	}
}

func TestValidator_Validate_WeightAndLoadInOneSentence(t *testing.T) {
	v := NewValidator(0.10)

	// The usual marketing form states both figures together; each must be
	// checked against its own spec field
	result := v.Validate("초경량 1.0kg 캠핑의자, 최대 150kg까지 거뜬히 지지", chairSpec())

	if result.TotalClaims != 2 {
		t.Fatalf("TotalClaims = %d, want 2 (%+v)", result.TotalClaims, result.Items)
	}
	if result.Failed != 2 {
		t.Errorf("Failed = %d, want 2 (understated weight and exceeded load)", result.Failed)
	}
	if result.RiskLevel != model.RiskHigh {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, model.RiskHigh)
	}
}

func TestValidator_Validate_WeightWithinTolerance(t *testing.T) {
	v := NewValidator(0.10)

	// 2.3kg claimed against 2.5kg actual is inside the 10% band
	result := v.Validate("무게 2.3kg", chairSpec())

	if result.Items[0].Status != model.StatusPass {
		t.Errorf("Status = %s, want %s", result.Items[0].Status, model.StatusPass)
	}
}

func TestValidator_Validate_OverstatedWeightPasses(t *testing.T) {
	v := NewValidator(0.10)

	// Claiming heavier than reality is unfavorable marketing, not deception
	result := v.Validate("무게 3.0kg", chairSpec())

	if result.Items[0].Status != model.StatusPass {
		t.Errorf("Status = %s, want %s", result.Items[0].Status, model.StatusPass)
	}
}

func TestValidator_Validate_LoadClaims(t *testing.T) {
	v := NewValidator(0.10)

	tests := []struct {
		copy string
		want model.ClaimStatus
	}{
		// Claimed load under the real maximum is conservative labeling
		{"최대 100kg까지 지지합니다", model.StatusPass},
		{"최대 120kg까지 지지합니다", model.StatusPass},
		// Claiming above the real maximum is a safety problem
		{"최대 150kg까지 거뜬하게 견딥니다", model.StatusFail},
	}

	for _, tt := range tests {
		result := v.Validate(tt.copy, chairSpec())
		if result.TotalClaims != 1 {
			t.Errorf("Validate(%q): TotalClaims = %d, want 1", tt.copy, result.TotalClaims)
			continue
		}
		if result.Items[0].Status != tt.want {
			t.Errorf("Validate(%q): Status = %s, want %s", tt.copy, result.Items[0].Status, tt.want)
		}
	}
}

func TestValidator_Validate_ExaggerationAlwaysWarns(t *testing.T) {
	v := NewValidator(0.10)

	result := v.Validate("최고급 프리미엄 캠핑의자", chairSpec())

	if result.Warnings != 2 {
		t.Fatalf("Warnings = %d, want 2", result.Warnings)
	}
	for _, item := range result.Items {
		if item.Status != model.StatusWarning {
			t.Errorf("Exaggeration status = %s, want %s", item.Status, model.StatusWarning)
		}
	}
	if result.OverallStatus != model.StatusWarning {
		t.Errorf("OverallStatus = %s, want %s", result.OverallStatus, model.StatusWarning)
	}
	if result.RiskLevel != model.RiskMedium {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, model.RiskMedium)
	}
}

func TestValidator_Validate_MissingSpecFieldsUnverified(t *testing.T) {
	v := NewValidator(0.10)

	spec := model.SpecRecord{ProductName: "캠핑의자 A1"}
	result := v.Validate("무게 1.0kg, 최대 100kg까지 지지", spec)

	if result.Unverified != result.TotalClaims {
		t.Errorf("Unverified = %d, want all %d claims", result.Unverified, result.TotalClaims)
	}
	if result.OverallStatus != model.StatusUnverified {
		t.Errorf("OverallStatus = %s, want %s", result.OverallStatus, model.StatusUnverified)
	}
	if result.RiskLevel != model.RiskLow {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, model.RiskLow)
	}
}

func TestValidator_Validate_EmptyCopy(t *testing.T) {
	v := NewValidator(0.10)

	result := v.Validate("", chairSpec())

	if result.TotalClaims != 0 {
		t.Errorf("TotalClaims = %d, want 0", result.TotalClaims)
	}
	if result.OverallStatus != model.StatusUnverified {
		t.Errorf("OverallStatus = %s, want %s", result.OverallStatus, model.StatusUnverified)
	}
	if result.RiskLevel != model.RiskLow {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, model.RiskLow)
	}
}

func TestValidator_Validate_FailureDominatesOverall(t *testing.T) {
	v := NewValidator(0.10)

	// Mix of a pass, warnings and one failure: FAIL must win
	result := v.Validate("최고급 의자. 무게 2.5kg. 최대 200kg까지 지지.", chairSpec())

	if result.Failed == 0 {
		t.Fatalf("Expected at least one failure, got %+v", result)
	}
	if result.OverallStatus != model.StatusFail {
		t.Errorf("OverallStatus = %s, want %s", result.OverallStatus, model.StatusFail)
	}
	if result.RiskLevel != model.RiskHigh {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, model.RiskHigh)
	}
}

func TestValidator_ValidateHTML(t *testing.T) {
	v := NewValidator(0.10)

	html := `<html><head><script>var x = "1kg";</script></head>
<body><h1>캠핑의자</h1><p>초경량 1.0kg 캠핑의자</p></body></html>`

	result, err := v.ValidateHTML(html, chairSpec())
	if err != nil {
		t.Fatalf("ValidateHTML() error = %v", err)
	}

	if result.TotalClaims != 1 {
		t.Fatalf("TotalClaims = %d, want 1 (script content must be ignored)", result.TotalClaims)
	}
	if result.Items[0].Status != model.StatusFail {
		t.Errorf("Status = %s, want %s", result.Items[0].Status, model.StatusFail)
	}
}

func TestRenderReport_ContainsVerdicts(t *testing.T) {
	v := NewValidator(0.10)
	result := v.Validate("초경량 1.0kg 캠핑의자", chairSpec())

	rendered := RenderReport("캠핑의자 A1", result)

	if !strings.Contains(rendered, "캠핑의자 A1") {
		t.Error("Report must name the product")
	}
	if !strings.Contains(rendered, string(model.StatusFail)) {
		t.Error("Report must show the failing verdict")
	}
}
