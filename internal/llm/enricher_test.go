package llm

import (
	"reflect"
	"testing"
)

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantSummary string
		wantIssues  []string
	}{
		{
			name:        "contract shape",
			text:        "품질 불만이 주를 이룹니다.\n- 실밥 마감 불량\n- 배송 지연",
			wantSummary: "품질 불만이 주를 이룹니다.",
			wantIssues:  []string{"실밥 마감 불량", "배송 지연"},
		},
		{
			name:        "unicode bullets",
			text:        "요약입니다\n• 첫 번째 문제\n• 두 번째 문제",
			wantSummary: "요약입니다",
			wantIssues:  []string{"첫 번째 문제", "두 번째 문제"},
		},
		{
			name:        "blank lines ignored",
			text:        "\n\n요약\n\n- 문제\n\n",
			wantSummary: "요약",
			wantIssues:  []string{"문제"},
		},
		{
			name:        "bullets only",
			text:        "- 문제 하나",
			wantSummary: "",
			wantIssues:  []string{"문제 하나"},
		},
		{
			name:        "prose only",
			text:        "모델이 형식을 무시하고 문단으로 답했습니다",
			wantSummary: "모델이 형식을 무시하고 문단으로 답했습니다",
			wantIssues:  nil,
		},
		{
			name:        "empty response",
			text:        "",
			wantSummary: "",
			wantIssues:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, issues := ParseInsights(tt.text)
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
			if !reflect.DeepEqual(issues, tt.wantIssues) {
				t.Errorf("issues = %v, want %v", issues, tt.wantIssues)
			}
		})
	}
}

func TestNewEnricher_DisabledWithoutProvider(t *testing.T) {
	enricher, err := NewEnricher(Config{})
	if err != nil {
		t.Fatalf("NewEnricher() error = %v", err)
	}
	if enricher != nil {
		t.Error("Expected nil enricher when no provider is configured")
	}
	if enricher.Enabled() {
		t.Error("Nil enricher must report disabled")
	}
}

func TestNewEnricher_UnknownProvider(t *testing.T) {
	if _, err := NewEnricher(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
