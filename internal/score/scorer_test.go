package score

import (
	"strings"
	"testing"

	"github.com/hyeonwoos/marketlens/internal/model"
)

func TestMarginScore(t *testing.T) {
	tests := []struct {
		margin float64
		want   float64
	}{
		{35, 100},
		{30, 100},
		{25, 80},
		{20, 80},
		{17, 60},
		{15, 60},
		{10, 40},
		{0, 40},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := MarginScore(tt.margin); got != tt.want {
			t.Errorf("MarginScore(%v) = %v, want %v", tt.margin, got, tt.want)
		}
	}
}

func TestCompetitionScore(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0.1, 100},
		{0.3, 100},
		{0.4, 80},
		{0.5, 80},
		{0.8, 60},
		{1.0, 60},
		{3.0, 20},
		{5.0, 20},
		{10.0, 10},
	}

	for _, tt := range tests {
		if got := CompetitionScore(tt.rate); got != tt.want {
			t.Errorf("CompetitionScore(%v) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestRiskScore(t *testing.T) {
	if got := RiskScore(nil); got != 0 {
		t.Errorf("RiskScore(nil) = %v, want 0", got)
	}
	if got := RiskScore([]string{"a", "b", "c", "d"}); got != 80 {
		t.Errorf("RiskScore(4 risks) = %v, want 80", got)
	}
	// Duplicates count once
	if got := RiskScore([]string{"a", "a", "b"}); got != 40 {
		t.Errorf("RiskScore(duplicated risks) = %v, want 40", got)
	}
	// Capped at 100
	if got := RiskScore([]string{"a", "b", "c", "d", "e", "f", "g"}); got != 100 {
		t.Errorf("RiskScore(7 risks) = %v, want 100", got)
	}
}

func TestKeywordScore(t *testing.T) {
	if got := KeywordScore(nil); got != 0 {
		t.Errorf("KeywordScore(nil) = %v, want 0", got)
	}

	// Volume-weighted: the head keyword dominates
	keywords := []model.KeywordOpportunity{
		{Keyword: "캠핑의자", SearchVolume: 90_000, Opportunity: 90},
		{Keyword: "경량 체어", SearchVolume: 10_000, Opportunity: 40},
	}
	got := KeywordScore(keywords)
	want := (90.0*90_000 + 40.0*10_000) / 100_000
	if got != want {
		t.Errorf("KeywordScore() = %v, want %v", got, want)
	}

	// Missing volumes degrade to a plain average
	flat := []model.KeywordOpportunity{
		{Opportunity: 80},
		{Opportunity: 40},
	}
	if got := KeywordScore(flat); got != 60 {
		t.Errorf("KeywordScore(no volumes) = %v, want 60", got)
	}
}

func ratePtr(v float64) *float64 { return &v }

func TestScorer_Score_CompositeWeights(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	keywords := []model.KeywordOpportunity{{SearchVolume: 50_000, Opportunity: 80}}
	result := s.Score(keywords, 25, ratePtr(0.4), []string{"risk-1"})

	if result.MarginScore != 80 || result.KeywordScore != 80 || result.CompetitionScore != 80 || result.RiskScore != 20 {
		t.Fatalf("Sub-scores = %+v, want 80/80/80/20", result)
	}

	// 0.40*80 + 0.35*80 + 0.25*80 - 0.30*20 = 74
	if result.TotalScore != 74 {
		t.Errorf("TotalScore = %v, want 74", result.TotalScore)
	}
}

func TestScorer_Score_NoCompetitionData(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	// A nil rate means no data; the component must contribute nothing,
	// not the full no-competition band
	result := s.Score(nil, 25, nil, nil)

	if result.CompetitionScore != 0 {
		t.Errorf("CompetitionScore = %v, want 0 without competition data", result.CompetitionScore)
	}
	if result.TotalScore != 32 {
		t.Errorf("TotalScore = %v, want 32 (margin only)", result.TotalScore)
	}
}

func TestScorer_Score_ClampedToRange(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	// Worst case everywhere must not go below zero
	result := s.Score(nil, -10, ratePtr(10), []string{"a", "b", "c", "d", "e", "f"})
	if result.TotalScore < 0 || result.TotalScore > 100 {
		t.Errorf("TotalScore = %v, want within [0,100]", result.TotalScore)
	}
}

func TestScorer_Score_MarginMonotonic(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	prev := -1.0
	for _, margin := range []float64{-5, 0, 15, 20, 30} {
		result := s.Score(nil, margin, ratePtr(0.4), nil)
		if result.TotalScore < prev {
			t.Errorf("TotalScore decreased when margin rose to %v", margin)
		}
		prev = result.TotalScore
	}
}

func TestScorer_Recommend(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	tests := []struct {
		name   string
		total  float64
		margin float64
		want   string
	}{
		{"strong candidate", 75, 25, "추천"},
		{"weak score", 30, 25, "비추천"},
		{"negative margin", 75, -5, "비추천"},
		{"middle ground", 55, 18, "조건부"},
		{"high score low margin", 75, 18, "조건부"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Recommend(model.OpportunityScore{TotalScore: tt.total}, tt.margin)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Recommend(%v, %v) = %q, want prefix %q", tt.total, tt.margin, got, tt.want)
			}
		})
	}
}

func TestScorer_ActionItems(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	score := model.OpportunityScore{KeywordScore: 30, CompetitionScore: 20}
	items := s.ActionItems(score, 10, map[string]int{"품질": 5, "배송": 2})

	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5:\n%v", len(items), items)
	}

	joined := strings.Join(items, "\n")
	for _, want := range []string{"마진", "키워드", "경쟁", "품질", "배송", "(5건)", "(2건)"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Action items missing %q:\n%s", want, joined)
		}
	}

	// Complaint categories ordered by count: 품질 (5) before 배송 (2)
	if idx품질 := strings.Index(joined, "품질"); idx품질 > strings.Index(joined, "배송") {
		t.Error("Categories must be ordered by complaint count")
	}
}

func TestScorer_ActionItems_UnknownCategoryFallback(t *testing.T) {
	s := NewScorer(model.ScoringConfig{})

	items := s.ActionItems(model.OpportunityScore{KeywordScore: 90, CompetitionScore: 100}, 30, map[string]int{"소음": 3})

	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1:\n%v", len(items), items)
	}
	if !strings.Contains(items[0], "소음") || !strings.Contains(items[0], "(3건)") {
		t.Errorf("Fallback item must name the category and count, got %q", items[0])
	}
}
