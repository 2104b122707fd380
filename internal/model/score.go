package model

// KeywordOpportunity is one keyword's precomputed demand summary,
// produced by the keyword calculator
type KeywordOpportunity struct {
	Keyword         string  `json:"keyword"`
	SearchVolume    int     `json:"search_volume"`
	CompetitionRate float64 `json:"competition_rate"`
	Opportunity     float64 `json:"opportunity_score"` // 0-100
}

// MarginResult is the margin calculator's output
type MarginResult struct {
	MarginPercent  float64 `json:"margin_percent"`
	IsViable       bool    `json:"is_viable"`
	TotalCost      float64 `json:"total_cost"`
	BreakevenPrice float64 `json:"breakeven_price"`
}

// OpportunityScore is the composite scoring breakdown.
// All components are on a 0-100 scale; RiskScore is a penalty magnitude.
type OpportunityScore struct {
	KeywordScore     float64 `json:"keyword_score"`
	MarginScore      float64 `json:"margin_score"`
	CompetitionScore float64 `json:"competition_score"`
	RiskScore        float64 `json:"risk_score"`
	TotalScore       float64 `json:"total_score"` // Computed, never set externally
}
