package model

import "time"

// OpportunityReport is the top-level aggregate for one analysis run.
// Immutable after assembly except for serialization/rendering.
type OpportunityReport struct {
	ReportID       string               `json:"report_id"`
	ProductName    string               `json:"product_name"`
	Category       string               `json:"category,omitempty"`
	GeneratedAt    time.Time            `json:"generated_at"`
	TargetKeywords []KeywordOpportunity `json:"target_keywords,omitempty"`
	Margin         *MarginResult        `json:"margin_analysis,omitempty"`
	Score          OpportunityScore     `json:"opportunity_score"`
	Recommendation string               `json:"recommendation"`
	ActionItems    []string             `json:"action_items"`

	Reviews    *FilterResult     `json:"review_analysis,omitempty"`
	Validation *ValidationResult `json:"claim_validation,omitempty"`

	// Enrichment is the optional AI-generated review insight block.
	// It never affects scoring; Degraded is set when enrichment or
	// persistence failed and the report was assembled without it.
	Enrichment *ReviewInsights `json:"enrichment,omitempty"`
	Degraded   bool            `json:"degraded,omitempty"`
}

// ReviewInsights is the structured output of the enrichment service
type ReviewInsights struct {
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	TopIssues []string `json:"top_issues,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
