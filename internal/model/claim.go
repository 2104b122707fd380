package model

// ClaimType categorizes a marketing-copy claim
type ClaimType string

const (
	ClaimTypeWeight       ClaimType = "weight"       // Product weight assertions ("1.2kg")
	ClaimTypeLoad         ClaimType = "load"         // Maximum supported load assertions
	ClaimTypeExaggeration ClaimType = "exaggeration" // Superlative/absolute marketing terms
	ClaimTypeComparison   ClaimType = "comparison"   // Competitor/baseline comparisons
)

// ClaimStatus is the validation outcome for one claim
type ClaimStatus string

const (
	StatusPass       ClaimStatus = "PASS"
	StatusFail       ClaimStatus = "FAIL"
	StatusWarning    ClaimStatus = "WARNING"
	StatusUnverified ClaimStatus = "UNVERIFIED" // Spec data needed for the check was not supplied
)

// RiskLevel is the coarse severity band derived from validation outcomes
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Claim is a single assertion extracted from marketing copy
type Claim struct {
	Type    ClaimType `json:"claim_type"`
	RawText string    `json:"raw_text"`        // The matched substring of the copy
	Value   *float64  `json:"value,omitempty"` // Parsed numeric value in kg, if any
	Offset  int       `json:"-"`               // Byte offset in the copy, for stable ordering
}

// SpecRecord holds the physical specification a product's claims are checked against.
// Optional fields are nil when unknown; missing fields degrade checks to UNVERIFIED.
type SpecRecord struct {
	ProductName string      `json:"product_name" yaml:"product_name"`
	Category    string      `json:"category" yaml:"category"`
	WeightKg    *float64    `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	Dimensions  *Dimensions `json:"dimensions_cm,omitempty" yaml:"dimensions_cm,omitempty"`
	MaxLoadKg   *float64    `json:"max_load_kg,omitempty" yaml:"max_load_kg,omitempty"`
	Material    string      `json:"material,omitempty" yaml:"material,omitempty"`
}

// Dimensions in centimeters
type Dimensions struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ValidationItem is the checked result for one claim
type ValidationItem struct {
	Claim       Claim       `json:"claim"`
	Status      ClaimStatus `json:"status"`
	Explanation string      `json:"explanation"`
}

// ValidationResult aggregates all claim checks for one copy text.
// Counts are pure functions of Items; Items preserve extraction order.
type ValidationResult struct {
	TotalClaims   int              `json:"total_claims"`
	Passed        int              `json:"passed"`
	Failed        int              `json:"failed"`
	Warnings      int              `json:"warnings"`
	Unverified    int              `json:"unverified"`
	Items         []ValidationItem `json:"items"`
	OverallStatus ClaimStatus      `json:"overall_status"`
	RiskLevel     RiskLevel        `json:"risk_level"`
}
