package margin

import "github.com/hyeonwoos/marketlens/internal/model"

// ViableMarginPercent is the margin below which sourcing is not worth
// pursuing under standard marketplace economics
const ViableMarginPercent = 15.0

// CostInput holds the per-unit economics of a sourcing candidate
type CostInput struct {
	SellingPrice       float64 `yaml:"selling_price"`
	UnitCost           float64 `yaml:"unit_cost"`
	InboundShipping    float64 `yaml:"inbound_shipping"`
	OutboundShipping   float64 `yaml:"outbound_shipping"`
	MarketplaceFeeRate float64 `yaml:"marketplace_fee_rate"` // Fraction of selling price, e.g. 0.12
	AdCostPerUnit      float64 `yaml:"ad_cost_per_unit"`
}

// Calculate derives the margin summary from per-unit costs.
// A non-positive selling price yields a zero, non-viable result.
func Calculate(in CostInput) model.MarginResult {
	fixedCost := in.UnitCost + in.InboundShipping + in.OutboundShipping + in.AdCostPerUnit

	result := model.MarginResult{
		TotalCost: fixedCost + in.SellingPrice*in.MarketplaceFeeRate,
	}

	if in.MarketplaceFeeRate < 1 {
		result.BreakevenPrice = fixedCost / (1 - in.MarketplaceFeeRate)
	}

	if in.SellingPrice <= 0 {
		return result
	}

	profit := in.SellingPrice - result.TotalCost
	result.MarginPercent = profit / in.SellingPrice * 100
	result.IsViable = result.MarginPercent >= ViableMarginPercent

	return result
}
