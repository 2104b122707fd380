package keyword

import (
	"github.com/hyeonwoos/marketlens/internal/model"
	"github.com/hyeonwoos/marketlens/internal/score"
)

// Metrics is the raw demand data collected for one search keyword
type Metrics struct {
	Keyword      string
	SearchVolume int // Monthly searches
	ProductCount int // Competing listings for the keyword
}

// CompetitionRate is competing listings per monthly search: below 1.0
// there is more demand than supply
func CompetitionRate(m Metrics) float64 {
	if m.SearchVolume <= 0 {
		if m.ProductCount > 0 {
			return float64(m.ProductCount)
		}
		return 0
	}
	return float64(m.ProductCount) / float64(m.SearchVolume)
}

// Opportunity converts raw keyword metrics into the 0-100 opportunity
// record the scorer consumes: demand band blended with competition band,
// demand weighted higher
func Opportunity(m Metrics) model.KeywordOpportunity {
	rate := CompetitionRate(m)
	opportunity := 0.6*demandBand(m.SearchVolume) + 0.4*score.CompetitionScore(rate)

	return model.KeywordOpportunity{
		Keyword:         m.Keyword,
		SearchVolume:    m.SearchVolume,
		CompetitionRate: rate,
		Opportunity:     opportunity,
	}
}

// demandBand maps monthly search volume to a 0-100 band
func demandBand(volume int) float64 {
	switch {
	case volume >= 100_000:
		return 100
	case volume >= 30_000:
		return 80
	case volume >= 10_000:
		return 60
	case volume >= 1_000:
		return 40
	case volume > 0:
		return 20
	default:
		return 0
	}
}

// AverageCompetition derives one competition rate for a keyword set,
// weighting each keyword by its search volume
func AverageCompetition(keywords []model.KeywordOpportunity) float64 {
	if len(keywords) == 0 {
		return 0
	}

	var weightedSum, volumeSum float64
	for _, kw := range keywords {
		weight := float64(kw.SearchVolume)
		if weight <= 0 {
			weight = 1
		}
		weightedSum += kw.CompetitionRate * weight
		volumeSum += weight
	}

	return weightedSum / volumeSum
}
