package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// Persistence is the capability for saving an assembled report under its
// product keyword. Implementations must not be required for assembly:
// a save failure degrades the run, it never aborts it.
type Persistence interface {
	SaveReport(keyword string, report *model.OpportunityReport) error
}

// Enrichment is the capability for generating review insights from the
// aggregated complaint data. A nil insight result means "nothing to add".
type Enrichment interface {
	Enrich(ctx context.Context, result model.FilterResult, digestLimit int) (*model.ReviewInsights, error)
}

// NoopPersistence discards reports; used when the store is disabled
type NoopPersistence struct{}

func (NoopPersistence) SaveReport(string, *model.OpportunityReport) error { return nil }

// NoopEnrichment produces no insights; used when no provider is configured
type NoopEnrichment struct{}

func (NoopEnrichment) Enrich(context.Context, model.FilterResult, int) (*model.ReviewInsights, error) {
	return nil, nil
}

// Input carries everything the assembler combines into one report
type Input struct {
	ProductName    string
	Category       string
	Keywords       []model.KeywordOpportunity
	Margin         *model.MarginResult
	Score          model.OpportunityScore
	Recommendation string
	ActionItems    []string
	Reviews        *model.FilterResult
	Validation     *model.ValidationResult
}

// Assembler combines classifier outputs into an OpportunityReport.
// Persistence and enrichment are injected capabilities; both have noop
// implementations so the assembler works fully offline.
type Assembler struct {
	persistence Persistence
	enrichment  Enrichment
	digestLimit int
	now         func() time.Time
}

// NewAssembler creates an assembler. Nil capabilities fall back to noops.
func NewAssembler(persistence Persistence, enrichment Enrichment, digestLimit int) *Assembler {
	if persistence == nil {
		persistence = NoopPersistence{}
	}
	if enrichment == nil {
		enrichment = NoopEnrichment{}
	}
	if digestLimit <= 0 {
		digestLimit = 20
	}
	return &Assembler{
		persistence: persistence,
		enrichment:  enrichment,
		digestLimit: digestLimit,
		now:         time.Now,
	}
}

// Assemble builds the report. Enrichment and persistence failures set
// the Degraded flag instead of failing the assembly; only a missing
// product name is a hard error.
func (a *Assembler) Assemble(ctx context.Context, in Input) (*model.OpportunityReport, error) {
	if in.ProductName == "" {
		return nil, fmt.Errorf("product name is required")
	}

	generatedAt := a.now().UTC()
	rpt := &model.OpportunityReport{
		ReportID:       reportID(in.ProductName, generatedAt),
		ProductName:    in.ProductName,
		Category:       in.Category,
		GeneratedAt:    generatedAt,
		TargetKeywords: in.Keywords,
		Margin:         in.Margin,
		Score:          in.Score,
		Recommendation: in.Recommendation,
		ActionItems:    in.ActionItems,
		Reviews:        in.Reviews,
		Validation:     in.Validation,
	}

	if in.Reviews != nil && in.Reviews.ComplaintCount > 0 {
		insights, err := a.enrichment.Enrich(ctx, *in.Reviews, a.digestLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: enrichment failed, continuing without insights: %v\n", err)
			rpt.Degraded = true
		} else {
			rpt.Enrichment = insights
		}
	}

	if err := a.persistence.SaveReport(in.ProductName, rpt); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: report persistence failed: %v\n", err)
		rpt.Degraded = true
	}

	return rpt, nil
}

// reportID derives a stable, human-sortable report identifier
func reportID(productName string, at time.Time) string {
	hash := sha256.Sum256([]byte(productName))
	return fmt.Sprintf("rpt-%s-%s", at.Format("20060102T150405Z"), hex.EncodeToString(hash[:4]))
}
