package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hyeonwoos/marketlens/internal/model"
)

type recordingPersistence struct {
	saved map[string]*model.OpportunityReport
	err   error
}

func (p *recordingPersistence) SaveReport(keyword string, rpt *model.OpportunityReport) error {
	if p.err != nil {
		return p.err
	}
	if p.saved == nil {
		p.saved = make(map[string]*model.OpportunityReport)
	}
	p.saved[keyword] = rpt
	return nil
}

type stubEnrichment struct {
	insights *model.ReviewInsights
	err      error
	calls    int
}

func (e *stubEnrichment) Enrich(ctx context.Context, result model.FilterResult, digestLimit int) (*model.ReviewInsights, error) {
	e.calls++
	return e.insights, e.err
}

func complaintsResult() *model.FilterResult {
	return &model.FilterResult{
		TotalReviews:   10,
		ComplaintCount: 4,
		PositiveCount:  5,
		NeutralCount:   1,
		CategoryCounts: map[string]int{"품질": 3, "배송": 1},
	}
}

func TestAssembler_Assemble_Basic(t *testing.T) {
	a := NewAssembler(nil, nil, 20)

	rpt, err := a.Assemble(context.Background(), Input{
		ProductName:    "캠핑의자 A1",
		Category:       "캠핑용품",
		Score:          model.OpportunityScore{TotalScore: 74},
		Recommendation: "추천",
	})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if rpt.ProductName != "캠핑의자 A1" {
		t.Errorf("ProductName = %q", rpt.ProductName)
	}
	if !strings.HasPrefix(rpt.ReportID, "rpt-") {
		t.Errorf("ReportID = %q, want rpt- prefix", rpt.ReportID)
	}
	if rpt.Degraded {
		t.Error("Noop capabilities must not degrade the report")
	}
	if rpt.GeneratedAt.IsZero() || rpt.GeneratedAt.Location() != time.UTC {
		t.Errorf("GeneratedAt = %v, want non-zero UTC", rpt.GeneratedAt)
	}
}

func TestAssembler_Assemble_MissingProductName(t *testing.T) {
	a := NewAssembler(nil, nil, 20)

	if _, err := a.Assemble(context.Background(), Input{}); err == nil {
		t.Error("Expected error for missing product name")
	}
}

func TestAssembler_Assemble_EnrichmentAttached(t *testing.T) {
	enrichment := &stubEnrichment{insights: &model.ReviewInsights{
		Provider: "openai",
		Summary:  "품질 불만이 주를 이룹니다",
	}}
	a := NewAssembler(nil, enrichment, 20)

	rpt, err := a.Assemble(context.Background(), Input{
		ProductName: "캠핑의자 A1",
		Reviews:     complaintsResult(),
	})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if enrichment.calls != 1 {
		t.Errorf("Enrich called %d times, want 1", enrichment.calls)
	}
	if rpt.Enrichment == nil || rpt.Enrichment.Summary == "" {
		t.Error("Expected insights on the report")
	}
	if rpt.Degraded {
		t.Error("Successful enrichment must not degrade the report")
	}
}

func TestAssembler_Assemble_EnrichmentSkippedWithoutComplaints(t *testing.T) {
	enrichment := &stubEnrichment{insights: &model.ReviewInsights{Summary: "unused"}}
	a := NewAssembler(nil, enrichment, 20)

	_, err := a.Assemble(context.Background(), Input{
		ProductName: "캠핑의자 A1",
		Reviews:     &model.FilterResult{TotalReviews: 3, PositiveCount: 3},
	})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if enrichment.calls != 0 {
		t.Errorf("Enrich called %d times, want 0 without complaints", enrichment.calls)
	}
}

func TestAssembler_Assemble_EnrichmentFailureDegrades(t *testing.T) {
	enrichment := &stubEnrichment{err: errors.New("provider down")}
	a := NewAssembler(nil, enrichment, 20)

	rpt, err := a.Assemble(context.Background(), Input{
		ProductName: "캠핑의자 A1",
		Reviews:     complaintsResult(),
		Score:       model.OpportunityScore{TotalScore: 60},
	})
	if err != nil {
		t.Fatalf("Enrichment failure must not abort assembly, got %v", err)
	}

	if !rpt.Degraded {
		t.Error("Expected Degraded = true after enrichment failure")
	}
	if rpt.Enrichment != nil {
		t.Error("Expected no insights after enrichment failure")
	}
	if rpt.Score.TotalScore != 60 {
		t.Errorf("Score changed on degraded run: %v", rpt.Score.TotalScore)
	}
}

func TestAssembler_Assemble_PersistenceFailureDegrades(t *testing.T) {
	persistence := &recordingPersistence{err: errors.New("disk full")}
	a := NewAssembler(persistence, nil, 20)

	rpt, err := a.Assemble(context.Background(), Input{ProductName: "캠핑의자 A1"})
	if err != nil {
		t.Fatalf("Persistence failure must not abort assembly, got %v", err)
	}
	if !rpt.Degraded {
		t.Error("Expected Degraded = true after persistence failure")
	}
}

func TestAssembler_Assemble_PersistsUnderProductName(t *testing.T) {
	persistence := &recordingPersistence{}
	a := NewAssembler(persistence, nil, 20)

	if _, err := a.Assemble(context.Background(), Input{ProductName: "캠핑의자 A1"}); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if _, ok := persistence.saved["캠핑의자 A1"]; !ok {
		t.Errorf("Report not saved under product name, saved keys: %v", persistence.saved)
	}
}
