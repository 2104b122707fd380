package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hyeonwoos/marketlens/internal/claims"
	"github.com/hyeonwoos/marketlens/internal/keyword"
	"github.com/hyeonwoos/marketlens/internal/lexicon"
	"github.com/hyeonwoos/marketlens/internal/llm"
	"github.com/hyeonwoos/marketlens/internal/margin"
	"github.com/hyeonwoos/marketlens/internal/model"
	"github.com/hyeonwoos/marketlens/internal/report"
	"github.com/hyeonwoos/marketlens/internal/review"
	"github.com/hyeonwoos/marketlens/internal/score"
	"github.com/hyeonwoos/marketlens/internal/store"
	"github.com/hyeonwoos/marketlens/internal/worker"
)

// Pipeline orchestrates the complete opportunity analysis
type Pipeline struct {
	classifier *review.Classifier
	validator  *claims.Validator
	scorer     *score.Scorer
	assembler  *report.Assembler
	renderer   *report.Renderer
	config     *model.Config
}

// NewPipeline wires the analysis stages from configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	// Create the enrichment provider if configured
	var enrichment report.Enrichment
	if cfg.LLM.Provider != "" {
		enricher, err := llm.NewEnricher(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if enricher.Enabled() {
			enrichment = enricher
		}
	}

	persistence, err := newPersistence(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: report store disabled: %v\n", err)
	}

	return &Pipeline{
		classifier: review.NewClassifier(lex, lexicon.ForStrategy(cfg.Lexicon.Matching), cfg.Lexicon.GuardWindow),
		validator:  claims.NewValidator(cfg.Scoring.WeightTolerance),
		scorer:     score.NewScorer(cfg.Scoring),
		assembler:  report.NewAssembler(persistence, enrichment, cfg.Output.DigestLimit),
		renderer:   report.NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}, nil
}

// AnalyzeInput carries the raw material of one analysis run. Every field
// except the spec is optional; absent stages are skipped, not failed.
type AnalyzeInput struct {
	Spec     model.SpecRecord
	Reviews  []model.ReviewRecord
	CopyText string
	CopyHTML string
	Keywords []model.KeywordOpportunity

	// Cost drives the margin calculation; MarginPercent overrides it when
	// the caller already knows the margin
	Cost          *margin.CostInput
	MarginPercent *float64

	// CompetitionRate overrides the keyword-derived average
	CompetitionRate *float64
}

// Analyze runs classification, validation and scoring, then assembles
// the report
func (p *Pipeline) Analyze(ctx context.Context, in AnalyzeInput) (*model.OpportunityReport, error) {
	// 1. Classify reviews concurrently, aggregate in input order
	var reviews *model.FilterResult
	if len(in.Reviews) > 0 {
		classified := worker.ClassifyBatch(ctx, p.classifier, in.Reviews, p.config.Concurrency.Workers)
		aggregated := review.Aggregate(classified)
		reviews = &aggregated
	}

	// 2. Validate marketing copy against the spec
	var validation *model.ValidationResult
	switch {
	case in.CopyHTML != "":
		result, err := p.validator.ValidateHTML(in.CopyHTML, in.Spec)
		if err != nil {
			return nil, fmt.Errorf("validate copy: %w", err)
		}
		validation = &result
	case in.CopyText != "":
		result := p.validator.Validate(in.CopyText, in.Spec)
		validation = &result
	}

	// 3. Margin
	var marginResult *model.MarginResult
	marginPercent := 0.0
	switch {
	case in.Cost != nil:
		m := margin.Calculate(*in.Cost)
		marginResult = &m
		marginPercent = m.MarginPercent
	case in.MarginPercent != nil:
		marginPercent = *in.MarginPercent
		marginResult = &model.MarginResult{
			MarginPercent: marginPercent,
			IsViable:      marginPercent >= margin.ViableMarginPercent,
		}
	}

	// 4. Competition; stays nil when neither keyword data nor an
	// override exists, which zeroes the component instead of scoring
	// "unknown" as "uncontested"
	competitionRate := in.CompetitionRate
	if competitionRate == nil && len(in.Keywords) > 0 {
		rate := keyword.AverageCompetition(in.Keywords)
		competitionRate = &rate
	}

	// 5. Score and recommend
	risks := deriveRisks(validation, reviews)
	scoreResult := p.scorer.Score(in.Keywords, marginPercent, competitionRate, risks)

	var complaintCategories map[string]int
	if reviews != nil {
		complaintCategories = reviews.CategoryCounts
	}

	// 6. Assemble (enrichment runs after scoring, it never affects the score)
	return p.assembler.Assemble(ctx, report.Input{
		ProductName:    in.Spec.ProductName,
		Category:       in.Spec.Category,
		Keywords:       in.Keywords,
		Margin:         marginResult,
		Score:          scoreResult,
		Recommendation: p.scorer.Recommend(scoreResult, marginPercent),
		ActionItems:    p.scorer.ActionItems(scoreResult, marginPercent, complaintCategories),
		Reviews:        reviews,
		Validation:     validation,
	})
}

// FilterReviews classifies a review batch without the rest of the analysis
func (p *Pipeline) FilterReviews(ctx context.Context, reviews []model.ReviewRecord) model.FilterResult {
	classified := worker.ClassifyBatch(ctx, p.classifier, reviews, p.config.Concurrency.Workers)
	return review.Aggregate(classified)
}

// ValidateCopy checks marketing copy against a spec without the rest of
// the analysis. HTML input takes precedence over plain text.
func (p *Pipeline) ValidateCopy(copyText, copyHTML string, spec model.SpecRecord) (model.ValidationResult, error) {
	if copyHTML != "" {
		return p.validator.ValidateHTML(copyHTML, spec)
	}
	return p.validator.Validate(copyText, spec), nil
}

// RenderReport renders the report to the requested outputs and prints
// the stdout summary
func (p *Pipeline) RenderReport(rpt *model.OpportunityReport, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(rpt, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		written, err := p.renderer.RenderMarkdown(rpt, mdPath)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", written)
		}
	}

	p.renderer.RenderSummary(rpt, os.Stdout)
	return nil
}

// deriveRisks turns hard findings into the risk list the scorer penalizes:
// every failed claim is a risk, and every complaint category concentrated
// enough to shape the review stream (20% of reviews, at least 2) is a risk
func deriveRisks(validation *model.ValidationResult, reviews *model.FilterResult) []string {
	var risks []string

	if validation != nil {
		for _, item := range validation.Items {
			if item.Status == model.StatusFail {
				risks = append(risks, "허위/과장 표기: "+item.Claim.RawText)
			}
		}
	}

	if reviews != nil && reviews.TotalReviews > 0 {
		threshold := reviews.TotalReviews / 5
		if threshold < 2 {
			threshold = 2
		}
		for category, count := range reviews.CategoryCounts {
			if count >= threshold {
				risks = append(risks, "불만 집중 카테고리: "+category)
			}
		}
	}

	sort.Strings(risks)
	return risks
}

func loadLexicon(cfg model.LexiconConfig) (*lexicon.Lexicon, error) {
	if cfg.File == "" {
		return lexicon.Builtin(), nil
	}
	lex, err := lexicon.Load(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return lex, nil
}

// newPersistence builds the keyword-keyed report store. A nil persistence
// is valid: the assembler falls back to its noop.
func newPersistence(cfg model.StoreConfig) (report.Persistence, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	dir := cfg.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve store dir: %w", err)
		}
		dir = filepath.Join(home, ".marketlens", "store")
	}

	ttlDays := cfg.TTLDays
	if ttlDays <= 0 {
		ttlDays = 30
	}
	ttl := time.Duration(ttlDays) * 24 * time.Hour

	return report.NewStorePersistence(store.NewLayeredStore(ttl, dir, ttl), ttl), nil
}
