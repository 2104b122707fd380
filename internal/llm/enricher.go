package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/model"
	"github.com/hyeonwoos/marketlens/internal/review"
	"github.com/hyeonwoos/marketlens/internal/worker"
)

// Enricher turns a complaint digest into structured ReviewInsights via
// the configured provider. A nil Enricher (disabled enrichment) is valid:
// callers check Enabled and assemble the report without insights.
type Enricher struct {
	provider Provider
	limiter  *worker.Limiter
	config   Config
}

// NewEnricher creates an enricher for the configured provider.
// Returns (nil, nil) when no provider is configured.
func NewEnricher(config Config) (*Enricher, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = 1
	}

	return &Enricher{
		provider: provider,
		limiter:  worker.NewLimiter(rateLimit, 1),
		config:   config,
	}, nil
}

// Enabled reports whether enrichment can run
func (e *Enricher) Enabled() bool {
	return e != nil && e.provider != nil
}

// Enrich generates review insights from an aggregated filter result.
// It formats the digest, throttles the provider call, and parses the
// response into the structured insight record.
func (e *Enricher) Enrich(ctx context.Context, result model.FilterResult, digestLimit int) (*model.ReviewInsights, error) {
	if !e.Enabled() {
		return nil, nil
	}

	if err := e.limiter.Wait(ctx, e.provider.Name()); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	resp, err := e.provider.Enrich(ctx, EnrichRequest{
		Digest:     review.Digest(result, digestLimit),
		Categories: result.CategoryCounts,
	})
	if err != nil {
		return nil, err
	}

	summary, issues := ParseInsights(resp.Text)
	insights := &model.ReviewInsights{
		Provider:  e.provider.Name(),
		Model:     resp.Model,
		Summary:   summary,
		TopIssues: issues,
	}
	if summary == "" && len(issues) == 0 {
		insights.Warnings = append(insights.Warnings, "enrichment response did not follow the expected shape")
		insights.Summary = resp.Text
	}

	return insights, nil
}

// ParseInsights splits a provider response into the one-line summary and
// the bulleted top issues, per the prompt's response contract. Responses
// that ignore the contract degrade to a bare summary.
func ParseInsights(text string) (summary string, issues []string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if bullet, ok := strings.CutPrefix(line, "- "); ok {
			issues = append(issues, strings.TrimSpace(bullet))
			continue
		}
		if bullet, ok := strings.CutPrefix(line, "• "); ok {
			issues = append(issues, strings.TrimSpace(bullet))
			continue
		}
		if summary == "" {
			summary = line
		}
	}
	return summary, issues
}
