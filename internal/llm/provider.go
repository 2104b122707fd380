package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Provider is an AI backend that turns a complaint digest into review
// insights. Enrichment output never feeds back into scoring; it is an
// optional report section and the system must work with it absent.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Enrich generates review insights from a complaint digest
	Enrich(ctx context.Context, req EnrichRequest) (*EnrichResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// EnrichRequest carries the digest produced by the complaint aggregator
type EnrichRequest struct {
	// Digest is the fixed-shape complaint block from review.Digest
	Digest string

	// Categories is the complaint-category histogram, for prompt context
	Categories map[string]int

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the provider-specific model name
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// EnrichResponse is the provider's raw output before parsing
type EnrichResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds enrichment provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RateLimit caps enrichment calls per second across batch runs
	RateLimit float64
}

// DefaultConfig returns sensible defaults (enrichment disabled)
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
		RateLimit: 1,
	}
}

// BuildPrompt constructs the default enrichment prompt from the digest.
// The response contract (한 줄 요약 + "- " bullets) is what ParseInsights
// parses on the way back.
func BuildPrompt(req EnrichRequest) string {
	var b strings.Builder

	b.WriteString("당신은 이커머스 셀러를 돕는 리뷰 분석가입니다. 아래 고객 불만 리뷰 digest를 읽고:\n")
	b.WriteString("1. 첫 줄에 전체 불만 경향을 한 문장으로 요약하세요.\n")
	b.WriteString("2. 이어서 가장 중요한 문제를 '- '로 시작하는 항목으로 최대 5개 나열하세요.\n")
	b.WriteString("3. digest에 없는 내용을 추측하거나 지어내지 마세요.\n\n")

	if len(req.Categories) > 0 {
		b.WriteString("카테고리 집계: ")
		b.WriteString(formatCategories(req.Categories))
		b.WriteString("\n\n")
	}

	b.WriteString(req.Digest)
	return b.String()
}

func formatCategories(categories map[string]int) string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d건", name, categories[name]))
	}
	return strings.Join(parts, ", ")
}
