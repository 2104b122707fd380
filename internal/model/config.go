package model

// Config is the complete marketlens configuration.
// Defaults are overridden by config file, environment, then CLI flags.
type Config struct {
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Store       StoreConfig       `yaml:"store"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// LexiconConfig selects the sentiment lexicon and matching strategy
type LexiconConfig struct {
	// File is an optional YAML lexicon file; empty means the built-in lexicon
	File string `yaml:"file,omitempty"`
	// Matching is "substring" (default) or "token"
	Matching string `yaml:"matching"`
	// GuardWindow is the token window after a negative match in which a
	// positive qualifier neutralizes it
	GuardWindow int `yaml:"guard_window"`
}

// ScoringConfig holds the composite score weights and claim tolerances
type ScoringConfig struct {
	MarginWeight      float64 `yaml:"margin_weight"`
	KeywordWeight     float64 `yaml:"keyword_weight"`
	CompetitionWeight float64 `yaml:"competition_weight"`
	RiskWeight        float64 `yaml:"risk_weight"` // Fraction of risk score subtracted
	// WeightTolerance is the relative tolerance for weight claims (0.1 = 10%)
	WeightTolerance float64 `yaml:"weight_tolerance"`
}

// ConcurrencyConfig controls batch classification parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// StoreConfig controls the keyword-keyed report store
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	TTLDays int    `yaml:"ttl_days"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
	// DigestLimit caps how many complaint reviews the enrichment digest includes
	DigestLimit int `yaml:"digest_limit"`
}

// LLMConfig configures the optional review-insight enrichment provider
type LLMConfig struct {
	Provider  string  `yaml:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model     string  `yaml:"model"`
	APIKey    string  `yaml:"-"` // Environment only, never persisted
	BaseURL   string  `yaml:"base_url,omitempty"`
	Timeout   int     `yaml:"timeout"` // Seconds
	MaxTokens int     `yaml:"max_tokens"`
	RateLimit float64 `yaml:"rate_limit"` // Requests per second across batch runs
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Matching:    "substring",
			GuardWindow: 3,
		},
		Scoring: ScoringConfig{
			MarginWeight:      0.40,
			KeywordWeight:     0.35,
			CompetitionWeight: 0.25,
			RiskWeight:        0.30,
			WeightTolerance:   0.10,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Store: StoreConfig{
			Enabled: true,
			Dir:     "",
			TTLDays: 30,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			DigestLimit:   20,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
			RateLimit: 1,
		},
	}
}
