package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hyeonwoos/marketlens/internal/ingest"
	"github.com/hyeonwoos/marketlens/internal/margin"
	"github.com/hyeonwoos/marketlens/internal/model"
	"github.com/hyeonwoos/marketlens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	specPath     string
	reviewsPath  string
	keywordsPath string
	copyPath     string
	copyHTMLPath string

	outJSON string
	outMD   string
	timeout time.Duration
	workers int

	marginPercent   float64
	competitionRate float64
	sellingPrice    float64
	unitCost        float64
	inboundShip     float64
	outboundShip    float64
	feeRate         float64
	adCost          float64

	noStore  bool
	noFooter bool

	lexiconFile string
	matching    string

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full sourcing opportunity analysis",
	Long: `Analyze combines every available signal into one opportunity report:
- Classify customer reviews into complaints, praise and neutral
- Validate marketing copy claims against the product spec
- Compute margin from the cost structure
- Score keyword demand, margin, competition and risk

Example:
  marketlens analyze --spec product.yaml --reviews reviews.xlsx
  marketlens analyze --spec product.yaml --reviews reviews.csv --copy copy.txt --keywords keywords.xlsx
  marketlens analyze --spec product.yaml --price 39900 --unit-cost 12000 --fee-rate 0.11
  marketlens analyze --spec product.yaml --reviews reviews.xlsx --llm --llm-provider openai`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags
	analyzeCmd.Flags().StringVar(&specPath, "spec", "", "product spec YAML file (required)")
	analyzeCmd.Flags().StringVar(&reviewsPath, "reviews", "", "review file (.xlsx or .csv)")
	analyzeCmd.Flags().StringVar(&keywordsPath, "keywords", "", "keyword demand file (.xlsx or .csv)")
	analyzeCmd.Flags().StringVar(&copyPath, "copy", "", "marketing copy text file")
	analyzeCmd.Flags().StringVar(&copyHTMLPath, "copy-html", "", "marketing copy HTML file (product detail page)")
	_ = analyzeCmd.MarkFlagRequired("spec")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&noStore, "no-store", false, "disable the report store")

	// Margin flags: either a precomputed margin or the cost structure
	analyzeCmd.Flags().Float64Var(&marginPercent, "margin", 0, "precomputed margin percentage (skips cost calculation)")
	analyzeCmd.Flags().Float64Var(&sellingPrice, "price", 0, "selling price")
	analyzeCmd.Flags().Float64Var(&unitCost, "unit-cost", 0, "unit purchase cost")
	analyzeCmd.Flags().Float64Var(&inboundShip, "inbound", 0, "inbound shipping cost per unit")
	analyzeCmd.Flags().Float64Var(&outboundShip, "outbound", 0, "outbound shipping cost per unit")
	analyzeCmd.Flags().Float64Var(&feeRate, "fee-rate", 0.11, "marketplace fee rate (0.11 = 11%)")
	analyzeCmd.Flags().Float64Var(&adCost, "ad-cost", 0, "advertising cost per unit")

	analyzeCmd.Flags().Float64Var(&competitionRate, "competition", 0, "competition rate override (products per unit of search volume)")

	// Classification flags
	analyzeCmd.Flags().StringVar(&lexiconFile, "lexicon", "", "custom sentiment lexicon YAML file")
	analyzeCmd.Flags().StringVar(&matching, "matching", "", "keyword matching strategy (substring, token)")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "concurrent classification workers (default from config)")

	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM review insight generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if noStore {
		cfg.Store.Enabled = false
	}
	if lexiconFile != "" {
		cfg.Lexicon.File = lexiconFile
	}
	if matching != "" {
		cfg.Lexicon.Matching = matching
	}
	if workers > 0 {
		cfg.Concurrency.Workers = workers
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
		if err := resolveLLMKey(&cfg.LLM); err != nil {
			return err
		}
	}

	in, err := loadAnalyzeInput(cmd)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", in.Spec.ProductName)
		fmt.Fprintf(os.Stderr, "Reviews: %d\n", len(in.Reviews))
		fmt.Fprintf(os.Stderr, "Keywords: %d\n", len(in.Keywords))
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	rpt, err := p.Analyze(ctx, in)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		if rpt.Reviews != nil {
			fmt.Fprintf(os.Stderr, "✓ Classified %d reviews (%d complaints)\n", rpt.Reviews.TotalReviews, rpt.Reviews.ComplaintCount)
		}
		if rpt.Validation != nil {
			fmt.Fprintf(os.Stderr, "✓ Validated %d claims (%d failed)\n", rpt.Validation.TotalClaims, rpt.Validation.Failed)
		}
		fmt.Fprintf(os.Stderr, "✓ Opportunity score: %.0f/100\n", rpt.Score.TotalScore)
		if rpt.Enrichment != nil {
			fmt.Fprintf(os.Stderr, "✓ Generated review insights using %s/%s\n", rpt.Enrichment.Provider, rpt.Enrichment.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(rpt, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// loadAnalyzeInput reads every input file named by flags
func loadAnalyzeInput(cmd *cobra.Command) (pipeline.AnalyzeInput, error) {
	var in pipeline.AnalyzeInput

	spec, err := ingest.LoadSpec(specPath)
	if err != nil {
		return in, err
	}
	in.Spec = spec

	if reviewsPath != "" {
		reviews, err := ingest.LoadReviews(reviewsPath)
		if err != nil {
			return in, err
		}
		in.Reviews = reviews
	}

	if keywordsPath != "" {
		keywords, err := ingest.LoadKeywords(keywordsPath)
		if err != nil {
			return in, err
		}
		in.Keywords = keywords
	}

	if copyPath != "" {
		data, err := os.ReadFile(copyPath)
		if err != nil {
			return in, fmt.Errorf("read copy file: %w", err)
		}
		in.CopyText = string(data)
	}
	if copyHTMLPath != "" {
		data, err := os.ReadFile(copyHTMLPath)
		if err != nil {
			return in, fmt.Errorf("read copy HTML file: %w", err)
		}
		in.CopyHTML = string(data)
	}

	if sellingPrice > 0 {
		in.Cost = &margin.CostInput{
			SellingPrice:       sellingPrice,
			UnitCost:           unitCost,
			InboundShipping:    inboundShip,
			OutboundShipping:   outboundShip,
			MarketplaceFeeRate: feeRate,
			AdCostPerUnit:      adCost,
		}
	} else if cmd.Flags().Changed("margin") {
		m := marginPercent
		in.MarginPercent = &m
	}

	if cmd.Flags().Changed("competition") {
		c := competitionRate
		in.CompetitionRate = &c
	}

	return in, nil
}

// resolveLLMKey fills the API key from the provider's environment variable
func resolveLLMKey(cfg *model.LLMConfig) error {
	switch cfg.Provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
	}
	return nil
}
