package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hyeonwoos/marketlens/internal/ingest"
	"github.com/hyeonwoos/marketlens/internal/pipeline"
	"github.com/hyeonwoos/marketlens/internal/review"
	"github.com/spf13/cobra"
)

var (
	reviewsOutJSON string
	reviewsDigest  bool
	reviewsWorkers int
)

// reviewsCmd represents the reviews command
var reviewsCmd = &cobra.Command{
	Use:   "reviews <file>",
	Short: "Classify a review file into complaints, praise and neutral",
	Long: `Reviews classifies every review in an .xlsx or .csv file without
running the rest of the analysis. Useful for inspecting what the
complaint filter would feed into a full analyze run.

Example:
  marketlens reviews reviews.xlsx
  marketlens reviews reviews.csv --json filtered.json
  marketlens reviews reviews.xlsx --digest`,
	Args: cobra.ExactArgs(1),
	RunE: runReviews,
}

func init() {
	rootCmd.AddCommand(reviewsCmd)

	reviewsCmd.Flags().StringVar(&reviewsOutJSON, "json", "", "write the filter result as JSON to this path")
	reviewsCmd.Flags().BoolVar(&reviewsDigest, "digest", false, "print the complaint digest block")
	reviewsCmd.Flags().IntVar(&reviewsWorkers, "workers", 0, "concurrent classification workers (default from config)")
}

func runReviews(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := loadConfig()
	if reviewsWorkers > 0 {
		cfg.Concurrency.Workers = reviewsWorkers
	}
	cfg.Store.Enabled = false
	cfg.LLM.Provider = ""

	records, err := ingest.LoadReviews(args[0])
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	result := p.FilterReviews(ctx, records)

	fmt.Printf("전체 %d건: 불만 %d / 긍정 %d / 중립 %d\n",
		result.TotalReviews, result.ComplaintCount, result.PositiveCount, result.NeutralCount)
	for _, category := range review.SortedCategories(result.CategoryCounts) {
		fmt.Printf("  %s: %d건\n", category, result.CategoryCounts[category])
	}

	if reviewsDigest {
		fmt.Println()
		fmt.Println(review.Digest(result, cfg.Output.DigestLimit))
	}

	if reviewsOutJSON != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := os.WriteFile(reviewsOutJSON, data, 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", reviewsOutJSON)
		}
	}

	return nil
}
