package cli

import (
	"fmt"
	"os"

	"github.com/hyeonwoos/marketlens/internal/claims"
	"github.com/hyeonwoos/marketlens/internal/ingest"
	"github.com/hyeonwoos/marketlens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	claimsSpecPath string
	claimsCopyPath string
	claimsHTMLPath string
	claimsOutMD    string
)

// claimsCmd represents the claims command
var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Validate marketing copy claims against the product spec",
	Long: `Claims extracts verifiable claims (weight, load capacity,
superlatives, competitor comparisons) from marketing copy and checks
each against the product's actual specification.

Example:
  marketlens claims --spec product.yaml --copy copy.txt
  marketlens claims --spec product.yaml --copy-html detail.html --md claims.md`,
	RunE: runClaims,
}

func init() {
	rootCmd.AddCommand(claimsCmd)

	claimsCmd.Flags().StringVar(&claimsSpecPath, "spec", "", "product spec YAML file (required)")
	claimsCmd.Flags().StringVar(&claimsCopyPath, "copy", "", "marketing copy text file")
	claimsCmd.Flags().StringVar(&claimsHTMLPath, "copy-html", "", "marketing copy HTML file")
	claimsCmd.Flags().StringVar(&claimsOutMD, "md", "", "write the validation report as Markdown to this path")
	_ = claimsCmd.MarkFlagRequired("spec")
}

func runClaims(cmd *cobra.Command, args []string) error {
	if claimsCopyPath == "" && claimsHTMLPath == "" {
		return fmt.Errorf("one of --copy or --copy-html is required")
	}

	spec, err := ingest.LoadSpec(claimsSpecPath)
	if err != nil {
		return err
	}

	var copyText, copyHTML string
	if claimsCopyPath != "" {
		data, err := os.ReadFile(claimsCopyPath)
		if err != nil {
			return fmt.Errorf("read copy file: %w", err)
		}
		copyText = string(data)
	}
	if claimsHTMLPath != "" {
		data, err := os.ReadFile(claimsHTMLPath)
		if err != nil {
			return fmt.Errorf("read copy HTML file: %w", err)
		}
		copyHTML = string(data)
	}

	cfg := loadConfig()
	cfg.Store.Enabled = false
	cfg.LLM.Provider = ""

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	result, err := p.ValidateCopy(copyText, copyHTML, spec)
	if err != nil {
		return fmt.Errorf("validate copy: %w", err)
	}

	rendered := claims.RenderReport(spec.ProductName, result)

	if claimsOutMD != "" {
		if err := os.WriteFile(claimsOutMD, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", claimsOutMD)
		}
	} else {
		fmt.Println(rendered)
	}

	fmt.Fprintf(os.Stderr, "주장 %d건: 통과 %d / 실패 %d / 경고 %d / 미검증 %d (위험도: %s)\n",
		result.TotalClaims, result.Passed, result.Failed, result.Warnings, result.Unverified, result.RiskLevel)

	return nil
}
