package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdavydov/leaselint/internal/render"
	"github.com/pdavydov/leaselint/internal/worker"
)

var (
	batchJurisdiction string
	batchOutDir       string
	batchConcurrency  int
	batchTimeout      time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Assess multiple contracts concurrently",
	Long: `Batch reads contract file paths from a manifest (one per line,
# comments allowed) and assesses them concurrently with a bounded
worker pool. Each contract gets its own JSON report in the output
directory.

Example:
  leaselint batch contracts.txt --jurisdiction NSW --concurrency 8 --out reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchJurisdiction, "jurisdiction", "", "jurisdiction code (default from config, NSW)")
	batchCmd.Flags().StringVar(&batchOutDir, "out", "reports", "output directory for per-contract JSON reports")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "concurrent contracts (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()

	jurisdiction := batchJurisdiction
	if jurisdiction == "" {
		jurisdiction = cfg.Jurisdiction
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency.BatchWorkers
	}

	consultant, err := buildConsultant(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	evaluator := newFileEvaluator(cfg, consultant, jurisdiction)
	processor := worker.NewBatchProcessor(evaluator, concurrency)

	results, err := processor.ProcessManifest(ctx, manifest)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(batchOutDir, reportName(result.Path))
		if err := renderer.RenderJSON(result.Report, outPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}

		fmt.Printf("✓ %s: %s (avg %.1f) -> %s\n",
			result.Path, result.Report.OverallVerdict, result.Report.AverageScore, outPath)
	}

	fmt.Printf("\nProcessed %d contracts, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d contracts failed", failed, len(results))
	}
	return nil
}

// reportName derives the report file name from the contract path
func reportName(contractPath string) string {
	base := filepath.Base(contractPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".report.json"
}
