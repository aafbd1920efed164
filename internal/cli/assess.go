package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	assessJurisdiction string
	assessOutJSON      string
	assessOutMD        string
	assessTimeout      time.Duration
	assessNoCache      bool
	assessNoFooter     bool
	oracleEnabled      bool
	oracleProvider     string
	oracleModel        string
)

// assessCmd represents the assess command
var assessCmd = &cobra.Command{
	Use:   "assess <contract-file>",
	Short: "Assess a tenancy contract and generate a compliance report",
	Long: `Assess evaluates every clause of a tenancy contract against the
jurisdiction's statutory limits and the built-in fairness heuristics.

Input can be raw contract text, an HTML export, or a JSON file of
pre-extracted clauses.

Example:
  leaselint assess lease.txt --jurisdiction NSW
  leaselint assess clauses.json --json report.json --md report.md
  leaselint assess lease.txt --oracle --oracle-provider openai --oracle-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringVar(&assessJurisdiction, "jurisdiction", "", "jurisdiction code (default from config, NSW)")
	assessCmd.Flags().StringVar(&assessOutJSON, "json", "report.json", "output JSON path")
	assessCmd.Flags().StringVar(&assessOutMD, "md", "", "output Markdown path (optional)")
	assessCmd.Flags().DurationVar(&assessTimeout, "timeout", 2*time.Minute, "overall assessment timeout (increase for contracts with many clauses and a slow oracle)")
	assessCmd.Flags().BoolVar(&assessNoCache, "no-cache", false, "disable oracle response cache")
	assessCmd.Flags().BoolVar(&assessNoFooter, "no-footer", false, "disable footer in Markdown reports")

	assessCmd.Flags().BoolVar(&oracleEnabled, "oracle", false, "enable oracle consultation per clause")
	assessCmd.Flags().StringVar(&oracleProvider, "oracle-provider", "openai", "oracle provider (openai, anthropic, ollama, mock)")
	assessCmd.Flags().StringVar(&oracleModel, "oracle-model", "", "oracle model name")
}

func runAssess(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), assessTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Output.IncludeFooter = !assessNoFooter
	if assessNoCache {
		cfg.Cache.Enabled = false
	}
	if oracleEnabled {
		cfg.Oracle.Provider = oracleProvider
		if oracleModel != "" {
			cfg.Oracle.Model = oracleModel
		}
	}

	jurisdiction := assessJurisdiction
	if jurisdiction == "" {
		jurisdiction = cfg.Jurisdiction
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Assessing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Jurisdiction: %s\n", jurisdiction)
		fmt.Fprintf(os.Stderr, "Oracle: %s\n", cfg.Oracle.Provider)
		fmt.Fprintln(os.Stderr)
	}

	consultant, err := buildConsultant(cfg)
	if err != nil {
		return err
	}

	evaluator := newFileEvaluator(cfg, consultant, jurisdiction)
	report, err := evaluator.EvaluateFile(ctx, path)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluated %d clauses\n", report.ClausesEvaluated)
		fmt.Fprintf(os.Stderr, "Illegal: %d, potentially unfair: %d\n", report.IllegalCount, report.PotentiallyUnfairCount)
		fmt.Fprintln(os.Stderr)
	}

	return renderOutputs(report, assessOutJSON, assessOutMD, cfg.Output.IncludeFooter)
}
