package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pdavydov/leaselint/internal/model"
)

// Renderer writes contract reports as JSON, Markdown, and terminal summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to the given path
func (r *Renderer) RenderJSON(report *model.ContractReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as Markdown to the given path
func (r *Renderer) RenderMarkdown(report *model.ContractReport, path string) error {
	var b strings.Builder

	b.WriteString("# Tenancy Contract Assessment\n\n")
	fmt.Fprintf(&b, "- **Jurisdiction**: %s\n", report.Jurisdiction)
	fmt.Fprintf(&b, "- **Overall verdict**: %s\n", report.OverallVerdict)
	fmt.Fprintf(&b, "- **Average score**: %.1f/100\n", report.AverageScore)
	fmt.Fprintf(&b, "- **Clauses evaluated**: %d (%d illegal, %d potentially unfair)\n\n",
		report.ClausesEvaluated, report.IllegalCount, report.PotentiallyUnfairCount)

	if len(report.Results) > 0 {
		b.WriteString("## Clauses\n\n")
		b.WriteString("| Clause | Verdict | Score |\n")
		b.WriteString("|--------|---------|-------|\n")
		for _, res := range report.Results {
			fmt.Fprintf(&b, "| %s | %s | %.1f |\n", res.ClauseID, res.Verdict, res.Score)
		}
		b.WriteString("\n")

		for _, res := range report.Results {
			if len(res.Reasons) == 0 && res.OracleOpinion == nil {
				continue
			}
			fmt.Fprintf(&b, "### %s - %s\n\n", res.ClauseID, res.Verdict)
			for _, reason := range res.Reasons {
				fmt.Fprintf(&b, "- %s\n", reason)
			}
			if op := res.OracleOpinion; op != nil && op.RecommendedAction != "" {
				fmt.Fprintf(&b, "- Recommended action: %s\n", op.RecommendedAction)
			}
			b.WriteString("\n")
		}
	}

	if report.Summary != "" {
		b.WriteString("## Summary\n\n```\n")
		b.WriteString(report.Summary)
		b.WriteString("\n```\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\nGenerated by leaselint on %s. Not legal advice.\n",
			time.Now().UTC().Format(time.RFC3339))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short report summary to w
func (r *Renderer) RenderSummary(report *model.ContractReport, w io.Writer) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════")
	fmt.Fprintf(w, "  Verdict: %s\n", report.OverallVerdict)
	fmt.Fprintf(w, "  Average score: %.1f/100\n", report.AverageScore)
	fmt.Fprintf(w, "  Clauses: %d evaluated, %d illegal, %d potentially unfair\n",
		report.ClausesEvaluated, report.IllegalCount, report.PotentiallyUnfairCount)
	fmt.Fprintln(w, "═══════════════════════════════════════════════")
}
