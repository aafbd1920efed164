package assess

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pdavydov/leaselint/internal/model"
	"github.com/pdavydov/leaselint/internal/rules"
)

// Aggregator runs the assessor over every clause of a contract and reduces
// the per-clause results into an overall report. Clause assessments are
// independent, so they may run in parallel without changing outcomes.
type Aggregator struct {
	assessor *Assessor
	registry *rules.Registry
	workers  int
}

// NewAggregator creates an aggregator. workers bounds per-contract clause
// parallelism; values below 2 evaluate sequentially.
func NewAggregator(assessor *Assessor, registry *rules.Registry, workers int) *Aggregator {
	if workers <= 0 {
		workers = 1
	}
	return &Aggregator{
		assessor: assessor,
		registry: registry,
		workers:  workers,
	}
}

// Evaluate assesses every clause independently and reduces the results.
// An empty clause list is vacuously legal, never an error. Cancelling ctx
// stops further oracle consultation; started assessments still complete,
// so the report stays internally consistent.
func (g *Aggregator) Evaluate(ctx context.Context, clauses []model.Clause, jurisdiction string) model.ContractReport {
	report := model.ContractReport{
		Jurisdiction:     jurisdiction,
		ClausesEvaluated: len(clauses),
		Results:          []model.AssessmentResult{},
	}

	if len(clauses) == 0 {
		report.AverageScore = 100
		report.OverallVerdict = model.OverallLegal
		report.Summary = "No clauses detected in the contract."
		return report
	}

	set := g.registry.Lookup(jurisdiction)
	results := make([]model.AssessmentResult, len(clauses))

	if g.workers > 1 {
		var wg sync.WaitGroup
		semaphore := make(chan struct{}, g.workers)

		for i := range clauses {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()
				results[idx] = g.assessor.Assess(ctx, &clauses[idx], set, jurisdiction)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range clauses {
			results[i] = g.assessor.Assess(ctx, &clauses[i], set, jurisdiction)
		}
	}

	var total float64
	for _, r := range results {
		total += r.Score
		switch r.Verdict {
		case model.VerdictIllegal:
			report.IllegalCount++
		case model.VerdictPotentiallyUnfair:
			report.PotentiallyUnfairCount++
		}
	}

	report.Results = results
	report.AverageScore = total / float64(len(results))

	// Illegal always dominates, regardless of the average score
	switch {
	case report.IllegalCount > 0:
		report.OverallVerdict = model.OverallIllegal
	case report.PotentiallyUnfairCount > 0 || report.AverageScore < 70:
		report.OverallVerdict = model.OverallUnfair
	default:
		report.OverallVerdict = model.OverallLegal
	}

	report.Summary = buildSummary(clauses, results)

	return report
}

// buildSummary renders a human-readable review of the assessment results
func buildSummary(clauses []model.Clause, results []model.AssessmentResult) string {
	var illegal, unfair, manual []int
	for i, r := range results {
		switch r.Verdict {
		case model.VerdictIllegal:
			illegal = append(illegal, i)
		case model.VerdictPotentiallyUnfair:
			unfair = append(unfair, i)
		case model.VerdictNeedsManualReview:
			manual = append(manual, i)
		}
	}

	lines := []string{"Contract Review Report:"}

	if len(illegal) == 0 && len(unfair) == 0 && len(manual) == 0 {
		lines = append(lines, "This contract appears generally fair with no illegal, high-risk, or questionable clauses.")
		return strings.Join(lines, "\n")
	}

	if len(illegal) > 0 {
		lines = append(lines, "Illegal or prohibited clauses found:")
		for _, i := range illegal {
			lines = append(lines, fmt.Sprintf("- Clause %s is ILLEGAL: %s (Reason: %s)",
				clauses[i].ID, snippet(clauses[i].Text), strings.Join(results[i].Reasons, ", ")))
		}
	}

	if len(unfair) > 0 {
		lines = append(lines, "Potentially unfair clauses (may be imbalanced):")
		for _, i := range unfair {
			lines = append(lines, fmt.Sprintf("- Clause %s: %s (score %.0f)",
				clauses[i].ID, snippet(clauses[i].Text), results[i].Score))
		}
	}

	if len(manual) > 0 {
		lines = append(lines, "Clauses needing manual review:")
		for _, i := range manual {
			lines = append(lines, fmt.Sprintf("- Clause %s: %s", clauses[i].ID, snippet(clauses[i].Text)))
		}
	}

	return strings.Join(lines, "\n")
}

func snippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= 120 {
		return text
	}
	return text[:117] + "..."
}
