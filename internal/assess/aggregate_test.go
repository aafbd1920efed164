package assess

import (
	"context"
	"strings"
	"testing"

	"github.com/pdavydov/leaselint/internal/model"
	"github.com/pdavydov/leaselint/internal/rules"
)

func TestAggregator_Evaluate_EmptyContract(t *testing.T) {
	agg := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 1)

	report := agg.Evaluate(context.Background(), []model.Clause{}, "NSW")

	if report.AverageScore != 100 {
		t.Errorf("Expected average 100 for empty contract, got %g", report.AverageScore)
	}
	if report.OverallVerdict != model.OverallLegal {
		t.Errorf("Expected overall Legal, got %s", report.OverallVerdict)
	}
	if report.IllegalCount != 0 || report.ClausesEvaluated != 0 {
		t.Errorf("Expected zero counts, got %+v", report)
	}
	if report.Summary != "No clauses detected in the contract." {
		t.Errorf("Unexpected summary: %q", report.Summary)
	}
}

func TestAggregator_Evaluate_IllegalDominatesHighAverage(t *testing.T) {
	agg := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 1)

	// One illegal clause among many clean ones keeps the average above 70
	// but the overall verdict must still be Contains Illegal Clauses.
	clauses := []model.Clause{
		{ID: "c1", Category: model.CategoryBond, Text: "Bond of 6 weeks.",
			NumericValues: map[model.Quantity]float64{model.QuantityWeeks: 6}},
	}
	for i := 0; i < 9; i++ {
		clauses = append(clauses, model.Clause{
			ID:       "ok",
			Category: model.CategoryOther,
			Text:     "The tenant shall keep the premises clean.",
		})
	}

	report := agg.Evaluate(context.Background(), clauses, "NSW")

	if report.AverageScore < 70 {
		t.Fatalf("Test setup wrong: expected average >= 70, got %g", report.AverageScore)
	}
	if report.OverallVerdict != model.OverallIllegal {
		t.Errorf("Expected Contains Illegal Clauses, got %s", report.OverallVerdict)
	}
	if report.IllegalCount != 1 {
		t.Errorf("Expected illegal count 1, got %d", report.IllegalCount)
	}
	if !strings.Contains(report.Summary, "ILLEGAL") {
		t.Errorf("Expected the illegal clause listed in the summary, got %q", report.Summary)
	}
}

func TestAggregator_Evaluate_UnfairClauseFlagsContract(t *testing.T) {
	agg := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 1)

	clauses := []model.Clause{
		{ID: "c1", Category: model.CategoryOther, Text: "The landlord claims unrestricted access to the property."},
		{ID: "c2", Category: model.CategoryOther, Text: "Rent is due on the first of each month."},
	}

	report := agg.Evaluate(context.Background(), clauses, "NSW")

	if report.OverallVerdict != model.OverallUnfair {
		t.Errorf("Expected overall Potentially Unfair, got %s", report.OverallVerdict)
	}
	if report.PotentiallyUnfairCount != 1 {
		t.Errorf("Expected 1 potentially unfair clause, got %d", report.PotentiallyUnfairCount)
	}
}

func TestAggregator_Evaluate_CleanContract(t *testing.T) {
	agg := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 1)

	clauses := []model.Clause{
		{ID: "c1", Category: model.CategoryBond, Text: "Bond of 4 weeks.",
			NumericValues: map[model.Quantity]float64{model.QuantityWeeks: 4}},
		{ID: "c2", Category: model.CategoryRentPayment, Text: "Rent is due weekly."},
	}

	report := agg.Evaluate(context.Background(), clauses, "NSW")

	if report.OverallVerdict != model.OverallLegal {
		t.Errorf("Expected overall Legal, got %s", report.OverallVerdict)
	}
	if report.AverageScore != 100 {
		t.Errorf("Expected average 100, got %g", report.AverageScore)
	}
	if !strings.Contains(report.Summary, "generally fair") {
		t.Errorf("Expected a clean-contract summary, got %q", report.Summary)
	}
}

func TestAggregator_Evaluate_ParallelMatchesSequential(t *testing.T) {
	clauses := func() []model.Clause {
		return []model.Clause{
			{ID: "c1", Category: model.CategoryBond, Text: "Bond of 6 weeks.",
				NumericValues: map[model.Quantity]float64{model.QuantityWeeks: 6}},
			{ID: "c2", Category: model.CategoryOther, Text: "The landlord may terminate at any time."},
			{ID: "c3", Category: model.CategoryEntry, Text: "Entry with 3 days notice.",
				NumericValues: map[model.Quantity]float64{model.QuantityDays: 3}},
			{ID: "c4", Category: model.CategoryOther, Text: "The tenant shall water the garden."},
		}
	}

	seq := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 1).
		Evaluate(context.Background(), clauses(), "NSW")
	par := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 4).
		Evaluate(context.Background(), clauses(), "NSW")

	if seq.OverallVerdict != par.OverallVerdict {
		t.Errorf("Verdict differs: %s vs %s", seq.OverallVerdict, par.OverallVerdict)
	}
	if seq.AverageScore != par.AverageScore {
		t.Errorf("Average differs: %g vs %g", seq.AverageScore, par.AverageScore)
	}
	for i := range seq.Results {
		if seq.Results[i].Score != par.Results[i].Score {
			t.Errorf("Clause %d score differs: %g vs %g", i, seq.Results[i].Score, par.Results[i].Score)
		}
		if seq.Results[i].Verdict != par.Results[i].Verdict {
			t.Errorf("Clause %d verdict differs: %s vs %s", i, seq.Results[i].Verdict, par.Results[i].Verdict)
		}
	}
}

func TestAggregator_Evaluate_ResultsPreserveClauseOrder(t *testing.T) {
	agg := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 8)

	var clauses []model.Clause
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, id := range ids {
		clauses = append(clauses, model.Clause{
			ID:       id,
			Category: model.CategoryOther,
			Text:     "Clause " + id,
		})
	}

	report := agg.Evaluate(context.Background(), clauses, "NSW")

	if len(report.Results) != len(ids) {
		t.Fatalf("Expected %d results, got %d", len(ids), len(report.Results))
	}
	for i, id := range ids {
		if report.Results[i].ClauseID != id {
			t.Errorf("Result %d: expected clause %s, got %s", i, id, report.Results[i].ClauseID)
		}
	}
}

func TestAggregator_Evaluate_LowAverageWithoutUnfairClauses(t *testing.T) {
	agg := NewAggregator(NewAssessor(nil), rules.NewRegistry(), 1)

	// Manual-review clauses score 65 each: no unfair verdicts, but the
	// average below 70 still flags the contract. Use an oversized penalty
	// plus absolute language on every clause.
	var clauses []model.Clause
	for i := 0; i < 3; i++ {
		clauses = append(clauses, model.Clause{
			ID:            "c",
			Category:      model.CategoryPenalty,
			Text:          "A fee of 8 weeks rent applies and may be charged at any time.",
			NumericValues: map[model.Quantity]float64{model.QuantityWeeks: 8},
		})
	}

	report := agg.Evaluate(context.Background(), clauses, "NSW")

	if report.PotentiallyUnfairCount != 0 {
		t.Fatalf("Test setup wrong: expected no unfair verdicts, got %d", report.PotentiallyUnfairCount)
	}
	if report.AverageScore >= 70 {
		t.Fatalf("Test setup wrong: expected average < 70, got %g", report.AverageScore)
	}
	if report.OverallVerdict != model.OverallUnfair {
		t.Errorf("Expected overall Potentially Unfair on a low average, got %s", report.OverallVerdict)
	}
}
