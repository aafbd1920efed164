package assess

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pdavydov/leaselint/internal/extract"
	"github.com/pdavydov/leaselint/internal/model"
	"github.com/pdavydov/leaselint/internal/oracle"
	"github.com/pdavydov/leaselint/internal/rules"
)

// Deductions applied by the deterministic and heuristic checks
const (
	bondDeduction          = 40
	bondAdvisoryDeduction  = 5
	breakLeaseDeduction    = 35
	rentIncreaseDeduction  = 30
	entryNoticeDeduction   = 10
	penaltyDeduction       = 20
	absoluteDeduction      = 15
	oracleIllegalDeduction = 30
	oracleUnfairDeduction  = 20
	oracleManualDeduction  = 10
)

// fairnessReasonPrefix marks reasons produced by fairness pattern matches.
// The verdict decision treats any such reason as seriously as a low score.
const fairnessReasonPrefix = "Potentially unfair: "

// Assessor combines statutory rule checks, fairness heuristics, and optional
// oracle reasoning into a per-clause verdict. It holds no mutable state;
// every assessment is a pure function of (clause, ruleset, oracle response).
type Assessor struct {
	consultant oracle.Consultant // nil when no oracle is configured
}

// NewAssessor creates an assessor. Pass nil to run without an oracle.
func NewAssessor(consultant oracle.Consultant) *Assessor {
	return &Assessor{consultant: consultant}
}

// Assess evaluates a single clause against a jurisdiction's rules.
// It never fails: missing fields are treated as unknown, never as zero,
// and the only external call (the oracle) is fully contained.
//
// The clause is mutated at most once: when it arrives with no numeric
// values, extraction results are attached. Pre-supplied numerics are never
// overwritten or merged with extracted ones.
func (a *Assessor) Assess(ctx context.Context, clause *model.Clause, set rules.RuleSet, jurisdiction string) model.AssessmentResult {
	result := model.AssessmentResult{
		ClauseID: clause.ID,
		Score:    100,
		Reasons:  []string{},
	}

	category := clause.Category.Normalize()

	// 1. Numeric resolution: gap-fill only, all-or-nothing
	if len(clause.NumericValues) == 0 {
		if extracted := extract.Numbers(clause.Text); len(extracted) > 0 {
			clause.NumericValues = extracted
		}
	}
	nums := clause.NumericValues

	// 2. Category-specific statutory checks
	switch category {
	case model.CategoryBond:
		a.checkBond(clause, nums, set, jurisdiction, &result)
	case model.CategoryBreakLeaseFee:
		a.checkBreakLeaseFee(clause, nums, set, jurisdiction, &result)
	case model.CategoryRentIncrease:
		a.checkRentIncrease(nums, set, jurisdiction, &result)
	case model.CategoryPenalty:
		a.checkPenalty(nums, &result)
	}

	// The entry check triggers on category OR a text mention of "entry",
	// so a clause filed under another category still gets it.
	if category == model.CategoryEntry || strings.Contains(strings.ToLower(clause.Text), "entry") {
		a.checkEntryNotice(nums, set, jurisdiction, &result)
	}

	// 3. Fairness pattern matching: every match fires independently
	for _, p := range rules.FairnessPatterns {
		if p.Pattern.MatchString(clause.Text) {
			result.Reasons = append(result.Reasons, fairnessReasonPrefix+p.Reason)
			result.Score -= float64(p.Severity * 2)
		}
	}

	// 4. Absolute-language flag, independent of the specific patterns above
	if rules.HasAbsoluteLanguage(clause.Text) {
		result.Reasons = append(result.Reasons, "Clause uses absolute language (e.g., 'no refund', 'without notice', 'at any time')")
		result.Score -= absoluteDeduction
	}

	// 5. Oracle consultation. Skipped entirely when no oracle is configured
	// or the evaluation has been cancelled; a failed call degrades inside
	// the adapter and lands on the manual-review path.
	if a.consultant != nil && a.consultant.Available() && ctx.Err() == nil {
		if opinion := a.consultant.ReasonAbout(ctx, *clause, jurisdiction); opinion != nil {
			result.OracleOpinion = opinion
			applyOpinion(opinion, &result)
		}
	}

	// 6. Score clamp
	result.Score = math.Max(0, math.Min(100, result.Score))

	// 7. Verdict decision, first match wins: statutory illegality dominates;
	// an explicit fairness hit is as serious as a low aggregate score; a
	// merely imperfect score with advisory reasons earns manual review.
	switch {
	case result.Illegal:
		result.Verdict = model.VerdictIllegal
	case result.Score < 60 || hasFairnessReason(result.Reasons):
		result.Verdict = model.VerdictPotentiallyUnfair
	case result.Score < 80 && len(result.Reasons) > 0:
		result.Verdict = model.VerdictNeedsManualReview
	default:
		result.Verdict = model.VerdictLegal
	}

	return result
}

// checkBond validates bond size. The branches are deliberately exclusive: a
// week figure takes precedence, then a dollar figure when the weekly rent is
// known. A dollar figure without weekly rent earns only an advisory penalty;
// insufficient information must never produce a false violation.
func (a *Assessor) checkBond(clause *model.Clause, nums map[model.Quantity]float64, set rules.RuleSet, jurisdiction string, result *model.AssessmentResult) {
	maxWeeks := set.BondMaxWeeks()

	if weeks, ok := nums[model.QuantityWeeks]; ok {
		if weeks > maxWeeks {
			result.Illegal = true
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Bond of %g weeks exceeds %s maximum of %g weeks", weeks, jurisdiction, maxWeeks))
			result.Score -= bondDeduction
		}
	} else if amount, ok := nums[model.QuantityAmount]; ok && clause.WeeklyRent != nil {
		maxAmount := *clause.WeeklyRent * maxWeeks
		if amount > maxAmount {
			result.Illegal = true
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Bond amount $%.2f exceeds maximum of $%.2f (%g weeks x $%.2f)",
					amount, maxAmount, maxWeeks, *clause.WeeklyRent))
			result.Score -= bondDeduction
		}
	} else if _, ok := nums[model.QuantityAmount]; ok && clause.WeeklyRent == nil {
		result.Reasons = append(result.Reasons, "Bond amount present but weekly rent not provided - cannot fully validate")
		result.Score -= bondAdvisoryDeduction
	}
}

// checkBreakLeaseFee validates the break-lease fee. Unlike the bond check
// the week and dollar sub-checks fire independently, so a clause stating
// both figures can be penalized twice.
func (a *Assessor) checkBreakLeaseFee(clause *model.Clause, nums map[model.Quantity]float64, set rules.RuleSet, jurisdiction string, result *model.AssessmentResult) {
	maxWeeks := set.BreakLeaseMaxWeeks()

	if weeks, ok := nums[model.QuantityWeeks]; ok && weeks > maxWeeks {
		result.Illegal = true
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Break-lease fee of %g weeks exceeds %s maximum of %g weeks", weeks, jurisdiction, maxWeeks))
		result.Score -= breakLeaseDeduction
	}
	if amount, ok := nums[model.QuantityAmount]; ok && clause.WeeklyRent != nil {
		maxAmount := *clause.WeeklyRent * maxWeeks
		if amount > maxAmount {
			result.Illegal = true
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Break-lease fee $%.2f exceeds maximum of $%.2f (%g weeks x $%.2f)",
					amount, maxAmount, maxWeeks, *clause.WeeklyRent))
			result.Score -= breakLeaseDeduction
		}
	}
}

// checkRentIncrease validates notice period and increase frequency; the two
// sub-checks are independent and additive.
func (a *Assessor) checkRentIncrease(nums map[model.Quantity]float64, set rules.RuleSet, jurisdiction string, result *model.AssessmentResult) {
	minNotice := set.MinNoticeDays()
	maxFreq := set.MaxFrequencyMonths()

	if days, ok := nums[model.QuantityDays]; ok && days < minNotice {
		result.Illegal = true
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Rent increase notice period of %g days is less than %s minimum of %g days", days, jurisdiction, minNotice))
		result.Score -= rentIncreaseDeduction
	}
	if months, ok := nums[model.QuantityMonths]; ok && months < maxFreq {
		result.Illegal = true
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Rent increases cannot occur more frequently than every %g months (clause mentions %g months)", maxFreq, months))
		result.Score -= rentIncreaseDeduction
	}
}

// checkEntryNotice flags short routine-inspection notice. Entry-notice
// shortfall is a lesser compliance gap, not an outright violation, so this
// check never sets illegal.
func (a *Assessor) checkEntryNotice(nums map[model.Quantity]float64, set rules.RuleSet, jurisdiction string, result *model.AssessmentResult) {
	minDays := set.RoutineInspectionDays()

	if days, ok := nums[model.QuantityDays]; ok && days < minDays {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Entry notice of %g days is below the %s routine inspection minimum of %g days", days, jurisdiction, minDays))
		result.Score -= entryNoticeDeduction
	}
}

// checkPenalty flags oversized penalties. This is a fairness heuristic, not
// a statutory rule, so illegal stays false.
func (a *Assessor) checkPenalty(nums map[model.Quantity]float64, result *model.AssessmentResult) {
	if weeks, ok := nums[model.QuantityWeeks]; ok && weeks > rules.PenaltyWeeksUpperBound {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Penalty of %g weeks exceeds the reasonable upper bound of %d weeks", weeks, rules.PenaltyWeeksUpperBound))
		result.Score -= penaltyDeduction
	}
}

// applyOpinion folds an oracle opinion into the result. Verdict text is
// interpreted case-insensitively by substring containment, in priority
// order: illegal, then unfair, then manual review.
func applyOpinion(opinion *model.Opinion, result *model.AssessmentResult) {
	verdict := strings.ToLower(opinion.Verdict)

	switch {
	case strings.Contains(verdict, "illegal"):
		result.Illegal = true
		result.Score -= oracleIllegalDeduction
		result.Reasons = append(result.Reasons, "Oracle assessment: "+opinion.Explanation)
	case strings.Contains(verdict, "unfair"):
		result.Score -= oracleUnfairDeduction
		result.Reasons = append(result.Reasons, "Oracle assessment: "+opinion.Explanation)
	case strings.Contains(verdict, "manual"):
		result.Score -= oracleManualDeduction
		result.Reasons = append(result.Reasons, "Oracle suggests manual review: "+opinion.Explanation)
	}
}

func hasFairnessReason(reasons []string) bool {
	for _, r := range reasons {
		if strings.HasPrefix(r, fairnessReasonPrefix) {
			return true
		}
	}
	return false
}
