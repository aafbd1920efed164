package model

// Verdict is the categorical outcome of a clause assessment
type Verdict string

const (
	VerdictLegal             Verdict = "Legal"
	VerdictIllegal           Verdict = "Illegal"
	VerdictPotentiallyUnfair Verdict = "Potentially Unfair"
	VerdictNeedsManualReview Verdict = "Needs Manual Review"
)

// Opinion is a structured response from the reasoning oracle
type Opinion struct {
	Verdict           string `json:"verdict"`
	Explanation       string `json:"explanation"`
	RecommendedAction string `json:"recommended_action,omitempty"`
}

// AssessmentResult is the per-clause output of the assessor.
// Score starts at 100 and is only ever decreased; Illegal is monotonic.
type AssessmentResult struct {
	ClauseID      string   `json:"clause_id,omitempty"`
	Verdict       Verdict  `json:"verdict"`
	Score         float64  `json:"score"`   // Clamped to [0, 100]
	Illegal       bool     `json:"illegal"` // Set by statutory rule violations and oracle illegality findings
	Reasons       []string `json:"reasons"` // One entry per triggering condition, append-only
	OracleOpinion *Opinion `json:"oracle_opinion,omitempty"`
}

// Contract-level verdicts produced by the aggregator
const (
	OverallLegal   = "Legal"
	OverallIllegal = "Contains Illegal Clauses"
	OverallUnfair  = "Potentially Unfair - Review Recommended"
)

// ContractReport aggregates assessment results across a whole contract
type ContractReport struct {
	Jurisdiction           string             `json:"jurisdiction"`
	OverallVerdict         string             `json:"overall_verdict"`
	AverageScore           float64            `json:"average_score"`
	IllegalCount           int                `json:"illegal_count"`
	PotentiallyUnfairCount int                `json:"potentially_unfair_count"`
	ClausesEvaluated       int                `json:"clauses_evaluated"`
	Results                []AssessmentResult `json:"results"`
	Summary                string             `json:"summary,omitempty"` // Human-readable review summary
}
