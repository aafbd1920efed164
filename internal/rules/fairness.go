package rules

import "regexp"

// FairnessPattern is a subjective heuristic flagging potentially imbalanced
// clauses. Distinct from statutory illegality: a match never sets illegal.
type FairnessPattern struct {
	Pattern  *regexp.Regexp
	Reason   string
	Severity int // 1-10, deduction is severity * 2
}

// FairnessPatterns is the ordered built-in pattern set. Order only fixes the
// ordering of reasons in the output; every matching pattern fires.
var FairnessPatterns = []FairnessPattern{
	{regexp.MustCompile(`(?i)unrestricted access`), "Landlord claims unrestricted access to the property", 8},
	{regexp.MustCompile(`(?i)all repairs.*tenant`), "Clause makes tenant responsible for all repairs, including structural", 9},
	{regexp.MustCompile(`(?i)no refund.*bond`), "Bond declared non-refundable without cause", 8},
	{regexp.MustCompile(`(?i)terminate.*without notice|terminate at any time`), "Landlord can terminate without notice", 10},
	{regexp.MustCompile(`(?i)tenant must pay.*legal fees`), "Tenant required to pay landlord's legal fees", 7},
}

// absolutePatterns flag absolute phrasings: denial of refund or liability,
// unconditional timing, absence of notice. Any single match earns one
// generic absolute-language reason, independent of the specific patterns above.
var absolutePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)no refund`),
	regexp.MustCompile(`(?i)not liable|no liability`),
	regexp.MustCompile(`(?i)at any time`),
	regexp.MustCompile(`(?i)without (?:any )?notice`),
	regexp.MustCompile(`(?i)under no circumstances`),
}

// HasAbsoluteLanguage reports whether text matches any absolute phrasing
func HasAbsoluteLanguage(text string) bool {
	for _, p := range absolutePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Numeric fairness thresholds
const (
	// PenaltyWeeksUpperBound flags penalty clauses above this many weeks
	PenaltyWeeksUpperBound = 2

	// ExcessiveFeeRatio marks fees above this multiple of a reasonable
	// estimate as excessive
	ExcessiveFeeRatio = 1.5
)
