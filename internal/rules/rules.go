package rules

// Defaults applied when a jurisdiction omits a limit. A zero-value RuleSet
// (unknown jurisdiction) therefore still produces sensible checks.
const (
	DefaultBondMaxWeeks          = 4
	DefaultBreakLeaseMaxWeeks    = 4
	DefaultMinNoticeDays         = 60
	DefaultMaxFrequencyMonths    = 12
	DefaultRoutineInspectionDays = 7
)

// BondRule caps the bond as a multiple of weekly rent
type BondRule struct {
	MaxWeeks float64 `json:"max_weeks" yaml:"max_weeks"`
}

// BreakLeaseFeeRule caps the break-lease fee as a multiple of weekly rent
type BreakLeaseFeeRule struct {
	MaxWeeks float64 `json:"max_weeks" yaml:"max_weeks"`
}

// RentIncreaseRule sets minimum notice and minimum interval between increases
type RentIncreaseRule struct {
	MinNoticeDays      float64 `json:"min_notice_days" yaml:"min_notice_days"`
	MaxFrequencyMonths float64 `json:"max_frequency_months" yaml:"max_frequency_months"`
}

// EntryNoticeRule sets the minimum notice before a routine inspection
type EntryNoticeRule struct {
	RoutineInspectionDays float64 `json:"routine_inspection" yaml:"routine_inspection"`
}

// EvictionRule sets the minimum notice before eviction without cause
type EvictionRule struct {
	MinimumNoticeDays float64 `json:"minimum_notice_days" yaml:"minimum_notice_days"`
}

// RuleSet holds the statutory limits for one jurisdiction. It is passed by
// value into every assessment; absent limits (zero) fall back to the
// documented defaults rather than failing.
type RuleSet struct {
	Bond          BondRule          `json:"bond" yaml:"bond"`
	BreakLeaseFee BreakLeaseFeeRule `json:"break_lease_fee" yaml:"break_lease_fee"`
	RentIncrease  RentIncreaseRule  `json:"rent_increase" yaml:"rent_increase"`
	EntryNotice   EntryNoticeRule   `json:"entry_notice" yaml:"entry_notice"`
	Eviction      EvictionRule      `json:"eviction" yaml:"eviction"`
}

// BondMaxWeeks returns the bond cap, defaulted when unset
func (r RuleSet) BondMaxWeeks() float64 {
	if r.Bond.MaxWeeks > 0 {
		return r.Bond.MaxWeeks
	}
	return DefaultBondMaxWeeks
}

// BreakLeaseMaxWeeks returns the break-lease fee cap, defaulted when unset
func (r RuleSet) BreakLeaseMaxWeeks() float64 {
	if r.BreakLeaseFee.MaxWeeks > 0 {
		return r.BreakLeaseFee.MaxWeeks
	}
	return DefaultBreakLeaseMaxWeeks
}

// MinNoticeDays returns the rent-increase notice minimum, defaulted when unset
func (r RuleSet) MinNoticeDays() float64 {
	if r.RentIncrease.MinNoticeDays > 0 {
		return r.RentIncrease.MinNoticeDays
	}
	return DefaultMinNoticeDays
}

// MaxFrequencyMonths returns the rent-increase interval minimum, defaulted when unset
func (r RuleSet) MaxFrequencyMonths() float64 {
	if r.RentIncrease.MaxFrequencyMonths > 0 {
		return r.RentIncrease.MaxFrequencyMonths
	}
	return DefaultMaxFrequencyMonths
}

// RoutineInspectionDays returns the entry notice minimum, defaulted when unset
func (r RuleSet) RoutineInspectionDays() float64 {
	if r.EntryNotice.RoutineInspectionDays > 0 {
		return r.EntryNotice.RoutineInspectionDays
	}
	return DefaultRoutineInspectionDays
}

// Registry maps jurisdiction codes to rule sets
type Registry struct {
	sets map[string]RuleSet
}

// NewRegistry returns a registry preloaded with the built-in Australian
// state rule sets. These are compact illustrative tables, not authoritative
// legal content; callers can Register replacements at startup.
func NewRegistry() *Registry {
	return &Registry{
		sets: map[string]RuleSet{
			"NSW": {
				Bond:          BondRule{MaxWeeks: 4},
				BreakLeaseFee: BreakLeaseFeeRule{MaxWeeks: 4},
				RentIncrease:  RentIncreaseRule{MinNoticeDays: 60, MaxFrequencyMonths: 12},
				EntryNotice:   EntryNoticeRule{RoutineInspectionDays: 7},
				Eviction:      EvictionRule{MinimumNoticeDays: 90},
			},
			"VIC": {
				Bond:         BondRule{MaxWeeks: 4},
				RentIncrease: RentIncreaseRule{MinNoticeDays: 60, MaxFrequencyMonths: 12},
				EntryNotice:  EntryNoticeRule{RoutineInspectionDays: 1}, // 24 hours
				Eviction:     EvictionRule{MinimumNoticeDays: 60},
			},
			"QLD": {
				Bond:          BondRule{MaxWeeks: 4},
				BreakLeaseFee: BreakLeaseFeeRule{MaxWeeks: 4},
				RentIncrease:  RentIncreaseRule{MinNoticeDays: 60, MaxFrequencyMonths: 12},
				EntryNotice:   EntryNoticeRule{RoutineInspectionDays: 7},
				Eviction:      EvictionRule{MinimumNoticeDays: 60},
			},
		},
	}
}

// Lookup returns the rule set for a jurisdiction code. Unknown codes return
// the zero RuleSet, which triggers the per-check defaults.
func (g *Registry) Lookup(code string) RuleSet {
	return g.sets[code]
}

// Register installs or replaces a jurisdiction's rule set
func (g *Registry) Register(code string, set RuleSet) {
	g.sets[code] = set
}

// Codes lists the registered jurisdiction codes
func (g *Registry) Codes() []string {
	codes := make([]string, 0, len(g.sets))
	for code := range g.sets {
		codes = append(codes, code)
	}
	return codes
}
