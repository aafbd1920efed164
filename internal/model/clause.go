package model

import "strings"

// Clause represents one obligation or right extracted from a contract
type Clause struct {
	ID            string               `json:"id"`                       // Opaque identifier, unique within a contract
	Category      Category             `json:"category"`                 // Drives which statutory rule branch applies
	Text          string               `json:"text"`                     // Original clause text, immutable once extracted
	NumericValues map[Quantity]float64 `json:"numeric_values,omitempty"` // Partially populated quantity mapping
	WeeklyRent    *float64             `json:"weekly_rent,omitempty"`    // Caller-supplied context, converts week caps to dollars
	Summary       string               `json:"summary,omitempty"`        // Plain-English summary from extraction
	SoftRisk      string               `json:"soft_risk,omitempty"`      // Preliminary low/medium/high estimate from extraction
}

// Category classifies the subject matter of a clause
type Category string

const (
	CategoryBond             Category = "bond"
	CategoryBreakLeaseFee    Category = "break_lease_fee"
	CategoryRentIncrease     Category = "rent_increase"
	CategoryRentPayment      Category = "rent_payment"
	CategoryMaintenance      Category = "maintenance"
	CategorySubletting       Category = "subletting"
	CategoryUtilityCharges   Category = "utility_charges"
	CategoryEarlyTermination Category = "early_termination"
	CategoryPenalty          Category = "penalty"
	CategoryEntry            Category = "entry"
	CategoryOther            Category = "other"
)

var knownCategories = map[Category]bool{
	CategoryBond:             true,
	CategoryBreakLeaseFee:    true,
	CategoryRentIncrease:     true,
	CategoryRentPayment:      true,
	CategoryMaintenance:      true,
	CategorySubletting:       true,
	CategoryUtilityCharges:   true,
	CategoryEarlyTermination: true,
	CategoryPenalty:          true,
	CategoryEntry:            true,
	CategoryOther:            true,
}

// Normalize maps empty or unrecognized categories to "other" so a malformed
// clause still flows through the fairness checks instead of failing.
func (c Category) Normalize() Category {
	lc := Category(strings.ToLower(strings.TrimSpace(string(c))))
	if knownCategories[lc] {
		return lc
	}
	return CategoryOther
}

// Quantity names a kind of numeric value found in clause text
type Quantity string

const (
	QuantityAmount Quantity = "amount" // Dollar amount
	QuantityWeeks  Quantity = "weeks"
	QuantityDays   Quantity = "days"
	QuantityMonths Quantity = "months"
)
