package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdavydov/leaselint/internal/model"
)

var (
	amountPattern = regexp.MustCompile(`\$\s*([0-9,]+(?:\.[0-9]{1,2})?)`)
	weeksPattern  = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*weeks?`)
	daysPattern   = regexp.MustCompile(`(?i)([0-9]+)\s*days?`)
	monthsPattern = regexp.MustCompile(`(?i)([0-9]+)\s*months?`)
)

// Numbers extracts quantities like weeks, dollar amounts, days, and months
// from clause text. Matching is lenient and non-exclusive: only the first
// occurrence of each kind is taken, and absent kinds are left unset, never
// defaulted to zero.
func Numbers(text string) map[model.Quantity]float64 {
	values := make(map[model.Quantity]float64)

	if m := amountPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			values[model.QuantityAmount] = v
		}
	}
	if m := weeksPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values[model.QuantityWeeks] = v
		}
	}
	if m := daysPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values[model.QuantityDays] = v
		}
	}
	if m := monthsPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values[model.QuantityMonths] = v
		}
	}

	return values
}
