package model

import "testing"

func TestCategory_Normalize(t *testing.T) {
	tests := []struct {
		in   Category
		want Category
	}{
		{"bond", CategoryBond},
		{"BOND", CategoryBond},
		{"  rent_increase  ", CategoryRentIncrease},
		{"break_lease_fee", CategoryBreakLeaseFee},
		{"", CategoryOther},
		{"pets", CategoryOther},
		{"other", CategoryOther},
	}

	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
