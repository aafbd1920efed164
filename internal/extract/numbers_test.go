package extract

import (
	"testing"

	"github.com/pdavydov/leaselint/internal/model"
)

func TestNumbers_Extraction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[model.Quantity]float64
	}{
		{
			name: "dollar amount",
			text: "A bond of $2,000 is payable.",
			want: map[model.Quantity]float64{model.QuantityAmount: 2000},
		},
		{
			name: "amount with cents",
			text: "Weekly rent is $512.50 in advance.",
			want: map[model.Quantity]float64{model.QuantityAmount: 512.50},
		},
		{
			name: "fractional weeks",
			text: "Equal to 1.5 weeks of rent.",
			want: map[model.Quantity]float64{model.QuantityWeeks: 1.5},
		},
		{
			name: "days and months",
			text: "60 days notice, no more than once every 12 months.",
			want: map[model.Quantity]float64{model.QuantityDays: 60, model.QuantityMonths: 12},
		},
		{
			name: "singular units",
			text: "1 week, 1 day, 1 month.",
			want: map[model.Quantity]float64{
				model.QuantityWeeks:  1,
				model.QuantityDays:   1,
				model.QuantityMonths: 1,
			},
		},
		{
			name: "first occurrence wins",
			text: "4 weeks bond plus 2 weeks rent in advance.",
			want: map[model.Quantity]float64{model.QuantityWeeks: 4},
		},
		{
			name: "case insensitive units",
			text: "FOUR Weeks is the cap, written as 4 WEEKS.",
			want: map[model.Quantity]float64{model.QuantityWeeks: 4},
		},
		{
			name: "no numbers",
			text: "The tenant shall keep the premises clean.",
			want: map[model.Quantity]float64{},
		},
		{
			name: "spaced dollar sign",
			text: "Pay $ 1,250 on signing.",
			want: map[model.Quantity]float64{model.QuantityAmount: 1250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Numbers(tt.text)

			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d values, got %d: %v", len(tt.want), len(got), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Expected %s=%g, got %g", k, v, got[k])
				}
			}
		})
	}
}

func TestNumbers_AbsentKindsLeftUnset(t *testing.T) {
	got := Numbers("Bond of 4 weeks.")

	if _, ok := got[model.QuantityAmount]; ok {
		t.Error("Amount must be unset, not zero, when no dollar figure appears")
	}
	if _, ok := got[model.QuantityDays]; ok {
		t.Error("Days must be unset when no day figure appears")
	}
}
