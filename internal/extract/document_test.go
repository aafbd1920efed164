package extract

import (
	"strings"
	"testing"

	"github.com/pdavydov/leaselint/internal/model"
)

func TestDocumentExtractor_Extract_SplitsAndClassifies(t *testing.T) {
	text := "The tenant shall pay a bond of 4 weeks rent.\n\n" +
		"Rent will increase by no more than once every 12 months.\n\n" +
		"The tenant is responsible for all maintenance and repairs."

	clauses := NewDocumentExtractor().Extract(text)

	if len(clauses) != 3 {
		t.Fatalf("Expected 3 clauses, got %d", len(clauses))
	}

	if clauses[0].Category != model.CategoryBond {
		t.Errorf("Expected bond category, got %s", clauses[0].Category)
	}
	if clauses[1].Category != model.CategoryRentIncrease {
		t.Errorf("Expected rent_increase category, got %s", clauses[1].Category)
	}
	if clauses[2].Category != model.CategoryMaintenance {
		t.Errorf("Expected maintenance category, got %s", clauses[2].Category)
	}

	// IDs are sequential and unique
	if clauses[0].ID != "clause-1" || clauses[2].ID != "clause-3" {
		t.Errorf("Expected sequential clause IDs, got %s and %s", clauses[0].ID, clauses[2].ID)
	}

	// Numeric values attached from the text
	if clauses[0].NumericValues[model.QuantityWeeks] != 4 {
		t.Errorf("Expected 4 weeks extracted for the bond clause, got %v", clauses[0].NumericValues)
	}
}

func TestDocumentExtractor_Extract_UnknownCategoryIsOther(t *testing.T) {
	clauses := NewDocumentExtractor().Extract("The parties agree to act in good faith.")

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Category != model.CategoryOther {
		t.Errorf("Expected other, got %s", clauses[0].Category)
	}
}

func TestDocumentExtractor_Extract_SkipsEmptyParagraphs(t *testing.T) {
	text := "First clause.\n\n\n\n   \n\nSecond clause."

	clauses := NewDocumentExtractor().Extract(text)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
}

func TestDocumentExtractor_Extract_BlankDollarFieldIgnored(t *testing.T) {
	clauses := NewDocumentExtractor().Extract("The bond amount is $ ________ payable on signing.")

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if _, ok := clauses[0].NumericValues[model.QuantityAmount]; ok {
		t.Errorf("Unfilled template field must not yield an amount, got %v", clauses[0].NumericValues)
	}
}

func TestDocumentExtractor_Extract_SoftRisk(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"high on penalty", "A penalty of one week applies.", "high"},
		{"high on forfeit", "The deposit is subject to forfeit.", "high"},
		{"medium on obligation", "The tenant must mow the lawn.", "medium"},
		{"low otherwise", "Rent is payable fortnightly.", "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses := NewDocumentExtractor().Extract(tt.text)
			if len(clauses) != 1 {
				t.Fatalf("Expected 1 clause, got %d", len(clauses))
			}
			if clauses[0].SoftRisk != tt.want {
				t.Errorf("Expected soft risk %q, got %q", tt.want, clauses[0].SoftRisk)
			}
		})
	}
}

func TestDocumentExtractor_Extract_LongClauseIsMediumRisk(t *testing.T) {
	long := strings.Repeat("word ", 70)

	clauses := NewDocumentExtractor().Extract(long)

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].SoftRisk != "medium" {
		t.Errorf("Expected medium risk for a 70-word clause, got %q", clauses[0].SoftRisk)
	}
}

func TestDocumentExtractor_Extract_SummaryTruncated(t *testing.T) {
	long := strings.Repeat("The premises shall be maintained. ", 20)

	clauses := NewDocumentExtractor().Extract(long)

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if len(clauses[0].Summary) != 200 {
		t.Errorf("Expected summary truncated to 200 chars, got %d", len(clauses[0].Summary))
	}
	if !strings.HasSuffix(clauses[0].Summary, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", clauses[0].Summary)
	}
}

func TestDocumentExtractor_Extract_HTMLReducedToText(t *testing.T) {
	page := `<html><head><style>p { color: red; }</style>
<script>alert("hi");</script></head>
<body>
<p>The tenant shall pay a bond of 4 weeks rent.</p>
<p>The landlord may enter the premises for inspection with 7 days notice.</p>
</body></html>`

	clauses := NewDocumentExtractor().Extract(page)

	if len(clauses) < 2 {
		t.Fatalf("Expected at least 2 clauses from HTML, got %d", len(clauses))
	}

	var sawBond, sawEntry bool
	for _, c := range clauses {
		if strings.Contains(c.Text, "alert") || strings.Contains(c.Text, "color: red") {
			t.Errorf("Script/style content leaked into clause text: %q", c.Text)
		}
		if c.Category == model.CategoryBond {
			sawBond = true
		}
		if c.Category == model.CategoryEntry {
			sawEntry = true
		}
	}
	if !sawBond || !sawEntry {
		t.Errorf("Expected bond and entry clauses from HTML, got bond=%v entry=%v", sawBond, sawEntry)
	}
}
