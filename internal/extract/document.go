package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdavydov/leaselint/internal/model"
	"golang.org/x/net/html"
)

// blankDollarField matches form placeholders like "$ ____" so unfilled
// template fields are not parsed as zero-dollar amounts.
var blankDollarField = regexp.MustCompile(`\$\s*[._\s]{2,}`)

var categoryKeywords = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryBond, []string{"security deposit", "bond", "deposit amount"}},
	{model.CategoryBreakLeaseFee, []string{"break lease", "early termination fee", "lease break"}},
	{model.CategoryRentIncrease, []string{"rent increase", "increase in rent", "rent will increase"}},
	{model.CategoryRentPayment, []string{"monthly rent", "rent payment", "rent is due", "weekly rent"}},
	{model.CategoryMaintenance, []string{"maintenance", "repairs", "repair obligations"}},
	{model.CategorySubletting, []string{"sublet", "subletting", "sub-let", "assign lease"}},
	{model.CategoryUtilityCharges, []string{"utilities", "electricity", "water", "gas", "internet"}},
	{model.CategoryEarlyTermination, []string{"early termination", "terminate early"}},
	{model.CategoryPenalty, []string{"penalty", "fine", "charge for"}},
	{model.CategoryEntry, []string{"entry", "enter the premises", "inspection"}},
}

var (
	highRiskKeywords   = []string{"penalty", "forfeit", "prohibited", "automatic increase"}
	mediumRiskKeywords = []string{"must", "required", "responsible", "obligation", "mandatory"}
)

// DocumentExtractor splits raw contract text into clause records, classifies
// each clause by keyword matching, and extracts numeric values. It is a
// deterministic stand-in for an upstream LLM extraction step.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract splits text into paragraph clauses and classifies them.
// HTML input is reduced to visible text first.
func (e *DocumentExtractor) Extract(text string) []model.Clause {
	if looksLikeHTML(text) {
		if visible, err := visibleText(text); err == nil {
			text = visible
		}
	}

	paragraphs := splitParagraphs(text)
	clauses := make([]model.Clause, 0, len(paragraphs))

	for i, p := range paragraphs {
		lower := strings.ToLower(p)

		clause := model.Clause{
			ID:       fmt.Sprintf("clause-%d", i+1),
			Category: classify(lower),
			Text:     p,
			Summary:  summarize(p),
			SoftRisk: softRisk(lower, p),
		}

		values := Numbers(p)
		// Unfilled "$ ____" template fields must not read as amounts
		if blankDollarField.MatchString(p) {
			delete(values, model.QuantityAmount)
		}
		if len(values) > 0 {
			clause.NumericValues = values
		}

		clauses = append(clauses, clause)
	}

	return clauses
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func classify(lower string) model.Category {
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return model.CategoryOther
}

func summarize(text string) string {
	if len(text) < 200 {
		return text
	}
	return text[:197] + "..."
}

func softRisk(lower, original string) string {
	for _, k := range highRiskKeywords {
		if strings.Contains(lower, k) {
			return "high"
		}
	}
	for _, k := range mediumRiskKeywords {
		if strings.Contains(lower, k) {
			return "medium"
		}
	}
	// Long clauses warrant a closer look even without risk keywords
	if len(strings.Fields(original)) > 60 {
		return "medium"
	}
	return "low"
}

func looksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "<html") || strings.Contains(lower, "<body") || strings.Contains(lower, "<p>")
}

// visibleText extracts text nodes from HTML, skipping scripts and styles
func visibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "br", "li", "tr":
				defer buf.WriteString("\n\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String(), nil
}
