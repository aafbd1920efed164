package oracle

import (
	"context"
	"strings"
)

// MockProvider is a deterministic offline provider. It answers the
// assessment prompt with a canned JSON opinion derived from keyword
// matching on the clause text, which keeps tests and demo runs repeatable.
type MockProvider struct{}

// NewMockProvider creates a new mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// IsAvailable always reports true
func (p *MockProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// Complete returns a canned opinion based on simple keyword matching
func (p *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	lower := strings.ToLower(req.Prompt)

	verdict := "Legal"
	explanation := "No issues detected by offline heuristics."
	action := "None"

	switch {
	case strings.Contains(lower, "without notice") || strings.Contains(lower, "no refund"):
		verdict = "Potentially Unfair"
		explanation = "The clause uses absolute language that may disadvantage the tenant."
		action = "Negotiate softer terms"
	case strings.Contains(lower, "exceed") || strings.Contains(lower, "forfeit"):
		verdict = "Needs Manual Review"
		explanation = "The clause mentions amounts or forfeiture that warrant a closer look."
		action = "Ask legal counsel"
	}

	text := `{"verdict": "` + verdict + `", "explanation": "` + explanation + `", "recommended_action": "` + action + `"}`

	return &CompletionResponse{
		Text:  text,
		Model: "mock",
	}, nil
}
