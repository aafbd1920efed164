package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdavydov/leaselint/internal/model"
)

// ErrUnavailable is returned by Query when no provider is configured
var ErrUnavailable = errors.New("oracle provider not configured")

// Provider defines the interface for reasoning backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt and returns the raw text reply
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is the input to a reasoning call
type CompletionRequest struct {
	// System sets the assistant role (provider-specific handling)
	System string

	// Prompt is the user message
	Prompt string

	// Model overrides the configured model (optional)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse is the raw reply from a provider
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds oracle provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", "mock", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout per call, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RateLimit bounds oracle calls per second (0 disables)
	RateLimit float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.OracleConfig to oracle.Config
func ConfigFromModel(mc model.OracleConfig) Config {
	return Config{
		Provider:   mc.Provider,
		Model:      mc.Model,
		APIKey:     mc.APIKey,
		BaseURL:    mc.BaseURL,
		Timeout:    mc.Timeout,
		MaxTokens:  mc.MaxTokens,
		RateLimit:  mc.RateLimit,
		HTTPProxy:  mc.HTTPProxy,
		HTTPSProxy: mc.HTTPSProxy,
		NoProxy:    mc.NoProxy,
	}
}

// NewProvider creates a new oracle provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "mock":
		return NewMockProvider(), nil

	case "":
		// No provider configured - oracle disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown oracle provider: %s (supported: openai, anthropic, ollama, mock)", config.Provider)
	}
}

// BuildReasoningPrompt constructs the clause-assessment prompt
func BuildReasoningPrompt(clause model.Clause, jurisdiction string) string {
	return fmt.Sprintf(
		"You are an expert in Australian residential tenancy law (state: %s).\n"+
			"Assess the following rental contract clause for legal compliance and fairness. "+
			"Return a short JSON with keys: verdict (Legal/Illegal/Potentially Unfair/Needs Manual Review), "+
			"explanation (one-paragraph), and recommended_action. Do not add any extra keys.\n\n"+
			"Clause text:\n%s",
		jurisdiction, strings.TrimSpace(clause.Text))
}
