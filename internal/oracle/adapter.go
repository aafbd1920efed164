package oracle

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/pdavydov/leaselint/internal/model"
	"golang.org/x/time/rate"
)

// Consultant is the capability the clause assessor depends on. A live
// network-backed adapter and a deterministic test double are interchangeable.
type Consultant interface {
	// ReasonAbout returns a structured opinion about a clause. It never
	// fails: transport errors and malformed responses fold into a degraded
	// Needs Manual Review opinion.
	ReasonAbout(ctx context.Context, clause model.Clause, jurisdiction string) *model.Opinion

	// Query is the raw text-to-text primitive for conversational use
	Query(ctx context.Context, prompt string) (string, error)

	// Available reports whether a backend is configured
	Available() bool
}

// jsonObject fishes the first {...} block out of a free-form reply
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// Adapter wraps a Provider with the Consultant capability contract:
// bounded timeouts, optional rate limiting, and error containment.
type Adapter struct {
	provider Provider
	timeout  time.Duration
	limiter  *rate.Limiter
}

// NewAdapter creates an adapter around a provider. A nil provider yields an
// unavailable adapter; callers should skip consultation entirely.
func NewAdapter(provider Provider, config Config) *Adapter {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &Adapter{
		provider: provider,
		timeout:  timeout,
		limiter:  limiter,
	}
}

// Available reports whether a provider is configured
func (a *Adapter) Available() bool {
	return a != nil && a.provider != nil
}

// Name returns the underlying provider name, or "" when unavailable
func (a *Adapter) Name() string {
	if !a.Available() {
		return ""
	}
	return a.provider.Name()
}

// ReasonAbout consults the provider about a clause. All failure modes
// (timeout, transport error, non-JSON reply, missing fields) degrade to a
// Needs Manual Review opinion rather than surfacing an error.
func (a *Adapter) ReasonAbout(ctx context.Context, clause model.Clause, jurisdiction string) *model.Opinion {
	if !a.Available() {
		return nil
	}

	prompt := BuildReasoningPrompt(clause, jurisdiction)

	raw, err := a.complete(ctx, prompt)
	if err != nil {
		return &model.Opinion{
			Verdict:           string(model.VerdictNeedsManualReview),
			Explanation:       "Oracle call failed: " + err.Error(),
			RecommendedAction: "Retry oracle or fall back to manual review",
		}
	}

	return parseOpinion(raw)
}

// Query sends a raw prompt and returns the text reply
func (a *Adapter) Query(ctx context.Context, prompt string) (string, error) {
	if !a.Available() {
		return "", ErrUnavailable
	}
	return a.complete(ctx, prompt)
}

func (a *Adapter) complete(ctx context.Context, prompt string) (string, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.provider.Complete(ctx, CompletionRequest{
		System: "You are an assistant specializing in Australian residential tenancy law.",
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// parseOpinion extracts a structured opinion from a free-form reply.
// Replies without parseable JSON become a manual-review opinion carrying
// the raw text as explanation.
func parseOpinion(raw string) *model.Opinion {
	candidate := raw
	if m := jsonObject.FindString(raw); m != "" {
		candidate = m
	}

	var op model.Opinion
	if err := json.Unmarshal([]byte(candidate), &op); err == nil && op.Verdict != "" {
		return &op
	}

	if len(raw) > 1000 {
		raw = raw[:1000]
	}
	return &model.Opinion{
		Verdict:           string(model.VerdictNeedsManualReview),
		Explanation:       raw,
		RecommendedAction: "Ask legal counsel",
	}
}
