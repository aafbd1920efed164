package oracle

import (
	"context"
	"encoding/json"

	"github.com/pdavydov/leaselint/internal/cache"
	"github.com/pdavydov/leaselint/internal/model"
)

// CachedConsultant wraps a Consultant with response caching keyed on
// (clause text, jurisdiction). Entries are immutable once stored, so
// repeated assessments of identical clauses reuse one oracle call.
type CachedConsultant struct {
	inner Consultant
	store cache.Cache
}

// NewCachedConsultant wraps a consultant with a cache
func NewCachedConsultant(inner Consultant, store cache.Cache) *CachedConsultant {
	return &CachedConsultant{inner: inner, store: store}
}

// Available reports whether the underlying consultant is configured
func (c *CachedConsultant) Available() bool {
	return c.inner != nil && c.inner.Available()
}

// ReasonAbout returns a cached opinion when present, otherwise consults the
// inner adapter and stores the result. Degraded failure opinions are not
// cached so a transient outage does not poison later runs.
func (c *CachedConsultant) ReasonAbout(ctx context.Context, clause model.Clause, jurisdiction string) *model.Opinion {
	if !c.Available() {
		return nil
	}

	key := cache.Key(clause.Text + "|" + jurisdiction)
	if data, found := c.store.Get(key); found {
		var op model.Opinion
		if err := json.Unmarshal(data, &op); err == nil {
			return &op
		}
	}

	op := c.inner.ReasonAbout(ctx, clause, jurisdiction)
	if op == nil {
		return nil
	}

	if op.Verdict != string(model.VerdictNeedsManualReview) {
		if data, err := json.Marshal(op); err == nil {
			_ = c.store.Set(key, data, 0)
		}
	}

	return op
}

// Query passes through uncached: conversational replies are not reusable
func (c *CachedConsultant) Query(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}
	return c.inner.Query(ctx, prompt)
}
