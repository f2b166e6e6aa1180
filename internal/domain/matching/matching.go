// Package matching finds, for each attendee, the best-scoring stored
// contact above a threshold, using token-order-insensitive string
// similarity over canonical "name | company" keys.
package matching

import (
	"context"

	"github.com/okian/rolodex/internal/domain/model"
	"github.com/okian/rolodex/internal/domain/normalize"
)

// Scorer computes a 0-100 similarity between two canonical keys.
type Scorer func(a, b string) int

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorer replaces the default token-sort-ratio scorer.
func WithScorer(s Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// Engine runs attendee-vs-contact matching. It holds no state between
// calls; contact keys are rebuilt on every Match because the store can
// change between calls.
type Engine struct {
	scorer Scorer
}

// New creates an Engine with the default scorer.
func New(opts ...Option) *Engine {
	e := &Engine{scorer: TokenSortRatio}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Match scores every attendee against every contact and returns one Match
// per attendee whose best score is at or above threshold. Output order
// follows attendee input order; attendees below threshold (or with an
// empty key) are skipped, not emitted as empty rows.
//
// Duplicate contact keys are matched independently: on equal top scores
// the first contact in store iteration order wins. The scan is
// O(attendees x contacts), which is fine at the hundreds-to-low-thousands
// scale this runs at.
//
// Returns ErrEmptyStore when no contacts exist at all, so callers can tell
// an unloaded store apart from a successful run with zero matches.
func (e *Engine) Match(ctx context.Context, attendees []model.Attendee, contacts []model.Contact, threshold int) ([]model.Match, error) {
	if len(contacts) == 0 {
		return nil, ErrEmptyStore
	}

	// Build contact keys once per call.
	keys := make([]string, len(contacts))
	for i, c := range contacts {
		keys[i] = normalize.BuildKey(c.FullName, c.Company)
	}

	matches := make([]model.Match, 0, len(attendees))
	for _, att := range attendees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := normalize.BuildKey(att.Name, att.Company)
		if key == "" {
			continue
		}

		best := -1
		bestScore := -1
		for i, ck := range keys {
			// Strictly greater, so ties go to the first contact seen.
			if s := e.scorer(key, ck); s > bestScore {
				best = i
				bestScore = s
			}
		}
		if bestScore < threshold {
			continue
		}

		winner := contacts[best]
		matches = append(matches, model.Match{
			AttendeeName:    att.Name,
			AttendeeCompany: att.Company,
			AttendeeEmail:   att.Email,
			ContactName:     winner.FullName,
			ContactCompany:  winner.Company,
			ContactTitle:    winner.Title,
			ContactOwner:    winner.Owner,
			ContactSource:   winner.Source,
			ContactEmail:    winner.Email,
			Score:           bestScore,
		})
	}
	return matches, nil
}
