package store

import (
	"context"
	"time"
)

// QueryOpts configures verdict queries with filtering and pagination.
type QueryOpts struct {
	Limit       int    // max results (0 = unlimited)
	Interaction string // exact match; empty matches all
	Rule        string // exact match; empty matches all
}

// Verdict is one recorded classification: the rule that was evaluated,
// the encoded answer and inputs, and either the outcome or the error.
type Verdict struct {
	ID          string
	Interaction string
	Rule        string
	Answer      string // JSON-encoded answer value
	Inputs      string // JSON-encoded parameter map
	Matched     bool
	Error       string // non-empty when the rule could not be evaluated
	CreatedAt   time.Time
}

// VerdictRepo provides append and query access to recorded verdicts.
type VerdictRepo interface {
	// Append records a verdict. ID and CreatedAt are filled in when empty.
	Append(ctx context.Context, v *Verdict) error

	// Recent returns verdicts newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Verdict, error)
}
