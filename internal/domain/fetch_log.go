package domain

import (
	"context"
	"time"
)

// FetchOutcome classifies one upstream fetch attempt.
type FetchOutcome string

const (
	FetchSucceeded FetchOutcome = "succeeded"
	FetchFailed    FetchOutcome = "failed"
	FetchCanceled  FetchOutcome = "canceled"
)

// FetchAttempt is one journaled call to the upstream offer list endpoint.
// swagger:model FetchAttempt
type FetchAttempt struct {
	ID         string       `json:"id"`
	URL        string       `json:"url"`
	Outcome    FetchOutcome `json:"outcome"`
	OfferCount int          `json:"offer_count"`
	Error      string       `json:"error,omitempty"`
	DurationMS int64        `json:"duration_ms"`
	StartedAt  time.Time    `json:"started_at"`
}

// FetchLogRepository stores fetch attempts.
type FetchLogRepository interface {
	Record(ctx context.Context, attempt *FetchAttempt) error
	ListRecent(ctx context.Context, params PaginationParams) ([]*FetchAttempt, int, error)
}

// FetchLogService lists journaled fetch attempts.
type FetchLogService interface {
	ListRecent(ctx context.Context, params PaginationParams) ([]*FetchAttempt, int, error)
}
