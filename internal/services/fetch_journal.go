package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"offerdirectory/internal/domain"
	"offerdirectory/internal/metrics"
)

const journalWriteTimeout = 5 * time.Second

type journaledFetcher struct {
	next    domain.OfferFetcher
	repo    domain.FetchLogRepository
	metrics *metrics.Metrics
	logger  *slog.Logger
	url     string
	now     func() time.Time
}

// NewJournaledFetcher wraps next so every attempt is counted in m and, when repo
// is non-nil, written to the fetch journal. Journal failures are logged and
// never change the fetch result.
func NewJournaledFetcher(next domain.OfferFetcher, repo domain.FetchLogRepository, m *metrics.Metrics, logger *slog.Logger, url string) domain.OfferFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &journaledFetcher{
		next:    next,
		repo:    repo,
		metrics: m,
		logger:  logger,
		url:     url,
		now:     time.Now,
	}
}

func (f *journaledFetcher) Fetch(ctx context.Context) ([]domain.Offer, error) {
	started := f.now()
	offers, err := f.next.Fetch(ctx)
	elapsed := f.now().Sub(started)

	attempt := &domain.FetchAttempt{
		URL:        f.url,
		Outcome:    outcomeOf(err),
		OfferCount: len(offers),
		DurationMS: elapsed.Milliseconds(),
		StartedAt:  started.UTC(),
	}
	if err != nil {
		attempt.Error = err.Error()
	}
	f.metrics.RecordFetch(attempt.Outcome, elapsed)

	if f.repo != nil {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
		if jerr := f.repo.Record(wctx, attempt); jerr != nil {
			f.logger.Warn("record fetch attempt", "err", jerr)
		}
		cancel()
	}
	return offers, err
}

func outcomeOf(err error) domain.FetchOutcome {
	switch {
	case err == nil:
		return domain.FetchSucceeded
	case errors.Is(err, context.Canceled):
		return domain.FetchCanceled
	default:
		return domain.FetchFailed
	}
}
