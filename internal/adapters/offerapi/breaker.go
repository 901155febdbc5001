package offerapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"offerdirectory/internal/domain"
)

// BreakerConfig tunes the circuit breaker in front of the upstream endpoint.
type BreakerConfig struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	Interval         time.Duration
	OnStateChange    func(from, to gobreaker.State)
}

// DefaultBreakerConfig returns the default breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		Interval:         60 * time.Second,
	}
}

// BreakerFetcher short-circuits fetches while the upstream keeps failing, so
// views mounted during an outage fail fast instead of each waiting on a timeout.
// It never retries.
type BreakerFetcher struct {
	next    domain.OfferFetcher
	breaker *gobreaker.CircuitBreaker[[]domain.Offer]
}

// NewBreakerFetcher wraps next with a circuit breaker.
func NewBreakerFetcher(next domain.OfferFetcher, cfg BreakerConfig) *BreakerFetcher {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	threshold := cfg.FailureThreshold
	settings := gobreaker.Settings{
		Name:        "offer-list",
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A view unmounted mid-flight says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			cfg.OnStateChange(from, to)
		}
	}
	return &BreakerFetcher{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[[]domain.Offer](settings),
	}
}

func (f *BreakerFetcher) Fetch(ctx context.Context) ([]domain.Offer, error) {
	offers, err := f.breaker.Execute(func() ([]domain.Offer, error) {
		return f.next.Fetch(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	return offers, err
}

// State reports the breaker state.
func (f *BreakerFetcher) State() gobreaker.State {
	return f.breaker.State()
}
