package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"offerdirectory/internal/domain"
)

// Directory is one offer directory view. It fetches the offer list exactly once,
// when mounted, and afterwards only applies the user's ordering and pagination
// transitions to its state. The state is an immutable domain.ViewState replaced
// wholesale under mu.
type Directory struct {
	fetcher      domain.OfferFetcher
	logger       *slog.Logger
	fetchTimeout time.Duration

	mu      sync.Mutex
	state   domain.ViewState
	mounted bool
	closed  bool
	cancel  context.CancelFunc
	settled chan struct{}
}

// NewDirectory returns an unmounted view. A zero fetchTimeout means no timeout.
func NewDirectory(fetcher domain.OfferFetcher, logger *slog.Logger, fetchTimeout time.Duration) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{
		fetcher:      fetcher,
		logger:       logger,
		fetchTimeout: fetchTimeout,
		state:        domain.NewViewState(),
		settled:      make(chan struct{}),
	}
}

// Mount starts the single fetch in the background. The fetch outlives ctx's
// cancellation (a mount request ends long before the upstream answers) but
// keeps its values; it stops on Unmount. Mounting twice is a no-op.
func (d *Directory) Mount(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return domain.ErrViewClosed
	}
	if d.mounted {
		return nil
	}
	d.mounted = true

	var fetchCtx context.Context
	base := context.WithoutCancel(ctx)
	if d.fetchTimeout > 0 {
		fetchCtx, d.cancel = context.WithTimeout(base, d.fetchTimeout)
	} else {
		fetchCtx, d.cancel = context.WithCancel(base)
	}

	go d.load(fetchCtx)
	return nil
}

func (d *Directory) load(ctx context.Context) {
	defer close(d.settled)
	defer d.release()

	offers, err := d.fetcher.Fetch(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		// unmounted while the request was in flight
		d.logger.Debug("discarding offer list for closed view", "err", err)
		return
	}
	if err != nil {
		d.logger.Error("offer list fetch failed", "err", err)
		d.state = d.state.Failed(err)
		return
	}
	d.logger.Debug("offer list loaded", "count", len(offers))
	d.state = d.state.Loaded(offers)
}

// release frees the fetch context once the fetch is over.
func (d *Directory) release() {
	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Unmount cancels an in-flight fetch and closes the view. Later transitions
// return domain.ErrViewClosed. Safe to call more than once.
func (d *Directory) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	if d.cancel != nil {
		d.cancel()
	}
	if !d.mounted {
		// no fetch will ever settle this view
		close(d.settled)
	}
}

// Settled is closed once the mount-time fetch has finished, successfully or not,
// or the view was closed without being mounted.
func (d *Directory) Settled() <-chan struct{} {
	return d.settled
}

// Closed reports whether Unmount has been called.
func (d *Directory) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// State returns the current view state.
func (d *Directory) State() domain.ViewState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// SelectOrder applies an ordering control value.
func (d *Directory) SelectOrder(mode domain.SortMode) (domain.ViewState, error) {
	return d.apply(func(s domain.ViewState) (domain.ViewState, error) {
		return s.SelectOrder(mode), nil
	})
}

// ChangePage applies a page change from the pagination control.
func (d *Directory) ChangePage(page int) (domain.ViewState, error) {
	return d.apply(func(s domain.ViewState) (domain.ViewState, error) {
		return s.ChangePage(page)
	})
}

// ChangeRowsPerPage applies a page-size control value and returns to the first page.
func (d *Directory) ChangeRowsPerPage(value string) (domain.ViewState, error) {
	return d.apply(func(s domain.ViewState) (domain.ViewState, error) {
		return s.ChangeRowsPerPage(value)
	})
}

func (d *Directory) apply(transition func(domain.ViewState) (domain.ViewState, error)) (domain.ViewState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return d.state, domain.ErrViewClosed
	}
	next, err := transition(d.state)
	if err != nil {
		return d.state, err
	}
	d.state = next
	return next, nil
}
