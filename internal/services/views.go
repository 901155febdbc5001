package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"offerdirectory/internal/domain"
	"offerdirectory/internal/metrics"
	"offerdirectory/internal/usecase"
)

// ViewRegistryConfig configures a ViewRegistry.
type ViewRegistryConfig struct {
	FetchTimeout time.Duration
	// TTL is how long a view may go untouched before the sweeper unmounts it.
	// Zero disables expiry.
	TTL time.Duration
	// ShutdownWait bounds how long Shutdown waits for in-flight fetches to
	// settle. Zero means defaultShutdownWait.
	ShutdownWait time.Duration
}

const defaultShutdownWait = 5 * time.Second

type viewEntry struct {
	dir      *usecase.Directory
	lastSeen time.Time
}

// ViewRegistry owns the mounted directory views, keyed by a random id.
type ViewRegistry struct {
	fetcher domain.OfferFetcher
	logger  *slog.Logger
	metrics *metrics.Metrics
	cfg     ViewRegistryConfig
	now     func() time.Time

	mu    sync.Mutex
	views map[uuid.UUID]*viewEntry
}

// NewViewRegistry returns an empty registry. Every view it opens fetches through fetcher.
func NewViewRegistry(fetcher domain.OfferFetcher, logger *slog.Logger, m *metrics.Metrics, cfg ViewRegistryConfig) *ViewRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewRegistry{
		fetcher: fetcher,
		logger:  logger,
		metrics: m,
		cfg:     cfg,
		now:     time.Now,
		views:   make(map[uuid.UUID]*viewEntry),
	}
}

// Open creates and mounts a new view.
func (r *ViewRegistry) Open(ctx context.Context) (uuid.UUID, *usecase.Directory, error) {
	id := uuid.New()
	dir := usecase.NewDirectory(r.fetcher, r.logger.With("view_id", id.String()), r.cfg.FetchTimeout)
	if err := dir.Mount(ctx); err != nil {
		return uuid.Nil, nil, fmt.Errorf("mount view: %w", err)
	}

	r.mu.Lock()
	r.views[id] = &viewEntry{dir: dir, lastSeen: r.now()}
	r.mu.Unlock()
	r.metrics.ViewOpened()
	return id, dir, nil
}

// Get returns the view with id and marks it as used.
func (r *ViewRegistry) Get(id uuid.UUID) (*usecase.Directory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.views[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.lastSeen = r.now()
	return e.dir, nil
}

// Close unmounts and forgets the view with id.
func (r *ViewRegistry) Close(id uuid.UUID) error {
	r.mu.Lock()
	e, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	e.dir.Unmount()
	r.metrics.ViewClosed()
	return nil
}

// Len returns the number of open views.
func (r *ViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep unmounts views idle for longer than the TTL and returns how many it closed.
func (r *ViewRegistry) Sweep() int {
	if r.cfg.TTL <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.cfg.TTL)

	r.mu.Lock()
	var expired []*usecase.Directory
	for id, e := range r.views {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.dir)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, dir := range expired {
		dir.Unmount()
		r.metrics.ViewClosed()
	}
	if len(expired) > 0 {
		r.logger.Debug("expired idle views", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *ViewRegistry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Shutdown unmounts every view, then waits up to ShutdownWait for their
// fetches to settle so nothing writes to the journal after it returns.
func (r *ViewRegistry) Shutdown() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[uuid.UUID]*viewEntry)
	r.mu.Unlock()

	for _, e := range views {
		e.dir.Unmount()
		r.metrics.ViewClosed()
	}

	wait := r.cfg.ShutdownWait
	if wait <= 0 {
		wait = defaultShutdownWait
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	for _, e := range views {
		select {
		case <-e.dir.Settled():
		case <-timer.C:
			r.logger.Warn("views still fetching at shutdown", "wait", wait.String())
			return
		}
	}
}
