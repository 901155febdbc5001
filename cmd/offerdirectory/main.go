package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sony/gobreaker/v2"

	"offerdirectory/config"
	_ "offerdirectory/docs"
	"offerdirectory/internal/adapters/offerapi"
	"offerdirectory/internal/adapters/render"
	delivery "offerdirectory/internal/delivery/http"
	"offerdirectory/internal/delivery/http/controllers"
	"offerdirectory/internal/delivery/http/middleware"
	"offerdirectory/internal/domain"
	"offerdirectory/internal/metrics"
	"offerdirectory/internal/repository/postgres"
	"offerdirectory/internal/services"
)

const (
	sweepInterval   = time.Minute
	queryTimeout    = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title Offer Directory API
// @version 1.0
// @description Browsable directory of discounted offers: fetch once per view, sort, paginate.
// @BasePath /
func main() {
	cfg, logger, err := config.Setup(os.Args[1:])
	slog.SetDefault(logger)
	if err != nil {
		flagErr := &flags.Error{}
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Stdout.WriteString(flagErr.Message + "\n")
			return
		}
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, "offerdirectory")

	// Fetch journal (optional)
	var journal domain.FetchLogRepository
	var fetchLogController *controllers.FetchLogController
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return err
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(ctx, queryTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			return err
		}
		logger.Info("connected to database")
		journal = postgres.NewFetchLogRepository(db)
		fetchLogController = controllers.NewFetchLogController(logger, services.NewFetchLogService(journal, queryTimeout))
	} else {
		logger.Info("DATABASE_URL not set, fetch journal disabled")
	}

	// Upstream
	breakerCfg := offerapi.DefaultBreakerConfig()
	breakerCfg.FailureThreshold = cfg.BreakerFailureThreshold
	breakerCfg.OpenTimeout = cfg.BreakerOpenTimeout
	breakerCfg.OnStateChange = func(from, to gobreaker.State) {
		logger.Warn("offer list breaker state changed", "from", from.String(), "to", to.String())
		m.SetBreakerState(int(to))
	}
	httpFetcher := offerapi.NewHTTPFetcher(&http.Client{Timeout: cfg.FetchTimeout}, cfg.OfferListURL)
	fetcher := services.NewJournaledFetcher(offerapi.NewBreakerFetcher(httpFetcher, breakerCfg), journal, m, logger, cfg.OfferListURL)

	// Views
	views := services.NewViewRegistry(fetcher, logger, m, services.ViewRegistryConfig{
		FetchTimeout: cfg.FetchTimeout,
		TTL:          cfg.ViewTTL,
	})
	// deferred after db.Close, so it runs first and waits out journal writes
	defer views.Shutdown()
	if cfg.ViewTTL > 0 {
		go views.Run(ctx, min(sweepInterval, cfg.ViewTTL))
	}

	renderer, err := render.NewDirectoryRenderer()
	if err != nil {
		return err
	}
	directoryController := controllers.NewDirectoryController(logger, views, renderer)
	directoryController.SecureCookie = cfg.Environment == "production"
	directoryController.CookieMaxAge = cfg.ViewTTL

	mux := delivery.NewRouter(directoryController, fetchLogController, reg)
	var handler http.Handler = mux
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}
	handler = middleware.Metrics(m, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "offer_list_url", cfg.OfferListURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
