package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Defaults for optional settings.
const (
	DefaultPort                    = "8080"
	DefaultFetchTimeout            = 10 * time.Second
	DefaultViewTTL                 = 30 * time.Minute
	DefaultBreakerFailureThreshold = 5
	DefaultBreakerOpenTimeout      = 30 * time.Second
)

// ErrMissingOfferListURL is returned when no upstream endpoint is configured.
var ErrMissingOfferListURL = errors.New("OFFER_LIST_URL is required")

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	// DBUrl enables the fetch journal when set.
	DBUrl        string
	OfferListURL string
	FetchTimeout time.Duration
	// ViewTTL is how long an untouched view stays mounted; zero keeps views forever.
	ViewTTL                 time.Duration
	CORSAllowedOrigins      []string
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration
}

// Options are the command line flags. A set flag overrides its environment variable.
type Options struct {
	Port                    string        `long:"port" description:"HTTP listen port (PORT)"`
	DatabaseURL             string        `long:"database-url" description:"Postgres URL for the fetch journal (DATABASE_URL)"`
	OfferListURL            string        `long:"offer-list-url" description:"Upstream offer list endpoint (OFFER_LIST_URL)"`
	FetchTimeout            time.Duration `long:"fetch-timeout" description:"Deadline for one offer list fetch (FETCH_TIMEOUT)"`
	ViewTTL                 time.Duration `long:"view-ttl" description:"Idle time before a view is unmounted (VIEW_TTL)"`
	CORSAllowedOrigins      []string      `long:"cors-allowed-origins" description:"A list of allowed origins for CORS (CORS_ALLOWED_ORIGINS)"`
	BreakerFailureThreshold uint32        `long:"breaker-failure-threshold" description:"Consecutive fetch failures that open the breaker (BREAKER_FAILURE_THRESHOLD)"`
	BreakerOpenTimeout      time.Duration `long:"breaker-open-timeout" description:"How long the breaker stays open (BREAKER_OPEN_TIMEOUT)"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:  env,
		Port:         os.Getenv("PORT"),
		DBUrl:        os.Getenv("DATABASE_URL"),
		OfferListURL: os.Getenv("OFFER_LIST_URL"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	var err error
	if cfg.FetchTimeout, err = durationEnv("FETCH_TIMEOUT", DefaultFetchTimeout); err != nil {
		return nil, err
	}
	if cfg.ViewTTL, err = durationEnv("VIEW_TTL", DefaultViewTTL); err != nil {
		return nil, err
	}
	if cfg.BreakerOpenTimeout, err = durationEnv("BREAKER_OPEN_TIMEOUT", DefaultBreakerOpenTimeout); err != nil {
		return nil, err
	}
	cfg.BreakerFailureThreshold = DefaultBreakerFailureThreshold
	if s := os.Getenv("BREAKER_FAILURE_THRESHOLD"); s != "" {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("BREAKER_FAILURE_THRESHOLD: must be a positive integer, got %q", s)
		}
		cfg.BreakerFailureThreshold = uint32(n)
	}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		cfg.CORSAllowedOrigins = splitList(s)
	}

	return cfg, nil
}

// ParseFlags parses args into Options. It returns flags.ErrHelp (wrapped in
// *flags.Error) when help was requested.
func ParseFlags(args []string) (Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "offerdirectory"
	if _, err := parser.ParseArgs(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Apply overrides cfg with every flag that was set.
func (o Options) Apply(cfg *Config) {
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.DatabaseURL != "" {
		cfg.DBUrl = o.DatabaseURL
	}
	if o.OfferListURL != "" {
		cfg.OfferListURL = o.OfferListURL
	}
	if o.FetchTimeout > 0 {
		cfg.FetchTimeout = o.FetchTimeout
	}
	if o.ViewTTL > 0 {
		cfg.ViewTTL = o.ViewTTL
	}
	if len(o.CORSAllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = o.CORSAllowedOrigins
	}
	if o.BreakerFailureThreshold > 0 {
		cfg.BreakerFailureThreshold = o.BreakerFailureThreshold
	}
	if o.BreakerOpenTimeout > 0 {
		cfg.BreakerOpenTimeout = o.BreakerOpenTimeout
	}
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.OfferListURL == "" {
		return ErrMissingOfferListURL
	}
	return nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, s)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Setup loads the environment (including .env), builds the logger from it,
// applies command line flags and validates the result. The logger is built
// after Load so LOG_LEVEL and GO_ENV from .env take effect. On a flag error the
// returned logger is still usable.
func Setup(args []string) (*Config, *slog.Logger, error) {
	cfg, err := Load()
	logger := NewLogger()
	if err != nil {
		return nil, logger, err
	}
	opts, err := ParseFlags(args)
	if err != nil {
		return nil, logger, err
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, logger, err
	}
	return cfg, logger, nil
}
