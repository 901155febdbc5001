package config

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv clears every key Load reads, then applies vals.
func setEnv(t *testing.T, vals map[string]string) {
	t.Helper()
	for _, k := range []string{
		"GO_ENV", "PORT", "DATABASE_URL", "OFFER_LIST_URL", "FETCH_TIMEOUT", "VIEW_TTL",
		"CORS_ALLOWED_ORIGINS", "BREAKER_FAILURE_THRESHOLD", "BREAKER_OPEN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
	// production skips the .env lookup
	t.Setenv("GO_ENV", "production")
	for k, v := range vals {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Empty(t, cfg.DBUrl)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, DefaultViewTTL, cfg.ViewTTL)
	assert.Equal(t, uint32(DefaultBreakerFailureThreshold), cfg.BreakerFailureThreshold)
	assert.Equal(t, DefaultBreakerOpenTimeout, cfg.BreakerOpenTimeout)
	assert.Nil(t, cfg.CORSAllowedOrigins)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingOfferListURL)
}

func TestLoad_FromEnv(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":                      "9090",
		"DATABASE_URL":              "postgres://localhost/offers",
		"OFFER_LIST_URL":            "http://upstream/offers",
		"FETCH_TIMEOUT":             "3s",
		"VIEW_TTL":                  "0",
		"CORS_ALLOWED_ORIGINS":      "http://a.test, http://b.test,,",
		"BREAKER_FAILURE_THRESHOLD": "2",
		"BREAKER_OPEN_TIMEOUT":      "1m",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/offers", cfg.DBUrl)
	assert.Equal(t, "http://upstream/offers", cfg.OfferListURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, time.Duration(0), cfg.ViewTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, uint32(2), cfg.BreakerFailureThreshold)
	assert.Equal(t, time.Minute, cfg.BreakerOpenTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"FETCH_TIMEOUT", "soon"},
		{"VIEW_TTL", "-1m"},
		{"BREAKER_OPEN_TIMEOUT", "10"},
		{"BREAKER_FAILURE_THRESHOLD", "0"},
		{"BREAKER_FAILURE_THRESHOLD", "many"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setEnv(t, map[string]string{tt.key: tt.value})
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestParseFlags_OverridesEnv(t *testing.T) {
	setEnv(t, map[string]string{"PORT": "9090", "OFFER_LIST_URL": "http://env/offers"})
	cfg, err := Load()
	require.NoError(t, err)

	opts, err := ParseFlags([]string{
		"--offer-list-url", "http://flag/offers",
		"--fetch-timeout", "500ms",
		"--cors-allowed-origins", "http://x.test",
		"--cors-allowed-origins", "http://y.test",
		"--breaker-failure-threshold", "9",
	})
	require.NoError(t, err)
	opts.Apply(cfg)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://flag/offers", cfg.OfferListURL)
	assert.Equal(t, 500*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, DefaultViewTTL, cfg.ViewTTL)
	assert.Equal(t, []string{"http://x.test", "http://y.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, uint32(9), cfg.BreakerFailureThreshold)
}

func TestParseFlags_Help(t *testing.T) {
	_, err := ParseFlags([]string{"--help"})

	var flagErr *flags.Error
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, flags.ErrHelp, flagErr.Type)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"--nope"})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantDebug bool
		wantJSON  bool
	}{
		{"development default", "development", "", false, false},
		{"development debug", "", "DEBUG", true, false},
		{"production", "production", "warn", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.env, tt.level)
			logger.Debug("debug line")
			logger.Error("error line", "k", "v")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug line"))
			assert.Contains(t, out, "error line")
			assert.Equal(t, tt.wantJSON, strings.HasPrefix(out, "{"))
		})
	}
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

// unsetEnv removes keys for the duration of the test so a .env file can set them.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestSetup_DotEnvReachesLogger(t *testing.T) {
	setEnv(t, nil)
	unsetEnv(t, "GO_ENV", "LOG_LEVEL", "OFFER_LIST_URL")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nOFFER_LIST_URL=http://dotenv/offers\n"), 0o600))
	t.Chdir(dir)

	cfg, logger, err := Setup(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://dotenv/offers", cfg.OfferListURL)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetup_Errors(t *testing.T) {
	t.Run("missing offer list url", func(t *testing.T) {
		setEnv(t, nil)
		_, logger, err := Setup(nil)
		require.ErrorIs(t, err, ErrMissingOfferListURL)
		require.NotNil(t, logger)
	})

	t.Run("help", func(t *testing.T) {
		setEnv(t, map[string]string{"OFFER_LIST_URL": "http://env/offers"})
		_, logger, err := Setup([]string{"--help"})
		var flagErr *flags.Error
		require.True(t, errors.As(err, &flagErr))
		assert.Equal(t, flags.ErrHelp, flagErr.Type)
		require.NotNil(t, logger)
	})

	t.Run("flag fills required url", func(t *testing.T) {
		setEnv(t, nil)
		cfg, _, err := Setup([]string{"--offer-list-url", "http://flag/offers"})
		require.NoError(t, err)
		assert.Equal(t, "http://flag/offers", cfg.OfferListURL)
	})
}
