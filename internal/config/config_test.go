package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quotehub/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TURBORATER_API_KEY", "")
	t.Setenv("MOMENTUM_CLIENT_ID", "")
	t.Setenv("GAIL_API_KEY", "")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("http://localhost:8080", cfg.QuoteAPI.BaseURL)
	rq.False(cfg.TurboRater.Configured())
	rq.False(cfg.Momentum.Configured())
	rq.False(cfg.GAIL.Configured())
}

func TestLoadVendorCredentials(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TURBORATER_API_KEY", "tr-key")
	t.Setenv("TURBORATER_AGENCY_ID", "agency-7")
	t.Setenv("MOMENTUM_CLIENT_ID", "client")
	t.Setenv("MOMENTUM_CLIENT_SECRET", "secret")
	t.Setenv("GAIL_API_KEY", "gail-key")
	t.Setenv("GAIL_RATE_LIMIT", "0.5")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.True(cfg.TurboRater.Configured())
	rq.True(cfg.Momentum.Configured())
	rq.True(cfg.GAIL.Configured())
	rq.InDelta(0.5, cfg.GAIL.RateLimit, 0)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
}
