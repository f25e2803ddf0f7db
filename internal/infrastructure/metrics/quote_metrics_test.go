package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/internal/infrastructure/metrics"
)

func TestQuoteMetrics(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	m := metrics.NewQuoteMetrics(registry)

	m.ObserveSource(entity.SourceResult{
		Source:   value.SourceGAIL,
		Status:   entity.SourceStatusOK,
		Quotes:   6,
		Rejected: 1,
	})
	m.ObserveSource(entity.SourceResult{
		Source: value.SourceMomentum,
		Status: entity.SourceStatusFailed,
	})
	m.ObserveAggregation(120*time.Millisecond, 9)
	m.ObserveFallback(value.SourceTurboRater, "not_configured")

	count, err := testutil.GatherAndCount(registry, "quotehub_aggregation_duration_seconds", "quotehub_ranked_quotes")
	rq.NoError(err)
	rq.Equal(2, count)

	expected := `
# HELP quotehub_source_quotes_total Quotes received per source, split into accepted and rejected.
# TYPE quotehub_source_quotes_total counter
quotehub_source_quotes_total{outcome="accepted",source="GAIL"} 6
quotehub_source_quotes_total{outcome="accepted",source="Momentum"} 0
quotehub_source_quotes_total{outcome="rejected",source="GAIL"} 1
quotehub_source_quotes_total{outcome="rejected",source="Momentum"} 0
`
	rq.NoError(testutil.GatherAndCompare(registry, strings.NewReader(expected), "quotehub_source_quotes_total"))

	expected = `
# HELP quotehub_vendor_fallbacks_total Vendor proxy responses served from mock data.
# TYPE quotehub_vendor_fallbacks_total counter
quotehub_vendor_fallbacks_total{reason="not_configured",source="TurboRater"} 1
`
	rq.NoError(testutil.GatherAndCompare(registry, strings.NewReader(expected), "quotehub_vendor_fallbacks_total"))
}
