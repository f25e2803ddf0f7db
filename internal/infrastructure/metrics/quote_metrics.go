package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
)

const namespace = "quotehub"

// QuoteMetrics exports fetch, aggregation and vendor fallback metrics.
type QuoteMetrics struct {
	sourceFetches       *prometheus.CounterVec
	sourceQuotes        *prometheus.CounterVec
	vendorFallbacks     *prometheus.CounterVec
	aggregationDuration prometheus.Histogram
	rankedQuotes        prometheus.Histogram
}

func NewQuoteMetrics(registerer prometheus.Registerer) *QuoteMetrics {
	factory := promauto.With(registerer)

	return &QuoteMetrics{
		sourceFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_fetches_total",
				Help:      "Quote fetches per source and outcome.",
			},
			[]string{"source", "status"},
		),
		sourceQuotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_quotes_total",
				Help:      "Quotes received per source, split into accepted and rejected.",
			},
			[]string{"source", "outcome"},
		),
		vendorFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vendor_fallbacks_total",
				Help:      "Vendor proxy responses served from mock data.",
			},
			[]string{"source", "reason"},
		),
		aggregationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregation_duration_seconds",
				Help:      "Time to fetch, deduplicate and rank quotes for one request.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		rankedQuotes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ranked_quotes",
				Help:      "Number of quotes left after deduplication.",
				Buckets:   []float64{0, 1, 2, 4, 8, 12, 16, 24},
			},
		),
	}
}

func (m *QuoteMetrics) ObserveSource(result entity.SourceResult) {
	source := result.Source.String()

	m.sourceFetches.WithLabelValues(source, string(result.Status)).Inc()
	m.sourceQuotes.WithLabelValues(source, "accepted").Add(float64(result.Quotes))
	m.sourceQuotes.WithLabelValues(source, "rejected").Add(float64(result.Rejected))
}

func (m *QuoteMetrics) ObserveAggregation(duration time.Duration, ranked int) {
	m.aggregationDuration.Observe(duration.Seconds())
	m.rankedQuotes.Observe(float64(ranked))
}

func (m *QuoteMetrics) ObserveFallback(source value.Source, reason string) {
	m.vendorFallbacks.WithLabelValues(source.String(), reason).Inc()
}
