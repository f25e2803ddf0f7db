// Package quote fetches vendor quotes and turns them into a ranked list.
package quote

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/service/ranking"
	"quotehub/internal/domain/value"
	"quotehub/pkg/contextx"
	"quotehub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type QuoteAPI interface {
	Quotes(ctx context.Context, source value.Source, request entity.QuoteRequest) ([]entity.Quote, error)
}

type Metrics interface {
	ObserveSource(result entity.SourceResult)
	ObserveAggregation(duration time.Duration, ranked int)
}

type Service struct {
	api     QuoteAPI
	metrics Metrics
	tracer  trace.Tracer
}

func NewService(api QuoteAPI) *Service {
	return &Service{
		api:     api,
		metrics: nopMetrics{},
		tracer:  otel.Tracer("quotehub/quote"),
	}
}

func (s *Service) WithMetrics(metrics Metrics) *Service {
	s.metrics = metrics
	return s
}

// FetchAll queries every source concurrently. A failing source contributes
// an empty list and a failed SourceResult; it never fails the others. No
// timeout is imposed here beyond the one on the QuoteAPI's HTTP client.
func (s *Service) FetchAll(ctx context.Context, request entity.QuoteRequest) entity.FetchResult {
	ctx, span := s.tracer.Start(ctx, "quote.FetchAll")
	defer span.End()

	sources := value.Sources()
	lists := make([][]entity.Quote, len(sources))
	results := make([]entity.SourceResult, len(sources))

	var g errgroup.Group

	for i, source := range sources {
		g.Go(func() error {
			lists[i], results[i] = s.fetchSource(ctx, source, request)
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // fetchSource reports failures in its result

	return entity.FetchResult{
		TurboRater: lists[0],
		Momentum:   lists[1],
		GAIL:       lists[2],
		Sources:    results,
	}
}

func (s *Service) fetchSource(
	ctx context.Context,
	source value.Source,
	request entity.QuoteRequest,
) ([]entity.Quote, entity.SourceResult) {
	ctx, span := s.tracer.Start(ctx, "quote.fetchSource",
		trace.WithAttributes(attribute.String("quote.source", source.String())),
	)
	defer span.End()

	log := logger(ctx).With(slog.String(logx.FieldSource, source.String()))
	result := entity.SourceResult{Source: source, Status: entity.SourceStatusOK}

	quotes, err := s.api.Quotes(ctx, source, request)
	if err != nil {
		log.Warn("source fetch failed, continuing without it", logx.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		result.Status = entity.SourceStatusFailed
		result.Error = err.Error()
		s.metrics.ObserveSource(result)

		return []entity.Quote{}, result
	}

	accepted := make([]entity.Quote, 0, len(quotes))

	for _, q := range quotes {
		if q.Source == "" {
			q.Source = source
		}

		if err := q.Validate(); err != nil {
			log.Warn("quote rejected",
				slog.String(logx.FieldCarrier, q.Carrier),
				slog.String(logx.FieldQuoteID, q.QuoteID),
				logx.Error(err),
			)

			result.Rejected++

			continue
		}

		accepted = append(accepted, q)
	}

	result.Quotes = len(accepted)
	span.SetAttributes(
		attribute.Int("quote.accepted", result.Quotes),
		attribute.Int("quote.rejected", result.Rejected),
	)
	s.metrics.ObserveSource(result)

	log.Debug("source fetched", slog.Int(logx.FieldQuoteCount, result.Quotes))

	return accepted, result
}

// CombineAndRank merges the three source lists into a ranked list without
// any I/O.
func (s *Service) CombineAndRank(turboRater, momentum, gail []entity.Quote) []entity.RankedQuote {
	return ranking.CombineAndRank(turboRater, momentum, gail)
}

// GenerateRealQuotes fetches and ranks in one call. An empty Quotes slice
// means no quotes were found. Sources tells why.
func (s *Service) GenerateRealQuotes(ctx context.Context, request entity.QuoteRequest) entity.Aggregation {
	ctx, span := s.tracer.Start(ctx, "quote.GenerateRealQuotes")
	defer span.End()

	start := time.Now()

	fetched := s.FetchAll(ctx, request)
	ranked := s.CombineAndRank(fetched.Lists())

	s.metrics.ObserveAggregation(time.Since(start), len(ranked))
	span.SetAttributes(attribute.Int("quote.ranked", len(ranked)))

	logger(ctx).Info("quotes ranked",
		slog.Int(logx.FieldQuoteCount, len(ranked)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return entity.Aggregation{
		Quotes:  ranked,
		Sources: fetched.Sources,
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveSource(entity.SourceResult)     {}
func (nopMetrics) ObserveAggregation(time.Duration, int) {}
