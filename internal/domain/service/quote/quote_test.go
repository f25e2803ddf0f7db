package quote_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/service/quote"
	"quotehub/internal/domain/value"
)

type quoteAPIStub struct {
	mu       sync.Mutex
	quotes   map[value.Source][]entity.Quote
	errs     map[value.Source]error
	requests []value.Source
}

func (s *quoteAPIStub) Quotes(_ context.Context, source value.Source, _ entity.QuoteRequest) ([]entity.Quote, error) {
	s.mu.Lock()
	s.requests = append(s.requests, source)
	s.mu.Unlock()

	if err := s.errs[source]; err != nil {
		return nil, err
	}

	return s.quotes[source], nil
}

type metricsStub struct {
	mu      sync.Mutex
	sources []entity.SourceResult
	ranked  []int
}

func (m *metricsStub) ObserveSource(result entity.SourceResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sources = append(m.sources, result)
}

func (m *metricsStub) ObserveAggregation(_ time.Duration, ranked int) {
	m.ranked = append(m.ranked, ranked)
}

func newQuote(carrier string, source value.Source, monthly int64, rating value.Rating) entity.Quote {
	return entity.Quote{
		Carrier: carrier,
		Premium: entity.Premium{Monthly: monthly, SixMonth: monthly * 6, Annual: monthly * 12},
		Coverage: entity.Coverage{
			Liability:     "100/300/100",
			Collision:     500,
			Comprehensive: 500,
			Uninsured:     true,
			Medical:       5000,
		},
		Rating: rating,
		Source: source,
	}
}

func quoteRequest() entity.QuoteRequest {
	liability, _ := value.ParseLiability("100/300/100")

	return entity.QuoteRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		State:     "TX",
		ZipCode:   "78701",
		Vehicles:  []entity.Vehicle{{Year: 2021, Make: "Toyota", Model: "Camry", Usage: "commute", AnnualMileage: 12000}},
		Coverage:  entity.CoverageRequest{Liability: liability, Collision: 500, Comprehensive: 500},
	}
}

func TestFetchAllAllSourcesFail(t *testing.T) {
	rq := require.New(t)

	errNetwork := errors.New("dial tcp: connection refused")
	api := &quoteAPIStub{errs: map[value.Source]error{
		value.SourceTurboRater: errNetwork,
		value.SourceMomentum:   errNetwork,
		value.SourceGAIL:       errNetwork,
	}}

	svc := quote.NewService(api)

	fetched := svc.FetchAll(context.Background(), quoteRequest())

	rq.Equal([]entity.Quote{}, fetched.TurboRater)
	rq.Equal([]entity.Quote{}, fetched.Momentum)
	rq.Equal([]entity.Quote{}, fetched.GAIL)
	rq.ElementsMatch(value.Sources(), api.requests)

	for _, result := range fetched.Sources {
		rq.Equal(entity.SourceStatusFailed, result.Status)
		rq.Equal(errNetwork.Error(), result.Error)
	}

	rq.Empty(svc.CombineAndRank(fetched.TurboRater, fetched.Momentum, fetched.GAIL))
}

func TestFetchAllIsolatesFailingSource(t *testing.T) {
	rq := require.New(t)

	api := &quoteAPIStub{
		quotes: map[value.Source][]entity.Quote{
			value.SourceTurboRater: {newQuote("Progressive", value.SourceTurboRater, 142, "A+")},
			value.SourceMomentum:   {newQuote("Travelers", value.SourceMomentum, 145, "A++")},
		},
		errs: map[value.Source]error{
			value.SourceGAIL: errors.New("gail: status 502"),
		},
	}
	metrics := &metricsStub{}

	svc := quote.NewService(api).WithMetrics(metrics)

	aggregation := svc.GenerateRealQuotes(context.Background(), quoteRequest())

	rq.Len(aggregation.Quotes, 2)
	rq.Equal("Travelers", aggregation.Quotes[0].Carrier)
	rq.Equal("Progressive", aggregation.Quotes[1].Carrier)

	rq.Equal([]entity.SourceResult{
		{Source: value.SourceTurboRater, Status: entity.SourceStatusOK, Quotes: 1},
		{Source: value.SourceMomentum, Status: entity.SourceStatusOK, Quotes: 1},
		{Source: value.SourceGAIL, Status: entity.SourceStatusFailed, Error: "gail: status 502"},
	}, aggregation.Sources)

	rq.Len(metrics.sources, 3)
	rq.Equal([]int{2}, metrics.ranked)
}

func TestFetchAllRejectsMalformedQuotes(t *testing.T) {
	rq := require.New(t)

	malformed := newQuote("Geico", "", 118, "A++")
	malformed.Coverage.Liability = "100"

	unlabelled := newQuote("Erie", "", 129, "A+")

	api := &quoteAPIStub{
		quotes: map[value.Source][]entity.Quote{
			value.SourceGAIL: {malformed, unlabelled},
		},
	}

	fetched := quote.NewService(api).FetchAll(context.Background(), quoteRequest())

	rq.Len(fetched.GAIL, 1)
	rq.Equal("Erie", fetched.GAIL[0].Carrier)
	rq.Equal(value.SourceGAIL, fetched.GAIL[0].Source)

	gail, ok := lo.Find(fetched.Sources, func(r entity.SourceResult) bool { return r.Source == value.SourceGAIL })
	rq.True(ok)
	rq.Equal(entity.SourceResult{Source: value.SourceGAIL, Status: entity.SourceStatusOK, Quotes: 1, Rejected: 1}, gail)
}

func TestGenerateRealQuotesDeduplicatesAcrossSources(t *testing.T) {
	rq := require.New(t)

	erieGAIL := newQuote("Erie Insurance", value.SourceGAIL, 129, "A+")
	erieGAIL.AIScore = lo.ToPtr(96.0)

	api := &quoteAPIStub{
		quotes: map[value.Source][]entity.Quote{
			value.SourceTurboRater: {newQuote("Erie Insurance", value.SourceTurboRater, 150, "A")},
			value.SourceGAIL:       {erieGAIL},
		},
	}

	aggregation := quote.NewService(api).GenerateRealQuotes(context.Background(), quoteRequest())

	rq.Len(aggregation.Quotes, 1)
	rq.Equal(int64(129), aggregation.Quotes[0].Premium.Monthly)
	rq.Equal(value.BadgeBestValue, aggregation.Quotes[0].Badge)
	rq.Equal(1, aggregation.Quotes[0].Rank)
}
