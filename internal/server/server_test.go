package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"quotehub/internal/config"
	"quotehub/internal/domain/service/proxy"
	"quotehub/internal/domain/service/quote"
	"quotehub/internal/infrastructure/quoteapi"
	"quotehub/internal/infrastructure/vendors/gail"
	"quotehub/internal/infrastructure/vendors/momentum"
	"quotehub/internal/infrastructure/vendors/turborater"
	"quotehub/internal/server"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/rest"
	"quotehub/pkg/tests"
)

func validRequest() rest.QuoteRequest {
	return rest.QuoteRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1988-04-12",
		Email:       "jane.doe@example.com",
		Phone:       "512-555-0142",
		Address:     "1 Congress Ave",
		City:        "Austin",
		State:       "TX",
		ZipCode:     "78701",
		Vehicles: []rest.Vehicle{{
			Year:          2021,
			Make:          "Toyota",
			Model:         "Camry",
			Usage:         "commute",
			AnnualMileage: 12000,
		}},
		Coverage: rest.CoverageRequest{
			Liability:     "100/300/100",
			Collision:     500,
			Comprehensive: 500,
			Uninsured:     true,
			Medical:       5000,
		},
	}
}

// newTestServer wires the whole service with unconfigured vendors, so every
// vendor route answers with its mock quotes. quoteAPIURL overrides where the
// fetcher sends its requests; empty means this same server.
func newTestServer(t *testing.T, quoteAPIURL string) *httptest.Server {
	t.Helper()

	var handler http.Handler

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	if quoteAPIURL == "" {
		quoteAPIURL = srv.URL
	}

	proxyService := proxy.NewService(
		turborater.NewClient(config.TurboRater{}, 0),
		momentum.NewClient(config.Momentum{}, 0),
		gail.NewClient(config.GAIL{}, 0),
	)

	quoteService := quote.NewService(
		quoteapi.NewClient(quoteAPIURL, &http.Client{Timeout: 5 * time.Second}),
	)

	handler = server.NewRouter(
		server.NewServer(
			server.NewQuoteServer(quoteService),
			server.NewVendorServer(proxyService),
		),
		1024,
	)

	return srv
}

func TestPostV1Quotes(t *testing.T) {
	rq := require.New(t)

	srv := newTestServer(t, "")
	client := tests.NewAPIClient(srv.URL, srv.Client())

	var response rest.QuotesResponse

	resp, err := client.Post(context.Background(), "/v1/quotes", nil, validRequest(), &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.NotEmpty(resp.Header.Get("X-Trace-Id"))

	// 18 mock quotes, Progressive, State Farm and Geico appear twice.
	rq.Len(response.Quotes, 15)

	top := response.Quotes[0]
	rq.Equal("USAA", top.Carrier)
	rq.Equal(1, top.Rank)
	rq.Equal(92, top.Score)
	rq.Equal("BEST VALUE", top.Badge)
	rq.LessOrEqual(len(top.Reasons), 3)

	for i, q := range response.Quotes {
		rq.Equal(i+1, q.Rank)

		if i > 0 {
			rq.LessOrEqual(q.Score, response.Quotes[i-1].Score)
		}
	}

	general, ok := lo.Find(response.Quotes, func(q rest.RankedQuote) bool { return q.Carrier == "The General" })
	rq.True(ok)
	rq.Equal("LOWEST PRICE", general.Badge)

	rq.Equal([]rest.SourceResult{
		{Source: "TurboRater", Status: "ok", Quotes: 5},
		{Source: "Momentum", Status: "ok", Quotes: 6},
		{Source: "GAIL", Status: "ok", Quotes: 7},
	}, response.Sources)
}

func TestPostV1QuotesAllVendorsDown(t *testing.T) {
	rq := require.New(t)

	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	srv := newTestServer(t, downURL)
	client := tests.NewAPIClient(srv.URL, srv.Client())

	var response rest.QuotesResponse

	resp, err := client.Post(context.Background(), "/v1/quotes", nil, validRequest(), &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.NotNil(response.Quotes)
	rq.Empty(response.Quotes)
	rq.Len(response.Sources, 3)

	for _, source := range response.Sources {
		rq.Equal("failed", source.Status)
		rq.NotEmpty(source.Error)
	}
}

func TestPostV1QuotesInvalidRequest(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(r *rest.QuoteRequest)
		wantCode failure.ErrorCode
	}{
		{
			name:     "missing email",
			mutate:   func(r *rest.QuoteRequest) { r.Email = "" },
			wantCode: errcodes.ValidationError,
		},
		{
			name:     "no vehicles",
			mutate:   func(r *rest.QuoteRequest) { r.Vehicles = nil },
			wantCode: errcodes.ValidationError,
		},
		{
			name:     "short vin",
			mutate:   func(r *rest.QuoteRequest) { r.Vehicles[0].VIN = "1HGCM" },
			wantCode: errcodes.ValidationError,
		},
		{
			name:     "liability without slash",
			mutate:   func(r *rest.QuoteRequest) { r.Coverage.Liability = "100" },
			wantCode: errcodes.InvalidLiability,
		},
		{
			name:     "liability with letters",
			mutate:   func(r *rest.QuoteRequest) { r.Coverage.Liability = "100/abc/50" },
			wantCode: errcodes.InvalidLiability,
		},
	}

	srv := newTestServer(t, "")
	client := tests.NewAPIClient(srv.URL, srv.Client())

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			request := validRequest()
			tt.mutate(&request)

			for _, endpoint := range []string{"/v1/quotes", "/api/momentum/quote"} {
				var errResponse rest.Error

				resp, err := client.Post(context.Background(), endpoint, nil, request, nil, &errResponse)
				rq.NoError(err)
				rq.Equal(http.StatusBadRequest, resp.StatusCode, endpoint)
				rq.Equal(rest.ErrorCode(tt.wantCode), errResponse.Code, endpoint)
				rq.NotEmpty(errResponse.SupportID)
			}
		})
	}
}

func TestPostVendorQuote(t *testing.T) {
	cases := []struct {
		endpoint     string
		wantQuotes   int
		wantSource   string
		wantInsights bool
	}{
		{endpoint: "/api/turborrater/quote", wantQuotes: 5, wantSource: "TurboRater"},
		{endpoint: "/api/turborater/quote", wantQuotes: 5, wantSource: "TurboRater"},
		{endpoint: "/api/momentum/quote", wantQuotes: 6, wantSource: "Momentum"},
		{endpoint: "/api/gail/quote", wantQuotes: 7, wantSource: "GAIL", wantInsights: true},
	}

	srv := newTestServer(t, "")
	client := tests.NewAPIClient(srv.URL, srv.Client())

	for _, tt := range cases {
		t.Run(tt.endpoint, func(t *testing.T) {
			rq := require.New(t)

			var response rest.VendorQuotesResponse

			resp, err := client.Post(context.Background(), tt.endpoint, nil, validRequest(), &response, nil)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)

			rq.True(response.Mocked)
			rq.Len(response.Quotes, tt.wantQuotes)
			rq.Equal(tt.wantInsights, response.AIInsights != nil)

			for _, q := range response.Quotes {
				rq.Equal(tt.wantSource, q.Source)
				rq.Equal("100/300/100", q.Coverage.Liability)
				rq.NotEmpty(q.QuoteID)
				rq.NotEmpty(q.Timestamp)
			}
		})
	}
}

func TestPostVendorQuoteMalformedJSON(t *testing.T) {
	rq := require.New(t)

	srv := newTestServer(t, "")
	client := tests.NewAPIClient(srv.URL, srv.Client())

	var errResponse rest.Error

	resp, err := client.PostJSON(context.Background(), "/api/gail/quote", nil, `{"firstName":`, nil, &errResponse)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.ValidationError), errResponse.Code)
}
