// Package gail talks to GAIL, the AI-assisted rating engine.
package gail

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/samber/lo"

	"quotehub/internal/config"
	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/internal/infrastructure/vendors"
)

const quotesPath = "/v1/quotes"

type Client struct {
	cfg        config.GAIL
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.GAIL, logFieldMaxLen int) Client {
	transport := vendors.NewTransport(vendors.TransportOptions{
		Timeout:        cfg.Timeout,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		LogFieldMaxLen: logFieldMaxLen,
	})

	return Client{
		cfg:        cfg,
		httpClient: vendors.NewHTTPClient(transport, cfg.Timeout),
		now:        time.Now,
	}
}

func (c Client) Source() value.Source {
	return value.SourceGAIL
}

func (c Client) Configured() bool {
	return c.cfg.Configured()
}

func (c Client) Quote(ctx context.Context, request entity.QuoteRequest) (entity.VendorResponse, error) {
	headers := http.Header{}
	headers.Set("X-Api-Key", c.cfg.APIKey)

	var response quotesResponse

	if err := vendors.PostJSON(ctx, c.httpClient, c.cfg.BaseURL+quotesPath, headers, newQuotesRequest(request), &response); err != nil {
		return entity.VendorResponse{}, fmt.Errorf("vendors.PostJSON: %w", err)
	}

	now := c.now()

	result := entity.VendorResponse{
		Quotes: lo.Map(response.Quotes, func(q quote, _ int) entity.Quote {
			return q.toQuote(now)
		}),
	}

	if response.Insights != nil {
		result.AIInsights = &entity.AIInsights{
			Summary:            response.Insights.Summary,
			TopPick:            response.Insights.TopPick,
			MarketTrend:        response.Insights.MarketTrend,
			SavingsOpportunity: int64(math.Round(response.Insights.SavingsOpportunity)),
			Factors:            response.Insights.Factors,
		}
	}

	return result, nil
}

type quotesRequest struct {
	Driver   driver    `json:"driver"`
	Vehicles []vehicle `json:"vehicles"`
	Coverage coverage  `json:"coverage"`
}

type driver struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
}

type vehicle struct {
	Year          int    `json:"year"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	VIN           string `json:"vin,omitempty"`
	Usage         string `json:"usage"`
	AnnualMileage int    `json:"annualMileage"`
}

type coverage struct {
	Liability     string `json:"liability"`
	Collision     int64  `json:"collision"`
	Comprehensive int64  `json:"comprehensive"`
	Uninsured     bool   `json:"uninsured"`
	Medical       int64  `json:"medical"`
}

type quotesResponse struct {
	Quotes   []quote   `json:"quotes"`
	Insights *insights `json:"insights"`
}

type quote struct {
	QuoteID          string   `json:"quoteId"`
	Carrier          string   `json:"carrier"`
	MonthlyPremium   float64  `json:"monthlyPremium"`
	SixMonthPremium  float64  `json:"sixMonthPremium"`
	AnnualPremium    float64  `json:"annualPremium"`
	Rating           string   `json:"rating"`
	Discounts        []string `json:"discounts"`
	Coverage         coverage `json:"coverage"`
	AIScore          *float64 `json:"aiScore"`
	Recommendation   string   `json:"recommendation"`
	PredictedRenewal *float64 `json:"predictedRenewal"`
	RiskScore        *float64 `json:"riskScore"`
}

type insights struct {
	Summary            string   `json:"summary"`
	TopPick            string   `json:"topPick"`
	MarketTrend        string   `json:"marketTrend"`
	SavingsOpportunity float64  `json:"savingsOpportunity"`
	Factors            []string `json:"factors"`
}

func newQuotesRequest(request entity.QuoteRequest) quotesRequest {
	return quotesRequest{
		Driver: driver{
			FirstName:   request.FirstName,
			LastName:    request.LastName,
			DateOfBirth: request.DateOfBirth,
			Email:       request.Email,
			Phone:       request.Phone,
			Address:     request.Address,
			City:        request.City,
			State:       request.State,
			ZipCode:     request.ZipCode,
		},
		Vehicles: lo.Map(request.Vehicles, func(v entity.Vehicle, _ int) vehicle {
			return vehicle(v)
		}),
		Coverage: coverage{
			Liability:     request.Coverage.Liability.String(),
			Collision:     request.Coverage.Collision,
			Comprehensive: request.Coverage.Comprehensive,
			Uninsured:     request.Coverage.Uninsured,
			Medical:       request.Coverage.Medical,
		},
	}
}

func (q quote) toQuote(now time.Time) entity.Quote {
	result := entity.Quote{
		Carrier: q.Carrier,
		Premium: entity.Premium{
			Monthly:  int64(math.Round(q.MonthlyPremium)),
			SixMonth: int64(math.Round(q.SixMonthPremium)),
			Annual:   int64(math.Round(q.AnnualPremium)),
		},
		Coverage:       entity.Coverage(q.Coverage),
		Discounts:      q.Discounts,
		Rating:         value.Rating(q.Rating),
		QuoteID:        q.QuoteID,
		Source:         value.SourceGAIL,
		Timestamp:      now,
		AIScore:        q.AIScore,
		Recommendation: q.Recommendation,
		RiskScore:      q.RiskScore,
	}

	if q.PredictedRenewal != nil {
		result.PredictedRenewal = lo.ToPtr(int64(math.Round(*q.PredictedRenewal)))
	}

	return result
}
