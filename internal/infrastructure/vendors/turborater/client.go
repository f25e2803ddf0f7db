// Package turborater talks to the TurboRater comparative rater.
package turborater

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

const ratePath = "/v1/rate/auto"

type Client struct {
	cfg        config.TurboRater
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.TurboRater, logFieldMaxLen int) Client {
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
	return value.SourceTurboRater
}

func (c Client) Configured() bool {
	return c.cfg.Configured()
}

// Quote makes a single rating call. TurboRater returns one entry per carrier
// it could rate.
func (c Client) Quote(ctx context.Context, request entity.QuoteRequest) (entity.VendorResponse, error) {
	headers := http.Header{}
	headers.Set("X-Api-Key", c.cfg.APIKey)
	headers.Set("X-Agency-Id", c.cfg.AgencyID)

	var response rateResponse

	if err := vendors.PostJSON(ctx, c.httpClient, c.cfg.BaseURL+ratePath, headers, newRateRequest(request), &response); err != nil {
		return entity.VendorResponse{}, fmt.Errorf("vendors.PostJSON: %w", err)
	}

	now := c.now()

	return entity.VendorResponse{
		Quotes: lo.Map(response.Carriers, func(r carrierRate, _ int) entity.Quote {
			return r.toQuote(now)
		}),
	}, nil
}

type rateRequest struct {
	Applicant applicant     `json:"applicant"`
	Vehicles  []vehicle     `json:"vehicles"`
	Coverage  coverageLimit `json:"coverage"`
}

type applicant struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth string  `json:"dob"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     address `json:"address"`
}

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type vehicle struct {
	Year        int    `json:"year"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	VIN         string `json:"vin,omitempty"`
	Use         string `json:"use"`
	AnnualMiles int    `json:"annualMiles"`
}

type coverageLimit struct {
	LiabilityLimits         string `json:"liabilityLimits"`
	CollisionDeductible     int64  `json:"collisionDeductible"`
	ComprehensiveDeductible int64  `json:"comprehensiveDeductible"`
	UninsuredMotorist       bool   `json:"uninsuredMotorist"`
	MedPay                  int64  `json:"medPay"`
}

type rateResponse struct {
	Carriers []carrierRate `json:"carriers"`
}

type carrierRate struct {
	CarrierName     string        `json:"carrierName"`
	MonthlyPremium  float64       `json:"monthlyPremium"`
	SixMonthPremium float64       `json:"sixMonthPremium"`
	AnnualPremium   float64       `json:"annualPremium"`
	AMBestRating    string        `json:"amBestRating"`
	QuoteNumber     string        `json:"quoteNumber"`
	Discounts       []string      `json:"discounts"`
	Coverage        coverageLimit `json:"coverage"`
}

func newRateRequest(request entity.QuoteRequest) rateRequest {
	return rateRequest{
		Applicant: applicant{
			FirstName:   request.FirstName,
			LastName:    request.LastName,
			DateOfBirth: request.DateOfBirth,
			Email:       request.Email,
			Phone:       request.Phone,
			Address: address{
				Street: request.Address,
				City:   request.City,
				State:  request.State,
				Zip:    request.ZipCode,
			},
		},
		Vehicles: lo.Map(request.Vehicles, func(v entity.Vehicle, _ int) vehicle {
			return vehicle{
				Year:        v.Year,
				Make:        v.Make,
				Model:       v.Model,
				VIN:         v.VIN,
				Use:         v.Usage,
				AnnualMiles: v.AnnualMileage,
			}
		}),
		Coverage: coverageLimit{
			LiabilityLimits:         request.Coverage.Liability.String(),
			CollisionDeductible:     request.Coverage.Collision,
			ComprehensiveDeductible: request.Coverage.Comprehensive,
			UninsuredMotorist:       request.Coverage.Uninsured,
			MedPay:                  request.Coverage.Medical,
		},
	}
}

func (r carrierRate) toQuote(now time.Time) entity.Quote {
	return entity.Quote{
		Carrier: r.CarrierName,
		Premium: entity.Premium{
			Monthly:  int64(math.Round(r.MonthlyPremium)),
			SixMonth: int64(math.Round(r.SixMonthPremium)),
			Annual:   int64(math.Round(r.AnnualPremium)),
		},
		Coverage: entity.Coverage{
			Liability:     r.Coverage.LiabilityLimits,
			Collision:     r.Coverage.CollisionDeductible,
			Comprehensive: r.Coverage.ComprehensiveDeductible,
			Uninsured:     r.Coverage.UninsuredMotorist,
			Medical:       r.Coverage.MedPay,
		},
		Discounts: r.Discounts,
		Rating:    value.Rating(r.AMBestRating),
		QuoteID:   r.QuoteNumber,
		Source:    value.SourceTurboRater,
		Timestamp: now,
	}
}
