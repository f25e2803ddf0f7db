// Package momentum talks to the Momentum AMP quoting API.
package momentum

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/samber/lo"

	"quotehub/internal/config"
	"quotehub/internal/domain"
	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/internal/infrastructure/vendors"
	"quotehub/pkg/contextx"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/httpx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	quotesPath = "/api/v2/quotes"
	// Momentum limits are dollars, liability strings are thousands.
	limitUnit = 1000
)

type Client struct {
	cfg        config.Momentum
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.Momentum, logFieldMaxLen int) Client {
	transport := vendors.NewTransport(vendors.TransportOptions{
		Timeout:        cfg.Timeout,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		LogFieldMaxLen: logFieldMaxLen,
	})

	authenticator := NewAuthenticator(
		cfg.BaseURL,
		cfg.ClientID,
		cfg.ClientSecret,
		vendors.NewHTTPClient(transport, cfg.Timeout),
	)

	return Client{
		cfg: cfg,
		httpClient: vendors.NewHTTPClient(
			httpx.NewAuthBearerRoundTripper(transport, authenticator),
			cfg.Timeout,
		),
		now: time.Now,
	}
}

func (c Client) Source() value.Source {
	return value.SourceMomentum
}

func (c Client) Configured() bool {
	return c.cfg.Configured()
}

func (c Client) Quote(ctx context.Context, request entity.QuoteRequest) (entity.VendorResponse, error) {
	quoteRequest, err := newQuoteRequest(request)
	if err != nil {
		return entity.VendorResponse{}, fmt.Errorf("newQuoteRequest: %w", err)
	}

	var response quotesResponse

	if err = vendors.PostJSON(ctx, c.httpClient, c.cfg.BaseURL+quotesPath, nil, quoteRequest, &response); err != nil {
		return entity.VendorResponse{}, fmt.Errorf("vendors.PostJSON: %w", err)
	}

	now := c.now()

	return entity.VendorResponse{
		Quotes: lo.Map(response.Quotes, func(q quote, _ int) entity.Quote {
			return q.toQuote(now)
		}),
	}, nil
}

type quoteRequest struct {
	Insured   insured   `json:"insured"`
	Vehicles  []vehicle `json:"vehicles"`
	Coverages coverages `json:"coverages"`
}

type insured struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	BirthDate  string `json:"birthDate"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type vehicle struct {
	ModelYear     int    `json:"modelYear"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	VIN           string `json:"vin,omitempty"`
	Usage         string `json:"usage"`
	AnnualMileage int    `json:"annualMileage"`
}

type coverages struct {
	BodilyInjuryPerPerson   int64 `json:"bodilyInjuryPerPerson"`
	BodilyInjuryPerAccident int64 `json:"bodilyInjuryPerAccident"`
	PropertyDamage          int64 `json:"propertyDamage"`
	CollisionDeductible     int64 `json:"collisionDeductible"`
	ComprehensiveDeductible int64 `json:"comprehensiveDeductible"`
	UninsuredMotorist       bool  `json:"uninsuredMotorist"`
	MedicalPayments         int64 `json:"medicalPayments"`
}

type quotesResponse struct {
	Quotes []quote `json:"quotes"`
}

type quote struct {
	QuoteID       string     `json:"quoteId"`
	Carrier       carrier    `json:"carrier"`
	Premium       premium    `json:"premium"`
	Coverages     coverages  `json:"coverages"`
	Discounts     []discount `json:"discounts"`
	Bindable      bool       `json:"bindable"`
	EffectiveDate string     `json:"effectiveDate"`
}

type carrier struct {
	Name            string `json:"name"`
	FinancialRating string `json:"financialRating"`
}

type premium struct {
	Monthly    float64 `json:"monthly"`
	SemiAnnual float64 `json:"semiAnnual"`
	Annual     float64 `json:"annual"`
}

type discount struct {
	Name string `json:"name"`
}

func newQuoteRequest(request entity.QuoteRequest) (quoteRequest, error) {
	liability := request.Coverage.Liability
	if liability.String() == "" {
		return quoteRequest{}, domain.WrapError(value.ErrMalformedLiability, errcodes.InvalidLiability, "liability is required")
	}

	perAccident := liability.BodilyInjury
	if liability.UninsuredBodilyInjury > 0 {
		perAccident = liability.UninsuredBodilyInjury
	}

	return quoteRequest{
		Insured: insured{
			FirstName:  request.FirstName,
			LastName:   request.LastName,
			BirthDate:  request.DateOfBirth,
			Email:      request.Email,
			Phone:      request.Phone,
			Street:     request.Address,
			City:       request.City,
			State:      request.State,
			PostalCode: request.ZipCode,
		},
		Vehicles: lo.Map(request.Vehicles, func(v entity.Vehicle, _ int) vehicle {
			return vehicle{
				ModelYear:     v.Year,
				Make:          v.Make,
				Model:         v.Model,
				VIN:           v.VIN,
				Usage:         v.Usage,
				AnnualMileage: v.AnnualMileage,
			}
		}),
		Coverages: coverages{
			BodilyInjuryPerPerson:   liability.BodilyInjury * limitUnit,
			BodilyInjuryPerAccident: perAccident * limitUnit,
			PropertyDamage:          liability.PropertyDamage * limitUnit,
			CollisionDeductible:     request.Coverage.Collision,
			ComprehensiveDeductible: request.Coverage.Comprehensive,
			UninsuredMotorist:       request.Coverage.Uninsured,
			MedicalPayments:         request.Coverage.Medical,
		},
	}, nil
}

func (q quote) toQuote(now time.Time) entity.Quote {
	return entity.Quote{
		Carrier: q.Carrier.Name,
		Premium: entity.Premium{
			Monthly:  int64(math.Round(q.Premium.Monthly)),
			SixMonth: int64(math.Round(q.Premium.SemiAnnual)),
			Annual:   int64(math.Round(q.Premium.Annual)),
		},
		Coverage: entity.Coverage{
			Liability: fmt.Sprintf("%d/%d/%d",
				q.Coverages.BodilyInjuryPerPerson/limitUnit,
				q.Coverages.BodilyInjuryPerAccident/limitUnit,
				q.Coverages.PropertyDamage/limitUnit,
			),
			Collision:     q.Coverages.CollisionDeductible,
			Comprehensive: q.Coverages.ComprehensiveDeductible,
			Uninsured:     q.Coverages.UninsuredMotorist,
			Medical:       q.Coverages.MedicalPayments,
		},
		Discounts: lo.Map(q.Discounts, func(d discount, _ int) string {
			return d.Name
		}),
		Rating:        value.Rating(q.Carrier.FinancialRating),
		QuoteID:       q.QuoteID,
		Source:        value.SourceMomentum,
		Timestamp:     now,
		Bindable:      lo.ToPtr(q.Bindable),
		EffectiveDate: q.EffectiveDate,
	}
}
