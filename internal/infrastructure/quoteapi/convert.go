package quoteapi

import (
	"time"

	"github.com/samber/lo"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/pkg/rest"
)

func newRESTQuoteRequest(request entity.QuoteRequest) rest.QuoteRequest {
	return rest.QuoteRequest{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DateOfBirth: request.DateOfBirth,
		Email:       request.Email,
		Phone:       request.Phone,
		Address:     request.Address,
		City:        request.City,
		State:       request.State,
		ZipCode:     request.ZipCode,
		Vehicles: lo.Map(request.Vehicles, func(v entity.Vehicle, _ int) rest.Vehicle {
			return rest.Vehicle{
				Year:          v.Year,
				Make:          v.Make,
				Model:         v.Model,
				VIN:           v.VIN,
				Usage:         v.Usage,
				AnnualMileage: v.AnnualMileage,
			}
		}),
		Coverage: rest.CoverageRequest{
			Liability:     request.Coverage.Liability.String(),
			Collision:     request.Coverage.Collision,
			Comprehensive: request.Coverage.Comprehensive,
			Uninsured:     request.Coverage.Uninsured,
			Medical:       request.Coverage.Medical,
		},
	}
}

// Malformed fields are kept as-is here; the fetcher decides what to reject.
func newDomainQuote(q rest.Quote) entity.Quote {
	timestamp, _ := time.Parse(time.RFC3339, q.Timestamp) //nolint:errcheck // zero time on garbage

	return entity.Quote{
		Carrier: q.Carrier,
		Premium: entity.Premium{
			Monthly:  q.Premium.Monthly,
			SixMonth: q.Premium.SixMonth,
			Annual:   q.Premium.Annual,
		},
		Coverage: entity.Coverage{
			Liability:     q.Coverage.Liability,
			Collision:     q.Coverage.Collision,
			Comprehensive: q.Coverage.Comprehensive,
			Uninsured:     q.Coverage.Uninsured,
			Medical:       q.Coverage.Medical,
		},
		Discounts:        q.Discounts,
		Rating:           value.Rating(q.Rating),
		QuoteID:          q.QuoteID,
		Source:           value.Source(q.Source),
		Timestamp:        timestamp,
		AIScore:          q.AIScore,
		Recommendation:   q.Recommendation,
		Bindable:         q.Bindable,
		RiskScore:        q.RiskScore,
		EffectiveDate:    q.EffectiveDate,
		PredictedRenewal: q.PredictedRenewal,
	}
}
