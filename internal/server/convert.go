package server

import (
	"fmt"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/rest"
)

func newDomainQuoteRequest(request rest.QuoteRequest) (entity.QuoteRequest, error) {
	liability, err := value.ParseLiability(request.Coverage.Liability)
	if err != nil {
		return entity.QuoteRequest{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseLiability: %w", err),
			failure.WithCode(errcodes.InvalidLiability),
			failure.WithDescription(err.Error()),
		)
	}

	return entity.QuoteRequest{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DateOfBirth: request.DateOfBirth,
		Email:       request.Email,
		Phone:       request.Phone,
		Address:     request.Address,
		City:        request.City,
		State:       request.State,
		ZipCode:     request.ZipCode,
		Vehicles: lo.Map(request.Vehicles, func(v rest.Vehicle, _ int) entity.Vehicle {
			return entity.Vehicle(v)
		}),
		Coverage: entity.CoverageRequest{
			Liability:     liability,
			Collision:     request.Coverage.Collision,
			Comprehensive: request.Coverage.Comprehensive,
			Uninsured:     request.Coverage.Uninsured,
			Medical:       request.Coverage.Medical,
		},
	}, nil
}

func newRESTQuote(q entity.Quote) rest.Quote {
	var timestamp string
	if !q.Timestamp.IsZero() {
		timestamp = q.Timestamp.UTC().Format(time.RFC3339)
	}

	return rest.Quote{
		Carrier:          q.Carrier,
		Premium:          rest.Premium(q.Premium),
		Coverage:         rest.Coverage(q.Coverage),
		Discounts:        lo.Ternary(q.Discounts == nil, []string{}, q.Discounts),
		Rating:           q.Rating.String(),
		QuoteID:          q.QuoteID,
		Source:           q.Source.String(),
		Timestamp:        timestamp,
		AIScore:          q.AIScore,
		Recommendation:   q.Recommendation,
		Bindable:         q.Bindable,
		RiskScore:        q.RiskScore,
		EffectiveDate:    q.EffectiveDate,
		PredictedRenewal: q.PredictedRenewal,
	}
}

func newRESTRankedQuote(q entity.RankedQuote) rest.RankedQuote {
	return rest.RankedQuote{
		Quote:   newRESTQuote(q.Quote),
		Rank:    q.Rank,
		Score:   q.Score,
		Reasons: lo.Ternary(q.Reasons == nil, []string{}, q.Reasons),
		Badge:   string(q.Badge),
	}
}

func newRESTQuotesResponse(aggregation entity.Aggregation) rest.QuotesResponse {
	return rest.QuotesResponse{
		Quotes: lo.Map(aggregation.Quotes, func(q entity.RankedQuote, _ int) rest.RankedQuote {
			return newRESTRankedQuote(q)
		}),
		Sources: lo.Map(aggregation.Sources, func(s entity.SourceResult, _ int) rest.SourceResult {
			return rest.SourceResult{
				Source:   s.Source.String(),
				Status:   string(s.Status),
				Quotes:   s.Quotes,
				Rejected: s.Rejected,
				Error:    s.Error,
			}
		}),
	}
}

func newRESTVendorQuotesResponse(response entity.VendorResponse) rest.VendorQuotesResponse {
	result := rest.VendorQuotesResponse{
		Quotes: lo.Map(response.Quotes, func(q entity.Quote, _ int) rest.Quote {
			return newRESTQuote(q)
		}),
		Mocked: response.Mocked,
	}

	if response.AIInsights != nil {
		insights := rest.AIInsights(*response.AIInsights)
		result.AIInsights = &insights
	}

	return result
}
