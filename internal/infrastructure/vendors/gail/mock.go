package gail

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"quotehub/internal/domain/entity"
	"quotehub/internal/infrastructure/vendors"
)

type mockQuote struct {
	vendors.MockQuote

	aiScore        float64
	riskScore      float64
	renewalChange  float64
	recommendation string
}

//nolint:gochecknoglobals
var mockQuotes = []mockQuote{
	{
		MockQuote: vendors.MockQuote{Carrier: "USAA", Monthly: 118, Rating: "A++", Discounts: []string{"Military", "Safe Driver", "Multi-Policy"}},
		aiScore:   97, riskScore: 18, renewalChange: 0.02,
		recommendation: "Best overall value for eligible members",
	},
	{
		MockQuote: vendors.MockQuote{Carrier: "Erie Insurance", Monthly: 129, Rating: "A+", Discounts: []string{"Safe Driver", "Multi-Vehicle"}},
		aiScore:   95, riskScore: 22, renewalChange: 0.03,
		recommendation: "Strong claims satisfaction with stable renewals",
	},
	{
		MockQuote: vendors.MockQuote{Carrier: "Geico", Monthly: 121, Rating: "A++", Discounts: []string{"Good Student", "Anti-Theft"}},
		aiScore:   91, riskScore: 30, renewalChange: 0.06,
		recommendation: "Low entry price, watch renewal increases",
	},
	{
		MockQuote: vendors.MockQuote{Carrier: "State Farm", Monthly: 149, Rating: "A++", Discounts: []string{"Drive Safe & Save", "Multi-Policy", "Loyalty"}},
		aiScore:   88, riskScore: 35, renewalChange: 0.04,
		recommendation: "Large agent network for local service",
	},
	{
		MockQuote: vendors.MockQuote{Carrier: "Auto-Owners", Monthly: 134, Rating: "A++", Discounts: []string{"Paid in Full"}},
		aiScore:   93, riskScore: 27, renewalChange: 0.03,
		recommendation: "Consistent pricing through independent agents",
	},
	{
		MockQuote: vendors.MockQuote{Carrier: "Amica", Monthly: 158, Rating: "A+", Discounts: []string{"Loyalty", "Homeowner"}, Collision: 250, Comprehensive: 250},
		aiScore:   90, riskScore: 20, renewalChange: 0.01,
		recommendation: "Premium service with low deductibles",
	},
	{
		MockQuote: vendors.MockQuote{Carrier: "The General", Monthly: 98, Rating: "B", Discounts: []string{}, Collision: 1000, Comprehensive: 1000},
		aiScore:   62, riskScore: 55, renewalChange: 0.12,
		recommendation: "Lowest price, limited financial strength",
	},
}

// Mock serves canned quotes and insights when GAIL is not configured or
// fails.
func (c Client) Mock(request entity.QuoteRequest) entity.VendorResponse {
	now := c.now()

	quotes := lo.Map(mockQuotes, func(m mockQuote, _ int) entity.Quote {
		q := vendors.NewMockQuote(c.Source(), m.MockQuote, request, now)
		q.AIScore = lo.ToPtr(m.aiScore)
		q.RiskScore = lo.ToPtr(m.riskScore)
		q.Recommendation = m.recommendation
		q.PredictedRenewal = lo.ToPtr(int64(math.Round(float64(q.Premium.Annual) * (1 + m.renewalChange))))

		return q
	})

	return entity.VendorResponse{
		Quotes:     quotes,
		AIInsights: mockInsights(request, quotes),
		Mocked:     true,
	}
}

func mockInsights(request entity.QuoteRequest, quotes []entity.Quote) *entity.AIInsights {
	topPick := lo.MaxBy(quotes, func(a, b entity.Quote) bool {
		return *a.AIScore > *b.AIScore
	})

	annual := lo.Map(quotes, func(q entity.Quote, _ int) int64 { return q.Premium.Annual })

	state := request.State
	if state == "" {
		state = "your area"
	}

	return &entity.AIInsights{
		Summary:            fmt.Sprintf("Analyzed %d carriers for %d vehicle(s) in %s.", len(quotes), len(request.Vehicles), state),
		TopPick:            topPick.Carrier,
		MarketTrend:        "Auto rates are leveling off after two years of increases.",
		SavingsOpportunity: lo.Max(annual) - lo.Min(annual),
		Factors: []string{
			"Driving record",
			"Vehicle safety rating",
			"Annual mileage",
			"Coverage limits",
		},
	}
}
