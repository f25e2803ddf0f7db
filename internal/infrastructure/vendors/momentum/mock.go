package momentum

import (
	"time"

	"github.com/samber/lo"

	"quotehub/internal/domain/entity"
	"quotehub/internal/infrastructure/vendors"
)

const effectiveDateLayout = "2006-01-02"

type mockQuote struct {
	vendors.MockQuote

	bindable bool
}

//nolint:gochecknoglobals
var mockQuotes = []mockQuote{
	{MockQuote: vendors.MockQuote{Carrier: "Travelers", Monthly: 145, Rating: "A++", Discounts: []string{"Multi-Policy", "Homeowner"}}, bindable: true},
	{MockQuote: vendors.MockQuote{Carrier: "Liberty Mutual", Monthly: 162, Rating: "A", Discounts: []string{"Safe Driver", "Early Shopper", "Paperless"}}, bindable: true},
	{MockQuote: vendors.MockQuote{Carrier: "Farmers", Monthly: 171, Rating: "A", Discounts: []string{"Multi-Vehicle"}}, bindable: false},
	{MockQuote: vendors.MockQuote{Carrier: "Progressive", Monthly: 139, Rating: "A+", Discounts: []string{"Snapshot", "Multi-Policy"}}, bindable: true},
	{MockQuote: vendors.MockQuote{Carrier: "American Family", Monthly: 158, Rating: "A", Discounts: []string{"Loyalty"}, Collision: 1000}, bindable: true},
	{MockQuote: vendors.MockQuote{Carrier: "Safeco", Monthly: 149, Rating: "A", Discounts: []string{"Safe Driver", "Homeowner", "Auto-Pay"}}, bindable: false},
}

// Mock serves canned quotes, effective tomorrow, when Momentum is not
// configured or fails.
func (c Client) Mock(request entity.QuoteRequest) entity.VendorResponse {
	now := c.now()
	effectiveDate := now.Add(24 * time.Hour).Format(effectiveDateLayout)

	return entity.VendorResponse{
		Quotes: lo.Map(mockQuotes, func(m mockQuote, _ int) entity.Quote {
			q := vendors.NewMockQuote(c.Source(), m.MockQuote, request, now)
			q.Bindable = lo.ToPtr(m.bindable)
			q.EffectiveDate = effectiveDate

			return q
		}),
		Mocked: true,
	}
}
