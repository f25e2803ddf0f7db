package turborater

import (
	"github.com/samber/lo"

	"quotehub/internal/domain/entity"
	"quotehub/internal/infrastructure/vendors"
)

//nolint:gochecknoglobals
var mockQuotes = []vendors.MockQuote{
	{Carrier: "Progressive", Monthly: 142, Rating: "A+", Discounts: []string{"Multi-Policy", "Safe Driver", "Paperless"}},
	{Carrier: "State Farm", Monthly: 156, Rating: "A++", Discounts: []string{"Good Student", "Safe Driver"}},
	{Carrier: "Allstate", Monthly: 168, Rating: "A+", Discounts: []string{"Multi-Policy"}},
	{Carrier: "Geico", Monthly: 128, Rating: "A++", Discounts: []string{"Military", "Multi-Vehicle"}, Collision: 1000},
	{Carrier: "Nationwide", Monthly: 151, Rating: "A+", Discounts: []string{"Paperless", "Auto-Pay", "Safe Driver"}},
}

// Mock serves canned quotes when TurboRater is not configured or fails.
func (c Client) Mock(request entity.QuoteRequest) entity.VendorResponse {
	now := c.now()

	return entity.VendorResponse{
		Quotes: lo.Map(mockQuotes, func(m vendors.MockQuote, _ int) entity.Quote {
			return vendors.NewMockQuote(c.Source(), m, request, now)
		}),
		Mocked: true,
	}
}
