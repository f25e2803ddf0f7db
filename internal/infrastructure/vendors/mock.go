package vendors

import (
	"math"
	"time"

	"github.com/google/uuid"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
)

const (
	defaultMockLiability = "100/300/100"
	sixMonthDiscount     = 0.98
	annualDiscount       = 0.95
)

// MockQuote describes a canned carrier offer. Premiums of the terms are
// derived from Monthly.
type MockQuote struct {
	Carrier       string
	Monthly       int64
	Rating        value.Rating
	Discounts     []string
	Collision     int64
	Comprehensive int64
}

// NewMockQuote fills the coverage from the request so mocks stay comparable
// to what the applicant asked for.
func NewMockQuote(
	source value.Source,
	m MockQuote,
	request entity.QuoteRequest,
	now time.Time,
) entity.Quote {
	liability := request.Coverage.Liability.String()
	if liability == "" {
		liability = defaultMockLiability
	}

	collision := request.Coverage.Collision
	if m.Collision != 0 {
		collision = m.Collision
	}

	comprehensive := request.Coverage.Comprehensive
	if m.Comprehensive != 0 {
		comprehensive = m.Comprehensive
	}

	return entity.Quote{
		Carrier: m.Carrier,
		Premium: entity.Premium{
			Monthly:  m.Monthly,
			SixMonth: int64(math.Round(float64(m.Monthly) * 6 * sixMonthDiscount)),
			Annual:   int64(math.Round(float64(m.Monthly) * 12 * annualDiscount)),
		},
		Coverage: entity.Coverage{
			Liability:     liability,
			Collision:     collision,
			Comprehensive: comprehensive,
			Uninsured:     request.Coverage.Uninsured,
			Medical:       request.Coverage.Medical,
		},
		Discounts: append([]string{}, m.Discounts...),
		Rating:    m.Rating,
		QuoteID:   source.String() + "-MOCK-" + uuid.NewString(),
		Source:    source,
		Timestamp: now,
	}
}
