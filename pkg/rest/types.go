// Wire models of the public quote API and the vendor proxy routes.
package rest

// QuoteRequest Applicant, vehicles and desired coverage
type QuoteRequest struct {
	FirstName   string          `json:"firstName" validate:"required"`
	LastName    string          `json:"lastName" validate:"required"`
	DateOfBirth string          `json:"dateOfBirth" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Phone       string          `json:"phone" validate:"required"`
	Address     string          `json:"address" validate:"required"`
	City        string          `json:"city" validate:"required"`
	State       string          `json:"state" validate:"required,len=2"`
	ZipCode     string          `json:"zipCode" validate:"required,len=5,numeric"`
	Vehicles    []Vehicle       `json:"vehicles" validate:"required,min=1,dive"`
	Coverage    CoverageRequest `json:"coverage" validate:"required"`
}

type Vehicle struct {
	Year          int    `json:"year" validate:"required"`
	Make          string `json:"make" validate:"required"`
	Model         string `json:"model" validate:"required"`
	VIN           string `json:"vin,omitempty" validate:"omitempty,len=17"`
	Usage         string `json:"usage" validate:"required"`
	AnnualMileage int    `json:"annualMileage" validate:"required"`
}

// CoverageRequest Liability is "BI/UMBI/PD" in thousands, e.g. "100/300/100"
type CoverageRequest struct {
	Liability     string `json:"liability" validate:"required"`
	Collision     int64  `json:"collision"`
	Comprehensive int64  `json:"comprehensive"`
	Uninsured     bool   `json:"uninsured"`
	Medical       int64  `json:"medical"`
}

type Premium struct {
	Monthly  int64 `json:"monthly"`
	SixMonth int64 `json:"sixMonth"`
	Annual   int64 `json:"annual"`
}

type Coverage struct {
	Liability     string `json:"liability"`
	Collision     int64  `json:"collision"`
	Comprehensive int64  `json:"comprehensive"`
	Uninsured     bool   `json:"uninsured"`
	Medical       int64  `json:"medical"`
}

// Quote Single carrier offer as returned by a vendor proxy
type Quote struct {
	Carrier          string   `json:"carrier"`
	Premium          Premium  `json:"premium"`
	Coverage         Coverage `json:"coverage"`
	Discounts        []string `json:"discounts"`
	Rating           string   `json:"rating"`
	QuoteID          string   `json:"quoteId"`
	Source           string   `json:"source"`
	Timestamp        string   `json:"timestamp"`
	AIScore          *float64 `json:"aiScore,omitempty"`
	Recommendation   string   `json:"recommendation,omitempty"`
	Bindable         *bool    `json:"bindable,omitempty"`
	RiskScore        *float64 `json:"riskScore,omitempty"`
	EffectiveDate    string   `json:"effectiveDate,omitempty"`
	PredictedRenewal *int64   `json:"predictedRenewal,omitempty"`
}

type RankedQuote struct {
	Quote

	Rank    int      `json:"rank"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
	Badge   string   `json:"badge,omitempty"`
}

// SourceResult Outcome of one vendor call
type SourceResult struct {
	Source   string `json:"source"`
	Status   string `json:"status"`
	Quotes   int    `json:"quotes"`
	Rejected int    `json:"rejected"`
	Error    string `json:"error,omitempty"`
}

// QuotesResponse An empty quotes list means no quotes were found
type QuotesResponse struct {
	Quotes  []RankedQuote  `json:"quotes"`
	Sources []SourceResult `json:"sources"`
}

type AIInsights struct {
	Summary            string   `json:"summary"`
	TopPick            string   `json:"topPick"`
	MarketTrend        string   `json:"marketTrend"`
	SavingsOpportunity int64    `json:"savingsOpportunity"`
	Factors            []string `json:"factors"`
}

// VendorQuotesResponse Body of the /api/{vendor}/quote routes
type VendorQuotesResponse struct {
	Quotes     []Quote     `json:"quotes"`
	AIInsights *AIInsights `json:"aiInsights,omitempty"`
	Mocked     bool        `json:"mocked,omitempty"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Human readable message
	Message string `json:"message"`

	// SupportID Trace id of the failed request
	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
