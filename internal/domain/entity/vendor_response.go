package entity

// VendorResponse is what a vendor proxy hands back to its caller.
type VendorResponse struct {
	Quotes     []Quote
	AIInsights *AIInsights
	Mocked     bool
}

// AIInsights is GAIL's market narrative. The aggregator ignores it.
type AIInsights struct {
	Summary            string
	TopPick            string
	MarketTrend        string
	SavingsOpportunity int64
	Factors            []string
}
