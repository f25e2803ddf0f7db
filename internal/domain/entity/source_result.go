package entity

import "quotehub/internal/domain/value"

type SourceStatus string

const (
	SourceStatusOK     SourceStatus = "ok"
	SourceStatusFailed SourceStatus = "failed"
)

// SourceResult reports how one vendor call ended so callers can tell
// "no quotes available" apart from "vendor failed".
type SourceResult struct {
	Source   value.Source
	Status   SourceStatus
	Quotes   int
	Rejected int
	Error    string
}

// FetchResult holds the per-source quote lists of one fetch.
type FetchResult struct {
	TurboRater []Quote
	Momentum   []Quote
	GAIL       []Quote
	Sources    []SourceResult
}

// Lists returns the TurboRater, Momentum and GAIL quotes, never nil.
func (f FetchResult) Lists() (turboRater, momentum, gail []Quote) {
	return nonNil(f.TurboRater), nonNil(f.Momentum), nonNil(f.GAIL)
}

func nonNil(quotes []Quote) []Quote {
	if quotes == nil {
		return []Quote{}
	}

	return quotes
}

// Aggregation is the ranked outcome of one quote request.
type Aggregation struct {
	Quotes  []RankedQuote
	Sources []SourceResult
}
