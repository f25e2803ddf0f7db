package entity

import "quotehub/internal/domain/value"

type RankedQuote struct {
	Quote

	Rank    int // 1-based, contiguous
	Score   int
	Reasons []string // at most 3
	Badge   value.Badge
}
