// Package ranking merges vendor quotes, removes duplicate carriers, and
// orders the survivors by composite score with badges and reasons attached.
package ranking

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/service/scoring"
	"quotehub/internal/domain/value"
)

const (
	maxReasons = 3

	belowAveragePremium    = 140
	strongBodilyInjury     = 100 // thousands
	manyDiscounts          = 3
	highAIConfidence       = 95.0
	lowRiskScore           = 25.0
	bestCoverageDeductible = 500
)

// CombineAndRank is the whole pure pipeline: merge in TurboRater, Momentum,
// GAIL order, deduplicate, score, sort, and badge.
func CombineAndRank(turboRater, momentum, gail []entity.Quote) []entity.RankedQuote {
	all := make([]entity.Quote, 0, len(turboRater)+len(momentum)+len(gail))
	all = append(all, turboRater...)
	all = append(all, momentum...)
	all = append(all, gail...)

	return Rank(Deduplicate(all))
}

// Rank scores and orders already deduplicated quotes. Equal scores keep
// their input order.
func Rank(quotes []entity.Quote) []entity.RankedQuote {
	ranked := make([]entity.RankedQuote, 0, len(quotes))

	for _, q := range quotes {
		ranked = append(ranked, entity.RankedQuote{
			Quote:   q.Clone(),
			Score:   scoring.Score(q),
			Reasons: Reasons(q),
		})
	}

	slices.SortStableFunc(ranked, func(a, b entity.RankedQuote) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(ranked) == 0 {
		return ranked
	}

	minMonthly := lo.MinBy(ranked, func(a, b entity.RankedQuote) bool {
		return a.Premium.Monthly < b.Premium.Monthly
	}).Premium.Monthly

	maxBodilyInjury := lo.Max(lo.Map(ranked, func(q entity.RankedQuote, _ int) float64 {
		return value.BodilyInjuryLimit(q.Coverage.Liability)
	}))

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Badge = badge(ranked[i], minMonthly, maxBodilyInjury)
	}

	return ranked
}

// First matching rule wins. A rank-1 quote that is also the cheapest keeps
// BEST VALUE, and then no quote gets LOWEST PRICE.
func badge(q entity.RankedQuote, minMonthly int64, maxBodilyInjury float64) value.Badge {
	switch {
	case q.Rank == 1:
		return value.BadgeBestValue
	case q.Premium.Monthly == minMonthly:
		return value.BadgeLowestPrice
	case q.AIScore != nil && *q.AIScore >= highAIConfidence:
		return value.BadgeAIRecommended
	case value.BodilyInjuryLimit(q.Coverage.Liability) == maxBodilyInjury &&
		q.Coverage.Collision <= bestCoverageDeductible &&
		q.Coverage.Comprehensive <= bestCoverageDeductible:
		return value.BadgeBestCoverage
	default:
		return value.BadgeNone
	}
}

// Reasons explains a quote's standing in at most three short phrases.
func Reasons(q entity.Quote) []string {
	var reasons []string

	if q.Premium.Monthly < belowAveragePremium {
		reasons = append(reasons, "Below average premium")
	}

	if value.BodilyInjuryLimit(q.Coverage.Liability) >= strongBodilyInjury {
		reasons = append(reasons, "Strong liability coverage")
	}

	if strings.Contains(q.Rating.String(), "A+") {
		reasons = append(reasons, fmt.Sprintf("%s financial strength", q.Rating))
	}

	if len(q.Discounts) >= manyDiscounts {
		reasons = append(reasons, fmt.Sprintf("%d discounts applied", len(q.Discounts)))
	}

	if q.AIScore != nil && *q.AIScore >= highAIConfidence {
		reasons = append(reasons, "AI confidence: "+strconv.FormatFloat(*q.AIScore, 'f', -1, 64)+"%")
	}

	if q.RiskScore != nil && *q.RiskScore < lowRiskScore {
		reasons = append(reasons, "Low risk profile")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return reasons
}
