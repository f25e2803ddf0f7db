// Package scoring computes the composite desirability score of a quote.
package scoring

import (
	"math"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
)

const (
	weightPrice       = 40.0
	weightCoverage    = 20.0
	weightRating      = 20.0
	weightAI          = 10.0
	weightDiscounts   = 5.0
	weightReliability = 5.0
	weightRiskBonus   = 5.0

	baselineMonthlyPremium = 150.0
	referenceBodilyInjury  = 250.0 // thousands
	referenceDeductible    = 1000.0
	fullDiscountCount      = 5.0
	riskBonusCeiling       = 50.0
)

// Score returns the rounded composite score of q. The risk bonus sits on top
// of the 100-point budget, so quotes with a low risk score can exceed 100.
func Score(q entity.Quote) int {
	return int(math.Floor(Composite(q) + 0.5))
}

// Composite is the unrounded sum of all score terms.
func Composite(q entity.Quote) float64 {
	return priceFactor(q.Premium.Monthly) +
		CoverageScore(q.Coverage)*weightCoverage +
		q.Rating.Strength()*weightRating +
		aiFactor(q.AIScore) +
		discountFactor(len(q.Discounts)) +
		q.Source.Reliability()*weightReliability +
		riskBonus(q.RiskScore)
}

// CoverageScore rates coverage on 0..1.
func CoverageScore(c entity.Coverage) float64 {
	bodilyInjury := math.Min(value.BodilyInjuryLimit(c.Liability)/referenceBodilyInjury, 1)
	collision := math.Max(0, (referenceDeductible-float64(c.Collision))/referenceDeductible)
	comprehensive := math.Max(0, (referenceDeductible-float64(c.Comprehensive))/referenceDeductible)

	score := 0.4*bodilyInjury + 0.2*collision + 0.2*comprehensive

	if c.Uninsured {
		score += 0.1
	}

	if c.Medical > 0 {
		score += 0.1
	}

	return score
}

// A zero premium divides to +Inf and is capped like any other cheap quote.
func priceFactor(monthly int64) float64 {
	return math.Min(weightPrice, baselineMonthlyPremium/float64(monthly)*weightPrice)
}

// Quotes without an AI signal get half credit.
func aiFactor(aiScore *float64) float64 {
	if aiScore == nil {
		return weightAI / 2
	}

	return *aiScore / 100 * weightAI
}

func discountFactor(count int) float64 {
	return math.Min(float64(count)/fullDiscountCount, 1) * weightDiscounts
}

func riskBonus(riskScore *float64) float64 {
	if riskScore == nil {
		return 0
	}

	return math.Max(0, (riskBonusCeiling-*riskScore)/riskBonusCeiling) * weightRiskBonus
}
