package value

// Badge is the single marketing label a ranked quote may carry.
type Badge string

const (
	BadgeNone          Badge = ""
	BadgeBestValue     Badge = "BEST VALUE"
	BadgeLowestPrice   Badge = "LOWEST PRICE"
	BadgeBestCoverage  Badge = "BEST COVERAGE"
	BadgeAIRecommended Badge = "AI RECOMMENDED"
)

func (b Badge) String() string {
	return string(b)
}
