package value

// Source identifies the rating vendor that produced a quote.
type Source string

const (
	SourceTurboRater Source = "TurboRater"
	SourceMomentum   Source = "Momentum"
	SourceGAIL       Source = "GAIL"
)

const unknownSourceReliability = 0.5

//nolint:gochecknoglobals
var sourceReliability = map[Source]float64{
	SourceGAIL:       1.0,
	SourceMomentum:   0.9,
	SourceTurboRater: 0.8,
}

// Sources lists the vendors in aggregation order.
func Sources() []Source {
	return []Source{SourceTurboRater, SourceMomentum, SourceGAIL}
}

func (s Source) String() string {
	return string(s)
}

// Reliability is the 0..1 trust weight of the vendor's pricing.
func (s Source) Reliability() float64 {
	if r, ok := sourceReliability[s]; ok {
		return r
	}

	return unknownSourceReliability
}
