package value

// Rating is a carrier financial-strength grade such as "A+".
type Rating string

const unknownRatingStrength = 0.5

//nolint:gochecknoglobals
var ratingStrength = map[Rating]float64{
	"A++": 1.0,
	"A+":  0.9,
	"A":   0.8,
	"A-":  0.7,
	"B++": 0.6,
	"B+":  0.5,
	"B":   0.4,
	"B-":  0.3,
}

func (r Rating) String() string {
	return string(r)
}

// Strength maps the grade onto 0..1. Unrecognized grades score mid-range.
func (r Rating) Strength() float64 {
	if s, ok := ratingStrength[r]; ok {
		return s
	}

	return unknownRatingStrength
}
