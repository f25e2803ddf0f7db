package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedLiability = errors.New("malformed liability")

// Liability is a split-limit coverage string: "BI/PD" or "BI/UMBI/PD",
// every part in thousands of currency units.
type Liability struct {
	BodilyInjury          int64
	UninsuredBodilyInjury int64
	PropertyDamage        int64
	raw                   string
}

func ParseLiability(s string) (Liability, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 2 || len(parts) > 3 {
		return Liability{}, fmt.Errorf("%w: %q: want 2 or 3 parts", ErrMalformedLiability, s)
	}

	limits := make([]int64, len(parts))

	for i, part := range parts {
		limit, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || limit < 0 {
			return Liability{}, fmt.Errorf("%w: %q: part %d is not a non-negative integer", ErrMalformedLiability, s, i+1)
		}

		limits[i] = limit
	}

	l := Liability{
		BodilyInjury:   limits[0],
		PropertyDamage: limits[len(limits)-1],
		raw:            strings.TrimSpace(s),
	}

	if len(limits) == 3 {
		l.UninsuredBodilyInjury = limits[1]
	}

	return l, nil
}

func (l Liability) String() string {
	return l.raw
}

// BodilyInjuryLimit returns the first component of a liability string in
// thousands, or 0 when the string does not parse.
func BodilyInjuryLimit(s string) float64 {
	l, err := ParseLiability(s)
	if err != nil {
		return 0
	}

	return float64(l.BodilyInjury)
}
