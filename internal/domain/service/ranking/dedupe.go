package ranking

import (
	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/service/scoring"
)

// Deduplicate keeps one quote per case-insensitive carrier name: the one with
// the higher composite score, the earlier one on a tie. Carriers keep the
// order in which they were first seen.
func Deduplicate(quotes []entity.Quote) []entity.Quote {
	keys := make([]string, 0, len(quotes))
	best := make(map[string]entity.Quote, len(quotes))

	for _, q := range quotes {
		key := q.CarrierKey()

		existing, ok := best[key]
		if !ok {
			keys = append(keys, key)
			best[key] = q

			continue
		}

		if scoring.Score(q) > scoring.Score(existing) {
			best[key] = q
		}
	}

	result := make([]entity.Quote, 0, len(keys))
	for _, key := range keys {
		result = append(result, best[key].Clone())
	}

	return result
}
