package match

import (
	"sort"

	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

// ScoredCandidate is a candidate record with its score attached.
type ScoredCandidate struct {
	Record *Record
	Score
}

// Rank scores every candidate against the source vehicle and returns
// them in descending score order. The sort is stable: candidates with
// equal scores keep their selection order, so ranking the same inputs
// twice yields the same list.
func Rank(source vehicles.Specs, candidates []*Record, sourceOEM, brand string, w Weights) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		scored = append(scored, ScoredCandidate{
			Record: cand,
			Score:  ScoreCandidate(source, cand.Specs, sourceOEM, cand.Trim.ManufacturerCode, brand, w),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})

	return scored
}
