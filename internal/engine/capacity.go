package engine

import (
	"math"

	"enrollment-engine/internal/model"
)

// enforceCapacity applies the school-wide maximum to one year's clamped
// per-grade projections. When the total exceeds the maximum, every grade
// is reduced by the same factor rather than in priority order, so no
// cycle is systematically cut first.
//
// Each grade's reduced count is truncated independently. That keeps the
// post-reduction total at or below the maximum, at the cost of landing up
// to GradeCount-1 students short of it; no reconciling pass is applied.
func enforceCapacity(raw [model.GradeCount]int, maxCapacity int) (adjusted [model.GradeCount]int, constrained bool) {
	total := 0
	for _, n := range raw {
		total += n
	}
	if total <= maxCapacity {
		return raw, false
	}

	factor := float64(maxCapacity) / float64(total)
	for g, n := range raw {
		adjusted[g] = int(math.Floor(float64(n) * factor))
	}
	return adjusted, true
}

// round1 rounds to one decimal place, for reported rates.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
