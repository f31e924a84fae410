package engine

import (
	"math"

	"enrollment-engine/internal/model"
)

// projectGrade computes one grade's raw enrollment for the target year
// and applies the per-grade capacity clamp.
//
// PS is fed by the entry formula; every other grade advances its
// predecessor's baseline through the effective retention rate plus
// lateral entrants. Predecessor counts always come from the year's
// starting baseline, never from a sibling computed in the same pass, so
// grades are independent within a year.
func projectGrade(r *resolver, g model.Grade, baseYear, targetYear int) int {
	var projected int
	if !g.HasPredecessor() {
		growth := 1 + r.scenario.EntryGrowthRate
		horizon := float64(targetYear - baseYear)
		projected = int(math.Round(float64(r.psEntry()) * math.Pow(growth, horizon)))
	} else {
		pred := g.Predecessor()
		advancing := math.Floor(float64(r.baseline[pred]) * r.retention(g))
		projected = int(advancing) + r.lateralEntry(g)
	}

	// The clamp always wins, with already-resolved effective values, so a
	// grade override on ceiling or divisions mechanically beats a
	// conflicting level override.
	gradeCapacity := r.maxDivisions(g) * r.classSizeCeiling(g)
	if projected > gradeCapacity {
		projected = gradeCapacity
	}
	return projected
}

// divisionsFor returns how many class sections hold the given count
// under the resolved ceiling. Zero students, or a ceiling resolved to
// zero, means zero divisions.
func divisionsFor(students, ceiling, maxDivisions int) int {
	if students <= 0 || ceiling <= 0 {
		return 0
	}
	d := (students + ceiling - 1) / ceiling
	if d > maxDivisions {
		d = maxDivisions
	}
	return d
}
