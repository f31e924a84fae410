package engine

import "enrollment-engine/internal/model"

// yearDeltas computes the per-grade change table between two consecutive
// projected years, in grade-sequence order. Both results always carry one
// entry per grade in the same order.
func yearDeltas(prev, next *model.ProjectionResult) []model.GradeDelta {
	deltas := make([]model.GradeDelta, 0, len(next.Grades))
	for i, gp := range next.Grades {
		before := prev.Grades[i].ProjectedStudents
		d := model.GradeDelta{
			GradeCode: gp.GradeCode,
			Previous:  before,
			Projected: gp.ProjectedStudents,
			Delta:     gp.ProjectedStudents - before,
		}
		if before > 0 {
			pct := round1(float64(d.Delta) / float64(before) * 100)
			d.PercentChange = &pct
		}
		deltas = append(deltas, d)
	}
	return deltas
}
