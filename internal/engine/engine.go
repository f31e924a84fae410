package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"enrollment-engine/internal/model"
)

// ProjectYear computes one school year: per-grade cohort progression in
// fixed sequence order, then the school-wide capacity constraint. The
// input is validated first and never mutated. Warning-level findings do
// not abort; they surface through the Process envelope.
func ProjectYear(in *model.ProjectionInput) (*model.ProjectionResult, error) {
	if msgs := validateInput(in, 0, false); hasCritical(msgs) {
		return nil, &ValidationError{Messages: msgs}
	}
	return projectYear(newResolver(in), in.BaseYear, in.TargetYear, in.SchoolMaxCapacity), nil
}

// ProjectMultiYear runs years consecutive projections, threading each
// year's per-grade counts into the next year's baseline. Validation runs
// once before year 1, including the run length itself; on failure no
// years are computed.
func ProjectMultiYear(in *model.ProjectionInput, years int) ([]*model.ProjectionResult, error) {
	if msgs := validateInput(in, years, true); hasCritical(msgs) {
		return nil, &ValidationError{Messages: msgs}
	}

	results := make([]*model.ProjectionResult, 0, years)
	baseline := in.BaseYearEnrollment

	for offset := 1; offset <= years; offset++ {
		// Fresh value per iteration; the shared maps are read-only and the
		// baseline map is replaced, never written through.
		yearIn := *in
		yearIn.TargetYear = in.BaseYear + offset
		yearIn.BaseYear = yearIn.TargetYear - 1
		yearIn.BaseYearEnrollment = baseline

		res := projectYear(newResolver(&yearIn), yearIn.BaseYear, yearIn.TargetYear, yearIn.SchoolMaxCapacity)
		if len(results) > 0 {
			res.YearOverYear = yearDeltas(results[len(results)-1], res)
		}
		results = append(results, res)

		next := make(map[string]int, model.GradeCount)
		for _, gp := range res.Grades {
			next[gp.GradeCode] = gp.ProjectedStudents
		}
		baseline = next
	}
	return results, nil
}

func projectYear(r *resolver, baseYear, targetYear, maxCapacity int) *model.ProjectionResult {
	var raw [model.GradeCount]int
	for g := model.Grade(0); g < model.GradeCount; g++ {
		raw[g] = projectGrade(r, g, baseYear, targetYear)
	}

	adjusted, constrained := enforceCapacity(raw, maxCapacity)

	grades := make([]model.GradeProjection, 0, model.GradeCount)
	total := 0
	totalReduction := 0
	for g := model.Grade(0); g < model.GradeCount; g++ {
		students := adjusted[g]
		div := divisionsFor(students, r.classSizeCeiling(g), r.maxDivisions(g))
		gp := model.GradeProjection{
			GradeCode:         g.Code(),
			CycleCode:         g.Cycle().Code(),
			ProjectedStudents: students,
			Divisions:         div,
		}
		if div > 0 {
			gp.AvgClassSize = round1(float64(students) / float64(div))
		}
		if constrained {
			original := raw[g]
			gp.OriginalProjection = &original
			gp.ReductionApplied = original - students
			if original > 0 {
				pct := round1(float64(gp.ReductionApplied) / float64(original) * 100)
				gp.ReductionPercentage = &pct
			}
		}
		total += students
		totalReduction += gp.ReductionApplied
		grades = append(grades, gp)
	}

	return &model.ProjectionResult{
		SchoolYear:             fmt.Sprintf("%d-%d", targetYear, targetYear+1),
		FiscalYear:             targetYear,
		Grades:                 grades,
		TotalStudents:          total,
		UtilizationRate:        round1(float64(total) / float64(maxCapacity) * 100),
		WasCapacityConstrained: constrained,
		TotalReductionApplied:  totalReduction,
	}
}

// Process wraps the pure entry points in the calculation envelope the
// service returns: metadata with timing and outcome, plus leveled
// messages. Critical findings abort with zero results; warnings ride
// along on a successful outcome.
func Process(req *model.ProjectionRequest, multiYear bool) *model.ProjectionResponse {
	start := time.Now()

	years := 0
	if multiYear {
		years = req.Input.ProjectionYears
	}
	msgs := validateInput(&req.Input, years, multiYear)

	outcome := model.OutcomeSuccess
	messages := []model.Message{}
	for i, m := range msgs {
		m.ID = i
		messages = append(messages, m)
	}
	out := []model.ProjectionResult{}

	if hasCritical(msgs) {
		outcome = model.OutcomeFailure
	} else {
		var results []*model.ProjectionResult
		var err error
		if multiYear {
			results, err = ProjectMultiYear(&req.Input, years)
		} else {
			var res *model.ProjectionResult
			res, err = ProjectYear(&req.Input)
			if err == nil {
				results = []*model.ProjectionResult{res}
			}
		}
		if err != nil {
			outcome = model.OutcomeFailure
			messages = append(messages, model.Message{
				ID:      len(messages),
				Level:   model.LevelCritical,
				Code:    "PROJECTION_FAILED",
				Message: err.Error(),
			})
		} else {
			for _, res := range results {
				out = append(out, *res)
			}
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.ProjectionResponse{
		ProjectionMetadata: model.ProjectionMetadata{
			ProjectionID:          uuid.New().String(),
			TenantID:              req.TenantID,
			ProjectionStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ProjectionCompletedAt: now.Format(time.RFC3339),
			ProjectionDurationMs:  elapsed.Milliseconds(),
			ProjectionOutcome:     outcome,
		},
		ProjectionOutput: model.ProjectionOutput{
			Messages: messages,
			Results:  out,
		},
	}
}
