package engine

import (
	"math"

	"enrollment-engine/internal/model"
)

// defaultMaxDivisions applies when neither a grade nor a level override
// sets a division limit.
const defaultMaxDivisions = 8

// resolver is the resolved view of one ProjectionInput: the scenario
// defaults plus the three override layers, re-indexed from code-keyed
// maps onto the closed grade/cycle sets. Precedence for every parameter
// is Grade > Level > Global > Scenario; retention and PS entry treat the
// global layer as additive instead of replacing.
//
// A resolver is read-only after newResolver and every method is a pure
// function of it.
type resolver struct {
	scenario         model.ScenarioParams
	global           *model.GlobalOverrides
	defaultClassSize int
	baseline         [model.GradeCount]int
	baseLateral      [model.GradeCount]int
	level            [model.CycleCount]*model.LevelOverride
	grade            [model.GradeCount]*model.GradeOverride
}

// newResolver indexes a validated input. Map keys are assumed to be valid
// codes; validateInput rejects anything else before a resolver is built.
func newResolver(in *model.ProjectionInput) *resolver {
	r := &resolver{
		scenario:         in.Scenario,
		global:           in.GlobalOverrides,
		defaultClassSize: in.DefaultClassSize,
	}
	for code, n := range in.BaseYearEnrollment {
		if g, ok := model.ParseGrade(code); ok {
			r.baseline[g] = n
		}
	}
	for code, n := range in.BaseLateralEntry {
		if g, ok := model.ParseGrade(code); ok {
			r.baseLateral[g] = n
		}
	}
	for code, ov := range in.LevelOverrides {
		if c, ok := model.ParseCycle(code); ok {
			ov := ov
			r.level[c] = &ov
		}
	}
	for code, ov := range in.GradeOverrides {
		if g, ok := model.ParseGrade(code); ok {
			ov := ov
			r.grade[g] = &ov
		}
	}
	return r
}

// retention resolves g's effective retention rate. A grade override is
// absolute; otherwise the scenario default (terminal for TLE) plus the
// optional global adjustment, clamped into [0,1]. The level layer never
// affects retention.
func (r *resolver) retention(g model.Grade) float64 {
	if ov := r.grade[g]; ov != nil && ov.RetentionRate != nil {
		return *ov.RetentionRate
	}
	rate := r.scenario.DefaultRetention
	if g == model.GradeTLE {
		rate = r.scenario.TerminalRetention
	}
	if r.global != nil && r.global.RetentionAdjustment != nil {
		rate += *r.global.RetentionAdjustment
		if rate < 0 {
			rate = 0
		} else if rate > 1 {
			rate = 1
		}
	}
	return rate
}

// lateralMultiplier is a straight replacement: global override if set,
// else the scenario value. No level or grade layer applies.
func (r *resolver) lateralMultiplier() float64 {
	if r.global != nil && r.global.LateralMultiplierOverride != nil {
		return *r.global.LateralMultiplierOverride
	}
	return r.scenario.LateralMultiplier
}

// lateralEntry resolves g's lateral entrant count: grade override
// verbatim, else the scaled base count floored to whole students.
func (r *resolver) lateralEntry(g model.Grade) int {
	if ov := r.grade[g]; ov != nil && ov.LateralEntry != nil {
		return *ov.LateralEntry
	}
	return int(math.Floor(float64(r.baseLateral[g]) * r.lateralMultiplier()))
}

// classSizeCeiling walks the full hierarchy; first non-nil wins.
func (r *resolver) classSizeCeiling(g model.Grade) int {
	if ov := r.grade[g]; ov != nil && ov.ClassSizeCeiling != nil {
		return *ov.ClassSizeCeiling
	}
	if ov := r.level[g.Cycle()]; ov != nil && ov.ClassSizeCeiling != nil {
		return *ov.ClassSizeCeiling
	}
	if r.global != nil && r.global.ClassSizeOverride != nil {
		return *r.global.ClassSizeOverride
	}
	return r.defaultClassSize
}

// maxDivisions has no global layer: grade, then level, then the fixed
// default.
func (r *resolver) maxDivisions(g model.Grade) int {
	if ov := r.grade[g]; ov != nil && ov.MaxDivisions != nil {
		return *ov.MaxDivisions
	}
	if ov := r.level[g.Cycle()]; ov != nil && ov.MaxDivisions != nil {
		return *ov.MaxDivisions
	}
	return defaultMaxDivisions
}

// psEntry is the scenario entry count plus the optional global
// adjustment. PS has no grade or level override path for entry.
func (r *resolver) psEntry() int {
	n := r.scenario.PSEntry
	if r.global != nil && r.global.PSEntryAdjustment != nil {
		n += *r.global.PSEntryAdjustment
	}
	return n
}
