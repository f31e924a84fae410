package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollment-engine/internal/model"
)

func TestResolverRetention(t *testing.T) {
	tests := []struct {
		name  string
		grade model.Grade
		input model.ProjectionInput
		want  float64
	}{
		{
			name:  "scenario default",
			grade: model.GradeCP,
			input: model.ProjectionInput{
				Scenario: model.ScenarioParams{DefaultRetention: 0.95, TerminalRetention: 0.98},
			},
			want: 0.95,
		},
		{
			name:  "terminal grade uses terminal retention",
			grade: model.GradeTLE,
			input: model.ProjectionInput{
				Scenario: model.ScenarioParams{DefaultRetention: 0.95, TerminalRetention: 0.98},
			},
			want: 0.98,
		},
		{
			name:  "global adjustment is additive",
			grade: model.GradeCP,
			input: model.ProjectionInput{
				Scenario:        model.ScenarioParams{DefaultRetention: 0.90},
				GlobalOverrides: &model.GlobalOverrides{RetentionAdjustment: floatPtr(0.05)},
			},
			want: 0.95,
		},
		{
			name:  "global adjustment clamps at 1",
			grade: model.GradeCP,
			input: model.ProjectionInput{
				Scenario:        model.ScenarioParams{DefaultRetention: 0.98},
				GlobalOverrides: &model.GlobalOverrides{RetentionAdjustment: floatPtr(0.10)},
			},
			want: 1.0,
		},
		{
			name:  "negative adjustment clamps at 0",
			grade: model.GradeCP,
			input: model.ProjectionInput{
				Scenario:        model.ScenarioParams{DefaultRetention: 0.05},
				GlobalOverrides: &model.GlobalOverrides{RetentionAdjustment: floatPtr(-0.20)},
			},
			want: 0.0,
		},
		{
			name:  "grade override is absolute and ignores global adjustment",
			grade: model.GradeCP,
			input: model.ProjectionInput{
				Scenario:        model.ScenarioParams{DefaultRetention: 0.95},
				GlobalOverrides: &model.GlobalOverrides{RetentionAdjustment: floatPtr(0.04)},
				GradeOverrides: map[string]model.GradeOverride{
					"CP": {RetentionRate: floatPtr(0.80)},
				},
			},
			want: 0.80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(&tt.input)
			assert.InDelta(t, tt.want, r.retention(tt.grade), 1e-9)
		})
	}
}

func TestResolverClassSizeCeilingPrecedence(t *testing.T) {
	input := model.ProjectionInput{
		DefaultClassSize: 25,
		GlobalOverrides:  &model.GlobalOverrides{ClassSizeOverride: intPtr(28)},
		LevelOverrides: map[string]model.LevelOverride{
			"ELEM": {ClassSizeCeiling: intPtr(22)},
		},
		GradeOverrides: map[string]model.GradeOverride{
			"CE1": {ClassSizeCeiling: intPtr(18)},
		},
	}
	r := newResolver(&input)

	// Grade layer wins for CE1 even with level and global set.
	assert.Equal(t, 18, r.classSizeCeiling(model.GradeCE1))
	// Level layer for the rest of ELEM.
	assert.Equal(t, 22, r.classSizeCeiling(model.GradeCP))
	// Global replacement outside ELEM.
	assert.Equal(t, 28, r.classSizeCeiling(model.Grade6EME))

	// Scenario default when nothing is set.
	bare := newResolver(&model.ProjectionInput{DefaultClassSize: 25})
	assert.Equal(t, 25, bare.classSizeCeiling(model.Grade6EME))
}

func TestResolverMaxDivisions(t *testing.T) {
	input := model.ProjectionInput{
		LevelOverrides: map[string]model.LevelOverride{
			"LYC": {MaxDivisions: intPtr(5)},
		},
		GradeOverrides: map[string]model.GradeOverride{
			"TLE": {MaxDivisions: intPtr(3)},
		},
	}
	r := newResolver(&input)

	assert.Equal(t, 3, r.maxDivisions(model.GradeTLE))
	assert.Equal(t, 5, r.maxDivisions(model.Grade2NDE))
	assert.Equal(t, defaultMaxDivisions, r.maxDivisions(model.GradeCP))
}

func TestResolverLateralEntry(t *testing.T) {
	input := model.ProjectionInput{
		Scenario:         model.ScenarioParams{LateralMultiplier: 1.5},
		BaseLateralEntry: map[string]int{"MS": 5, "CP": 3},
		GradeOverrides: map[string]model.GradeOverride{
			"CP": {LateralEntry: intPtr(11)},
		},
	}
	r := newResolver(&input)

	// floor(5 * 1.5) = 7
	assert.Equal(t, 7, r.lateralEntry(model.GradeMS))
	// override verbatim, multiplier ignored
	assert.Equal(t, 11, r.lateralEntry(model.GradeCP))
	// no base count means zero entrants
	assert.Equal(t, 0, r.lateralEntry(model.GradeGS))
}

func TestResolverLateralMultiplierOverride(t *testing.T) {
	input := model.ProjectionInput{
		Scenario:         model.ScenarioParams{LateralMultiplier: 1.5},
		BaseLateralEntry: map[string]int{"MS": 10},
		GlobalOverrides:  &model.GlobalOverrides{LateralMultiplierOverride: floatPtr(0.5)},
	}
	r := newResolver(&input)

	require.InDelta(t, 0.5, r.lateralMultiplier(), 1e-9)
	assert.Equal(t, 5, r.lateralEntry(model.GradeMS))
}

func TestResolverPSEntry(t *testing.T) {
	r := newResolver(&model.ProjectionInput{
		Scenario: model.ScenarioParams{PSEntry: 65},
	})
	assert.Equal(t, 65, r.psEntry())

	r = newResolver(&model.ProjectionInput{
		Scenario:        model.ScenarioParams{PSEntry: 65},
		GlobalOverrides: &model.GlobalOverrides{PSEntryAdjustment: intPtr(-7)},
	})
	assert.Equal(t, 58, r.psEntry())
}

func TestResolverIsPure(t *testing.T) {
	input := model.ProjectionInput{
		DefaultClassSize: 25,
		Scenario:         model.ScenarioParams{DefaultRetention: 0.9, LateralMultiplier: 1.0},
		BaseLateralEntry: map[string]int{"MS": 4},
	}
	r := newResolver(&input)
	for i := 0; i < 3; i++ {
		require.Equal(t, r.retention(model.GradeMS), r.retention(model.GradeMS))
		require.Equal(t, r.lateralEntry(model.GradeMS), r.lateralEntry(model.GradeMS))
		require.Equal(t, r.classSizeCeiling(model.GradeMS), r.classSizeCeiling(model.GradeMS))
	}
}
