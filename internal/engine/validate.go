package engine

import (
	"fmt"
	"sort"
	"strings"

	"enrollment-engine/internal/model"
)

// maxProjectionYears bounds a multi-year run.
const maxProjectionYears = 10

// ValidationError aggregates every input issue found before year 1. When
// it is returned, zero years were computed.
type ValidationError struct {
	Messages []model.Message
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		parts[i] = m.Code + ": " + m.Message
	}
	return "invalid projection input: " + strings.Join(parts, "; ")
}

// validateInput checks one input structurally and collects every issue
// instead of stopping at the first. Multi-year calls validate the run
// length; single-year calls validate the input's own year pair instead.
// CRITICAL messages make the input unusable; WARNING messages flag
// suspect but legal values and never abort.
func validateInput(in *model.ProjectionInput, years int, multiYear bool) []model.Message {
	var msgs []model.Message
	add := func(level, code, format string, args ...interface{}) {
		msgs = append(msgs, model.Message{
			Level:   level,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}
	critical := func(code, format string, args ...interface{}) {
		add(model.LevelCritical, code, format, args...)
	}
	warning := func(code, format string, args ...interface{}) {
		add(model.LevelWarning, code, format, args...)
	}

	if in.SchoolMaxCapacity <= 0 {
		critical("INVALID_CAPACITY", "school_max_capacity must be positive, got %d", in.SchoolMaxCapacity)
	}
	if in.DefaultClassSize <= 0 {
		critical("INVALID_CLASS_SIZE", "default_class_size must be positive, got %d", in.DefaultClassSize)
	}
	if multiYear {
		if years < 1 || years > maxProjectionYears {
			critical("INVALID_PROJECTION_YEARS", "projection_years must be between 1 and %d, got %d", maxProjectionYears, years)
		}
	} else if in.TargetYear <= in.BaseYear {
		critical("INVALID_YEAR_RANGE", "target_year %d must be after base_year %d", in.TargetYear, in.BaseYear)
	}

	s := in.Scenario
	if s.PSEntry < 0 {
		critical("INVALID_PS_ENTRY", "ps_entry must be non-negative, got %d", s.PSEntry)
	}
	if s.EntryGrowthRate < -0.10 || s.EntryGrowthRate > 0.10 {
		critical("INVALID_GROWTH_RATE", "entry_growth_rate must be within [-0.10, 0.10], got %g", s.EntryGrowthRate)
	} else if s.EntryGrowthRate == -0.10 || s.EntryGrowthRate == 0.10 {
		warning("GROWTH_RATE_AT_BAND_EDGE", "entry_growth_rate %g sits at the edge of its allowed band", s.EntryGrowthRate)
	}
	if s.DefaultRetention < 0 || s.DefaultRetention > 1 {
		critical("INVALID_RETENTION_RATE", "default_retention must be within [0, 1], got %g", s.DefaultRetention)
	}
	if s.TerminalRetention < 0 || s.TerminalRetention > 1 {
		critical("INVALID_RETENTION_RATE", "terminal_retention must be within [0, 1], got %g", s.TerminalRetention)
	}
	if s.LateralMultiplier < 0 || s.LateralMultiplier > 5 {
		critical("INVALID_LATERAL_MULTIPLIER", "lateral_multiplier must be within [0, 5], got %g", s.LateralMultiplier)
	}

	for _, code := range sortedKeys(in.BaseYearEnrollment) {
		if _, ok := model.ParseGrade(code); !ok {
			critical("UNKNOWN_GRADE_CODE", "base_year_enrollment has unknown grade code %q", code)
			continue
		}
		if in.BaseYearEnrollment[code] < 0 {
			critical("NEGATIVE_ENROLLMENT", "base_year_enrollment[%s] must be non-negative, got %d", code, in.BaseYearEnrollment[code])
		}
	}
	for _, code := range sortedKeys(in.BaseLateralEntry) {
		if _, ok := model.ParseGrade(code); !ok {
			critical("UNKNOWN_GRADE_CODE", "base_lateral_entry has unknown grade code %q", code)
			continue
		}
		if in.BaseLateralEntry[code] < 0 {
			critical("NEGATIVE_LATERAL_ENTRY", "base_lateral_entry[%s] must be non-negative, got %d", code, in.BaseLateralEntry[code])
		}
	}

	if g := in.GlobalOverrides; g != nil {
		if g.LateralMultiplierOverride != nil && (*g.LateralMultiplierOverride < 0 || *g.LateralMultiplierOverride > 5) {
			critical("INVALID_LATERAL_MULTIPLIER", "lateral_multiplier_override must be within [0, 5], got %g", *g.LateralMultiplierOverride)
		}
		if g.ClassSizeOverride != nil && *g.ClassSizeOverride < 0 {
			critical("INVALID_OVERRIDE", "class_size_override must be non-negative, got %d", *g.ClassSizeOverride)
		}
	}

	for _, code := range sortedKeys(in.LevelOverrides) {
		ov := in.LevelOverrides[code]
		if _, ok := model.ParseCycle(code); !ok {
			critical("UNKNOWN_CYCLE_CODE", "level_overrides has unknown cycle code %q", code)
			continue
		}
		if ov.ClassSizeCeiling != nil && *ov.ClassSizeCeiling < 0 {
			critical("INVALID_OVERRIDE", "level_overrides[%s].class_size_ceiling must be non-negative, got %d", code, *ov.ClassSizeCeiling)
		}
		if ov.MaxDivisions != nil && *ov.MaxDivisions < 0 {
			critical("INVALID_OVERRIDE", "level_overrides[%s].max_divisions must be non-negative, got %d", code, *ov.MaxDivisions)
		}
	}

	for _, code := range sortedKeys(in.GradeOverrides) {
		ov := in.GradeOverrides[code]
		if _, ok := model.ParseGrade(code); !ok {
			critical("UNKNOWN_GRADE_CODE", "grade_overrides has unknown grade code %q", code)
			continue
		}
		if ov.RetentionRate != nil && (*ov.RetentionRate < 0 || *ov.RetentionRate > 1) {
			critical("INVALID_RETENTION_RATE", "grade_overrides[%s].retention_rate must be within [0, 1], got %g", code, *ov.RetentionRate)
		}
		if ov.LateralEntry != nil && *ov.LateralEntry < 0 {
			critical("NEGATIVE_LATERAL_ENTRY", "grade_overrides[%s].lateral_entry must be non-negative, got %d", code, *ov.LateralEntry)
		}
		if ov.ClassSizeCeiling != nil && *ov.ClassSizeCeiling < 0 {
			critical("INVALID_OVERRIDE", "grade_overrides[%s].class_size_ceiling must be non-negative, got %d", code, *ov.ClassSizeCeiling)
		}
		if ov.MaxDivisions != nil && *ov.MaxDivisions < 0 {
			critical("INVALID_OVERRIDE", "grade_overrides[%s].max_divisions must be non-negative, got %d", code, *ov.MaxDivisions)
		}
	}

	return msgs
}

// Map iteration order is random; issues are reported in key order so the
// same invalid input always fails identically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func hasCritical(msgs []model.Message) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}
