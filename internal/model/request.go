package model

type ProjectionRequest struct {
	TenantID     string          `json:"tenant_id"`
	ScenarioCode string          `json:"scenario_code,omitempty"`
	Input        ProjectionInput `json:"projection_input"`
}

// ProjectionInput is one fully populated computation request, as supplied
// by the persistence layer. Enrollment and override maps are keyed by
// grade/cycle code strings; codes are checked during input validation.
// An input is constructed once per request and never mutated.
type ProjectionInput struct {
	BaseYear           int                      `json:"base_year"`
	TargetYear         int                      `json:"target_year"`
	ProjectionYears    int                      `json:"projection_years"`
	SchoolMaxCapacity  int                      `json:"school_max_capacity"`
	DefaultClassSize   int                      `json:"default_class_size"`
	Scenario           ScenarioParams           `json:"scenario"`
	BaseYearEnrollment map[string]int           `json:"base_year_enrollment"`
	BaseLateralEntry   map[string]int           `json:"base_lateral_entry"`
	GlobalOverrides    *GlobalOverrides         `json:"global_overrides,omitempty"`
	LevelOverrides     map[string]LevelOverride `json:"level_overrides,omitempty"`
	GradeOverrides     map[string]GradeOverride `json:"grade_overrides,omitempty"`
}
