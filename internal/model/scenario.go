package model

// ScenarioParams holds the per-scenario demographic assumptions. Values
// are never mutated after construction.
type ScenarioParams struct {
	Code              string  `json:"code"`
	PSEntry           int     `json:"ps_entry"`
	EntryGrowthRate   float64 `json:"entry_growth_rate"`
	DefaultRetention  float64 `json:"default_retention"`
	TerminalRetention float64 `json:"terminal_retention"`
	LateralMultiplier float64 `json:"lateral_multiplier"`
}

// GlobalOverrides adjusts scenario defaults school-wide. Nil fields are
// not set. PSEntryAdjustment and RetentionAdjustment are additive; the
// other two replace the scenario value outright.
type GlobalOverrides struct {
	PSEntryAdjustment         *int     `json:"ps_entry_adjustment,omitempty"`
	RetentionAdjustment       *float64 `json:"retention_adjustment,omitempty"`
	LateralMultiplierOverride *float64 `json:"lateral_multiplier_override,omitempty"`
	ClassSizeOverride         *int     `json:"class_size_override,omitempty"`
}

// LevelOverride scopes capacity parameters to one cycle.
type LevelOverride struct {
	ClassSizeCeiling *int `json:"class_size_ceiling,omitempty"`
	MaxDivisions     *int `json:"max_divisions,omitempty"`
}

// GradeOverride pins parameters for a single grade. It wins over every
// lower layer; a nil field defers to the next layer down.
type GradeOverride struct {
	RetentionRate    *float64 `json:"retention_rate,omitempty"`
	LateralEntry     *int     `json:"lateral_entry,omitempty"`
	MaxDivisions     *int     `json:"max_divisions,omitempty"`
	ClassSizeCeiling *int     `json:"class_size_ceiling,omitempty"`
}
