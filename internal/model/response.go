package model

type ProjectionResponse struct {
	ProjectionMetadata ProjectionMetadata `json:"projection_metadata"`
	ProjectionOutput   ProjectionOutput   `json:"projection_output"`
}

type ProjectionMetadata struct {
	ProjectionID          string `json:"projection_id"`
	TenantID              string `json:"tenant_id"`
	ProjectionStartedAt   string `json:"projection_started_at"`
	ProjectionCompletedAt string `json:"projection_completed_at"`
	ProjectionDurationMs  int64  `json:"projection_duration_ms"`
	ProjectionOutcome     string `json:"projection_outcome"`
}

type ProjectionOutput struct {
	Messages []Message          `json:"messages"`
	Results  []ProjectionResult `json:"results"`
}

// ProjectionResult is the outcome of one projected school year. Grades
// are listed in grade-sequence order, one entry per grade.
type ProjectionResult struct {
	SchoolYear             string            `json:"school_year"`
	FiscalYear             int               `json:"fiscal_year"`
	Grades                 []GradeProjection `json:"grades"`
	TotalStudents          int               `json:"total_students"`
	UtilizationRate        float64           `json:"utilization_rate"`
	WasCapacityConstrained bool              `json:"was_capacity_constrained"`
	TotalReductionApplied  int               `json:"total_reduction_applied"`
	YearOverYear           []GradeDelta      `json:"year_over_year,omitempty"`
}

// GradeProjection is one grade's projected enrollment for one year.
// OriginalProjection and ReductionPercentage are only populated when the
// school-wide capacity constraint reduced the year.
type GradeProjection struct {
	GradeCode           string   `json:"grade_code"`
	CycleCode           string   `json:"cycle_code"`
	ProjectedStudents   int      `json:"projected_students"`
	Divisions           int      `json:"divisions"`
	AvgClassSize        float64  `json:"avg_class_size"`
	OriginalProjection  *int     `json:"original_projection"`
	ReductionApplied    int      `json:"reduction_applied"`
	ReductionPercentage *float64 `json:"reduction_percentage"`
}

// GradeDelta records the change in one grade's count between two
// consecutive projected years. PercentChange is nil when the previous
// count was zero.
type GradeDelta struct {
	GradeCode     string   `json:"grade_code"`
	Previous      int      `json:"previous"`
	Projected     int      `json:"projected"`
	Delta         int      `json:"delta"`
	PercentChange *float64 `json:"percent_change"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
