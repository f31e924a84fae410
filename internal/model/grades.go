package model

// Grade indexes the fixed K-12 grade sequence, in progression order.
type Grade int

const (
	GradePS Grade = iota // petite section (entry grade, no predecessor)
	GradeMS
	GradeGS
	GradeCP
	GradeCE1
	GradeCE2
	GradeCM1
	GradeCM2
	Grade6EME
	Grade5EME
	Grade4EME
	Grade3EME
	Grade2NDE
	Grade1ERE
	GradeTLE // terminale (terminal grade, no successor)

	GradeCount = 15
)

// Cycle is one of the four academic stages grouping grades for
// level-scoped overrides.
type Cycle int

const (
	CycleMAT Cycle = iota
	CycleELEM
	CycleCOLL
	CycleLYC

	CycleCount = 4
)

var gradeCodes = [GradeCount]string{
	"PS", "MS", "GS",
	"CP", "CE1", "CE2", "CM1", "CM2",
	"6EME", "5EME", "4EME", "3EME",
	"2NDE", "1ERE", "TLE",
}

var gradeCycles = [GradeCount]Cycle{
	CycleMAT, CycleMAT, CycleMAT,
	CycleELEM, CycleELEM, CycleELEM, CycleELEM, CycleELEM,
	CycleCOLL, CycleCOLL, CycleCOLL, CycleCOLL,
	CycleLYC, CycleLYC, CycleLYC,
}

var cycleCodes = [CycleCount]string{"MAT", "ELEM", "COLL", "LYC"}

func (g Grade) Code() string { return gradeCodes[g] }

func (g Grade) Cycle() Cycle { return gradeCycles[g] }

// HasPredecessor reports whether g receives students through cohort
// progression. Only PS does not; it is fed by the entry formula.
func (g Grade) HasPredecessor() bool { return g != GradePS }

// Predecessor returns the grade feeding g. Callers must check
// HasPredecessor first.
func (g Grade) Predecessor() Grade { return g - 1 }

func (c Cycle) Code() string { return cycleCodes[c] }

// ParseGrade maps a grade code to its Grade index.
func ParseGrade(code string) (Grade, bool) {
	for g, c := range gradeCodes {
		if c == code {
			return Grade(g), true
		}
	}
	return 0, false
}

// ParseCycle maps a cycle code to its Cycle index.
func ParseCycle(code string) (Cycle, bool) {
	for c, s := range cycleCodes {
		if s == code {
			return Cycle(c), true
		}
	}
	return 0, false
}
