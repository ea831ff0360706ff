package models

import "time"

// ValidationReport is the aggregated result of validating one exercise.
// Built once per run; ordering of Items follows catalog declaration order.
type ValidationReport struct {
	// RunID uniquely identifies this validation run.
	RunID string `json:"run_id"`
	// ExerciseID is the exercise that was validated.
	ExerciseID string `json:"exercise_id"`
	// Items holds one feedback item per requirement, in catalog order.
	// A locator failure collapses this to a single top-level error item.
	Items []FeedbackItem `json:"items"`

	RequiredTotal  int `json:"required_total"`
	RequiredPassed int `json:"required_passed"`
	OptionalTotal  int `json:"optional_total"`
	OptionalPassed int `json:"optional_passed"`

	// OverallPass is true iff every required requirement passed.
	OverallPass bool `json:"overall_pass"`
	// Incomplete is true when the run was cancelled before all requirements
	// executed (deadline exceeded). Incomplete reports never pass.
	Incomplete bool `json:"incomplete,omitempty"`
	// Duration is the wall-clock time of the whole exercise run.
	Duration time.Duration `json:"duration"`
}

// SuccessRate returns the percentage of feedback items that are not
// failures. Info items count as passing; Error and Warning do not.
func (r ValidationReport) SuccessRate() float64 {
	if len(r.Items) == 0 {
		return 0
	}
	passed := 0
	for _, item := range r.Items {
		if item.Severity != SeverityError && item.Severity != SeverityWarning {
			passed++
		}
	}
	return float64(passed) / float64(len(r.Items)) * 100
}

// LevelReport aggregates reports for all exercises in one level.
type LevelReport struct {
	Level   string             `json:"level"`
	Reports []ValidationReport `json:"reports"`
}

// Pass returns true iff every exercise in the level passed.
func (l LevelReport) Pass() bool {
	for _, r := range l.Reports {
		if !r.OverallPass {
			return false
		}
	}
	return true
}

// CatalogReport aggregates reports for a whole-catalog run, ordered by
// level then exercise id.
type CatalogReport struct {
	Levels []LevelReport `json:"levels"`
}

// Pass returns true iff every level passed.
func (c CatalogReport) Pass() bool {
	for _, l := range c.Levels {
		if !l.Pass() {
			return false
		}
	}
	return true
}

// Totals returns the exercise pass counts across all levels.
func (c CatalogReport) Totals() (passed, total int) {
	for _, l := range c.Levels {
		for _, r := range l.Reports {
			total++
			if r.OverallPass {
				passed++
			}
		}
	}
	return passed, total
}

// ReadinessCheck is one structure-only probe used by check mode.
type ReadinessCheck struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
}

// Readiness is the result of a structure-only readiness probe: no build or
// test processes are spawned, only filesystem checks.
type Readiness struct {
	ExerciseID string           `json:"exercise_id"`
	Checks     []ReadinessCheck `json:"checks"`
	// Score is the percentage of probes that passed.
	Score float64 `json:"score"`
	// Ready is true when Score meets the readiness threshold.
	Ready bool `json:"ready"`
}
