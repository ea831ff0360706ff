package models

import "time"

// ProjectRef is a resolved reference to an exercise project on disk.
// Created by the catalog locator after verifying the root exists and is a
// directory; consumed read-only by check executors.
type ProjectRef struct {
	// ExerciseID is the catalog identifier for the exercise.
	ExerciseID string `json:"exercise_id"`
	// RootPath is the absolute path to the project root directory.
	RootPath string `json:"root_path"`
}

// Outcome is the raw result of executing one requirement's check.
// Produced once per requirement per run and never mutated afterwards.
type Outcome struct {
	// RequirementID links the outcome back to its requirement.
	RequirementID string `json:"requirement_id"`
	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`
	// Detail explains the result: the matching file for a symbol scan, the
	// captured output tail for a failed build, and so on.
	Detail string `json:"detail,omitempty"`
	// Duration is how long the check took.
	Duration time.Duration `json:"duration"`
}
