// Package models defines the shared data types for exercise validation.
// These types are consumed by the catalog, checks, runner, feedback, and
// report packages.
package models

import "fmt"

// CheckKind identifies the kind of check a requirement performs.
type CheckKind string

const (
	// CheckFileExists verifies a path exists relative to the project root.
	CheckFileExists CheckKind = "file_exists"
	// CheckSymbolExists scans source files for a named symbol pattern.
	CheckSymbolExists CheckKind = "symbol_exists"
	// CheckBuildSucceeds runs the project's build command.
	CheckBuildSucceeds CheckKind = "build_succeeds"
	// CheckTestsPass runs the project's test command.
	CheckTestsPass CheckKind = "tests_pass"
	// CheckDocumentationExists verifies documentation files are present.
	CheckDocumentationExists CheckKind = "documentation_exists"
	// CheckErrorHandling scans for error-propagation idioms in source.
	CheckErrorHandling CheckKind = "error_handling_present"
	// CheckCustom dispatches to a registered predicate by id.
	CheckCustom CheckKind = "custom"
)

// Valid returns true if the kind is a known value.
func (k CheckKind) Valid() bool {
	switch k {
	case CheckFileExists, CheckSymbolExists, CheckBuildSucceeds, CheckTestsPass,
		CheckDocumentationExists, CheckErrorHandling, CheckCustom:
		return true
	default:
		return false
	}
}

// CheckSpec is a closed tagged variant describing one check. Kind selects
// the variant; the payload fields below are only meaningful for the kinds
// noted on each.
type CheckSpec struct {
	Kind CheckKind `yaml:"kind" json:"kind"`

	// Path is the file or directory to stat, relative to the project root
	// (CheckFileExists only).
	Path string `yaml:"path,omitempty" json:"path,omitempty"`

	// Dir indicates Path must be a directory rather than a regular file
	// (CheckFileExists only).
	Dir bool `yaml:"dir,omitempty" json:"dir,omitempty"`

	// Pattern is the symbol pattern to scan for (CheckSymbolExists only).
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// PredicateID names the registered predicate to run (CheckCustom only).
	PredicateID string `yaml:"predicate,omitempty" json:"predicate,omitempty"`
}

// Validate verifies that the spec carries exactly the payload its kind needs.
func (s CheckSpec) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("unknown check kind %q", s.Kind)
	}
	switch s.Kind {
	case CheckFileExists:
		if s.Path == "" {
			return fmt.Errorf("%s check requires a path", s.Kind)
		}
	case CheckSymbolExists:
		if s.Pattern == "" {
			return fmt.Errorf("%s check requires a pattern", s.Kind)
		}
	case CheckCustom:
		if s.PredicateID == "" {
			return fmt.Errorf("%s check requires a predicate id", s.Kind)
		}
	}
	return nil
}

// FileExists returns a CheckSpec that verifies a regular file exists.
func FileExists(path string) CheckSpec {
	return CheckSpec{Kind: CheckFileExists, Path: path}
}

// DirExists returns a CheckSpec that verifies a directory exists.
func DirExists(path string) CheckSpec {
	return CheckSpec{Kind: CheckFileExists, Path: path, Dir: true}
}

// SymbolExists returns a CheckSpec that scans sources for a symbol pattern.
func SymbolExists(pattern string) CheckSpec {
	return CheckSpec{Kind: CheckSymbolExists, Pattern: pattern}
}

// BuildSucceeds returns a CheckSpec that runs the project build.
func BuildSucceeds() CheckSpec {
	return CheckSpec{Kind: CheckBuildSucceeds}
}

// TestsPass returns a CheckSpec that runs the project test suite.
func TestsPass() CheckSpec {
	return CheckSpec{Kind: CheckTestsPass}
}

// DocumentationExists returns a CheckSpec for the documentation heuristic.
func DocumentationExists() CheckSpec {
	return CheckSpec{Kind: CheckDocumentationExists}
}

// ErrorHandlingPresent returns a CheckSpec for the error-handling heuristic.
func ErrorHandlingPresent() CheckSpec {
	return CheckSpec{Kind: CheckErrorHandling}
}

// Custom returns a CheckSpec that dispatches to a registered predicate.
func Custom(predicateID string) CheckSpec {
	return CheckSpec{Kind: CheckCustom, PredicateID: predicateID}
}

// Requirement is one declarative check an exercise submission must (or
// should) satisfy. Immutable once loaded from the catalog.
type Requirement struct {
	// ID is the stable, unique requirement identifier (e.g. "CALC-003").
	ID string `yaml:"id" json:"id"`
	// Description is the human-readable summary shown in reports.
	Description string `yaml:"description" json:"description"`
	// Check describes how the requirement is verified.
	Check CheckSpec `yaml:"check" json:"check"`
	// Required controls whether a failure flips the overall verdict.
	// Optional (Required=false) failures surface as warnings only.
	// This is always explicit in catalog data, never inferred.
	Required bool `yaml:"required" json:"required"`
}

// Validate verifies the requirement is well formed.
func (r Requirement) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("requirement missing id")
	}
	if r.Description == "" {
		return fmt.Errorf("requirement %s missing description", r.ID)
	}
	if err := r.Check.Validate(); err != nil {
		return fmt.Errorf("requirement %s: %w", r.ID, err)
	}
	return nil
}
