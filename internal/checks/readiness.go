package checks

import (
	"os"
	"path/filepath"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// readinessThreshold is the score at which a project counts as ready.
const readinessThreshold = 75.0

// CheckReadiness probes an exercise's basic structure without spawning
// any processes. It backs the structure-only "check" mode: a fast answer
// to "is this project far enough along to be worth validating".
func CheckReadiness(ref models.ProjectRef) models.Readiness {
	tc, hasToolchain := DetectToolchain(ref.RootPath)

	manifest := "package manifest"
	if hasToolchain {
		manifest = tc.Manifest
	}

	probes := []models.ReadinessCheck{
		{Description: "project directory exists", Passed: dirExists(ref.RootPath)},
		{Description: manifest + " exists", Passed: hasToolchain},
		{Description: "source directory exists", Passed: dirExists(filepath.Join(ref.RootPath, "src"))},
		{Description: "entry point exists", Passed: entryPointExists(ref.RootPath)},
	}

	passed := 0
	for _, p := range probes {
		if p.Passed {
			passed++
		}
	}
	score := float64(passed) / float64(len(probes)) * 100

	return models.Readiness{
		ExerciseID: ref.ExerciseID,
		Checks:     probes,
		Score:      score,
		Ready:      score >= readinessThreshold,
	}
}

// entryPointExists checks for a recognizable program entry file.
func entryPointExists(root string) bool {
	candidates := []string{
		"src/main.rs", "src/lib.rs",
		"main.go", "cmd",
		"index.js", "src/index.ts",
		"main.py",
	}
	for _, c := range candidates {
		if _, err := os.Stat(filepath.Join(root, c)); err == nil {
			return true
		}
	}
	return false
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
