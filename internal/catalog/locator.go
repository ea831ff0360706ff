package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// ErrUnknownExercise is returned when an exercise id is not in the catalog.
var ErrUnknownExercise = errors.New("unknown exercise")

// ErrNotFound is returned when an exercise's project directory is missing.
var ErrNotFound = errors.New("project directory not found")

// Locate resolves an exercise id to a validated project reference.
// The root must exist and be a directory. A failed locate short-circuits
// all requirement checks for the exercise: callers report one top-level
// error instead of per-requirement noise.
func (c *Catalog) Locate(exerciseID string) (models.ProjectRef, error) {
	ex, ok := c.Lookup(exerciseID)
	if !ok {
		return models.ProjectRef{}, fmt.Errorf("%w: %s", ErrUnknownExercise, exerciseID)
	}

	root := filepath.Join(c.BasePath, ex.Path)
	abs, err := filepath.Abs(root)
	if err != nil {
		return models.ProjectRef{}, fmt.Errorf("resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return models.ProjectRef{}, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return models.ProjectRef{}, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return models.ProjectRef{}, fmt.Errorf("%w: %s is not a directory", ErrNotFound, abs)
	}

	return models.ProjectRef{ExerciseID: exerciseID, RootPath: abs}, nil
}
