// Package catalog loads and indexes the per-exercise requirement catalog.
// The catalog is authored data: it maps exercise ids to project roots and
// declarative requirement lists, grouped into levels. It is loaded once per
// process and read-only afterwards.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// Exercise is one catalog entry: a learner-facing project with its own
// requirement list.
type Exercise struct {
	// ID is the exercise identifier used on the CLI (e.g. "calculator").
	ID string `yaml:"id"`
	// Path is the project root relative to the catalog base path.
	Path string `yaml:"path"`
	// Level is the level this exercise belongs to; filled during indexing.
	Level string `yaml:"-"`
	// Requirements are checked in declaration order.
	Requirements []models.Requirement `yaml:"requirements"`
}

// Level groups exercises by difficulty.
type Level struct {
	Name      string     `yaml:"name"`
	Exercises []Exercise `yaml:"exercises"`
}

// Catalog is the full requirement catalog.
type Catalog struct {
	// BasePath is the directory all exercise paths are relative to.
	BasePath string `yaml:"base_path"`
	Levels   []Level `yaml:"levels"`

	byID map[string]*Exercise
}

// Parse decodes a catalog from YAML and validates it. A malformed catalog
// is the one unrecoverable input: callers should abort with the returned
// diagnostic rather than produce a partial report.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// index validates the catalog and builds the exercise lookup table.
func (c *Catalog) index() error {
	c.byID = make(map[string]*Exercise)
	for li := range c.Levels {
		level := &c.Levels[li]
		if level.Name == "" {
			return fmt.Errorf("level %d missing name", li)
		}
		for ei := range level.Exercises {
			ex := &level.Exercises[ei]
			if ex.ID == "" {
				return fmt.Errorf("level %s: exercise %d missing id", level.Name, ei)
			}
			if ex.Path == "" {
				return fmt.Errorf("exercise %s missing path", ex.ID)
			}
			if _, dup := c.byID[ex.ID]; dup {
				return fmt.Errorf("duplicate exercise id %s", ex.ID)
			}
			seen := make(map[string]bool)
			for _, req := range ex.Requirements {
				if err := req.Validate(); err != nil {
					return fmt.Errorf("exercise %s: %w", ex.ID, err)
				}
				if seen[req.ID] {
					return fmt.Errorf("exercise %s: duplicate requirement id %s", ex.ID, req.ID)
				}
				seen[req.ID] = true
			}
			ex.Level = level.Name
			c.byID[ex.ID] = ex
		}
	}
	return nil
}

// Lookup returns the exercise with the given id.
func (c *Catalog) Lookup(id string) (*Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// LevelNames returns the level names in catalog order.
func (c *Catalog) LevelNames() []string {
	names := make([]string, 0, len(c.Levels))
	for _, l := range c.Levels {
		names = append(names, l.Name)
	}
	return names
}

// LevelExercises returns the exercises of one level in declaration order.
func (c *Catalog) LevelExercises(name string) ([]Exercise, bool) {
	for _, l := range c.Levels {
		if l.Name == name {
			return l.Exercises, true
		}
	}
	return nil, false
}

// ExerciseIDs returns all exercise ids, sorted.
func (c *Catalog) ExerciseIDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Size returns the number of exercises in the catalog.
func (c *Catalog) Size() int {
	return len(c.byID)
}
