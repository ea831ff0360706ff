package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testCatalog(t *testing.T, basePath string) *Catalog {
	t.Helper()
	c, err := Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	c.BasePath = basePath
	return c
}

func TestLocate(t *testing.T) {
	base := t.TempDir()
	projectDir := filepath.Join(base, "basic", "calculator")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatal(err)
	}

	c := testCatalog(t, base)

	ref, err := c.Locate("calculator")
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if ref.ExerciseID != "calculator" {
		t.Errorf("ExerciseID = %q, want calculator", ref.ExerciseID)
	}
	if !filepath.IsAbs(ref.RootPath) {
		t.Errorf("RootPath %q is not absolute", ref.RootPath)
	}
}

func TestLocateUnknownExercise(t *testing.T) {
	c := testCatalog(t, t.TempDir())

	_, err := c.Locate("no-such-exercise")
	if !errors.Is(err, ErrUnknownExercise) {
		t.Errorf("Locate() = %v, want ErrUnknownExercise", err)
	}
}

func TestLocateMissingDirectory(t *testing.T) {
	c := testCatalog(t, t.TempDir())

	_, err := c.Locate("calculator")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate() = %v, want ErrNotFound", err)
	}
}

func TestLocateFileNotDirectory(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "basic"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "basic", "calculator"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	c := testCatalog(t, base)

	_, err := c.Locate("calculator")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate() = %v, want ErrNotFound for non-directory", err)
	}
}
