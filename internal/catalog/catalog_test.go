package catalog

import (
	"strings"
	"testing"
)

const testCatalogYAML = `
levels:
  - name: basic
    exercises:
      - id: calculator
        path: basic/calculator
        requirements:
          - id: CALC-001
            description: Cargo.toml exists
            check:
              kind: file_exists
              path: Cargo.toml
            required: true
          - id: CALC-002
            description: project builds
            check:
              kind: build_succeeds
            required: true
      - id: text-processor
        path: basic/text-processor
        requirements:
          - id: TEXT-001
            description: README exists
            check:
              kind: file_exists
              path: README.md
            required: false
  - name: intermediate
    exercises:
      - id: web-scraper
        path: intermediate/web-scraper
        requirements:
          - id: SCRP-001
            description: fetch_page function exists
            check:
              kind: symbol_exists
              pattern: fn fetch_page
            required: true
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}

	names := c.LevelNames()
	if len(names) != 2 || names[0] != "basic" || names[1] != "intermediate" {
		t.Errorf("LevelNames() = %v, want [basic intermediate]", names)
	}

	ex, ok := c.Lookup("calculator")
	if !ok {
		t.Fatal("Lookup(calculator) not found")
	}
	if ex.Level != "basic" {
		t.Errorf("calculator level = %q, want basic", ex.Level)
	}
	if len(ex.Requirements) != 2 {
		t.Fatalf("calculator has %d requirements, want 2", len(ex.Requirements))
	}
	if ex.Requirements[0].ID != "CALC-001" || ex.Requirements[1].ID != "CALC-002" {
		t.Errorf("requirement order not preserved: %v", ex.Requirements)
	}

	if _, ok := c.Lookup("no-such-exercise"); ok {
		t.Error("Lookup of unknown exercise should report not found")
	}
}

func TestParseRejectsDuplicateExerciseID(t *testing.T) {
	yaml := `
levels:
  - name: basic
    exercises:
      - id: calculator
        path: a
      - id: calculator
        path: b
`
	_, err := Parse([]byte(yaml))
	if err == nil || !strings.Contains(err.Error(), "duplicate exercise id") {
		t.Errorf("Parse() = %v, want duplicate exercise id error", err)
	}
}

func TestParseRejectsDuplicateRequirementID(t *testing.T) {
	yaml := `
levels:
  - name: basic
    exercises:
      - id: calculator
        path: a
        requirements:
          - id: CALC-001
            description: one
            check: {kind: build_succeeds}
            required: true
          - id: CALC-001
            description: two
            check: {kind: tests_pass}
            required: true
`
	_, err := Parse([]byte(yaml))
	if err == nil || !strings.Contains(err.Error(), "duplicate requirement id") {
		t.Errorf("Parse() = %v, want duplicate requirement id error", err)
	}
}

func TestParseRejectsInvalidRequirement(t *testing.T) {
	yaml := `
levels:
  - name: basic
    exercises:
      - id: calculator
        path: a
        requirements:
          - id: CALC-001
            description: symbol without pattern
            check: {kind: symbol_exists}
            required: true
`
	_, err := Parse([]byte(yaml))
	if err == nil || !strings.Contains(err.Error(), "requires a pattern") {
		t.Errorf("Parse() = %v, want pattern validation error", err)
	}
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	if c.Size() != 16 {
		t.Errorf("builtin catalog has %d exercises, want 16", c.Size())
	}

	names := c.LevelNames()
	want := []string{"basic", "intermediate", "advanced", "expert"}
	if len(names) != len(want) {
		t.Fatalf("LevelNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("level %d = %q, want %q", i, names[i], want[i])
		}
	}

	calc, ok := c.Lookup("calculator")
	if !ok {
		t.Fatal("builtin catalog missing calculator")
	}
	if len(calc.Requirements) != 8 {
		t.Errorf("calculator has %d requirements, want 8", len(calc.Requirements))
	}

	// Every builtin requirement must be well formed.
	for _, id := range c.ExerciseIDs() {
		ex, _ := c.Lookup(id)
		for _, req := range ex.Requirements {
			if err := req.Validate(); err != nil {
				t.Errorf("builtin requirement invalid: %v", err)
			}
		}
	}
}
