package feedback

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lessonpath/pathcheck/pkg/models"
)

func TestSynthesizeSeverity(t *testing.T) {
	s := NewSynthesizer()

	tests := []struct {
		name     string
		passed   bool
		required bool
		want     models.Severity
	}{
		{"required failure", false, true, models.SeverityError},
		{"optional failure", false, false, models.SeverityWarning},
		{"required pass", true, true, models.SeveritySuccess},
		{"optional pass", true, false, models.SeveritySuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.Requirement{
				ID:          "R-1",
				Description: "a file exists",
				Check:       models.FileExists("Cargo.toml"),
				Required:    tt.required,
			}
			item := s.Synthesize(models.Outcome{RequirementID: "R-1", Passed: tt.passed}, req)
			if item.Severity != tt.want {
				t.Errorf("Severity = %q, want %q", item.Severity, tt.want)
			}
			if item.RequirementID != "R-1" {
				t.Errorf("RequirementID = %q, want R-1", item.RequirementID)
			}
		})
	}
}

func TestSynthesizeAdvisoryOverridesPassState(t *testing.T) {
	s := NewSynthesizer()
	s.Merge(map[string]models.FeedbackTemplate{
		"TIP-1": {Message: "consider the extension challenges", Advisory: true},
	})

	req := models.Requirement{ID: "TIP-1", Description: "d", Check: models.FileExists("x"), Required: true}

	for _, passed := range []bool{true, false} {
		item := s.Synthesize(models.Outcome{RequirementID: "TIP-1", Passed: passed}, req)
		if item.Severity != models.SeverityInfo {
			t.Errorf("advisory item with passed=%t: Severity = %q, want info", passed, item.Severity)
		}
	}
}

func TestSynthesizeUsesIDTemplate(t *testing.T) {
	s := NewSynthesizer()

	req := models.Requirement{
		ID:          "CALC-001",
		Description: "Cargo.toml exists",
		Check:       models.FileExists("Cargo.toml"),
		Required:    true,
	}
	item := s.Synthesize(models.Outcome{RequirementID: "CALC-001", Passed: false, Detail: "required file not found: Cargo.toml"}, req)

	if !strings.Contains(item.Message, "Cargo.toml file is missing") {
		t.Errorf("message should come from the CALC-001 template, got %q", item.Message)
	}
	if !strings.Contains(item.Message, "required file not found") {
		t.Errorf("message should carry the outcome detail, got %q", item.Message)
	}
	if len(item.Suggestions) == 0 || len(item.CodeExamples) == 0 {
		t.Error("CALC-001 template guidance should be attached")
	}
}

func TestSynthesizeKindFallback(t *testing.T) {
	s := NewSynthesizer()

	// No id-specific template exists for this requirement: the build
	// fallback must apply, and nothing may be dropped.
	req := models.Requirement{
		ID:          "TPOOL-003",
		Description: "project builds",
		Check:       models.BuildSucceeds(),
		Required:    true,
	}
	item := s.Synthesize(models.Outcome{RequirementID: "TPOOL-003", Passed: false, Detail: "exit 101"}, req)

	if !strings.Contains(item.Message, "compilation errors") {
		t.Errorf("message should come from the build fallback, got %q", item.Message)
	}
	if len(item.Suggestions) == 0 {
		t.Error("fallback suggestions should be attached")
	}
}

func TestSynthesizeLastResortFallback(t *testing.T) {
	s := &Synthesizer{
		templates: map[string]models.FeedbackTemplate{},
		fallbacks: map[models.CheckKind]models.FeedbackTemplate{},
	}

	req := models.Requirement{ID: "X-1", Description: "something custom", Check: models.Custom("p"), Required: true}
	item := s.Synthesize(models.Outcome{RequirementID: "X-1", Passed: false}, req)

	if item.Message == "" {
		t.Fatal("an item must always carry a message")
	}
	if !strings.Contains(item.Message, "something custom") {
		t.Errorf("last-resort message should use the description, got %q", item.Message)
	}
}

func TestSynthesizePassedItemIsCompact(t *testing.T) {
	s := NewSynthesizer()

	req := models.Requirement{
		ID:          "CALC-001",
		Description: "Cargo.toml exists",
		Check:       models.FileExists("Cargo.toml"),
		Required:    true,
	}
	item := s.Synthesize(models.Outcome{RequirementID: "CALC-001", Passed: true}, req)

	if item.Message != "Cargo.toml exists" {
		t.Errorf("passed message = %q, want the description", item.Message)
	}
	if len(item.Suggestions) != 0 || len(item.Resources) != 0 {
		t.Error("passed items should not carry remediation guidance")
	}
}

func TestStatusItemBands(t *testing.T) {
	tests := []struct {
		rate float64
		want models.Severity
	}{
		{100.0, models.SeveritySuccess},
		{80.0, models.SeverityWarning},
		{75.0, models.SeverityWarning},
		{74.9, models.SeverityError},
		{0.0, models.SeverityError},
	}
	for _, tt := range tests {
		item := StatusItem("calculator", tt.rate)
		if item.Severity != tt.want {
			t.Errorf("StatusItem(%.1f) severity = %q, want %q", tt.rate, item.Severity, tt.want)
		}
	}
}

func TestProjectTip(t *testing.T) {
	if _, ok := ProjectTip("calculator", 25.0); !ok {
		t.Error("early-stage calculator should get a tip")
	}
	if _, ok := ProjectTip("calculator", 75.0); ok {
		t.Error("mostly complete project should not get a tip")
	}
	if _, ok := ProjectTip("unknown-exercise", 10.0); ok {
		t.Error("exercises without authored tips should get none")
	}

	tip, _ := ProjectTip("thread-pool", 0.0)
	if tip.Severity != models.SeverityInfo {
		t.Errorf("tip severity = %q, want info", tip.Severity)
	}
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	content := `
templates:
  CALC-001:
    message: custom override message
    suggestions:
      - do the thing
  NEW-001:
    message: brand new guidance
    advisory: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	overlay, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates() error: %v", err)
	}
	if len(overlay) != 2 {
		t.Fatalf("loaded %d templates, want 2", len(overlay))
	}
	if !overlay["NEW-001"].Advisory {
		t.Error("NEW-001 should be advisory")
	}

	s := NewSynthesizer()
	s.Merge(overlay)
	req := models.Requirement{ID: "CALC-001", Description: "d", Check: models.FileExists("Cargo.toml"), Required: true}
	item := s.Synthesize(models.Outcome{RequirementID: "CALC-001", Passed: false}, req)
	if !strings.Contains(item.Message, "custom override message") {
		t.Errorf("overlay should replace the builtin template, got %q", item.Message)
	}
}

func TestLoadTemplatesRejectsEmptyMessage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	if err := os.WriteFile(path, []byte("templates:\n  X-1:\n    advisory: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTemplates(path); err == nil {
		t.Error("template without a message should be rejected")
	}
}
