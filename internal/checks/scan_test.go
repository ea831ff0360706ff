package checks

import (
	"strings"
	"testing"
)

func TestScanSources(t *testing.T) {
	ref := writeProject(t, map[string]string{
		"src/main.rs":       "fn main() { run(); }",
		"src/lib.rs":        "pub fn run() {}",
		"notes.txt":         "fn hidden_in_text()",
		"target/out.rs":     "fn generated()",
		".git/hook.rs":      "fn hook()",
		"vendor/dep/lib.rs": "fn vendored()",
	})

	res, err := scanSources(ref.RootPath, "pub fn run")
	if err != nil {
		t.Fatalf("scanSources() error: %v", err)
	}
	if !res.found {
		t.Fatal("pattern in lib.rs should be found")
	}
	if !strings.HasSuffix(res.file, "lib.rs") {
		t.Errorf("file = %q, want lib.rs", res.file)
	}

	// Non-source and skipped-directory files are invisible to the scan.
	for _, pattern := range []string{"hidden_in_text", "generated", "hook()", "vendored"} {
		res, err := scanSources(ref.RootPath, pattern)
		if err != nil {
			t.Fatalf("scanSources(%q) error: %v", pattern, err)
		}
		if res.found {
			t.Errorf("pattern %q should not be found", pattern)
		}
	}

	// Only the two files under src/ count as scanned sources.
	res, _ = scanSources(ref.RootPath, "no-match")
	if res.scanned != 2 {
		t.Errorf("scanned = %d, want 2", res.scanned)
	}
}

func TestTailLines(t *testing.T) {
	if got := tailLines("", 5); got != "" {
		t.Errorf("tailLines(empty) = %q, want empty", got)
	}

	short := "line1\nline2\n"
	if got := tailLines(short, 5); got != "line1\nline2" {
		t.Errorf("tailLines(short) = %q", got)
	}

	long := "a\nb\nc\nd\ne"
	got := tailLines(long, 2)
	if !strings.Contains(got, "3 earlier lines omitted") {
		t.Errorf("tailLines should note dropped lines, got %q", got)
	}
	if !strings.HasSuffix(got, "d\ne") {
		t.Errorf("tailLines should keep the last lines, got %q", got)
	}
}
