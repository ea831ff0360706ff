package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lessonpath/pathcheck/pkg/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecentRuns(t *testing.T) {
	s := openTestStore(t)

	reports := []models.ValidationReport{
		{RunID: "run-1", ExerciseID: "calculator", RequiredPassed: 3, RequiredTotal: 6, OverallPass: false, Duration: 2 * time.Second},
		{RunID: "run-2", ExerciseID: "calculator", RequiredPassed: 6, RequiredTotal: 6, OptionalPassed: 1, OptionalTotal: 2, OverallPass: true, Duration: 3 * time.Second},
		{RunID: "run-3", ExerciseID: "file-explorer", RequiredPassed: 1, RequiredTotal: 5, OverallPass: false, Duration: time.Second},
	}
	for _, rep := range reports {
		if err := s.Record(rep); err != nil {
			t.Fatalf("Record(%s) error: %v", rep.RunID, err)
		}
	}

	runs, err := s.RecentRuns("calculator", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	for _, run := range runs {
		if run.ExerciseID != "calculator" {
			t.Errorf("run %s exercise = %q, want calculator", run.RunID, run.ExerciseID)
		}
	}

	var passing *Run
	for i := range runs {
		if runs[i].RunID == "run-2" {
			passing = &runs[i]
		}
	}
	if passing == nil {
		t.Fatal("run-2 not returned")
	}
	if !passing.OverallPass || passing.RequiredPassed != 6 || passing.OptionalPassed != 1 {
		t.Errorf("run-2 round-trip mismatch: %+v", passing)
	}
	if passing.Duration != 3*time.Second {
		t.Errorf("run-2 duration = %v, want 3s", passing.Duration)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		rep := models.ValidationReport{
			RunID:      string(rune('a' + i)),
			ExerciseID: "calculator",
		}
		if err := s.Record(rep); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.RecentRuns("calculator", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("runs = %d, want 3", len(runs))
	}
}

func TestRecentRunsEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.RecentRuns("calculator", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %d, want 0", len(runs))
	}
}

func TestRecordDuplicateRunID(t *testing.T) {
	s := openTestStore(t)

	rep := models.ValidationReport{RunID: "run-1", ExerciseID: "calculator"}
	if err := s.Record(rep); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(rep); err == nil {
		t.Error("duplicate run id should violate the primary key")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record(models.ValidationReport{RunID: "run-1", ExerciseID: "calculator"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopening applies migrations again; existing data must survive.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s2.Close()

	runs, err := s2.RecentRuns("calculator", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("runs after reopen = %d, want 1", len(runs))
	}
}
