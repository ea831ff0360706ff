package models

import "testing"

func TestSuccessRate(t *testing.T) {
	rep := ValidationReport{
		Items: []FeedbackItem{
			{Severity: SeveritySuccess},
			{Severity: SeveritySuccess},
			{Severity: SeverityError},
			{Severity: SeverityWarning},
		},
	}
	if got := rep.SuccessRate(); got != 50.0 {
		t.Errorf("SuccessRate() = %v, want 50.0", got)
	}

	empty := ValidationReport{}
	if got := empty.SuccessRate(); got != 0 {
		t.Errorf("empty report SuccessRate() = %v, want 0", got)
	}

	// Info items are advisory, not failures.
	advisory := ValidationReport{
		Items: []FeedbackItem{
			{Severity: SeveritySuccess},
			{Severity: SeverityInfo},
		},
	}
	if got := advisory.SuccessRate(); got != 100.0 {
		t.Errorf("advisory SuccessRate() = %v, want 100.0", got)
	}
}

func TestLevelReportPass(t *testing.T) {
	passing := LevelReport{Reports: []ValidationReport{
		{OverallPass: true},
		{OverallPass: true},
	}}
	if !passing.Pass() {
		t.Error("level with all passing exercises should pass")
	}

	failing := LevelReport{Reports: []ValidationReport{
		{OverallPass: true},
		{OverallPass: false},
	}}
	if failing.Pass() {
		t.Error("level with a failing exercise should not pass")
	}
}

func TestCatalogReportTotals(t *testing.T) {
	cat := CatalogReport{Levels: []LevelReport{
		{Reports: []ValidationReport{{OverallPass: true}, {OverallPass: false}}},
		{Reports: []ValidationReport{{OverallPass: true}}},
	}}

	passed, total := cat.Totals()
	if passed != 2 || total != 3 {
		t.Errorf("Totals() = (%d, %d), want (2, 3)", passed, total)
	}
	if cat.Pass() {
		t.Error("catalog with a failing exercise should not pass")
	}
}
