package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lessonpath/pathcheck/internal/feedback"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// severityStyle maps a severity to its marker symbol and color.
func severityStyle(s models.Severity) (string, color.Attribute) {
	switch s {
	case models.SeverityError:
		return "✗", color.FgRed
	case models.SeverityWarning:
		return "⚠", color.FgYellow
	case models.SeverityInfo:
		return "ℹ", color.FgCyan
	default:
		return "✓", color.FgGreen
	}
}

// Render writes a human-readable exercise report. The status banner comes
// first, then one line per requirement with guidance for the failures.
func Render(w io.Writer, rep models.ValidationReport) {
	rate := rep.SuccessRate()

	fmt.Fprintln(w, strings.Repeat("=", 60))
	renderItem(w, feedback.StatusItem(rep.ExerciseID, rate))
	if tip, ok := feedback.ProjectTip(rep.ExerciseID, rate); ok {
		renderItem(w, tip)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, item := range rep.Items {
		renderItem(w, item)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Required: %d/%d passed   Optional: %d/%d passed   (%s)\n",
		rep.RequiredPassed, rep.RequiredTotal,
		rep.OptionalPassed, rep.OptionalTotal,
		rep.Duration.Round(timePrecision))

	if rep.Incomplete {
		fmt.Fprintf(w, "%s validation was cancelled before all checks ran\n", color.YellowString("⚠"))
	}

	if rep.OverallPass {
		fmt.Fprintf(w, "%s %s passed\n", color.GreenString("✓"), rep.ExerciseID)
	} else {
		fmt.Fprintf(w, "%s %s failed\n", color.RedString("✗"), rep.ExerciseID)
	}
}

// renderItem writes one feedback item with its guidance blocks.
func renderItem(w io.Writer, item models.FeedbackItem) {
	symbol, attr := severityStyle(item.Severity)
	c := color.New(attr)

	first, rest, _ := strings.Cut(item.Message, "\n")
	fmt.Fprintf(w, "%s %s %s\n", c.Sprint(symbol), item.RequirementID, first)
	if rest != "" {
		for _, line := range strings.Split(rest, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}

	if len(item.Suggestions) > 0 {
		fmt.Fprintln(w, "    Suggestions:")
		for _, s := range item.Suggestions {
			fmt.Fprintf(w, "      • %s\n", s)
		}
	}
	if len(item.Resources) > 0 {
		fmt.Fprintln(w, "    Resources:")
		for _, r := range item.Resources {
			fmt.Fprintf(w, "      • %s\n", r)
		}
	}
	for _, example := range item.CodeExamples {
		fmt.Fprintln(w, "    Example:")
		for _, line := range strings.Split(example, "\n") {
			fmt.Fprintf(w, "      %s\n", line)
		}
	}
}

// RenderLevel writes all exercise reports in a level plus a level summary.
func RenderLevel(w io.Writer, lvl models.LevelReport) {
	fmt.Fprintf(w, "\n== Level: %s ==\n", lvl.Level)
	for _, rep := range lvl.Reports {
		Render(w, rep)
	}

	passed := 0
	for _, rep := range lvl.Reports {
		if rep.OverallPass {
			passed++
		}
	}
	if lvl.Pass() {
		fmt.Fprintf(w, "%s level %s: %d/%d exercises passed\n",
			color.GreenString("✓"), lvl.Level, passed, len(lvl.Reports))
	} else {
		fmt.Fprintf(w, "%s level %s: %d/%d exercises passed\n",
			color.RedString("✗"), lvl.Level, passed, len(lvl.Reports))
	}
}

// RenderCatalog writes all levels plus a catalog summary.
func RenderCatalog(w io.Writer, cat models.CatalogReport) {
	for _, lvl := range cat.Levels {
		RenderLevel(w, lvl)
	}

	passed, total := cat.Totals()
	fmt.Fprintln(w, strings.Repeat("=", 60))
	if cat.Pass() {
		fmt.Fprintf(w, "%s learning path: %d/%d exercises passed\n", color.GreenString("✓"), passed, total)
	} else {
		fmt.Fprintf(w, "%s learning path: %d/%d exercises passed\n", color.RedString("✗"), passed, total)
	}
}

// RenderReadiness writes the structure-only readiness probe result.
func RenderReadiness(w io.Writer, r models.Readiness) {
	fmt.Fprintf(w, "Readiness check for %s:\n", r.ExerciseID)
	for _, c := range r.Checks {
		if c.Passed {
			fmt.Fprintf(w, "  %s %s\n", color.GreenString("✓"), c.Description)
		} else {
			fmt.Fprintf(w, "  %s %s\n", color.RedString("✗"), c.Description)
		}
	}
	if r.Ready {
		fmt.Fprintf(w, "%s %.0f%% — ready for full validation\n", color.GreenString("✓"), r.Score)
	} else {
		fmt.Fprintf(w, "%s %.0f%% — project structure is incomplete\n", color.YellowString("⚠"), r.Score)
	}
}
