// Package checks implements the per-requirement check executors.
//
// One executor exists per CheckSpec variant: file existence, symbol scan,
// build, test suite, documentation, error-handling idiom, and custom
// predicate. Only the build and test executors spawn processes; everything
// else is read-only filesystem work. The symbol, documentation, and
// error-handling checks are text-pattern heuristics, not semantic
// analysis, and are documented as best-effort signals.
package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lessonpath/pathcheck/internal/exec"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// DefaultTimeout bounds each spawned build or test process.
const DefaultTimeout = 2 * time.Minute

// DefaultTailLines caps the captured output tail on failures.
const DefaultTailLines = 50

// Options configure an Executor.
type Options struct {
	// Timeout bounds each spawned process. Zero means DefaultTimeout.
	Timeout time.Duration
	// TailLines caps captured process output. Zero means DefaultTailLines.
	TailLines int
	// BuildCmd overrides the auto-detected build command when non-empty.
	BuildCmd []string
	// TestCmd overrides the auto-detected test command when non-empty.
	TestCmd []string
}

// Executor runs requirement checks against one located project.
//
// An Executor is scoped to a single exercise run and is driven
// sequentially: requirement order encodes gating, so there is no
// concurrent access. The build outcome is cached so a failed build
// short-circuits the test check without spawning a second build.
type Executor struct {
	runner     exec.CommandRunner
	predicates *PredicateRegistry
	opts       Options

	// buildResult caches the BuildSucceeds outcome for test gating.
	buildResult *models.Outcome
}

// NewExecutor creates an executor for one exercise run.
func NewExecutor(runner exec.CommandRunner, predicates *PredicateRegistry, opts Options) *Executor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.TailLines <= 0 {
		opts.TailLines = DefaultTailLines
	}
	if predicates == nil {
		predicates = NewPredicateRegistry()
	}
	return &Executor{
		runner:     runner,
		predicates: predicates,
		opts:       opts,
	}
}

// Execute runs the requirement's check and returns its outcome. Expected
// failures (missing files, failing builds, timeouts) become failed
// outcomes, never errors: a broken submission must still produce a report.
func (e *Executor) Execute(ctx context.Context, ref models.ProjectRef, req models.Requirement) models.Outcome {
	start := time.Now()
	outcome := e.execute(ctx, ref, req)
	outcome.RequirementID = req.ID
	outcome.Duration = time.Since(start)
	return outcome
}

// execute dispatches on the check kind. The switch is exhaustive over the
// CheckKind variants; adding a kind without handling it here fails the
// requirement with an explicit diagnostic instead of passing silently.
func (e *Executor) execute(ctx context.Context, ref models.ProjectRef, req models.Requirement) models.Outcome {
	switch req.Check.Kind {
	case models.CheckFileExists:
		return e.executeFileExists(ref, req.Check)
	case models.CheckSymbolExists:
		return e.executeSymbolExists(ref, req.Check)
	case models.CheckBuildSucceeds:
		return e.executeBuild(ctx, ref)
	case models.CheckTestsPass:
		return e.executeTests(ctx, ref)
	case models.CheckDocumentationExists:
		return e.executeDocumentation(ref)
	case models.CheckErrorHandling:
		return e.executeErrorHandling(ref)
	case models.CheckCustom:
		return e.executeCustom(ref, req.Check)
	default:
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("unhandled check kind %q", req.Check.Kind),
		}
	}
}

// executeFileExists stats a path relative to the project root. Pure
// filesystem check, no process spawn.
func (e *Executor) executeFileExists(ref models.ProjectRef, spec models.CheckSpec) models.Outcome {
	full := filepath.Join(ref.RootPath, spec.Path)
	info, err := os.Stat(full)
	if err != nil {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("required file not found: %s", spec.Path),
		}
	}
	if spec.Dir {
		if !info.IsDir() {
			return models.Outcome{
				Passed: false,
				Detail: fmt.Sprintf("%s exists but is not a directory", spec.Path),
			}
		}
	} else if !info.Mode().IsRegular() {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("%s exists but is not a regular file", spec.Path),
		}
	}
	return models.Outcome{Passed: true, Detail: spec.Path}
}

// executeSymbolExists scans source files for the pattern. The first match
// wins and its file is reported in the detail.
func (e *Executor) executeSymbolExists(ref models.ProjectRef, spec models.CheckSpec) models.Outcome {
	res, err := scanSources(ref.RootPath, spec.Pattern)
	if err != nil {
		return models.Outcome{Passed: false, Detail: err.Error()}
	}
	if !res.found {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("'%s' not found in %d source files scanned", spec.Pattern, res.scanned),
		}
	}
	return models.Outcome{
		Passed: true,
		Detail: fmt.Sprintf("found in %s", res.file),
	}
}

// requiredDocs are the documentation files the heuristic expects.
var requiredDocs = []string{"README.md", "CONCEPTS.md"}

// executeDocumentation checks the fixed documentation files are present.
// Heuristic: presence only, content is not assessed.
func (e *Executor) executeDocumentation(ref models.ProjectRef) models.Outcome {
	var missing []string
	for _, doc := range requiredDocs {
		if !fileInRoot(ref.RootPath, doc) {
			missing = append(missing, doc)
		}
	}
	if len(missing) > 0 {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("missing documentation files: %v", missing),
		}
	}
	return models.Outcome{Passed: true, Detail: "documentation files present"}
}

// errorHandlingTokens are idioms recognized as error propagation. Covers
// the languages the toolchain detector knows about.
var errorHandlingTokens = []string{
	"Result<", "Option<", "match ", "if let", "unwrap_or",
	"if err != nil", "errors.",
	"try:", "except ",
	"try {", "catch",
}

// executeErrorHandling scans for a recognized error-propagation idiom.
// Heuristic: token presence is a best-effort signal, not verification
// that errors are handled correctly.
func (e *Executor) executeErrorHandling(ref models.ProjectRef) models.Outcome {
	res, err := scanSources(ref.RootPath, errorHandlingTokens...)
	if err != nil {
		return models.Outcome{Passed: false, Detail: err.Error()}
	}
	if !res.found {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("no error handling patterns found in %d source files scanned", res.scanned),
		}
	}
	return models.Outcome{
		Passed: true,
		Detail: fmt.Sprintf("error handling found in %s", res.file),
	}
}

// executeCustom dispatches to a registered predicate.
func (e *Executor) executeCustom(ref models.ProjectRef, spec models.CheckSpec) models.Outcome {
	predicate, ok := e.predicates.Lookup(spec.PredicateID)
	if !ok {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("no predicate registered for id %q", spec.PredicateID),
		}
	}
	if err := predicate(ref); err != nil {
		return models.Outcome{Passed: false, Detail: err.Error()}
	}
	return models.Outcome{Passed: true, Detail: "predicate " + spec.PredicateID + " satisfied"}
}
