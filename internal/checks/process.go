package checks

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lessonpath/pathcheck/internal/exec"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// testSummaryPattern extracts a test-count summary line from runner
// output (e.g. cargo's "test result: ok. 6 passed; 0 failed").
var testSummaryPattern = regexp.MustCompile(`(?m)^.*\b\d+ passed\b.*$`)

// executeBuild runs the project's build command and caches the outcome
// for test gating.
func (e *Executor) executeBuild(ctx context.Context, ref models.ProjectRef) models.Outcome {
	outcome := e.runToolchain(ctx, ref, true)
	e.buildResult = &outcome
	return outcome
}

// executeTests runs the project's test command. When a build check
// already failed in this run, the test check short-circuits to the same
// failure instead of paying for a second doomed compile.
func (e *Executor) executeTests(ctx context.Context, ref models.ProjectRef) models.Outcome {
	if e.buildResult != nil && !e.buildResult.Passed {
		return models.Outcome{
			Passed: false,
			Detail: "tests not run: build failed (" + firstLine(e.buildResult.Detail) + ")",
		}
	}

	outcome := e.runToolchain(ctx, ref, false)
	if outcome.Passed {
		return outcome
	}

	// Prefer the test-count summary when the runner printed one.
	if summary := testSummaryPattern.FindString(outcome.Detail); summary != "" {
		outcome.Detail = fmt.Sprintf("tests failed: %s", strings.TrimSpace(summary))
	}
	return outcome
}

// runToolchain invokes the build or test command with the project root as
// working directory and a bounded timeout. Spawn failures and timeouts
// become failed outcomes with explanatory details.
func (e *Executor) runToolchain(ctx context.Context, ref models.ProjectRef, build bool) models.Outcome {
	argv, err := e.toolchainCommand(ref, build)
	if err != nil {
		return models.Outcome{Passed: false, Detail: err.Error()}
	}

	if _, err := e.runner.LookPath(argv[0]); err != nil {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("toolchain not available: %s not found in PATH", argv[0]),
		}
	}

	cmdCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	output, runErr := e.runner.Run(cmdCtx, ref.RootPath, argv[0], argv[1:]...)
	if runErr == nil {
		return models.Outcome{Passed: true, Detail: strings.Join(argv, " ") + " succeeded"}
	}

	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("%s timed out after %s", strings.Join(argv, " "), e.opts.Timeout),
		}
	}

	if code := exec.ExitCode(runErr); code == -1 {
		// The process never started: an environment fault, not a
		// submission failure, but it must still yield a reportable outcome.
		return models.Outcome{
			Passed: false,
			Detail: fmt.Sprintf("failed to run %s: %v", strings.Join(argv, " "), runErr),
		}
	}

	return models.Outcome{
		Passed: false,
		Detail: fmt.Sprintf("%s failed (exit %d):\n%s",
			strings.Join(argv, " "), exec.ExitCode(runErr), tailLines(string(output), e.opts.TailLines)),
	}
}

// toolchainCommand resolves the build or test argv for the project,
// honoring config overrides before auto-detection.
func (e *Executor) toolchainCommand(ref models.ProjectRef, build bool) ([]string, error) {
	if build && len(e.opts.BuildCmd) > 0 {
		return e.opts.BuildCmd, nil
	}
	if !build && len(e.opts.TestCmd) > 0 {
		return e.opts.TestCmd, nil
	}

	tc, ok := DetectToolchain(ref.RootPath)
	if !ok {
		return nil, fmt.Errorf("unable to detect project type in %s (no Cargo.toml, go.mod, package.json, or pyproject.toml)", ref.RootPath)
	}
	if build {
		return tc.BuildCmd, nil
	}
	return tc.TestCmd, nil
}

// firstLine returns the first line of s.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
