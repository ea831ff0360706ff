// Package runner drives requirement checks for exercises: sequentially
// within an exercise, concurrently across exercises.
package runner

import (
	"context"
	"time"

	"github.com/lessonpath/pathcheck/internal/checks"
	"github.com/lessonpath/pathcheck/internal/exec"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// Runner executes an exercise's requirements in declaration order.
// Ordering carries the build-before-tests gating, so checks within one
// exercise never run concurrently.
type Runner struct {
	cmdRunner  exec.CommandRunner
	predicates *checks.PredicateRegistry
	opts       checks.Options
	logger     *DebugLogger
}

// New creates a runner. A nil logger disables debug logging.
func New(cmdRunner exec.CommandRunner, predicates *checks.PredicateRegistry, opts checks.Options, logger *DebugLogger) *Runner {
	if logger == nil {
		logger = NopLogger()
	}
	return &Runner{
		cmdRunner:  cmdRunner,
		predicates: predicates,
		opts:       opts,
		logger:     logger,
	}
}

// RunExercise executes all requirements against the located project and
// returns their outcomes in declaration order. A cancelled context stops
// the run early; outcomes for unexecuted requirements are simply absent,
// which the aggregator reports as incomplete. Check faults become failed
// outcomes, never panics: one broken submission must not sink a batch run.
func (r *Runner) RunExercise(ctx context.Context, ref models.ProjectRef, reqs []models.Requirement) []models.Outcome {
	executor := checks.NewExecutor(r.cmdRunner, r.predicates, r.opts)
	outcomes := make([]models.Outcome, 0, len(reqs))

	r.logger.Log("exercise %s: starting %d checks in %s", ref.ExerciseID, len(reqs), ref.RootPath)

	for _, req := range reqs {
		if ctx.Err() != nil {
			r.logger.Log("exercise %s: cancelled after %d of %d checks", ref.ExerciseID, len(outcomes), len(reqs))
			break
		}

		start := time.Now()
		outcome := executor.Execute(ctx, ref, req)
		outcomes = append(outcomes, outcome)

		r.logger.Log("exercise %s: %s passed=%t in %s", ref.ExerciseID, req.ID, outcome.Passed, time.Since(start).Round(time.Millisecond))
	}

	return outcomes
}
