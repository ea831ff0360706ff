package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lessonpath/pathcheck/internal/config"
	"github.com/lessonpath/pathcheck/internal/report"
	"github.com/lessonpath/pathcheck/internal/watch"
)

var (
	validateLevel    string
	validateAll      bool
	validateJSON     bool
	validateWatch    bool
	validateTimeout  time.Duration
	validateWorkers  int
	validateDeadline time.Duration
)

var validateCmd = &cobra.Command{
	Use:   "validate [exercise-id]",
	Short: "Validate exercises against their requirements",
	Long: `Validate runs every requirement check for an exercise, a level, or
the whole learning path, and reports the results.

The exit code is zero only when every required requirement of every
validated exercise passed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateLevel, "level", "", "Validate every exercise in a level")
	validateCmd.Flags().BoolVar(&validateAll, "all", false, "Validate the whole learning path")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the report as JSON")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Re-validate when project files change (single exercise only)")
	validateCmd.Flags().DurationVar(&validateTimeout, "timeout", 0, "Per-check process timeout (overrides config)")
	validateCmd.Flags().IntVar(&validateWorkers, "workers", 0, "Concurrent exercises in batch runs (overrides config)")
	validateCmd.Flags().DurationVar(&validateDeadline, "deadline", 0, "Overall deadline for batch runs (overrides config)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Checks.Timeout = validateTimeout
	}
	if cmd.Flags().Changed("workers") {
		cfg.Run.Workers = validateWorkers
	}
	if cmd.Flags().Changed("deadline") {
		cfg.Run.Deadline = validateDeadline
	}

	env, err := newEnvironment(cfg)
	if err != nil {
		return err
	}
	defer env.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case validateAll:
		return validateCatalog(ctx, env)
	case validateLevel != "":
		return validateLevelRun(ctx, env)
	case len(args) == 1:
		if validateWatch {
			return validateWatchRun(ctx, env, args[0])
		}
		return validateExercise(ctx, env, args[0])
	default:
		return fmt.Errorf("specify an exercise id, --level, or --all")
	}
}

func validateExercise(ctx context.Context, env *environment, exerciseID string) error {
	rep, err := env.catRunner.RunExercise(ctx, exerciseID)
	if err != nil {
		return err
	}
	env.record(rep)

	if validateJSON {
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		report.Render(os.Stdout, rep)
	}

	if !rep.OverallPass {
		os.Exit(1)
	}
	return nil
}

func validateLevelRun(ctx context.Context, env *environment) error {
	lvl, err := env.catRunner.RunLevel(ctx, validateLevel)
	if err != nil {
		return err
	}
	env.recordLevel(lvl)

	if validateJSON {
		if err := report.WriteJSON(os.Stdout, lvl); err != nil {
			return err
		}
	} else {
		report.RenderLevel(os.Stdout, lvl)
	}

	if !lvl.Pass() {
		os.Exit(1)
	}
	return nil
}

func validateCatalog(ctx context.Context, env *environment) error {
	cat, err := env.catRunner.RunAll(ctx)
	if err != nil {
		return err
	}
	for _, lvl := range cat.Levels {
		env.recordLevel(lvl)
	}

	if validateJSON {
		if err := report.WriteJSON(os.Stdout, cat); err != nil {
			return err
		}
	} else {
		report.RenderCatalog(os.Stdout, cat)
	}

	if !cat.Pass() {
		os.Exit(1)
	}
	return nil
}

// validateWatchRun re-validates the exercise on every debounced change
// until interrupted. Watch mode never exits non-zero on failed checks;
// it is a feedback loop, not a gate.
func validateWatchRun(ctx context.Context, env *environment, exerciseID string) error {
	ref, err := env.catalog.Locate(exerciseID)
	if err != nil {
		return err
	}

	watcher, err := watch.New(ref, 0)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", ref.RootPath)

	err = watcher.Run(ctx, func(runCtx context.Context) {
		rep, runErr := env.catRunner.RunExercise(runCtx, exerciseID)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "validation error: %v\n", runErr)
			return
		}
		env.record(rep)
		report.Render(os.Stdout, rep)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
