package main

import (
	"fmt"
	"os"

	"github.com/lessonpath/pathcheck/internal/catalog"
	"github.com/lessonpath/pathcheck/internal/checks"
	"github.com/lessonpath/pathcheck/internal/config"
	"github.com/lessonpath/pathcheck/internal/exec"
	"github.com/lessonpath/pathcheck/internal/feedback"
	"github.com/lessonpath/pathcheck/internal/history"
	"github.com/lessonpath/pathcheck/internal/report"
	"github.com/lessonpath/pathcheck/internal/runner"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// environment bundles the wired-up components a command needs.
type environment struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	catRunner *runner.CatalogRunner
	logger    *runner.DebugLogger
	hist      *history.Store
}

// newEnvironment loads the catalog and wires runner, aggregator, and
// optional history store from configuration.
func newEnvironment(cfg *config.Config) (*environment, error) {
	var cat *catalog.Catalog
	var err error
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	} else {
		cat = catalog.Builtin()
	}

	basePath := cfg.Catalog.BasePath
	if basePath == "" {
		basePath, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}
	cat.BasePath = basePath

	synth := feedback.NewSynthesizer()
	if cfg.Templates.Path != "" {
		overlay, err := feedback.LoadTemplates(cfg.Templates.Path)
		if err != nil {
			return nil, err
		}
		synth.Merge(overlay)
	}

	logger := runner.NewDebugLoggerForPath(basePath)

	r := runner.New(exec.NewRunner(), checks.NewPredicateRegistry(), checks.Options{
		Timeout:   cfg.Checks.Timeout,
		TailLines: cfg.Checks.TailLines,
		BuildCmd:  cfg.Toolchain.BuildCmd,
		TestCmd:   cfg.Toolchain.TestCmd,
	}, logger)

	agg := report.NewAggregator(synth)
	catRunner := runner.NewCatalogRunner(cat, r, agg, cfg.Run.Workers, cfg.Run.Deadline)

	env := &environment{
		cfg:       cfg,
		catalog:   cat,
		catRunner: catRunner,
		logger:    logger,
	}

	if cfg.History.Enabled {
		path := cfg.History.Path
		if path == "" {
			path = history.DefaultPath(basePath)
		}
		hist, err := history.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening history store: %w", err)
		}
		env.hist = hist
	}

	return env, nil
}

// close releases the logger and history store.
func (e *environment) close() {
	if e.hist != nil {
		e.hist.Close()
	}
	e.logger.Close()
}

// record persists a report when history is enabled. Persistence failures
// are warnings; the validation result is already on screen.
func (e *environment) record(rep models.ValidationReport) {
	if e.hist == nil {
		return
	}
	if err := e.hist.Record(rep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run history: %v\n", err)
	}
}

// recordLevel persists every report in a level.
func (e *environment) recordLevel(lvl models.LevelReport) {
	for _, rep := range lvl.Reports {
		e.record(rep)
	}
}
