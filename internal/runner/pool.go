package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/lessonpath/pathcheck/internal/catalog"
	"github.com/lessonpath/pathcheck/internal/checks"
	"github.com/lessonpath/pathcheck/internal/report"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// CatalogRunner validates exercises from a catalog, fanning batch runs out
// over a bounded worker pool. Exercises are independent, so cross-exercise
// concurrency is safe; within one exercise checks stay sequential.
type CatalogRunner struct {
	catalog *catalog.Catalog
	runner  *Runner
	agg     *report.Aggregator

	// workers bounds batch concurrency. Zero means GOMAXPROCS.
	workers int
	// deadline bounds a whole batch run. Zero means no deadline.
	deadline time.Duration
}

// NewCatalogRunner creates a catalog runner.
func NewCatalogRunner(cat *catalog.Catalog, r *Runner, agg *report.Aggregator, workers int, deadline time.Duration) *CatalogRunner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CatalogRunner{
		catalog:  cat,
		runner:   r,
		agg:      agg,
		workers:  workers,
		deadline: deadline,
	}
}

// RunExercise validates a single exercise by id. An unknown id is an
// error; a known exercise whose project directory is missing yields a
// locator-failure report instead.
func (c *CatalogRunner) RunExercise(ctx context.Context, exerciseID string) (models.ValidationReport, error) {
	ex, ok := c.catalog.Lookup(exerciseID)
	if !ok {
		return models.ValidationReport{}, fmt.Errorf("%w: %s", catalog.ErrUnknownExercise, exerciseID)
	}
	return c.validate(ctx, *ex), nil
}

// RunLevel validates every exercise in one level.
func (c *CatalogRunner) RunLevel(ctx context.Context, level string) (models.LevelReport, error) {
	exercises, ok := c.catalog.LevelExercises(level)
	if !ok {
		return models.LevelReport{}, fmt.Errorf("unknown level %q", level)
	}

	byID := c.runBatch(ctx, exercises)
	return c.assembleLevel(level, exercises, byID), nil
}

// RunAll validates the whole catalog, ordered by level then declaration.
func (c *CatalogRunner) RunAll(ctx context.Context) (models.CatalogReport, error) {
	var all []catalog.Exercise
	for _, name := range c.catalog.LevelNames() {
		exercises, _ := c.catalog.LevelExercises(name)
		all = append(all, exercises...)
	}

	byID := c.runBatch(ctx, all)

	var cat models.CatalogReport
	for _, name := range c.catalog.LevelNames() {
		exercises, _ := c.catalog.LevelExercises(name)
		cat.Levels = append(cat.Levels, c.assembleLevel(name, exercises, byID))
	}
	return cat, nil
}

// runBatch validates exercises concurrently and returns reports keyed by
// exercise id. The overall deadline covers the batch; exercises still
// queued when it expires come back as incomplete failed reports rather
// than being silently dropped.
func (c *CatalogRunner) runBatch(ctx context.Context, exercises []catalog.Exercise) map[string]models.ValidationReport {
	if c.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.deadline)
		defer cancel()
	}

	jobs := make(chan catalog.Exercise)
	results := make(map[string]models.ValidationReport, len(exercises))

	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := c.workers
	if workers > len(exercises) {
		workers = len(exercises)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ex := range jobs {
				rep := c.validate(ctx, ex)
				mu.Lock()
				results[ex.ID] = rep
				mu.Unlock()
			}
		}()
	}

	for _, ex := range exercises {
		jobs <- ex
	}
	close(jobs)
	wg.Wait()

	return results
}

// assembleLevel orders a batch's reports back into catalog declaration
// order. Exercises with no report (queued past the deadline) get an
// incomplete failed report so totals stay honest.
func (c *CatalogRunner) assembleLevel(level string, exercises []catalog.Exercise, byID map[string]models.ValidationReport) models.LevelReport {
	lvl := models.LevelReport{Level: level}
	for _, ex := range exercises {
		rep, ok := byID[ex.ID]
		if !ok {
			rep = c.agg.Aggregate(ex.ID, ex.Requirements, nil, 0)
		}
		lvl.Reports = append(lvl.Reports, rep)
	}
	return lvl
}

// validate runs one exercise end to end: locate, execute, aggregate.
func (c *CatalogRunner) validate(ctx context.Context, ex catalog.Exercise) models.ValidationReport {
	ref, err := c.catalog.Locate(ex.ID)
	if err != nil {
		return c.agg.LocatorFailure(ex.ID, ex.Requirements, err)
	}

	start := time.Now()
	outcomes := c.runner.RunExercise(ctx, ref, ex.Requirements)
	return c.agg.Aggregate(ex.ID, ex.Requirements, outcomes, time.Since(start))
}

// Readiness runs the structure-only readiness probe for one exercise.
func (c *CatalogRunner) Readiness(exerciseID string) (models.Readiness, error) {
	ref, err := c.catalog.Locate(exerciseID)
	if err != nil {
		return models.Readiness{}, err
	}
	return checks.CheckReadiness(ref), nil
}
