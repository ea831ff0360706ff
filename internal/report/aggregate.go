// Package report aggregates outcomes into per-exercise, per-level, and
// catalog reports and renders them for terminals and machines.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/lessonpath/pathcheck/internal/feedback"
	"github.com/lessonpath/pathcheck/pkg/models"
)

// Aggregator turns raw outcomes into validation reports. It owns the
// feedback synthesizer so item synthesis and counting stay consistent.
type Aggregator struct {
	synth *feedback.Synthesizer
}

// NewAggregator creates an aggregator over the given synthesizer.
func NewAggregator(synth *feedback.Synthesizer) *Aggregator {
	if synth == nil {
		synth = feedback.NewSynthesizer()
	}
	return &Aggregator{synth: synth}
}

// Aggregate builds the report for one exercise run. Items follow the
// requirement declaration order regardless of the order outcomes arrived
// in. A requirement with no outcome means the run was cut short; it is
// reported as failed and the report marked incomplete.
func (a *Aggregator) Aggregate(exerciseID string, reqs []models.Requirement, outcomes []models.Outcome, duration time.Duration) models.ValidationReport {
	byID := make(map[string]models.Outcome, len(outcomes))
	for _, o := range outcomes {
		byID[o.RequirementID] = o
	}

	rep := models.ValidationReport{
		RunID:      uuid.NewString(),
		ExerciseID: exerciseID,
		Items:      make([]models.FeedbackItem, 0, len(reqs)),
		Duration:   duration,
	}

	requiredFailed := 0
	for _, req := range reqs {
		outcome, ran := byID[req.ID]
		if !ran {
			rep.Incomplete = true
			outcome = models.Outcome{
				RequirementID: req.ID,
				Passed:        false,
				Detail:        "check not run: validation was cancelled",
			}
		}

		rep.Items = append(rep.Items, a.synth.Synthesize(outcome, req))

		if req.Required {
			rep.RequiredTotal++
			if outcome.Passed {
				rep.RequiredPassed++
			} else {
				requiredFailed++
			}
		} else {
			rep.OptionalTotal++
			if outcome.Passed {
				rep.OptionalPassed++
			}
		}
	}

	rep.OverallPass = requiredFailed == 0 && !rep.Incomplete
	return rep
}

// LocatorFailure builds the report used when the exercise's project
// directory could not be located: a single error item, nothing executed.
func (a *Aggregator) LocatorFailure(exerciseID string, reqs []models.Requirement, err error) models.ValidationReport {
	rep := models.ValidationReport{
		RunID:      uuid.NewString(),
		ExerciseID: exerciseID,
		Items:      []models.FeedbackItem{feedback.LocatorFailureItem(exerciseID, err)},
	}
	for _, req := range reqs {
		if req.Required {
			rep.RequiredTotal++
		} else {
			rep.OptionalTotal++
		}
	}
	return rep
}
