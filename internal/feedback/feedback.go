// Package feedback converts raw check outcomes into leveled feedback items.
//
// Synthesis is a pure mapping: Outcome + Requirement + template -> item.
// Every outcome yields exactly one item; a missing template falls back to
// a generic template keyed by check kind, so nothing is ever dropped.
package feedback

import (
	"fmt"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// Synthesizer maps outcomes to feedback items using a template table.
// The table is loaded once and read-only afterwards, so a single
// Synthesizer is safely shared across workers.
type Synthesizer struct {
	// templates is keyed by requirement id.
	templates map[string]models.FeedbackTemplate
	// fallbacks is keyed by check kind, used when no id-specific
	// template exists.
	fallbacks map[models.CheckKind]models.FeedbackTemplate
}

// NewSynthesizer creates a synthesizer with the built-in templates.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		templates: builtinTemplates(),
		fallbacks: builtinFallbacks(),
	}
}

// Merge overlays additional id-keyed templates, replacing built-ins with
// the same key. Used for authored template files.
func (s *Synthesizer) Merge(templates map[string]models.FeedbackTemplate) {
	for id, tmpl := range templates {
		s.templates[id] = tmpl
	}
}

// Synthesize derives the feedback item for one outcome.
//
// Severity rule, first match wins: advisory template -> Info regardless
// of pass state; passed -> Success; required and failed -> Error;
// optional and failed -> Warning.
func (s *Synthesizer) Synthesize(outcome models.Outcome, req models.Requirement) models.FeedbackItem {
	tmpl := s.lookup(req)

	item := models.FeedbackItem{
		RequirementID: req.ID,
		Suggestions:   tmpl.Suggestions,
		Resources:     tmpl.Resources,
		CodeExamples:  tmpl.CodeExamples,
	}

	switch {
	case tmpl.Advisory:
		item.Severity = models.SeverityInfo
	case outcome.Passed:
		item.Severity = models.SeveritySuccess
	case req.Required:
		item.Severity = models.SeverityError
	default:
		item.Severity = models.SeverityWarning
	}

	if outcome.Passed && !tmpl.Advisory {
		item.Message = req.Description
		// Guidance text is for failures; passed items stay compact.
		item.Suggestions = nil
		item.Resources = nil
		item.CodeExamples = nil
		return item
	}

	item.Message = tmpl.Message
	if outcome.Detail != "" {
		item.Message = fmt.Sprintf("%s\n\nDetail: %s", tmpl.Message, outcome.Detail)
	}
	return item
}

// lookup finds the template for a requirement: id-specific first, then
// the per-kind fallback, then a last-resort generic.
func (s *Synthesizer) lookup(req models.Requirement) models.FeedbackTemplate {
	if tmpl, ok := s.templates[req.ID]; ok {
		return tmpl
	}
	if tmpl, ok := s.fallbacks[req.Check.Kind]; ok {
		return tmpl
	}
	return models.FeedbackTemplate{
		Message: fmt.Sprintf("Requirement not met: %s", req.Description),
		Suggestions: []string{
			"Review the exercise requirements carefully",
			"Check the exercise README for detailed instructions",
		},
	}
}

// LocatorFailureItem builds the single top-level error item used when the
// project directory could not be located. It replaces per-requirement
// feedback entirely for that exercise.
func LocatorFailureItem(exerciseID string, err error) models.FeedbackItem {
	return models.FeedbackItem{
		RequirementID: exerciseID,
		Severity:      models.SeverityError,
		Message:       fmt.Sprintf("The %s project could not be located: %v", exerciseID, err),
		Suggestions: []string{
			"Make sure you're running from the learning path root",
			"Check if the project has been created yet",
			"Verify the exercise name is spelled correctly",
		},
	}
}
