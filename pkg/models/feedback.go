package models

// Severity is the user-facing urgency level of a feedback item.
type Severity string

const (
	// SeverityError marks a failed required check.
	SeverityError Severity = "error"
	// SeverityWarning marks a failed optional check.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks advisory guidance shown regardless of pass state.
	SeverityInfo Severity = "info"
	// SeveritySuccess marks a passed check.
	SeveritySuccess Severity = "success"
)

// Valid returns true if the severity is a known value.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo, SeveritySuccess:
		return true
	default:
		return false
	}
}

// FeedbackItem is the leveled, human-readable rendering of one outcome.
// Derived deterministically from an Outcome, its Requirement, and a
// FeedbackTemplate.
type FeedbackItem struct {
	RequirementID string   `json:"requirement_id"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	// Suggestions are concrete remediation steps, in display order.
	Suggestions []string `json:"suggestions,omitempty"`
	// Resources are documentation URLs, in display order.
	Resources []string `json:"resources,omitempty"`
	// CodeExamples are illustrative snippets, in display order.
	CodeExamples []string `json:"code_examples,omitempty"`
}

// FeedbackTemplate supplies the static guidance text for a requirement.
// Templates are keyed by requirement id with a per-check-kind fallback;
// authored data, read-only at run time.
type FeedbackTemplate struct {
	// Message is the explanation shown when the requirement fails.
	Message string `yaml:"message" json:"message"`
	// Suggestions are remediation steps appended to failure feedback.
	Suggestions []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
	// Resources are documentation links appended to failure feedback.
	Resources []string `yaml:"resources,omitempty" json:"resources,omitempty"`
	// CodeExamples are snippets appended to failure feedback.
	CodeExamples []string `yaml:"code_examples,omitempty" json:"code_examples,omitempty"`
	// Advisory forces Info severity regardless of pass state. Used for
	// always-shown tips; explicit, never inferred from message wording.
	Advisory bool `yaml:"advisory,omitempty" json:"advisory,omitempty"`
}
