package entities

import "time"

// StepKind represents the type of step the runner can perform
type StepKind string

const (
	StepNavigate   StepKind = "navigate"
	StepFill       StepKind = "fill"
	StepClick      StepKind = "click"
	StepExpectURL  StepKind = "expect_url"
	StepScreenshot StepKind = "screenshot"
)

// Step represents a single browser interaction in a plan
type Step struct {
	Kind        StepKind `yaml:"kind"`
	URL         string   `yaml:"url,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Role        string   `yaml:"role,omitempty"`
	Name        string   `yaml:"name,omitempty"`
	Value       string   `yaml:"-"`
	Artifact    string   `yaml:"artifact,omitempty"`
	Description string   `yaml:"description"`
}

// StepResult represents the outcome of an executed step
type StepResult struct {
	Index       int           `yaml:"index"`
	Kind        StepKind      `yaml:"kind"`
	Description string        `yaml:"description"`
	Duration    time.Duration `yaml:"duration"`
	Error       string        `yaml:"error,omitempty"`
}
