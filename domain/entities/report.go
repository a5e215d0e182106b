package entities

import "time"

// RunStatus represents the final status of a run
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// RunReport summarizes one verification run
type RunReport struct {
	RunID      string       `yaml:"run_id"`
	Plan       string       `yaml:"plan"`
	Driver     string       `yaml:"driver"`
	Status     RunStatus    `yaml:"status"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Steps      []StepResult `yaml:"steps"`
	Artifacts  []Artifact   `yaml:"artifacts"`
	Error      string       `yaml:"error,omitempty"`
}
