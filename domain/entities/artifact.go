package entities

import "time"

// Artifact is a screenshot persisted to disk
type Artifact struct {
	Name       string    `yaml:"name"`
	Path       string    `yaml:"path"`
	Size       int       `yaml:"size"`
	CapturedAt time.Time `yaml:"captured_at"`
}
