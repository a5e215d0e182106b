package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"uiverify/domain/entities"
	"uiverify/domain/interfaces"
)

type reportFile struct {
	path string
}

// NewReportWriter - creates writer for YAML run reports
func NewReportWriter(path string) interfaces.ReportWriter {
	return &reportFile{path: path}
}

// WriteReport - saves run report as YAML
func (r *reportFile) WriteReport(report *entities.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	return os.WriteFile(r.path, data, 0644)
}

// LoadReport - reads a report written by WriteReport
func LoadReport(path string) (*entities.RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var report entities.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &report, nil
}
