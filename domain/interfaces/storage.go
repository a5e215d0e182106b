package interfaces

import "uiverify/domain/entities"

// ArtifactStore persists screenshots
type ArtifactStore interface {
	// Save writes the image under name, replacing any previous file
	Save(name string, data []byte) (entities.Artifact, error)
}

// ReportWriter persists run reports
type ReportWriter interface {
	WriteReport(report *entities.RunReport) error
}
