package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"uiverify/domain/entities"
	"uiverify/domain/errs"
	"uiverify/domain/interfaces"
)

type artifactStore struct {
	dir string
	now func() time.Time
}

// NewArtifactStore - creates new screenshot store rooted at dir
func NewArtifactStore(dir string) interfaces.ArtifactStore {
	return &artifactStore{
		dir: dir,
		now: time.Now,
	}
}

// Save - writes screenshot to dir/name, overwriting any previous run
func (s *artifactStore) Save(name string, data []byte) (entities.Artifact, error) {
	if len(data) == 0 {
		return entities.Artifact{}, fmt.Errorf("screenshot %s is empty: %w", name, errs.ErrArtifact)
	}
	if name == "" || filepath.Base(name) != name {
		return entities.Artifact{}, fmt.Errorf("invalid artifact name %q: %w", name, errs.ErrArtifact)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return entities.Artifact{}, fmt.Errorf("failed to create output directory: %w: %w", errs.ErrArtifact, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return entities.Artifact{}, fmt.Errorf("failed to write %s: %w: %w", path, errs.ErrArtifact, err)
	}

	return entities.Artifact{
		Name:       name,
		Path:       path,
		Size:       len(data),
		CapturedAt: s.now(),
	}, nil
}
