package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/guardify/backend/internal/domain"
	"github.com/guardify/backend/internal/ml"
)

// Artifact bundles the fitted pipeline with the evaluation report
// produced at training time. The file format is a private detail of this
// package; callers only load and save whole artifacts.
type Artifact struct {
	Model  *ml.Pipeline `json:"model"`
	Report ml.Report    `json:"report"`
}

// Save persists the artifact as JSON at path.
func Save(path string, a *Artifact) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Load reads an artifact from path. A missing file maps to
// domain.ErrArtifactNotFound so the server can start in degraded mode.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &a, nil
}
