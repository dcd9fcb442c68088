package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hemoscan/engine/internal/domain"
)

// modelFile is the decision-function artifact: one row of linear
// coefficients per severity class over the standardized feature vector,
// exported by the offline training pipeline.
type modelFile struct {
	ModelName    string      `json:"model_name"`
	Classes      int         `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// scalerFile holds the per-feature standardization statistics fixed at
// training time.
type scalerFile struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// metadataFile is the artifact's descriptor. Features declares the exact
// vector order the model was trained on.
type metadataFile struct {
	ModelName         string             `json:"model_name"`
	Accuracy          float64            `json:"accuracy"`
	CVMean            float64            `json:"cv_mean"`
	Features          []string           `json:"features"`
	TrainingSamples   int                `json:"training_samples"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

// readArtifactFile decodes one artifact file, mapping filesystem and decode
// failures onto the domain error taxonomy.
func readArtifactFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s (run the training pipeline first)", domain.ErrArtifactNotFound, path)
		}
		return fmt.Errorf("reading artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrArtifactCorrupt, path, err)
	}
	return nil
}
