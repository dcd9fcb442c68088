// Package model owns the trained classifier artifact: loading, validation,
// standardization and the decision function behind the domain.Classifier
// contract. The statistical model itself is opaque to the rest of the
// engine; any artifact honoring the contract is substitutable.
package model

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// Gateway holds the loaded classifier artifact, its standardization
// transform and metadata. It is loaded once at process start and never
// mutated afterwards, so Classify is safe for any number of concurrent
// callers without synchronization.
type Gateway struct {
	logger   *logrus.Logger
	model    modelFile
	scaler   scalerFile
	metadata metadataFile
}

// LoadGateway loads the artifact trio from cfg.Dir and validates it against
// the engine's feature layout. A missing or corrupt artifact is fatal: the
// engine cannot serve without a successfully initialized gateway.
func LoadGateway(cfg *domain.ModelConfig, logger *logrus.Logger) (*Gateway, error) {
	g := &Gateway{logger: logger}

	if err := readArtifactFile(filepath.Join(cfg.Dir, cfg.ModelFile), &g.model); err != nil {
		return nil, err
	}
	if err := readArtifactFile(filepath.Join(cfg.Dir, cfg.ScalerFile), &g.scaler); err != nil {
		return nil, err
	}
	if err := readArtifactFile(filepath.Join(cfg.Dir, cfg.MetadataFile), &g.metadata); err != nil {
		return nil, err
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"model_name": g.metadata.ModelName,
		"accuracy":   g.metadata.Accuracy,
		"features":   len(g.metadata.Features),
	}).Info("Loaded classifier artifact")

	return g, nil
}

// validate checks the artifact's declared feature order against the
// engine's canonical layout and its internal dimensions. A feature-order
// mismatch is never recovered by truncation or reordering.
func (g *Gateway) validate() error {
	n := len(domain.FeatureColumns)

	if len(g.metadata.Features) != n {
		return fmt.Errorf("%w: artifact declares %d features, engine expects %d",
			domain.ErrFeatureOrderMismatch, len(g.metadata.Features), n)
	}
	for i, name := range g.metadata.Features {
		if name != domain.FeatureColumns[i] {
			return fmt.Errorf("%w: position %d is %q, engine expects %q",
				domain.ErrFeatureOrderMismatch, i, name, domain.FeatureColumns[i])
		}
	}

	if g.model.Classes != domain.NumSeverityClasses ||
		len(g.model.Coefficients) != domain.NumSeverityClasses ||
		len(g.model.Intercepts) != domain.NumSeverityClasses {
		return fmt.Errorf("%w: decision function must cover exactly %d classes",
			domain.ErrArtifactCorrupt, domain.NumSeverityClasses)
	}
	for i, row := range g.model.Coefficients {
		if len(row) != n {
			return fmt.Errorf("%w: coefficient row %d has %d entries, want %d",
				domain.ErrArtifactCorrupt, i, len(row), n)
		}
	}
	if len(g.scaler.Mean) != n || len(g.scaler.Scale) != n {
		return fmt.Errorf("%w: scaler dimensions do not match feature count", domain.ErrArtifactCorrupt)
	}

	return nil
}

// Classify standardizes the feature vector, applies the decision function
// and returns the winning severity class with the full class distribution.
func (g *Gateway) Classify(ctx context.Context, features []float64) (domain.SeverityClass, []float64, error) {
	if len(features) != len(domain.FeatureColumns) {
		return 0, nil, fmt.Errorf("%w: vector has %d features, artifact expects %d",
			domain.ErrFeatureOrderMismatch, len(features), len(domain.FeatureColumns))
	}

	scaled := g.standardize(features)
	probs := softmax(g.decisionScores(scaled))
	class := argmax(probs)

	g.logger.WithFields(logrus.Fields{
		"class":      class,
		"confidence": probs[class],
	}).Debug("Classified feature vector")

	return domain.SeverityClass(class), probs, nil
}

// Accuracy reports the hold-out accuracy recorded at training time.
func (g *Gateway) Accuracy() float64 {
	return g.metadata.Accuracy
}

// Info returns descriptive metadata about the loaded artifact.
func (g *Gateway) Info() domain.ModelInfo {
	return domain.ModelInfo{
		Name:              g.metadata.ModelName,
		Accuracy:          g.metadata.Accuracy,
		CVScore:           g.metadata.CVMean,
		Features:          g.metadata.Features,
		TrainingSamples:   g.metadata.TrainingSamples,
		FeatureImportance: g.metadata.FeatureImportance,
	}
}

// standardize applies the training-time mean/variance normalization.
// A zero scale denotes a constant training feature and is treated as 1.
func (g *Gateway) standardize(features []float64) []float64 {
	out := make([]float64, len(features))
	for i, v := range features {
		scale := g.scaler.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - g.scaler.Mean[i]) / scale
	}
	return out
}

// decisionScores computes the per-class linear scores.
func (g *Gateway) decisionScores(scaled []float64) []float64 {
	scores := make([]float64, domain.NumSeverityClasses)
	for c := 0; c < domain.NumSeverityClasses; c++ {
		s := g.model.Intercepts[c]
		for i, v := range scaled {
			s += g.model.Coefficients[c][i] * v
		}
		scores[c] = s
	}
	return scores
}

// softmax converts decision scores to a probability distribution. The max
// score is subtracted first for numerical stability.
func softmax(scores []float64) []float64 {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
