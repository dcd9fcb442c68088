package domain

import "context"

// Classifier is the black-box classification capability the engine depends
// on. Any statistical model satisfying this contract is substitutable; the
// engine must not depend on which algorithm produced the artifact.
//
// Classify takes the complete ordered feature vector (FeatureColumns
// layout) and returns the winning severity class together with the
// probability distribution over all severity classes. Implementations are
// loaded once at startup, immutable thereafter, and must be safe for
// concurrent use.
type Classifier interface {
	Classify(ctx context.Context, features []float64) (SeverityClass, []float64, error)

	// Accuracy reports the hold-out accuracy recorded in the artifact
	// metadata, in [0,1].
	Accuracy() float64
}
