package domain

import (
	"errors"
	"fmt"
	"math"
)

// Errors surfaced by the classifier gateway and the assessment engine.
// Patient-record problems are never errors: missing or malformed fields are
// recovered through clinical baseline defaults.
var (
	// ErrArtifactNotFound indicates the trained classifier artifact is
	// absent. Fatal at startup: artifact production is an offline, external
	// step, so there is nothing to retry.
	ErrArtifactNotFound = errors.New("classifier artifact not found")

	// ErrArtifactCorrupt indicates the artifact exists but cannot be
	// decoded, or is dimensionally inconsistent with its own metadata.
	ErrArtifactCorrupt = errors.New("classifier artifact corrupt")

	// ErrFeatureOrderMismatch indicates the artifact's declared feature
	// order differs from the engine's vector layout. Never recovered by
	// truncation or reordering: a silently misaligned vector would produce
	// a clinically meaningless classification.
	ErrFeatureOrderMismatch = errors.New("feature order mismatch")

	// ErrProbabilityIntegrity indicates the classifier returned a
	// probability vector that violates its contract. Surfaced as an
	// upstream fault, never silently renormalized.
	ErrProbabilityIntegrity = errors.New("probability vector integrity violation")

	// ErrGatewayUnavailable indicates no classifier gateway was supplied to
	// the engine. The engine fails fast rather than emit a partial
	// assessment.
	ErrGatewayUnavailable = errors.New("classifier gateway unavailable")
)

// probabilitySumTolerance bounds the accepted drift of a class probability
// distribution away from summing to exactly 1.
const probabilitySumTolerance = 1e-6

// ValidateDistribution checks a classifier probability vector: one entry
// per severity class, every entry finite and non-negative, and the total
// within tolerance of 1.
func ValidateDistribution(probs []float64) error {
	if len(probs) != NumSeverityClasses {
		return fmt.Errorf("%w: got %d classes, want %d", ErrProbabilityIntegrity, len(probs), NumSeverityClasses)
	}
	sum := 0.0
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("%w: class %d has probability %v", ErrProbabilityIntegrity, i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilitySumTolerance {
		return fmt.Errorf("%w: probabilities sum to %.8f", ErrProbabilityIntegrity, sum)
	}
	return nil
}
