package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// projectionCeiling caps every horizon's probability before scaling to
// percent.
const projectionCeiling = 0.95

// FutureRiskProjector extrapolates the current composite score into
// 3/6/12-month anemia risk probability estimates.
type FutureRiskProjector struct {
	logger *logrus.Logger
}

// NewFutureRiskProjector creates a new future risk projector
func NewFutureRiskProjector(logger *logrus.Logger) *FutureRiskProjector {
	return &FutureRiskProjector{logger: logger}
}

// Project computes the multi-horizon projection. Modifier accumulation is
// additive and uncapped; each horizon is clamped to the ceiling before
// scaling to percent.
func (p *FutureRiskProjector) Project(record domain.PatientRecord, severity domain.SeverityClass, riskScore float64) domain.FutureRisk {
	base := riskScore / 100

	modifiers := 0.0
	if record.Flag(domain.FieldFamilyHistory) {
		modifiers += 0.10
	}
	if record.Flag(domain.FieldChronicDisease) {
		modifiers += 0.10
	}
	if record.ValueOr(domain.FieldDietQuality, 1) == 0 {
		modifiers += 0.10
	}
	if record.Flag(domain.FieldPregnancy) {
		modifiers += 0.05
	}

	// Age bands are mutually exclusive with each other, independent of the
	// factors above.
	age := record.ValueOr(domain.FieldAge, 30)
	switch {
	case age > 60:
		modifiers += 0.08
	case age < 5:
		modifiers += 0.08
	}

	trend := "stable"
	if severity > domain.SeverityNormal {
		trend = "increasing"
	}

	return domain.FutureRisk{
		ThreeMonths:  round1(math.Min(projectionCeiling, base*0.8+modifiers*0.5) * 100),
		SixMonths:    round1(math.Min(projectionCeiling, base*0.9+modifiers*0.7) * 100),
		TwelveMonths: round1(math.Min(projectionCeiling, base+modifiers) * 100),
		Trend:        trend,
		Preventable:  riskScore < 60,
	}
}
