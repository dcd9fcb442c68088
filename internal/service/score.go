package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// symptomFields each contribute 3 points to the symptom burden term.
var symptomFields = []string{
	domain.FieldFatigue,
	domain.FieldPaleSkin,
	domain.FieldShortnessOfBreath,
	domain.FieldDizziness,
	domain.FieldColdHandsFeet,
}

// historyFields each contribute 5 points to the medical history term.
var historyFields = []string{
	domain.FieldChronicDisease,
	domain.FieldPregnancy,
	domain.FieldFamilyHistory,
}

// RiskScoreCalculator combines severity, lab values, demographics, symptoms
// and history into a single composite 0-100 risk score.
type RiskScoreCalculator struct {
	logger     *logrus.Logger
	thresholds domain.ScoringThresholds
}

// NewRiskScoreCalculator creates a new risk score calculator
func NewRiskScoreCalculator(logger *logrus.Logger, thresholds domain.ScoringThresholds) *RiskScoreCalculator {
	return &RiskScoreCalculator{logger: logger, thresholds: thresholds}
}

// Calculate computes the deterministic weighted risk score.
//
// Term order reproduces the validated scoring model exactly: only the
// hemoglobin-deficit term carries its own 20-point ceiling before
// summation; every other contribution is unclamped. The total is rounded
// to one decimal and then clamped to [0,100].
func (c *RiskScoreCalculator) Calculate(record domain.PatientRecord, severity domain.SeverityClass) float64 {
	// Severity base, 0-40 points across classes 0-3. Severity alone cannot
	// saturate the score.
	score := float64(severity) * 13.3

	// Hemoglobin deficit below the sex-specific threshold, capped at 20.
	hb := record.ValueOr(domain.FieldHemoglobin, 14)
	threshold := c.thresholds.HemoglobinFemale
	if record.Male() {
		threshold = c.thresholds.HemoglobinMale
	}
	if hb < threshold {
		deficit := (threshold - hb) / threshold
		score += math.Min(20, deficit*40)
	}

	// Age risk bands, mutually exclusive, extremes first.
	age := record.ValueOr(domain.FieldAge, 30)
	switch {
	case age < 5 || age > 65:
		score += 8
	case age < 12 || age > 50:
		score += 5
	}

	// Symptom burden, 3 points per reported symptom.
	for _, field := range symptomFields {
		if record.Flag(field) {
			score += 3
		}
	}

	// Medical history, 5 points per factor.
	for _, field := range historyFields {
		if record.Flag(field) {
			score += 5
		}
	}

	// Diet quality penalty.
	switch record.ValueOr(domain.FieldDietQuality, 1) {
	case 0:
		score += 5
	case 1:
		score += 2
	}

	// Iron store deficiency flags.
	if record.ValueOr(domain.FieldIronLevel, 80) < c.thresholds.IronLow {
		score += 5
	}
	if record.ValueOr(domain.FieldFerritin, 100) < c.thresholds.FerritinLow {
		score += 5
	}

	score = round1(score)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
