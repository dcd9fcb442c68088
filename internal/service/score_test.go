package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hemoscan/engine/internal/domain"
)

func newScorer() *RiskScoreCalculator {
	return NewRiskScoreCalculator(testLogger(), domain.DefaultScoringThresholds())
}

// nominalMale is a record with every scored factor in its healthy band.
func nominalMale() domain.PatientRecord {
	return domain.PatientRecord{
		domain.FieldAge:         45,
		domain.FieldGender:      1,
		domain.FieldHemoglobin:  14.0,
		domain.FieldRBCCount:    5.0,
		domain.FieldIronLevel:   90,
		domain.FieldFerritin:    120,
		domain.FieldDietQuality: 2,
		domain.FieldBMI:         23,
	}
}

func TestCalculateNominalRecordScoresZero(t *testing.T) {
	score := newScorer().Calculate(nominalMale(), domain.SeverityNormal)
	assert.Equal(t, 0.0, score)
}

func TestCalculateSeverityBase(t *testing.T) {
	scorer := newScorer()

	tests := []struct {
		severity domain.SeverityClass
		expected float64
	}{
		{domain.SeverityNormal, 0},
		{domain.SeverityMild, 13.3},
		{domain.SeverityModerate, 26.6},
		{domain.SeveritySevere, 39.9},
	}

	for _, tt := range tests {
		score := scorer.Calculate(nominalMale(), tt.severity)
		assert.InDelta(t, tt.expected, score, 0.001, "severity %d", tt.severity)
	}
}

func TestCalculateHemoglobinDeficit(t *testing.T) {
	scorer := newScorer()

	// Male threshold 13.5: hb 12.0 gives (1.5/13.5)*40 = 4.44 points.
	record := nominalMale()
	record[domain.FieldHemoglobin] = 12.0
	assert.InDelta(t, 4.4, scorer.Calculate(record, domain.SeverityNormal), 0.001)

	// Female threshold 12.0: the same hb is not a deficit.
	record[domain.FieldGender] = 0
	assert.Equal(t, 0.0, scorer.Calculate(record, domain.SeverityNormal))

	// The deficit term is capped at 20 points regardless of depth.
	record[domain.FieldGender] = 1
	record[domain.FieldHemoglobin] = 2.0
	assert.InDelta(t, 20.0, scorer.Calculate(record, domain.SeverityNormal), 0.001)
}

func TestCalculateHemoglobinMonotonicity(t *testing.T) {
	scorer := newScorer()
	record := nominalMale()
	record[domain.FieldGender] = 0

	prev := -1.0
	for hb := 12.0; hb >= 4.0; hb -= 0.25 {
		record[domain.FieldHemoglobin] = hb
		score := scorer.Calculate(record, domain.SeverityMild)
		assert.GreaterOrEqual(t, score, prev, "score decreased at hb=%g", hb)
		prev = score
	}
}

func TestCalculateAgeBands(t *testing.T) {
	scorer := newScorer()

	tests := []struct {
		name     string
		age      float64
		expected float64
	}{
		{"infant", 3, 8},
		{"elderly", 70, 8},
		{"child", 8, 5},
		{"late middle age", 55, 5},
		{"boundary 5 falls in child band", 5, 5},
		{"boundary 12", 12, 0},
		{"boundary 50", 50, 0},
		{"boundary 65", 65, 5},
		{"adult", 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := nominalMale()
			record[domain.FieldAge] = tt.age
			assert.InDelta(t, tt.expected, scorer.Calculate(record, domain.SeverityNormal), 0.001)
		})
	}
}

func TestCalculateSymptomBurden(t *testing.T) {
	scorer := newScorer()
	record := nominalMale()

	symptoms := []string{
		domain.FieldFatigue, domain.FieldPaleSkin, domain.FieldShortnessOfBreath,
		domain.FieldDizziness, domain.FieldColdHandsFeet,
	}
	for i, s := range symptoms {
		record[s] = 1
		expected := float64((i + 1) * 3)
		assert.InDelta(t, expected, scorer.Calculate(record, domain.SeverityNormal), 0.001,
			"after %d symptoms", i+1)
	}
}

func TestCalculateHistoryAndDiet(t *testing.T) {
	scorer := newScorer()

	record := nominalMale()
	record[domain.FieldChronicDisease] = 1
	record[domain.FieldFamilyHistory] = 1
	assert.InDelta(t, 10.0, scorer.Calculate(record, domain.SeverityNormal), 0.001)

	record[domain.FieldDietQuality] = 1
	assert.InDelta(t, 12.0, scorer.Calculate(record, domain.SeverityNormal), 0.001)

	record[domain.FieldDietQuality] = 0
	assert.InDelta(t, 15.0, scorer.Calculate(record, domain.SeverityNormal), 0.001)
}

func TestCalculateIronStoreFlags(t *testing.T) {
	scorer := newScorer()

	record := nominalMale()
	record[domain.FieldIronLevel] = 40 // below 50
	assert.InDelta(t, 5.0, scorer.Calculate(record, domain.SeverityNormal), 0.001)

	record[domain.FieldFerritin] = 20 // below 30
	assert.InDelta(t, 10.0, scorer.Calculate(record, domain.SeverityNormal), 0.001)
}

func TestCalculateMissingFieldDefaults(t *testing.T) {
	// An empty record scores only the diet default (average diet: +2).
	score := newScorer().Calculate(domain.PatientRecord{}, domain.SeverityNormal)
	assert.InDelta(t, 2.0, score, 0.001)
}

func TestCalculateClampsToHundred(t *testing.T) {
	scorer := newScorer()

	record := domain.PatientRecord{
		domain.FieldAge:               70,
		domain.FieldGender:            0,
		domain.FieldHemoglobin:        4.0,
		domain.FieldIronLevel:         20,
		domain.FieldFerritin:          5,
		domain.FieldDietQuality:       0,
		domain.FieldChronicDisease:    1,
		domain.FieldPregnancy:         1,
		domain.FieldFamilyHistory:     1,
		domain.FieldFatigue:           1,
		domain.FieldPaleSkin:          1,
		domain.FieldShortnessOfBreath: 1,
		domain.FieldDizziness:         1,
		domain.FieldColdHandsFeet:     1,
	}

	score := scorer.Calculate(record, domain.SeveritySevere)
	assert.Equal(t, 100.0, score)

	// Score is always within [0,100].
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestCalculateIsDeterministic(t *testing.T) {
	scorer := newScorer()
	record := nominalMale()
	record[domain.FieldHemoglobin] = 11

	first := scorer.Calculate(record, domain.SeverityModerate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Calculate(record, domain.SeverityModerate))
	}
}
