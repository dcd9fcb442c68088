package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// FeatureAdapter normalizes a partial patient record into the complete
// ordered feature vector the classifier consumes, computing the five
// derived CBC clinical indices from raw lab values.
//
// The adapter is total: it never fails on missing fields and always
// produces finite values, even for an empty record.
type FeatureAdapter struct {
	logger *logrus.Logger
}

// NewFeatureAdapter creates a new feature adapter
func NewFeatureAdapter(logger *logrus.Logger) *FeatureAdapter {
	return &FeatureAdapter{logger: logger}
}

// DeriveIndices returns a copy of the record with the five derived indices
// populated. Zero or missing divisors are substituted with their clinical
// baselines before dividing; the raw fields are left untouched.
func (a *FeatureAdapter) DeriveIndices(record domain.PatientRecord) domain.PatientRecord {
	d := record.Clone()

	rbc := d.Divisor(domain.FieldRBCCount)
	mch := d.Divisor(domain.FieldMCH)
	hb := d.Divisor(domain.FieldHemoglobin)
	mcv := d.ValueOr(domain.FieldMCV, 0)
	mchc := d.ValueOr(domain.FieldMCHC, 0)
	hct := d.ValueOr(domain.FieldHematocrit, 0)

	d[domain.FieldMentzerIndex] = round2(mcv / rbc)
	d[domain.FieldHbRBCRatio] = round2(hb / rbc)
	d[domain.FieldMCVMCHRatio] = round2(mcv / mch)
	d[domain.FieldMCHCMCHDiff] = round2(mchc - mch)
	d[domain.FieldHctHbRatio] = round2(hct / hb)

	return d
}

// Vector flattens the record, with indices derived, into the fixed
// FeatureColumns order. Absent raw fields contribute zero, matching the
// encoding the artifact was trained on.
func (a *FeatureAdapter) Vector(record domain.PatientRecord) []float64 {
	d := a.DeriveIndices(record)

	out := make([]float64, len(domain.FeatureColumns))
	for i, col := range domain.FeatureColumns {
		out[i] = d.ValueOr(col, 0)
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
