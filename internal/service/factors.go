package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// RiskFactorAnalyzer compares individual lab and vital values against
// clinically defined normal ranges and tags each with a status and a fixed
// impact weight. The output order (Hemoglobin, Iron Level, Ferritin, RBC
// Count, BMI) is part of the contract, not incidental.
type RiskFactorAnalyzer struct {
	logger *logrus.Logger
	ranges domain.NormalRanges
}

// NewRiskFactorAnalyzer creates a new risk factor analyzer
func NewRiskFactorAnalyzer(logger *logrus.Logger, ranges domain.NormalRanges) *RiskFactorAnalyzer {
	return &RiskFactorAnalyzer{logger: logger, ranges: ranges}
}

// Analyze produces the per-factor normal-range analysis for the record.
func (a *RiskFactorAnalyzer) Analyze(record domain.PatientRecord) []domain.RiskFactor {
	male := record.Male()
	factors := make([]domain.RiskFactor, 0, 5)

	hb := record.ValueOr(domain.FieldHemoglobin, 14)
	hbRange := a.ranges.Hemoglobin(male)
	factors = append(factors, domain.RiskFactor{
		Name:        "Hemoglobin",
		Value:       fmt.Sprintf("%g g/dL", hb),
		NormalRange: formatRange(hbRange, "g/dL"),
		Status:      hbRange.Status(hb),
		Impact:      domain.ImpactHigh,
	})

	iron := record.ValueOr(domain.FieldIronLevel, 80)
	factors = append(factors, domain.RiskFactor{
		Name:        "Iron Level",
		Value:       fmt.Sprintf("%g μg/dL", iron),
		NormalRange: formatRange(a.ranges.Iron, "μg/dL"),
		Status:      a.ranges.Iron.Status(iron),
		Impact:      domain.ImpactHigh,
	})

	ferritin := record.ValueOr(domain.FieldFerritin, 100)
	factors = append(factors, domain.RiskFactor{
		Name:        "Ferritin",
		Value:       fmt.Sprintf("%g ng/mL", ferritin),
		NormalRange: formatRange(a.ranges.Ferritin, "ng/mL"),
		Status:      a.ranges.Ferritin.Status(ferritin),
		Impact:      domain.ImpactMedium,
	})

	rbc := record.ValueOr(domain.FieldRBCCount, 4.5)
	rbcRange := a.ranges.RBC(male)
	factors = append(factors, domain.RiskFactor{
		Name:        "RBC Count",
		Value:       fmt.Sprintf("%g M/μL", rbc),
		NormalRange: formatRange(rbcRange, "M/μL"),
		Status:      rbcRange.Status(rbc),
		Impact:      domain.ImpactMedium,
	})

	bmi := record.ValueOr(domain.FieldBMI, 24)
	factors = append(factors, domain.RiskFactor{
		Name:        "BMI",
		Value:       fmt.Sprintf("%g", bmi),
		NormalRange: fmt.Sprintf("%g-%g", a.ranges.BMI.Min, a.ranges.BMI.Max),
		Status:      a.ranges.BMI.Status(bmi),
		Impact:      domain.ImpactLow,
	})

	return factors
}

func formatRange(r domain.Range, unit string) string {
	return fmt.Sprintf("%g-%g %s", r.Min, r.Max, unit)
}
