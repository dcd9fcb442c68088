package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// Hemoglobin cutoffs for the medical-attention recommendation rules. These
// are rule parameters, distinct from both threshold tables.
const (
	hemoglobinUrgent  = 10.0
	hemoglobinConsult = 12.0
)

// Iron store cutoffs for the supplementation rule.
const (
	ironSupplement     = 60.0
	ferritinSupplement = 30.0
)

// RecommendationGenerator produces the ordered guidance records for an
// assessment. It is a rules engine, not a scored ranking: identical input
// always yields identical output.
//
// Branch order is behaviorally significant. It fixes the output ordering,
// and the healthy short-circuit suppresses every other rule. Do not
// reorder.
type RecommendationGenerator struct {
	logger *logrus.Logger
}

// NewRecommendationGenerator creates a new recommendation generator
func NewRecommendationGenerator(logger *logrus.Logger) *RecommendationGenerator {
	return &RecommendationGenerator{logger: logger}
}

// Generate evaluates the recommendation rules top to bottom; every
// independently satisfied condition appends a record.
func (g *RecommendationGenerator) Generate(record domain.PatientRecord, severity domain.SeverityClass, riskScore float64) []domain.Recommendation {
	// Healthy short-circuit: normal classification with a low composite
	// score yields exactly one record and no further checks.
	if severity == domain.SeverityNormal && riskScore < 20 {
		return []domain.Recommendation{{
			Type:  domain.RecommendationInfo,
			Title: "Healthy Status",
			Text:  "Your blood parameters are within normal range. Continue maintaining a balanced diet rich in iron and vitamins.",
		}}
	}

	recs := make([]domain.Recommendation, 0, 7)

	if record.ValueOr(domain.FieldDietQuality, 1) < 2 {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationDiet,
			Title: "Improve Dietary Iron Intake",
			Text:  "Include iron-rich foods: spinach, lentils, red meat, fortified cereals, beans, and dark chocolate. Pair with Vitamin C sources for better absorption.",
		})
	}

	// The two hemoglobin branches are mutually exclusive on value: the
	// urgent case supersedes the routine consultation.
	hb := record.ValueOr(domain.FieldHemoglobin, 14)
	if hb < hemoglobinUrgent {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationUrgent,
			Title: "Seek Immediate Medical Attention",
			Text:  fmt.Sprintf("Your hemoglobin level (%g g/dL) is critically low. Please consult a hematologist immediately for proper treatment.", hb),
		})
	} else if hb < hemoglobinConsult {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationMedical,
			Title: "Medical Consultation Recommended",
			Text:  fmt.Sprintf("Your hemoglobin (%g g/dL) is below optimal. Schedule a visit with your healthcare provider for a complete blood panel.", hb),
		})
	}

	if record.ValueOr(domain.FieldIronLevel, 80) < ironSupplement ||
		record.ValueOr(domain.FieldFerritin, 100) < ferritinSupplement {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationSupplement,
			Title: "Consider Iron Supplementation",
			Text:  "Your iron stores appear low. Consult your doctor about iron supplements. Take them with Vitamin C on an empty stomach for best absorption.",
		})
	}

	if record.Flag(domain.FieldPregnancy) {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationPregnancy,
			Title: "Prenatal Anemia Management",
			Text:  "Anemia during pregnancy requires careful monitoring. Ensure regular prenatal checkups and consider folic acid + iron supplementation as advised by your OB-GYN.",
		})
	}

	if record.Flag(domain.FieldFatigue) || record.Flag(domain.FieldDizziness) ||
		record.Flag(domain.FieldShortnessOfBreath) {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationLifestyle,
			Title: "Manage Symptoms",
			Text:  "Rest when fatigued, stay hydrated, avoid sudden position changes, and engage in light physical activity. Avoid strenuous exercise until hemoglobin levels improve.",
		})
	}

	if severity >= domain.SeverityMild {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecommendationFollowUp,
			Title: "Schedule Follow-Up Testing",
			Text:  fmt.Sprintf("Recommended re-testing in %s. Track hemoglobin trends over time.", severity.FollowUpInterval()),
		})
	}

	return recs
}
