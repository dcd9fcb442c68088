// Package domain contains the core business entities and types for anemia
// risk assessment: severity classes, risk bands, patient records and the
// structured assessment produced by the engine.
//
// Severity classes follow the conventional CBC-based grading of anemia
// (Normal, Mild, Moderate, Severe) used by the trained classifier artifact.
package domain

// SeverityClass is the ordinal anemia category produced by the classifier,
// 0 (Normal) through 3 (Severe).
type SeverityClass int

const (
	SeverityNormal SeverityClass = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
)

// NumSeverityClasses is the number of classes the classifier artifact must
// score. The probability vector returned by a Classifier has exactly this
// many entries.
const NumSeverityClasses = 4

// IsValid validates that the severity class is within the grading scale.
// Critical for medical software: an out-of-range class must never reach
// clinical decision-making.
func (s SeverityClass) IsValid() bool {
	return s >= SeverityNormal && s <= SeveritySevere
}

// Label returns the human-readable severity label used in clinical reports.
func (s SeverityClass) Label() string {
	switch s {
	case SeverityNormal:
		return "Normal"
	case SeverityMild:
		return "Mild Anemia"
	case SeverityModerate:
		return "Moderate Anemia"
	case SeveritySevere:
		return "Severe Anemia"
	default:
		return "Unknown"
	}
}

// String returns the string representation of the severity class.
// Required for proper logging and audit trails.
func (s SeverityClass) String() string {
	return s.Label()
}

// Color returns the display color associated with the severity class,
// for direct use by a presentation layer.
func (s SeverityClass) Color() string {
	switch s {
	case SeverityNormal:
		return "#22c55e"
	case SeverityMild:
		return "#eab308"
	case SeverityModerate:
		return "#f97316"
	case SeveritySevere:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

// FollowUpInterval returns the recommended re-testing interval for the
// severity class. Evaluated severe-first; first match wins.
func (s SeverityClass) FollowUpInterval() string {
	switch {
	case s >= SeveritySevere:
		return "2 weeks"
	case s >= SeverityModerate:
		return "1 month"
	default:
		return "3 months"
	}
}

// LogFields returns structured logging fields for audit trails.
func (s SeverityClass) LogFields() map[string]any {
	return map[string]any{
		"severity":       int(s),
		"severity_label": s.Label(),
		"is_valid":       s.IsValid(),
	}
}

// RiskLevel is the categorical risk band derived from the composite score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
	RiskCritical RiskLevel = "Critical"
)

// IsValid validates the risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh, RiskVeryHigh, RiskCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// RiskLevelForScore maps a composite 0-100 risk score to its ordinal band.
// Bands are inclusive-low/exclusive-high; the final band includes 100.
// The level is a function solely of the score.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score < 20:
		return RiskLow
	case score < 40:
		return RiskModerate
	case score < 60:
		return RiskHigh
	case score < 80:
		return RiskVeryHigh
	default:
		return RiskCritical
	}
}

// AlertLevel tags the urgency of a generated alert.
type AlertLevel string

const (
	AlertCritical  AlertLevel = "critical"
	AlertEmergency AlertLevel = "emergency"
	AlertHigh      AlertLevel = "high"
	AlertWarning   AlertLevel = "warning"
)

// IsValid validates the alert level.
func (a AlertLevel) IsValid() bool {
	switch a {
	case AlertCritical, AlertEmergency, AlertHigh, AlertWarning:
		return true
	default:
		return false
	}
}

// RecommendationType categorizes a recommendation record.
type RecommendationType string

const (
	RecommendationInfo       RecommendationType = "info"
	RecommendationDiet       RecommendationType = "diet"
	RecommendationUrgent     RecommendationType = "urgent"
	RecommendationMedical    RecommendationType = "medical"
	RecommendationSupplement RecommendationType = "supplement"
	RecommendationPregnancy  RecommendationType = "pregnancy"
	RecommendationLifestyle  RecommendationType = "lifestyle"
	RecommendationFollowUp   RecommendationType = "followup"
)

// IsValid validates the recommendation type.
func (t RecommendationType) IsValid() bool {
	switch t {
	case RecommendationInfo, RecommendationDiet, RecommendationUrgent,
		RecommendationMedical, RecommendationSupplement, RecommendationPregnancy,
		RecommendationLifestyle, RecommendationFollowUp:
		return true
	default:
		return false
	}
}

// FactorStatus tags an individual lab value against its normal range.
type FactorStatus string

const (
	StatusNormal FactorStatus = "normal"
	StatusLow    FactorStatus = "low"
	StatusHigh   FactorStatus = "high"
)

// FactorImpact is the fixed clinical weight of a risk factor.
type FactorImpact string

const (
	ImpactHigh   FactorImpact = "high"
	ImpactMedium FactorImpact = "medium"
	ImpactLow    FactorImpact = "low"
)
