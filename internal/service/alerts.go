package service

import (
	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// hemoglobinEmergency is the transfusion-consideration cutoff.
const hemoglobinEmergency = 7.0

// highRiskScore is the composite score at which the multi-factor alert fires.
const highRiskScore = 80.0

// AlertGenerator raises urgent and emergency notices independently of the
// recommendation rules. Every condition is evaluated; zero, one or several
// alerts may fire for the same record, in evaluation order.
type AlertGenerator struct {
	logger *logrus.Logger
}

// NewAlertGenerator creates a new alert generator
func NewAlertGenerator(logger *logrus.Logger) *AlertGenerator {
	return &AlertGenerator{logger: logger}
}

// Generate evaluates the alert conditions for the record.
func (g *AlertGenerator) Generate(record domain.PatientRecord, severity domain.SeverityClass, riskScore float64) []domain.Alert {
	alerts := make([]domain.Alert, 0, 4)

	if severity == domain.SeveritySevere {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertCritical,
			Message: "CRITICAL: Severe anemia detected. Immediate medical intervention recommended.",
			Action:  "Refer to hematologist immediately",
		})
	}

	if record.ValueOr(domain.FieldHemoglobin, 14) < hemoglobinEmergency {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertEmergency,
			Message: "EMERGENCY: Hemoglobin critically low. Blood transfusion may be required.",
			Action:  "Emergency department referral",
		})
	}

	if riskScore >= highRiskScore {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertHigh,
			Message: "HIGH RISK: Multiple risk factors identified. Comprehensive evaluation needed.",
			Action:  "Complete blood count + iron studies recommended",
		})
	}

	if record.Flag(domain.FieldPregnancy) && severity >= domain.SeverityModerate {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertWarning,
			Message: "Moderate-to-severe anemia during pregnancy. Close monitoring required.",
			Action:  "Refer to high-risk obstetrics",
		})
	}

	if len(alerts) > 0 {
		g.logger.WithFields(logrus.Fields{
			"alerts":     len(alerts),
			"severity":   severity.Label(),
			"risk_score": riskScore,
		}).Warn("Clinical alerts raised")
	}

	return alerts
}
