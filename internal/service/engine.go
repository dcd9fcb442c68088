// Package service implements the anemia risk assessment engine: the
// deterministic post-classification logic that turns a classifier's raw
// severity output and a patient's blood panel into a complete clinical
// risk assessment.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hemoscan/engine/internal/domain"
)

// AssessmentEngine orchestrates the assessment pipeline: feature
// adaptation, classification, risk scoring, factor analysis,
// recommendations, alerts and future-risk projection.
//
// The engine is stateless per request. The only shared state is the
// read-only classifier gateway, so any number of assessments may run
// concurrently against the same engine instance.
type AssessmentEngine struct {
	logger      *logrus.Logger
	classifier  domain.Classifier
	adapter     *FeatureAdapter
	scorer      *RiskScoreCalculator
	analyzer    *RiskFactorAnalyzer
	recommender *RecommendationGenerator
	alerter     *AlertGenerator
	projector   *FutureRiskProjector
}

// NewAssessmentEngine creates a new assessment engine. A nil cfg selects
// the default threshold tables.
func NewAssessmentEngine(logger *logrus.Logger, classifier domain.Classifier, cfg *domain.Config) *AssessmentEngine {
	scoring := domain.DefaultScoringThresholds()
	ranges := domain.DefaultNormalRanges()
	if cfg != nil {
		scoring = cfg.Scoring
		ranges = cfg.Ranges
	}

	return &AssessmentEngine{
		logger:      logger,
		classifier:  classifier,
		adapter:     NewFeatureAdapter(logger),
		scorer:      NewRiskScoreCalculator(logger, scoring),
		analyzer:    NewRiskFactorAnalyzer(logger, ranges),
		recommender: NewRecommendationGenerator(logger),
		alerter:     NewAlertGenerator(logger),
		projector:   NewFutureRiskProjector(logger),
	}
}

// Assess runs the full assessment pipeline for one patient record. The same
// record against the same gateway always yields an identical assessment.
func (e *AssessmentEngine) Assess(ctx context.Context, record domain.PatientRecord) (*domain.RiskAssessment, error) {
	if e.classifier == nil {
		return nil, domain.ErrGatewayUnavailable
	}

	log := e.logger.WithField("assessment_id", uuid.NewString())
	log.WithField("fields", len(record)).Debug("Starting risk assessment")

	features := e.adapter.Vector(record)

	severity, probs, err := e.classifier.Classify(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	if err := domain.ValidateDistribution(probs); err != nil {
		return nil, fmt.Errorf("classifier output rejected: %w", err)
	}

	riskScore := e.scorer.Calculate(record, severity)

	assessment := &domain.RiskAssessment{
		Severity:        severity,
		SeverityLabel:   severity.Label(),
		SeverityColor:   severity.Color(),
		Confidence:      maxProbability(probs) * 100,
		Probabilities:   probabilityBreakdown(probs),
		RiskScore:       riskScore,
		RiskLevel:       domain.RiskLevelForScore(riskScore),
		Recommendations: e.recommender.Generate(record, severity, riskScore),
		Alerts:          e.alerter.Generate(record, severity, riskScore),
		RiskFactors:     e.analyzer.Analyze(record),
		FutureRisk:      e.projector.Project(record, severity, riskScore),
		ModelAccuracy:   e.classifier.Accuracy() * 100,
	}

	log.WithFields(logrus.Fields{
		"severity":        severity.Label(),
		"confidence":      assessment.Confidence,
		"risk_score":      assessment.RiskScore,
		"risk_level":      assessment.RiskLevel.String(),
		"recommendations": len(assessment.Recommendations),
		"alerts":          len(assessment.Alerts),
	}).Info("Completed risk assessment")

	return assessment, nil
}

// probabilityBreakdown maps each severity label to its probability in
// percent, rounded to two decimals.
func probabilityBreakdown(probs []float64) map[string]float64 {
	out := make(map[string]float64, len(probs))
	for i, p := range probs {
		out[domain.SeverityClass(i).Label()] = round2(p * 100)
	}
	return out
}

func maxProbability(probs []float64) float64 {
	best := 0.0
	for _, p := range probs {
		if p > best {
			best = p
		}
	}
	return best
}
