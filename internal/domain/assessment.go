package domain

// Recommendation is a single actionable guidance record. Recommendations
// are emitted in a fixed rule order and carry no ranking score.
type Recommendation struct {
	Type  RecommendationType `json:"type"`
	Title string             `json:"title"`
	Text  string             `json:"text"`
}

// Alert is an urgent or emergency notice raised independently of the
// recommendation rules.
type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	Action  string     `json:"action"`
}

// RiskFactor is the per-value normal-range analysis of one lab or vital.
type RiskFactor struct {
	Name        string       `json:"name"`
	Value       string       `json:"value"`
	NormalRange string       `json:"normal_range"`
	Status      FactorStatus `json:"status"`
	Impact      FactorImpact `json:"impact"`
}

// FutureRisk is the multi-horizon projection of the current risk score,
// expressed in percent per horizon.
type FutureRisk struct {
	ThreeMonths  float64 `json:"3_months"`
	SixMonths    float64 `json:"6_months"`
	TwelveMonths float64 `json:"12_months"`
	Trend        string  `json:"trend"`
	Preventable  bool    `json:"preventable"`
}

// RiskAssessment is the engine's sole output: the complete structured
// clinical assessment for one patient record. It is constructed once per
// request, has no persistent identity, and is immutable once returned.
// Suitable for direct serialization to a display or API layer.
type RiskAssessment struct {
	Severity        SeverityClass      `json:"severity"`
	SeverityLabel   string             `json:"severity_label"`
	SeverityColor   string             `json:"severity_color"`
	Confidence      float64            `json:"confidence"`
	Probabilities   map[string]float64 `json:"probabilities"`
	RiskScore       float64            `json:"risk_score"`
	RiskLevel       RiskLevel          `json:"risk_level"`
	Recommendations []Recommendation   `json:"recommendations"`
	Alerts          []Alert            `json:"alerts"`
	RiskFactors     []RiskFactor       `json:"risk_factors"`
	FutureRisk      FutureRisk         `json:"future_risk"`
	ModelAccuracy   float64            `json:"model_accuracy"`
}

// ModelInfo describes the loaded classifier artifact for reporting.
type ModelInfo struct {
	Name              string             `json:"model_name"`
	Accuracy          float64            `json:"accuracy"`
	CVScore           float64            `json:"cv_score"`
	Features          []string           `json:"features"`
	TrainingSamples   int                `json:"training_samples"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}
