package domain

// Canonical feature names accepted in a PatientRecord. The classifier
// consumes these plus the five derived indices, in FeatureColumns order.
const (
	FieldAge               = "age"
	FieldGender            = "gender" // 0 = female, 1 = male
	FieldHemoglobin        = "hemoglobin"
	FieldRBCCount          = "rbc_count"
	FieldMCV               = "mcv"
	FieldMCH               = "mch"
	FieldMCHC              = "mchc"
	FieldHematocrit        = "hematocrit"
	FieldIronLevel         = "iron_level"
	FieldFerritin          = "ferritin"
	FieldDietQuality       = "diet_quality" // 0 = poor, 1 = average, 2 = good
	FieldChronicDisease    = "chronic_disease"
	FieldPregnancy         = "pregnancy"
	FieldFamilyHistory     = "family_history_anemia"
	FieldFatigue           = "fatigue"
	FieldPaleSkin          = "pale_skin"
	FieldShortnessOfBreath = "shortness_of_breath"
	FieldDizziness         = "dizziness"
	FieldColdHandsFeet     = "cold_hands_feet"
	FieldBMI               = "bmi"

	// Derived CBC clinical indices, computed by the feature adapter.
	FieldMentzerIndex = "mentzer_index"
	FieldHbRBCRatio   = "hb_rbc_ratio"
	FieldMCVMCHRatio  = "mcv_mch_ratio"
	FieldMCHCMCHDiff  = "mchc_mch_diff"
	FieldHctHbRatio   = "hct_hb_ratio"
)

// FeatureColumns is the exact ordered feature vector layout the classifier
// artifact was trained on. The gateway refuses to serve an artifact whose
// declared feature order differs from this one.
var FeatureColumns = []string{
	FieldAge, FieldGender, FieldHemoglobin, FieldRBCCount, FieldMCV,
	FieldMCH, FieldMCHC, FieldHematocrit, FieldIronLevel, FieldFerritin,
	FieldDietQuality, FieldChronicDisease, FieldPregnancy, FieldFamilyHistory,
	FieldFatigue, FieldPaleSkin, FieldShortnessOfBreath, FieldDizziness,
	FieldColdHandsFeet, FieldBMI,
	FieldMentzerIndex, FieldHbRBCRatio, FieldMCVMCHRatio, FieldMCHCMCHDiff,
	FieldHctHbRatio,
}

// divisorBaselines are the clinical baseline substitutes applied to
// derived-index divisors. A zero or missing divisor is replaced before
// dividing so the adapter never produces NaN or infinities.
var divisorBaselines = map[string]float64{
	FieldRBCCount:   4.5,
	FieldMCH:        27.0,
	FieldHemoglobin: 12.0,
}

// DivisorBaseline returns the baseline default for a divisor field, or 0
// for fields that are never divided by.
func DivisorBaseline(field string) float64 {
	return divisorBaselines[field]
}

// PatientRecord is a partial mapping from feature name to numeric value.
// Any subset of fields may be present; missing fields are recovered through
// documented clinical defaults and never surfaced as errors.
//
// The record does not enforce cross-field invariants (e.g. pregnancy
// requires gender=0); those are accepted as given from the caller.
type PatientRecord map[string]float64

// Value returns the raw field value and whether the field is present.
func (p PatientRecord) Value(field string) (float64, bool) {
	v, ok := p[field]
	return v, ok
}

// ValueOr returns the field value, or def when the field is absent.
// A present zero is returned as zero.
func (p PatientRecord) ValueOr(field string, def float64) float64 {
	if v, ok := p[field]; ok {
		return v
	}
	return def
}

// Divisor returns the field value with the clinical baseline substituted
// when the value is zero or missing, making it safe to divide by.
func (p PatientRecord) Divisor(field string) float64 {
	if v, ok := p[field]; ok && v != 0 {
		return v
	}
	return divisorBaselines[field]
}

// Flag reports whether a binary field is present and set.
func (p PatientRecord) Flag(field string) bool {
	return p[field] != 0
}

// Male reports the recorded biological sex (gender=1). Missing gender
// defaults to female, matching the classifier's training encoding.
func (p PatientRecord) Male() bool {
	return p.Flag(FieldGender)
}

// Clone returns an independent copy of the record.
func (p PatientRecord) Clone() PatientRecord {
	out := make(PatientRecord, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
