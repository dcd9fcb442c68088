package domain

import (
	"errors"
	"testing"
)

func TestFeatureColumnsLayout(t *testing.T) {
	if len(FeatureColumns) != 25 {
		t.Fatalf("Expected 25 feature columns, got %d", len(FeatureColumns))
	}

	// Raw fields come first, derived indices last, in training order.
	if FeatureColumns[0] != FieldAge || FeatureColumns[19] != FieldBMI {
		t.Error("Raw fields are out of order")
	}
	derived := []string{FieldMentzerIndex, FieldHbRBCRatio, FieldMCVMCHRatio, FieldMCHCMCHDiff, FieldHctHbRatio}
	for i, want := range derived {
		if FeatureColumns[20+i] != want {
			t.Errorf("Expected derived index %s at position %d, got %s", want, 20+i, FeatureColumns[20+i])
		}
	}
}

func TestPatientRecordValueOr(t *testing.T) {
	record := PatientRecord{FieldHemoglobin: 0, FieldAge: 45}

	if got := record.ValueOr(FieldAge, 30); got != 45 {
		t.Errorf("Expected present value 45, got %g", got)
	}
	// A present zero is returned as zero, not replaced by the default.
	if got := record.ValueOr(FieldHemoglobin, 14); got != 0 {
		t.Errorf("Expected present zero, got %g", got)
	}
	if got := record.ValueOr(FieldFerritin, 100); got != 100 {
		t.Errorf("Expected default 100 for missing field, got %g", got)
	}
}

func TestPatientRecordDivisor(t *testing.T) {
	tests := []struct {
		name     string
		record   PatientRecord
		field    string
		expected float64
	}{
		{"present value wins", PatientRecord{FieldRBCCount: 5.2}, FieldRBCCount, 5.2},
		{"zero substituted", PatientRecord{FieldRBCCount: 0}, FieldRBCCount, 4.5},
		{"missing substituted", PatientRecord{}, FieldRBCCount, 4.5},
		{"mch baseline", PatientRecord{}, FieldMCH, 27.0},
		{"hemoglobin baseline", PatientRecord{FieldHemoglobin: 0}, FieldHemoglobin, 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Divisor(tt.field); got != tt.expected {
				t.Errorf("Expected %g, got %g", tt.expected, got)
			}
		})
	}
}

func TestPatientRecordFlagAndMale(t *testing.T) {
	record := PatientRecord{FieldPregnancy: 1, FieldFatigue: 0}

	if !record.Flag(FieldPregnancy) {
		t.Error("Expected set flag to report true")
	}
	if record.Flag(FieldFatigue) || record.Flag(FieldDizziness) {
		t.Error("Expected zero and missing flags to report false")
	}
	if record.Male() {
		t.Error("Expected missing gender to default to female")
	}
	record[FieldGender] = 1
	if !record.Male() {
		t.Error("Expected gender=1 to report male")
	}
}

func TestPatientRecordClone(t *testing.T) {
	record := PatientRecord{FieldAge: 30}
	clone := record.Clone()
	clone[FieldAge] = 60
	clone[FieldBMI] = 22

	if record[FieldAge] != 30 {
		t.Error("Clone mutation leaked into the original record")
	}
	if _, ok := record.Value(FieldBMI); ok {
		t.Error("Clone insertion leaked into the original record")
	}
}

func TestValidateDistribution(t *testing.T) {
	tests := []struct {
		name    string
		probs   []float64
		wantErr bool
	}{
		{"valid uniform", []float64{0.25, 0.25, 0.25, 0.25}, false},
		{"valid skewed", []float64{0.97, 0.01, 0.01, 0.01}, false},
		{"within tolerance", []float64{0.2500000002, 0.25, 0.25, 0.25}, false},
		{"wrong length", []float64{0.5, 0.5}, true},
		{"does not sum to one", []float64{0.5, 0.3, 0.1, 0.0}, true},
		{"negative entry", []float64{1.2, -0.2, 0.0, 0.0}, true},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDistribution(tt.probs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				if !errors.Is(err, ErrProbabilityIntegrity) {
					t.Errorf("Expected ErrProbabilityIntegrity, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestRangeStatus(t *testing.T) {
	r := Range{Min: 12.0, Max: 16.0}

	tests := []struct {
		name     string
		value    float64
		expected FactorStatus
	}{
		{"below", 11.9, StatusLow},
		{"lower bound inclusive", 12.0, StatusNormal},
		{"inside", 14.0, StatusNormal},
		{"upper bound inclusive", 16.0, StatusNormal},
		{"above", 16.1, StatusHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Status(tt.value); got != tt.expected {
				t.Errorf("Expected %s for %g, got %s", tt.expected, tt.value, got)
			}
		})
	}
}

func TestNormalRangesSexSelection(t *testing.T) {
	ranges := DefaultNormalRanges()

	if got := ranges.Hemoglobin(true); got.Min != 13.5 || got.Max != 17.5 {
		t.Errorf("Unexpected male hemoglobin range: %+v", got)
	}
	if got := ranges.Hemoglobin(false); got.Min != 12.0 || got.Max != 16.0 {
		t.Errorf("Unexpected female hemoglobin range: %+v", got)
	}
	if got := ranges.RBC(true); got.Min != 4.5 || got.Max != 5.5 {
		t.Errorf("Unexpected male RBC range: %+v", got)
	}
	if got := ranges.RBC(false); got.Min != 4.0 || got.Max != 5.0 {
		t.Errorf("Unexpected female RBC range: %+v", got)
	}
}
