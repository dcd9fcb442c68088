package domain

// Config is the complete engine configuration, loaded by internal/config.
type Config struct {
	Model   ModelConfig       `mapstructure:"model"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Scoring ScoringThresholds `mapstructure:"scoring"`
	Ranges  NormalRanges      `mapstructure:"ranges"`
}

// ModelConfig locates the classifier artifact trio on disk.
type ModelConfig struct {
	Dir          string `mapstructure:"dir"`
	ModelFile    string `mapstructure:"model_file"`
	ScalerFile   string `mapstructure:"scaler_file"`
	MetadataFile string `mapstructure:"metadata_file"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ScoringThresholds are the cutoffs used by the risk score calculator.
//
// Deliberately independent of NormalRanges: the score reacts to the lower
// bound of the healthy interval, and different clinical guidelines may move
// the two tables apart without either being wrong.
type ScoringThresholds struct {
	HemoglobinMale   float64 `mapstructure:"hemoglobin_male"`
	HemoglobinFemale float64 `mapstructure:"hemoglobin_female"`
	IronLow          float64 `mapstructure:"iron_low"`
	FerritinLow      float64 `mapstructure:"ferritin_low"`
}

// DefaultScoringThresholds returns the standard scoring cutoffs.
func DefaultScoringThresholds() ScoringThresholds {
	return ScoringThresholds{
		HemoglobinMale:   13.5,
		HemoglobinFemale: 12.0,
		IronLow:          50,
		FerritinLow:      30,
	}
}

// Range is a closed healthy interval for a lab value.
type Range struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// Status classifies a value against the range. Both bounds are inclusive.
func (r Range) Status(v float64) FactorStatus {
	switch {
	case v < r.Min:
		return StatusLow
	case v > r.Max:
		return StatusHigh
	default:
		return StatusNormal
	}
}

// NormalRanges are the clinically defined healthy intervals used by the
// risk factor analyzer. Hemoglobin and RBC count are sex-dependent.
type NormalRanges struct {
	HemoglobinMale   Range `mapstructure:"hemoglobin_male"`
	HemoglobinFemale Range `mapstructure:"hemoglobin_female"`
	Iron             Range `mapstructure:"iron"`
	Ferritin         Range `mapstructure:"ferritin"`
	RBCMale          Range `mapstructure:"rbc_male"`
	RBCFemale        Range `mapstructure:"rbc_female"`
	BMI              Range `mapstructure:"bmi"`
}

// DefaultNormalRanges returns the standard clinical reference intervals.
func DefaultNormalRanges() NormalRanges {
	return NormalRanges{
		HemoglobinMale:   Range{Min: 13.5, Max: 17.5},
		HemoglobinFemale: Range{Min: 12.0, Max: 16.0},
		Iron:             Range{Min: 60, Max: 170},
		Ferritin:         Range{Min: 20, Max: 250},
		RBCMale:          Range{Min: 4.5, Max: 5.5},
		RBCFemale:        Range{Min: 4.0, Max: 5.0},
		BMI:              Range{Min: 18.5, Max: 24.9},
	}
}

// Hemoglobin returns the sex-specific hemoglobin reference interval.
func (n NormalRanges) Hemoglobin(male bool) Range {
	if male {
		return n.HemoglobinMale
	}
	return n.HemoglobinFemale
}

// RBC returns the sex-specific red blood cell count reference interval.
func (n NormalRanges) RBC(male bool) Range {
	if male {
		return n.RBCMale
	}
	return n.RBCFemale
}
