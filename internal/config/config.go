package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hemoscan/engine/internal/domain"
)

// Manager loads and owns the engine configuration using Viper.
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/hemoscan/")

	viper.SetEnvPrefix("HEMOSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and environment variables apply
	// when it is absent.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Model artifact defaults
	viper.SetDefault("model.dir", "./models")
	viper.SetDefault("model.model_file", "model.json")
	viper.SetDefault("model.scaler_file", "scaler.json")
	viper.SetDefault("model.metadata_file", "metadata.json")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Scoring thresholds. Kept separate from the factor-analysis reference
	// ranges below so either table can track a different guideline.
	defaults := domain.DefaultScoringThresholds()
	viper.SetDefault("scoring.hemoglobin_male", defaults.HemoglobinMale)
	viper.SetDefault("scoring.hemoglobin_female", defaults.HemoglobinFemale)
	viper.SetDefault("scoring.iron_low", defaults.IronLow)
	viper.SetDefault("scoring.ferritin_low", defaults.FerritinLow)

	// Factor-analysis reference ranges
	ranges := domain.DefaultNormalRanges()
	setRangeDefault("ranges.hemoglobin_male", ranges.HemoglobinMale)
	setRangeDefault("ranges.hemoglobin_female", ranges.HemoglobinFemale)
	setRangeDefault("ranges.iron", ranges.Iron)
	setRangeDefault("ranges.ferritin", ranges.Ferritin)
	setRangeDefault("ranges.rbc_male", ranges.RBCMale)
	setRangeDefault("ranges.rbc_female", ranges.RBCFemale)
	setRangeDefault("ranges.bmi", ranges.BMI)
}

func setRangeDefault(key string, r domain.Range) {
	viper.SetDefault(key+".min", r.Min)
	viper.SetDefault(key+".max", r.Max)
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetModelConfig returns the classifier artifact configuration
func (m *Manager) GetModelConfig() *domain.ModelConfig {
	return &m.config.Model
}

// GetScoringThresholds returns the risk scoring threshold table
func (m *Manager) GetScoringThresholds() domain.ScoringThresholds {
	return m.config.Scoring
}

// GetNormalRanges returns the factor-analysis reference range table
func (m *Manager) GetNormalRanges() domain.NormalRanges {
	return m.config.Ranges
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Model.Dir == "" {
		return fmt.Errorf("model directory is required")
	}
	if config.Model.ModelFile == "" || config.Model.ScalerFile == "" || config.Model.MetadataFile == "" {
		return fmt.Errorf("model artifact file names are required")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	if config.Scoring.HemoglobinMale <= 0 || config.Scoring.HemoglobinFemale <= 0 {
		return fmt.Errorf("hemoglobin scoring thresholds must be positive")
	}

	for name, r := range map[string]domain.Range{
		"hemoglobin_male":   config.Ranges.HemoglobinMale,
		"hemoglobin_female": config.Ranges.HemoglobinFemale,
		"iron":              config.Ranges.Iron,
		"ferritin":          config.Ranges.Ferritin,
		"rbc_male":          config.Ranges.RBCMale,
		"rbc_female":        config.Ranges.RBCFemale,
		"bmi":               config.Ranges.BMI,
	} {
		if r.Min >= r.Max {
			return fmt.Errorf("invalid reference range %s: min %g is not below max %g", name, r.Min, r.Max)
		}
	}

	return nil
}
