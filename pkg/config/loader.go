package config

import (
	"fmt"
	"os"
)

// LoadConfig reads and parses a configuration file, falling back to
// Default() for any field the file doesn't set.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig checks the fields a YAML file is required to set
// correctly; zero-valued facility overrides are valid (they mean "use
// the baseline") and are not rejected here.
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if _, err := cfg.ParsedStartTime(); err != nil {
		return fmt.Errorf("invalid start_time %q: %w", cfg.StartTime, err)
	}

	if cfg.HorizonHours <= 0 {
		return fmt.Errorf("horizon_hours must be positive, got %f", cfg.HorizonHours)
	}

	if cfg.Facilities.ReceptionClerks < 0 {
		return fmt.Errorf("facilities.reception_clerks cannot be negative")
	}
	if cfg.Facilities.SnorkelInstructors < 0 {
		return fmt.Errorf("facilities.snorkel_instructors cannot be negative")
	}
	if cfg.Facilities.WavePoolCapacity < 0 {
		return fmt.Errorf("facilities.wave_pool_capacity cannot be negative")
	}

	return nil
}
