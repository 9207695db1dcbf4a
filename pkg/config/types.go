// Package config loads and validates the water park simulation's run
// configuration: PRNG seed, simulation start time, horizon, and
// facility capacity overrides layered on top of spec.md's baseline
// values.
package config

import "time"

// Config is the full run configuration, YAML-loadable.
type Config struct {
	LogLevel     string            `yaml:"log_level"`
	Seed         int64             `yaml:"seed"`
	StartTime    string            `yaml:"start_time"` // RFC3339
	HorizonHours float64           `yaml:"horizon_hours"`
	Facilities   FacilityOverrides `yaml:"facilities"`
}

// FacilityOverrides adjusts capacity/staffing away from spec.md's
// baseline values (3 reception clerks, 2 snorkel instructors, an
// 80-headcount wave pool). Zero means "use the baseline".
type FacilityOverrides struct {
	ReceptionClerks    int `yaml:"reception_clerks"`
	SnorkelInstructors int `yaml:"snorkel_instructors"`
	WavePoolCapacity   int `yaml:"wave_pool_capacity"`
}

// Baseline values named throughout spec.md.
const (
	DefaultReceptionClerks    = 3
	DefaultSnorkelInstructors = 2
	DefaultWavePoolCapacity   = 80
	DefaultHorizonHours       = 10.0
	DefaultStartTime          = "2026-06-01T09:00:00Z"
)

// Default returns the baseline configuration spec.md names throughout.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		Seed:         1,
		StartTime:    DefaultStartTime,
		HorizonHours: DefaultHorizonHours,
		Facilities: FacilityOverrides{
			ReceptionClerks:    DefaultReceptionClerks,
			SnorkelInstructors: DefaultSnorkelInstructors,
			WavePoolCapacity:   DefaultWavePoolCapacity,
		},
	}
}

// ParsedStartTime parses StartTime as RFC3339.
func (c *Config) ParsedStartTime() (time.Time, error) {
	return time.Parse(time.RFC3339, c.StartTime)
}

// Horizon returns the configured run length as a time.Duration.
func (c *Config) Horizon() time.Duration {
	return time.Duration(c.HorizonHours * float64(time.Hour))
}

// ReceptionClerks returns the configured clerk count, falling back to
// the baseline when unset.
func (c *Config) ReceptionClerks() int {
	if c.Facilities.ReceptionClerks > 0 {
		return c.Facilities.ReceptionClerks
	}
	return DefaultReceptionClerks
}

// SnorkelInstructors returns the configured instructor count, falling
// back to the baseline when unset.
func (c *Config) SnorkelInstructors() int {
	if c.Facilities.SnorkelInstructors > 0 {
		return c.Facilities.SnorkelInstructors
	}
	return DefaultSnorkelInstructors
}

// WavePoolCapacity returns the configured headcount capacity, falling
// back to the baseline when unset.
func (c *Config) WavePoolCapacity() int {
	if c.Facilities.WavePoolCapacity > 0 {
		return c.Facilities.WavePoolCapacity
	}
	return DefaultWavePoolCapacity
}
