package robot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/gwillem/armus/pkg/motion"
)

const DefaultConfigFile = "armus.json"

// Control modes.
const (
	ModeSimulation = "simulation"
	ModeReal       = "real"
)

// Config holds the arm configuration
type Config struct {
	Mode   string  `json:"mode"`
	RateHz int     `json:"rate_hz"`
	MaxVel float64 `json:"max_vel"`

	Positions motion.Range          `json:"positions"`
	Angles    motion.AngleConverter `json:"angles"`
	Mapping   motion.Mapping        `json:"mapping"`
	DiffLimit *motion.Range         `json:"diff_limit,omitempty"`

	// FeedbackTimeoutMs is how long a joint-state sample keeps the motors
	// reported as connected.
	FeedbackTimeoutMs int `json:"feedback_timeout_ms"`

	Listen string `json:"listen"`
	// Solver is the address of the kinematics service. Empty runs the
	// reference solver in-process.
	Solver string `json:"solver,omitempty"`

	Hardware ArmConfig `json:"hardware"`
}

// ArmConfig holds configuration for the servo bus
type ArmConfig struct {
	Port        string      `json:"port,omitempty"`
	Calibration Calibration `json:"calibration,omitempty"`
}

// IsCalibrated returns true if the arm has calibration data
func (a *ArmConfig) IsCalibrated() bool {
	return len(a.Calibration) > 0
}

// DefaultConfig returns a simulated arm at 50 Hz.
func DefaultConfig() *Config {
	return &Config{
		Mode:              ModeSimulation,
		RateHz:            50,
		MaxVel:            4.8,
		Positions:         motion.Range{Min: 0, Max: TicksPerRevolution},
		Angles:            motion.DefaultAngleConverter(),
		Mapping:           motion.DefaultMapping(),
		FeedbackTimeoutMs: 500,
		Listen:            "127.0.0.1:50051",
	}
}

// Simulated reports whether the arm runs without hardware feedback.
func (c *Config) Simulated() bool {
	return c.Mode != ModeReal
}

// FeedbackTimeout returns FeedbackTimeoutMs as a duration.
func (c *Config) FeedbackTimeout() time.Duration {
	return time.Duration(c.FeedbackTimeoutMs) * time.Millisecond
}

// Params returns the motion parameters described by the config.
func (c *Config) Params() motion.Params {
	return motion.Params{
		MaxVel:    c.MaxVel,
		Limits:    c.Positions,
		Converter: c.Angles,
		Simulated: c.Simulated(),
		DiffLimit: c.DiffLimit,
	}
}

// Validate checks the config for values the control loop cannot run with.
func (c *Config) Validate() error {
	var err error
	if c.Mode != ModeSimulation && c.Mode != ModeReal {
		err = multierr.Append(err, fmt.Errorf("mode %q: want %q or %q", c.Mode, ModeSimulation, ModeReal))
	}
	if c.RateHz <= 0 {
		err = multierr.Append(err, fmt.Errorf("rate_hz must be positive, got %d", c.RateHz))
	}
	if c.Positions.Span() <= 0 {
		err = multierr.Append(err, errors.New("positions: max must be greater than min"))
	}
	if c.Angles.In.Span() == 0 {
		err = multierr.Append(err, errors.New("angles: input range is empty"))
	}
	if c.Angles.Out.Span() == 0 {
		err = multierr.Append(err, errors.New("angles: output range is empty"))
	}
	if c.DiffLimit != nil && c.DiffLimit.Span() < 0 {
		err = multierr.Append(err, errors.New("diff_limit: max below min"))
	}
	return err
}

// LoadConfig loads configuration from the default config file
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigFile)
}

// LoadConfigFrom loads configuration from a specific file. Missing fields
// keep their defaults.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigFile)
}

// SaveTo saves configuration to a specific file
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ConfigExists returns true if the config file exists
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
