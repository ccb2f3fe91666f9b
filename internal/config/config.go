// Package config handles loading the tunable parts of the token layer: the
// day-cycle breakpoints, animation overrides and logging.
package config

import (
	"fmt"

	"github.com/Faultbox/sail/internal/daycycle"
	"github.com/Faultbox/sail/internal/motion"
)

// Config holds all integrator settings.
type Config struct {
	Cycle     daycycle.Breakpoints `yaml:"cycle" toml:"cycle"`
	Animation motion.Overrides     `yaml:"animation,omitempty" toml:"animation"`
	Logging   LoggingConfig        `yaml:"logging" toml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Cycle: daycycle.ExampleBreakpoints,
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if err := c.Cycle.Validate(); err != nil {
		return fmt.Errorf("cycle: %w", err)
	}
	if err := c.Animation.Validate(); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	return nil
}

// Resolver builds the scene resolver for the configured breakpoints.
func (c *Config) Resolver() (*daycycle.Resolver, error) {
	return daycycle.New(c.Cycle)
}

// Motion returns the animation table with the configured overrides applied.
func (c *Config) Motion() (motion.Table, error) {
	return motion.Default().With(c.Animation)
}
