package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Largest values that still fit in a time.Duration.
const (
	maxDurationMinutes = math.MaxInt64 / int64(time.Minute)
	maxSpeedSeconds    = float64(math.MaxInt64 / int64(time.Second))
)

var (
	ErrInvalidDuration = errors.New("duration out of range")
	ErrInvalidSpeed    = errors.New("speed out of range")
)

type Config struct {
	Movement struct {
		DurationMinutes int
		SpeedSeconds    float64
		Range           string
		Motion          string
		Seed            int64
		Progress        bool
		Hotkey          bool
		StopKeys        []string
	}
	Devices struct {
		Tool string
	}
	Logging struct {
		Level  string
		Format string
	}
}

func NewConfig() *Config {
	cfg := &Config{}

	cfg.Movement.DurationMinutes = 60
	cfg.Movement.SpeedSeconds = 4
	cfg.Movement.Range = "full"
	cfg.Movement.Motion = "human"
	cfg.Movement.StopKeys = []string{"q", "ctrl", "shift"}

	cfg.Devices.Tool = "xinput"

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "console"

	return cfg
}

// Duration is the total session length. The CLI takes minutes.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.Movement.DurationMinutes) * time.Minute
}

// Speed is both the interpolation time of a human move and the pause between moves.
func (c *Config) Speed() time.Duration {
	return time.Duration(c.Movement.SpeedSeconds * float64(time.Second))
}

func (c *Config) Validate() error {
	if c.Movement.DurationMinutes <= 0 || int64(c.Movement.DurationMinutes) > maxDurationMinutes {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, c.Movement.DurationMinutes)
	}
	speed := c.Movement.SpeedSeconds
	if math.IsNaN(speed) || speed < 0 || speed > maxSpeedSeconds {
		return fmt.Errorf("%w: %v seconds", ErrInvalidSpeed, speed)
	}
	return nil
}
