package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Schedule names accepted in Config.Schedule
const (
	ScheduleConcurrent = "concurrent"
	ScheduleOrdered    = "ordered"
	ScheduleFused      = "fused"
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnknownSchedule = errors.New("unknown schedule")
)

// Config holds the configuration for a run
type Config struct {
	Rows             int    `json:"rows"`
	Cols             int    `json:"cols"`
	Workers          int    `json:"workers"`
	Schedule         string `json:"schedule"`
	InPlace          bool   `json:"in_place"`
	Generations      int    `json:"generations"`
	StopOnStagnation bool   `json:"stop_on_stagnation"`
	Color            bool   `json:"color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:             5,
		Cols:             5,
		Workers:          4,
		Schedule:         ScheduleOrdered,
		InPlace:          false,
		Generations:      1,
		StopOnStagnation: true,
		Color:            false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the universe and pool cannot be built from.
// Grid dimensions are checked by the universe itself.
func (c Config) Validate() error {
	switch c.Schedule {
	case ScheduleConcurrent, ScheduleOrdered, ScheduleFused:
	default:
		return errors.Wrapf(ErrUnknownSchedule, "[Validate] %q", c.Schedule)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers=%d", c.Workers)
	}
	if c.Generations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations=%d", c.Generations)
	}
	return nil
}
