package stress

import (
	"errors"
	"fmt"
	"time"
)

// Config controls a stress run. Field tags match the keys read by the
// array-stress command's config file and environment.
type Config struct {
	Ops      int           `mapstructure:"ops" json:"ops" yaml:"ops"`
	Seed     int64         `mapstructure:"seed" json:"seed" yaml:"seed"`
	MaxValue int64         `mapstructure:"max_value" json:"max_value" yaml:"max_value"`
	MaxBatch int           `mapstructure:"max_batch" json:"max_batch" yaml:"max_batch"`
	Duration time.Duration `mapstructure:"duration" json:"duration" yaml:"duration"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Ops:      100000,
		Seed:     1,
		MaxValue: 64,
		MaxBatch: 16,
	}
}

var ErrInvalidConfig = errors.New("stress: invalid config")

// Validate rejects configs that cannot drive a run.
func (c Config) Validate() error {
	switch {
	case c.Ops < 0:
		return fmt.Errorf("%w: ops must not be negative, got %d", ErrInvalidConfig, c.Ops)
	case c.Ops == 0 && c.Duration <= 0:
		return fmt.Errorf("%w: either ops or duration must be set", ErrInvalidConfig)
	case c.MaxValue <= 0:
		return fmt.Errorf("%w: max_value must be positive, got %d", ErrInvalidConfig, c.MaxValue)
	case c.MaxBatch <= 0:
		return fmt.Errorf("%w: max_batch must be positive, got %d", ErrInvalidConfig, c.MaxBatch)
	case c.Duration < 0:
		return fmt.Errorf("%w: duration must not be negative, got %s", ErrInvalidConfig, c.Duration)
	}
	return nil
}
