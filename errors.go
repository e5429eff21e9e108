package badge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBadgeSpec is returned when a badge size or padding is unusable.
	ErrInvalidBadgeSpec = errors.New("badge: invalid badge spec")

	// ErrInvalidConfig is returned when a placement tuning value is unusable.
	ErrInvalidConfig = errors.New("badge: invalid config")
)

// ConfigError describes a rejected configuration value.
// It unwraps to [ErrInvalidBadgeSpec] or [ErrInvalidConfig].
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
	err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%g %s", e.err, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

func specError(field string, value float64, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason, err: ErrInvalidBadgeSpec}
}

func configError(field string, value float64, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason, err: ErrInvalidConfig}
}

var (
	// ErrEmptyBoundary is returned when a boundary has no outline.
	ErrEmptyBoundary = errors.New("badge: empty boundary")

	// ErrRasterTooLarge is returned when a raster boundary would exceed the
	// pixel budget.
	ErrRasterTooLarge = errors.New("badge: raster too large")
)
