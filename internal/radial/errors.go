package radial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every ConfigError returned from Validate.
	ErrInvalidConfig = errors.New("invalid slider config")
	// ErrDegenerateGeometry reports a pointer sitting exactly on the circle
	// center, where no projection onto the circumference exists.
	ErrDegenerateGeometry = errors.New("degenerate geometry: point coincides with circle center")
)

// ConfigError names the option that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid slider config: %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidConfig) match any field.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

func invalid(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}
