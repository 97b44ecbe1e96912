package plasma

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel wrapped by every configuration error.
var ErrConfig = errors.New("plasma: invalid configuration")

// ConfigError reports a rejected configuration field. Configuration errors stop
// session setup; they are never raised per frame.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plasma: invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("plasma: invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrConfig) hold for every ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
