package catalog

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a catalog that fails its integrity checks.
// It is a startup-time failure: a catalog that produced it is never used.
type ConfigurationError struct {
	Problems []string
	Err      error
}

func (e *ConfigurationError) Error() string {
	var parts []string
	parts = append(parts, e.Problems...)
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return fmt.Sprintf("question catalog validation failed:\n  %s", strings.Join(parts, "\n  "))
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
