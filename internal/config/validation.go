package config

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.Base("config validation failed")

// LoadError is returned when a present config file cannot be used.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config %s: %v", e.Path, e.Cause)
}
func (e *LoadError) Unwrap() error { return e.Cause }

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.AI.Model) == "" {
		errs = append(errs, "ai.model must not be empty")
	}
	if c.AI.SummaryMaxChars < 1 {
		errs = append(errs, "ai.summary_max_chars must be >= 1")
	}

	if c.Rename.MaxCollisionAttempts < 1 {
		errs = append(errs, "rename.max_collision_attempts must be >= 1")
	}
	if c.Rename.Digits < 0 {
		errs = append(errs, "rename.digits must be >= 0")
	}
	if c.Rename.Start < 0 {
		errs = append(errs, "rename.start must be >= 0")
	}
	if strings.TrimSpace(c.Rename.DateFormat) == "" {
		errs = append(errs, "rename.date_format must not be empty")
	}
	switch c.Rename.DateKind {
	case "modified", "created":
	default:
		errs = append(errs, "rename.date_kind must be modified or created")
	}

	if len(errs) > 0 {
		return errors.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
