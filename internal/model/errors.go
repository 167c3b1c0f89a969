package model

import "fmt"

// InvalidInputError reports a term or definition that failed validation
// before classification started. Classify surfaces it directly.
type InvalidInputError struct {
	Field  string // "term" or "definition"
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigLoadError reports a malformed configuration override. The classifier
// recovers by falling back to built-in defaults; the error exists so the
// fallback is observable rather than silent.
type ConfigLoadError struct {
	Section string
	Err     error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("config load failed (%s): %v", e.Section, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// InternalClassificationError wraps an unexpected per-item failure. It is
// caught at the batch boundary and converted into a degraded result so one
// bad row cannot abort an import batch.
type InternalClassificationError struct {
	Term string
	Err  error
}

func (e *InternalClassificationError) Error() string {
	return fmt.Sprintf("classification of %q failed: %v", e.Term, e.Err)
}

func (e *InternalClassificationError) Unwrap() error {
	return e.Err
}
