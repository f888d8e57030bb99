package errors

import (
	"fmt"
)

// NotFoundError reports a lookup miss for an icon template, manifest entry,
// or stored record.
type NotFoundError struct {
	Resource string
	Key      string
}

// NewNotFoundError constructs a NotFoundError for the given resource and key.
func NewNotFoundError(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Resource != "" {
		return fmt.Sprintf("%s not found: %q", e.Resource, e.Key)
	}
	return fmt.Sprintf("not found: %q", e.Key)
}

// CapabilityError indicates an optional backend (such as the raster renderer)
// is not present. Callers are expected to degrade rather than abort.
type CapabilityError struct {
	Capability string
	Message    string
}

// NewCapabilityError constructs a CapabilityError.
func NewCapabilityError(capability, message string) error {
	return &CapabilityError{Capability: capability, Message: message}
}

func (e *CapabilityError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("capability %s unavailable: %s", e.Capability, e.Message)
	}
	return fmt.Sprintf("capability %s unavailable", e.Capability)
}

// InvalidColorError reports a color suggestion that could not be resolved to
// a hex value. Raised only at the sanitization boundary; the recolor engine
// itself passes malformed strings through untouched.
type InvalidColorError struct {
	Value string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value string) error {
	return &InvalidColorError{Value: value}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color: %q", e.Value)
}

// ParseError represents a manifest or configuration parsing failure with
// optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures manifest or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TaskError wraps the failure of a single batch task. Sibling tasks keep
// running; the orchestrator collects these per result.
type TaskError struct {
	Icon string
	Err  error
}

// NewTaskError constructs a TaskError for the given icon key.
func NewTaskError(icon string, err error) error {
	return &TaskError{Icon: icon, Err: err}
}

func (e *TaskError) Error() string {
	if e == nil {
		return ""
	}
	if e.Icon != "" {
		return fmt.Sprintf("task error for icon %s: %v", e.Icon, e.Err)
	}
	return fmt.Sprintf("task error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *TaskError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
