package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// Stages of a tool invocation, reported with every failure.
const (
	StageDispatch = "dispatch"
	StageValidate = "validate"
	StageCall     = "call"
	StageFormat   = "format"
)

// FieldError is one violated constraint on one argument.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every violated constraint in a tool's arguments.
// Nothing was sent upstream; the caller must fix the arguments.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid arguments"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil collapses an empty collector to nil so callers can return it directly.
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NotFoundError is returned when a caller invokes a tool name the registry
// does not know.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// stagedError tags an error with the pipeline stage that produced it.
type stagedError struct {
	Stage string
	Err   error
}

func (e *stagedError) Error() string { return e.Err.Error() }
func (e *stagedError) Unwrap() error { return e.Err }

func staged(stage string, err error) error {
	return &stagedError{Stage: stage, Err: err}
}

// classify maps an invocation error to its error kind, the pipeline stage
// it originated from, and an optional hint for the caller.
func classify(err error) (kind, stage, hint string) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var apiErr *seatsaero.APIError
	var transportErr *seatsaero.TransportError

	switch {
	case errors.As(err, &validationErr):
		kind, stage, hint = "ValidationError", StageValidate, "fix the arguments and retry"
	case errors.As(err, &notFoundErr):
		kind, stage = "NotFoundError", StageDispatch
	case errors.As(err, &apiErr):
		kind, stage = "ApiError", StageCall
	case errors.As(err, &transportErr):
		kind, stage, hint = "TransportError", StageCall, "the network call failed, retrying later may help"
	default:
		kind, stage = "InternalError", StageCall
	}

	var stagedErr *stagedError
	if errors.As(err, &stagedErr) {
		stage = stagedErr.Stage
	}
	return kind, stage, hint
}
