// Package errors provides structured error handling for circular graph widgets.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration file that could not be read or parsed.
	KindConfig
	// KindValidation indicates a value outside its allowed domain.
	KindValidation
	// KindRender indicates a rendering or encoding error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by ValidationError.
var (
	// ErrInvalidMax reports a maximum value below 1.
	ErrInvalidMax = stderrors.New("max value must be at least 1")
	// ErrMaxBelowValue reports a maximum lowered under the current value
	// while the reject policy is active.
	ErrMaxBelowValue = stderrors.New("max value below current value")
	// ErrInvalidWidth reports a negative stroke width.
	ErrInvalidWidth = stderrors.New("stroke width must not be negative")
)

// GraphError represents a structured error raised by an operation.
type GraphError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GraphError) Unwrap() error {
	return e.Err
}

// ValidationError describes a rejected field value.
type ValidationError struct {
	// Field is the configuration field name (e.g., "max_value").
	Field string
	// Value is the rejected value.
	Value any
	// Err is the sentinel cause.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Invalid builds a GraphError of kind KindValidation for the given field.
func Invalid(op, field string, value any, cause error) *GraphError {
	return &GraphError{
		Op:   op,
		Kind: KindValidation,
		Err:  &ValidationError{Field: field, Value: value, Err: cause},
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.CircularGraph.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// KindOf returns the kind of the first GraphError in err's chain.
func KindOf(err error) ErrorKind {
	var ge *GraphError
	if stderrors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// ErrorHandler receives errors reported through Report and Recover.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *GraphError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
