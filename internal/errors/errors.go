package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies the failures this core can produce
type Category string

const (
	// Caller-supplied parameter violates a precondition. Surfaced before
	// any computation runs; never partially applied.
	CategoryInvalidArgument Category = "INVALID_ARGUMENT"

	// Market data could not be loaded or parsed
	CategoryData Category = "DATA"
)

// CoreError is a categorized error with the component and operation
// that produced it
type CoreError struct {
	Category   Category
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// NewInvalidArgument reports a precondition violation naming the
// offending parameter.
func NewInvalidArgument(component, param, reason string) *CoreError {
	return &CoreError{
		Category:  CategoryInvalidArgument,
		Component: component,
		Operation: "validate",
		Message:   fmt.Sprintf("invalid %s: %s", param, reason),
	}
}

// WrapData wraps a data-loading failure with context
func WrapData(err error, component, operation string) *CoreError {
	if err == nil {
		return nil
	}
	return &CoreError{
		Category:   CategoryData,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}

// IsInvalidArgument reports whether err is (or wraps) an invalid-argument error
func IsInvalidArgument(err error) bool {
	var coreErr *CoreError
	if stderrors.As(err, &coreErr) {
		return coreErr.Category == CategoryInvalidArgument
	}
	return false
}

// IsData reports whether err is (or wraps) a data error
func IsData(err error) bool {
	var coreErr *CoreError
	if stderrors.As(err, &coreErr) {
		return coreErr.Category == CategoryData
	}
	return false
}
