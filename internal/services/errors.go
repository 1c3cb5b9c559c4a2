package services

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidationError reports user-correctable input problems. Message is the
// notice shown to the user; Err lists each failed check.
type ValidationError struct {
	Message string
	Err     *multierror.Error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// UpstreamError wraps a failed catalog lookup and keeps its diagnostic text.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type field struct {
	name  string
	value string
}

func requireFields(message string, fields ...field) error {
	var result *multierror.Error
	for _, f := range fields {
		if f.value == "" {
			result = multierror.Append(result, fmt.Errorf("%s is required", f.name))
		}
	}
	if result.ErrorOrNil() == nil {
		return nil
	}
	return &ValidationError{Message: message, Err: result}
}
