// Package apperror carries the ledger's error taxonomy. Every failure that
// leaves a use case is an *Error with one of the four codes.
package apperror

import (
	"fmt"

	"github.com/pkg/errors"
)

type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeDuplicate  Code = "DUPLICATE"
	CodeNotFound   Code = "NOT_FOUND"
	CodeStore      Code = "STORE_ERROR"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...interface{}) error {
	return &Error{Code: CodeDuplicate, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, id interface{}) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

// Store wraps an engine failure. Errors that already carry a code pass
// through untouched; nil stays nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{Code: CodeStore, Message: err.Error(), Err: err}
}

// CodeOf reports the code carried by err, STORE_ERROR for anything untyped.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStore
}

func IsNotFound(err error) bool { return err != nil && CodeOf(err) == CodeNotFound }
