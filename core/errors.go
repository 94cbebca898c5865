package core

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned when user input is rejected before it reaches the backend.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.UserMessage()
}

// UserMessage renders the field errors as a single sentence suitable for a toast.
func (err ValidationError) UserMessage() string {
	if len(err.Fields) == 0 {
		if err.Err != nil {
			return err.Err.Error()
		}
		return "invalid input"
	}
	msgs := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		msgs = append(msgs, f.Error)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// IsValidation reports whether the cause of err is a *ValidationError.
func IsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

// genericErrorMessage is shown when an error carries nothing better.
const genericErrorMessage = "Something went wrong. Please try again."

type userMessager interface {
	UserMessage() string
}

// UserMessage returns the text to show a user for err: the message the cause
// carries for users (backend `message`, validation errors), else the cause's
// own text, else a generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	cause := errors.Cause(err)
	if m, ok := cause.(userMessager); ok {
		if msg := strings.TrimSpace(m.UserMessage()); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(cause.Error()); msg != "" {
		return msg
	}
	return genericErrorMessage
}
