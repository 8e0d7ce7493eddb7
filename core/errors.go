package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// PolicyError marks a request that is well-formed but rejected by an
// application policy, eg. content moderation.
type PolicyError struct {
	message string
}

func NewPolicyError(msg string) error {
	return &PolicyError{message: msg}
}

func (err PolicyError) Error() string {
	return err.message
}

func IsPolicyError(err error) bool {
	_, ok := errors.Cause(err).(*PolicyError)
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
