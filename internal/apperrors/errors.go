package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindConfig     Kind = "config"
	KindTransient  Kind = "transient"
	KindRateLimit  Kind = "rate_limit"
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindBadRequest Kind = "bad_request"
)

// Error is a classified failure. Its Error() string is the message shown to
// the caller; Cause is kept for errors.Is/As and debug logs.
type Error struct {
	Kind Kind
	// Message is the user-facing text.
	Message string
	// Status is the upstream HTTP status, or 0 when no response was received.
	Status int
	Cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return defaultMessage(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultMessage(kind Kind) string {
	switch kind {
	case KindConfig:
		return "Invalid configuration."
	case KindTransient:
		return "Temporary upstream error. Please try again."
	case KindRateLimit:
		return "Rate limit exceeded. Please try again later."
	case KindAuth:
		return "Authentication failed. Please verify your API key and permissions."
	case KindValidation:
		return "Response validation failed."
	case KindBadRequest:
		return "Request rejected by upstream API."
	default:
		return "Request failed."
	}
}

func New(kind Kind, message string, cause error) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = defaultMessage(kind)
	}
	return &Error{
		Kind:    kind,
		Message: msg,
		Cause:   cause,
	}
}

// HTTP builds an error for a non-success upstream response.
func HTTP(kind Kind, status int, message string, cause error) error {
	err := New(kind, message, cause).(*Error)
	err.Status = status
	return err
}

func Config(err error) error {
	return New(KindConfig, "", err)
}

func Transient(err error) error {
	return New(KindTransient, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// StatusOf returns the upstream HTTP status carried by err, if any.
func StatusOf(err error) (int, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Status == 0 {
		return 0, false
	}
	return e.Status, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsRetryable reports whether a caller may reasonably try again.
// Validation is excluded: an empty response from a deterministic request
// shape is not expected to change on its own.
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindTransient || e.Kind == KindRateLimit
}
