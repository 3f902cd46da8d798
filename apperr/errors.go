package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing request input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidation creates a validation error for a specific field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFound creates a not-found error for an entity and id
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a uniqueness violation (e.g. duplicate slug).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a conflict error
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// UnauthorizedError reports a missing or invalid session credential.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// NewUnauthorized creates an unauthorized error
func NewUnauthorized(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// CorruptDataError reports a stored list field that fails to decode as JSON.
// The read path surfaces this loudly instead of serving partial data.
type CorruptDataError struct {
	Raw     string
	Message string
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt stored value: %s", e.Message)
}

// NewCorruptData creates a corrupt-data error carrying the raw stored value
func NewCorruptData(raw, message string) *CorruptDataError {
	return &CorruptDataError{Raw: raw, Message: message}
}

// RateLimitedError reports a sender exceeding the contact intake window.
type RateLimitedError struct {
	Message string
}

func (e *RateLimitedError) Error() string {
	return e.Message
}

// NewRateLimited creates a rate-limited error
func NewRateLimited(message string) *RateLimitedError {
	return &RateLimitedError{Message: message}
}

// UpstreamError reports a failure in an external collaborator (media host,
// mail service). The cause is logged server-side, never echoed to clients.
type UpstreamError struct {
	Service string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable", e.Service)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewUpstream creates an upstream error wrapping the underlying cause
func NewUpstream(service string, cause error) *UpstreamError {
	return &UpstreamError{Service: service, Cause: cause}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsCorruptData reports whether err is a CorruptDataError
func IsCorruptData(err error) bool {
	var target *CorruptDataError
	return errors.As(err, &target)
}

// IsRateLimited reports whether err is a RateLimitedError
func IsRateLimited(err error) bool {
	var target *RateLimitedError
	return errors.As(err, &target)
}
