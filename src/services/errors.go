package services

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which business rule rejected an operation. All of these
// are caller-correctable: the HTTP layer maps them to statuses and shows the
// detail, nothing is retried internally.
type ErrorKind string

const (
	ErrCapacityExceeded       ErrorKind = "capacity_exceeded"
	ErrInvalidParent          ErrorKind = "invalid_parent"
	ErrAlreadyLoaned          ErrorKind = "already_loaned"
	ErrAlreadyReturned        ErrorKind = "already_returned"
	ErrInvalidDueDate         ErrorKind = "invalid_due_date"
	ErrUnknownUser            ErrorKind = "unknown_user"
	ErrUnknownBook            ErrorKind = "unknown_book"
	ErrConcurrentModification ErrorKind = "concurrent_modification"
	ErrNotEmpty               ErrorKind = "not_empty"
	ErrInvalidValue           ErrorKind = "invalid_value"
)

// DomainError carries the failed constraint and the entity it failed on, so
// the presentation layer can show a specific message instead of a generic one.
type DomainError struct {
	Kind   ErrorKind `json:"kind"`
	Entity string    `json:"entity"`
	Detail string    `json:"detail"`
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newDomainError(kind ErrorKind, entity string, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Kind:   kind,
		Entity: entity,
		Detail: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the domain error kind, or "" for storage and other errors.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}
