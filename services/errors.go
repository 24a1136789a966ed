package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ServiceError for the HTTP layer
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindBadRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// ServiceError is the only error type the catalog services return to callers
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error, format string, args ...any) *ServiceError {
	return &ServiceError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, KindInternal for foreign errors
func KindOf(err error) ErrorKind {
	var serr *ServiceError
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found ServiceError
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
