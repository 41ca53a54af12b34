package services

import (
	"errors"
	"fmt"

	"github.com/blogem/geoattend/repositories"
)

// Kind classifies a service error. Every kind is terminal for the operation
// that produced it; none are retried inside the services.
type Kind string

const (
	KindInvalidName          Kind = "InvalidName"
	KindInvalidImage         Kind = "InvalidImage"
	KindInvalidLocation      Kind = "InvalidLocation"
	KindNoActiveZone         Kind = "NoActiveZone"
	KindStaleLocation        Kind = "StaleLocation"
	KindOutOfRange           Kind = "OutOfRange"
	KindOutsideWindow        Kind = "OutsideWindow"
	KindAlreadyRecorded      Kind = "AlreadyRecorded"
	KindInvalidGeometry      Kind = "InvalidGeometry"
	KindInvalidInput         Kind = "InvalidInput"
	KindNotFound             Kind = "NotFound"
	KindZoneActiveConstraint Kind = "ZoneActiveConstraint"
	KindPersistenceFailure   Kind = "PersistenceFailure"
)

// Sentinels for errors.Is checks against a kind
var (
	ErrInvalidName          = &Error{Kind: KindInvalidName}
	ErrInvalidImage         = &Error{Kind: KindInvalidImage}
	ErrInvalidLocation      = &Error{Kind: KindInvalidLocation}
	ErrNoActiveZone         = &Error{Kind: KindNoActiveZone}
	ErrStaleLocation        = &Error{Kind: KindStaleLocation}
	ErrOutOfRange           = &Error{Kind: KindOutOfRange}
	ErrOutsideWindow        = &Error{Kind: KindOutsideWindow}
	ErrAlreadyRecorded      = &Error{Kind: KindAlreadyRecorded}
	ErrInvalidGeometry      = &Error{Kind: KindInvalidGeometry}
	ErrInvalidInput         = &Error{Kind: KindInvalidInput}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrZoneActiveConstraint = &Error{Kind: KindZoneActiveConstraint}
	ErrPersistenceFailure   = &Error{Kind: KindPersistenceFailure}
)

// Error is returned by every service operation that fails. Distance and
// RadiusMeters are set for OutOfRange, ExistingTime for AlreadyRecorded.
type Error struct {
	Kind         Kind
	Message      string
	Distance     float64
	RadiusMeters float64
	ExistingTime string
	Err          error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of err, or PersistenceFailure for foreign errors
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindPersistenceFailure
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// storageError translates a repository error into NotFound or PersistenceFailure
func storageError(err error, format string, args ...any) *Error {
	kind := KindPersistenceFailure
	if errors.Is(err, repositories.ErrNotFound) {
		kind = KindNotFound
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
