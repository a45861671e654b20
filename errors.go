package shard

import (
	"errors"
	"fmt"
)

// ErrorKind tags which step of a build or measure failed.
type ErrorKind int

const (
	SchemaError ErrorKind = iota + 1
	ViewCreationError
	PropertyApplicationError
	ChildAttachError
	MeasurementError
	LayoutComputationError
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrSchema              = errors.New("schema error")
	ErrViewCreation        = errors.New("view creation error")
	ErrPropertyApplication = errors.New("property application error")
	ErrChildAttach         = errors.New("child attach error")
	ErrMeasurement         = errors.New("measurement error")
	ErrLayoutComputation   = errors.New("layout computation error")

	// ErrReleased is returned when a released Root is used.
	ErrReleased = errors.New("shard: root has been released")
)

var kindSentinels = map[ErrorKind]error{
	SchemaError:              ErrSchema,
	ViewCreationError:        ErrViewCreation,
	PropertyApplicationError: ErrPropertyApplication,
	ChildAttachError:         ErrChildAttach,
	MeasurementError:         ErrMeasurement,
	LayoutComputationError:   ErrLayoutComputation,
}

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	if s, ok := kindSentinels[k]; ok {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single tagged error surfaced by building and measuring.
// ViewKind and Path identify the failing descriptor node when known.
type Error struct {
	Kind     ErrorKind
	ViewKind string
	Path     string
	Err      error
}

func (e *Error) Error() string {
	msg := "shard: " + e.Kind.String()
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.ViewKind != "" {
		msg += fmt.Sprintf(" (kind %q)", e.ViewKind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind ErrorKind, viewKind, path string, err error) *Error {
	return &Error{Kind: kind, ViewKind: viewKind, Path: path, Err: err}
}

func schemaErrorf(path, format string, args ...any) *Error {
	return newError(SchemaError, "", path, fmt.Errorf(format, args...))
}

// KindOf returns the ErrorKind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
