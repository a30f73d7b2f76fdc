// Package store resolves a test function's location to its parametrization
// spec from file-backed test data.
package store

import (
	"errors"
	"fmt"

	"tdp/internal/domain"
)

// Store resolves the parametrization spec for a test function, or signals
// that none applies.
type Store interface {
	Resolve(loc domain.Location) (*domain.Spec, error)
}

// ErrDataNotFound means neither a per-module data file nor the shared data
// file exists for the resolved location. Callers are expected to request a
// skip for the test, not to fail the run.
var ErrDataNotFound = errors.New("test data not found")

// ErrSpecMismatch means the data file exists but holds no entry for the
// specific module, class or function. Callers treat this as "no
// parametrization", never as an error or a skip.
var ErrSpecMismatch = errors.New("no spec entry for location")

// ErrDataUnreadable is the errors.Is target for DataUnreadableError.
var ErrDataUnreadable = errors.New("test data unreadable")

// DataUnreadableError means a data file exists but cannot be parsed. Same
// policy as ErrDataNotFound: skip the test, log the cause.
type DataUnreadableError struct {
	Path string
	Err  error
}

func (e *DataUnreadableError) Error() string {
	return fmt.Sprintf("unreadable test data %s: %v", e.Path, e.Err)
}

func (e *DataUnreadableError) Unwrap() error { return e.Err }

func (e *DataUnreadableError) Is(target error) bool { return target == ErrDataUnreadable }
