package folder

import (
	"errors"
	"fmt"
)

var (
	// ErrIOFailure reports that listing a directory failed.
	ErrIOFailure = errors.New("listing failed")
	// ErrInvariantViolation reports a folder whose size disagrees with its children.
	ErrInvariantViolation = errors.New("size invariant violated")
)

// BuildError is returned by Build when a directory of the tree cannot be listed.
type BuildError struct {
	// Path is the directory whose listing failed.
	Path string
	// Err is the underlying listing error.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("building %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying listing error.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIOFailure) true for every BuildError.
func (e *BuildError) Is(target error) bool {
	return target == ErrIOFailure
}
