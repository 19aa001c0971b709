package csvtape

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [NewTape] and its collaborators.
var (
	// ErrInvalidCsvFormat is returned when the structural index does not
	// divide evenly by the detected stride, meaning some record has a
	// different number of fields than the header.
	ErrInvalidCsvFormat = errors.New("invalid csv format")

	// ErrInvalidState is returned when an operation is attempted on a
	// region or tape that has not been fully initialized.
	ErrInvalidState = errors.New("invalid state")
)

// IoFailure wraps an error from an external collaborator — opening a file,
// mapping it, or decompressing it — without obscuring the cause.
type IoFailure struct {
	Source error
}

func (e *IoFailure) Error() string {
	return fmt.Sprintf("io failure: %v", e.Source)
}

func (e *IoFailure) Unwrap() error {
	return e.Source
}
