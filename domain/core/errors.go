package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Card mutation errors
	ErrFieldNotFound = errors.New("field not found")
	ErrRowOutOfRange = errors.New("row position out of range")

	// Degenerate-statistic errors
	ErrEmptyGraph   = errors.New("graph has no nodes")
	ErrNoLinks      = errors.New("graph has no links")
	ErrDisconnected = errors.New("graph is not connected")

	// Snapshot errors
	ErrMalformedSnapshot = errors.New("malformed card snapshot")
)

// Error constructors with context
func NewFieldNotFoundError(field string, panel string) error {
	if panel == "" {
		return fmt.Errorf("%w: %q in any panel", ErrFieldNotFound, field)
	}
	return fmt.Errorf("%w: %q in %s panel", ErrFieldNotFound, field, panel)
}

func NewRowOutOfRangeError(pos, size int) error {
	return fmt.Errorf("%w: %d (multicard has %d rows)", ErrRowOutOfRange, pos, size)
}

func NewSnapshotError(detail string) error {
	return fmt.Errorf("%w: %s", ErrMalformedSnapshot, detail)
}

// Error checking helpers
func IsFieldNotFound(err error) bool {
	return errors.Is(err, ErrFieldNotFound)
}

func IsDegenerateStatistic(err error) bool {
	return errors.Is(err, ErrEmptyGraph) || errors.Is(err, ErrNoLinks) || errors.Is(err, ErrDisconnected)
}
