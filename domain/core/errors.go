package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrConfiguration means a required configuration field is missing or
	// invalid at build or write time. Physically meaningful quantities
	// (wavelength, pitch, kernel-phase data) are never silently defaulted.
	ErrConfiguration = errors.New("configuration incomplete")

	// ErrShapeMismatch means the dimension invariants between baselines,
	// redundancy and the kernel-phase relation matrix are violated.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIO means the persisted result could not be written or read back.
	ErrIO = errors.New("result i/o failed")
)

// Error constructors with context
func NewConfigurationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrConfiguration, field, reason)
}

func NewShapeMismatchError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, expected %d", ErrShapeMismatch, what, got, want)
}

func NewIOError(dest string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrIO, dest, err)
}

// Error checking helpers
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsShapeMismatchError(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}
