package luz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSpectrum is returned by the diagnostic lookup helpers
	// when a name resolves to neither a dedicated slot nor an entry in
	// the general spectrum table. The hot-path GetSpectrum keeps
	// returning the zero spectrum instead (spec.md §7).
	ErrUnknownSpectrum = errors.New("unknown spectrum name")

	// ErrCoatIndexOutOfRange is returned by diagnostic coat lookups for
	// an index outside [0, specdb.MaxCoats).
	ErrCoatIndexOutOfRange = errors.New("coat index out of range")

	// ErrCoatCountOutOfRange indicates a requested coat count falls
	// outside [0, specdb.MaxCoats].
	ErrCoatCountOutOfRange = errors.New("coat count out of range")

	// ErrLevelsLength indicates a caller passed a coat-levels slice of
	// the wrong length for the engine's declared coat count.
	ErrLevelsLength = errors.New("coat levels length mismatch")
)

// CoatCountError wraps ErrCoatCountOutOfRange with the rejected value.
type CoatCountError struct {
	Requested int
	Max       int
}

func (e *CoatCountError) Error() string {
	return fmt.Sprintf("%s: %d (max %d)", ErrCoatCountOutOfRange.Error(), e.Requested, e.Max)
}

func (e *CoatCountError) Unwrap() error {
	return ErrCoatCountOutOfRange
}

// LevelsLengthError wraps ErrLevelsLength with the expected/actual counts.
type LevelsLengthError struct {
	Expected int
	Actual   int
}

func (e *LevelsLengthError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrLevelsLength.Error(), e.Expected, e.Actual)
}

func (e *LevelsLengthError) Unwrap() error {
	return ErrLevelsLength
}
