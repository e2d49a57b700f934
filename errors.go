package algogpp

import (
	"errors"

	"github.com/cwbudde/algo-gpp/internal/grid"
	"github.com/cwbudde/algo-gpp/internal/kernel"
)

// Sentinel errors returned by problem validation and Solve.
var (
	// ErrInvalidSize is returned when a problem dimension is not positive,
	// or the frequency count is not positive.
	ErrInvalidSize = errors.New("algogpp: invalid problem size")

	// ErrNilSlice is returned when a required input slice is nil.
	ErrNilSlice = errors.New("algogpp: nil input slice")

	// ErrLengthMismatch is returned when an input slice length does not
	// match the problem dimensions.
	ErrLengthMismatch = errors.New("algogpp: slice length mismatch")

	// ErrIndexOutOfRange is returned when the index indirection would
	// resolve outside [0, ncouls).
	ErrIndexOutOfRange = grid.ErrIndexRange

	// ErrBadSentinel is returned when indinv is missing its trailing slot
	// or the slot does not hold ncouls-1.
	ErrBadSentinel = grid.ErrSentinel

	// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
	ErrUnknownStrategy = kernel.ErrUnknownStrategy
)
