package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for index-map validation.
var (
	// ErrIndexRange is returned when an indirection entry would resolve
	// outside its target array.
	ErrIndexRange = errors.New("grid: indirection entry out of range")

	// ErrSentinel is returned when the trailing indinv slot is missing or
	// does not hold ncouls-1.
	ErrSentinel = errors.New("grid: indinv sentinel slot invalid")
)

// IndexMap translates a group-owned point index into a global plane-wave
// column through one level of indirection: igp = Indinv[InvIgpIndex[myIgp]].
//
// Indinv carries one slot beyond ncouls, holding ncouls-1. The extra slot is
// reachable: the synthetic inv_igp_index ramp produces the raw index ncouls
// for its last group point, which lands on the sentinel.
type IndexMap struct {
	// InvIgpIndex maps a group-owned index to a raw global group index.
	// Length ngpown.
	InvIgpIndex []int32

	// Indinv maps a raw index to the final plane-wave column.
	// Length ncouls+1; Indinv[ncouls] == ncouls-1.
	Indinv []int32
}

// Resolve returns the plane-wave column for the group-owned index myIgp.
// Callers must have validated the map; Resolve itself does not re-check.
func (m IndexMap) Resolve(myIgp int) int {
	return int(m.Indinv[m.InvIgpIndex[myIgp]])
}

// Validate checks the map against the documented preconditions: Indinv has
// exactly ncouls+1 entries ending in the ncouls-1 sentinel, every
// InvIgpIndex entry addresses Indinv, and every reachable Indinv entry
// resolves inside [0, ncouls). After a nil-error return, Resolve is safe
// for every myIgp in [0, len(InvIgpIndex)).
func (m IndexMap) Validate(ncouls int) error {
	if len(m.Indinv) != ncouls+1 {
		return fmt.Errorf("%w: len(indinv)=%d want %d", ErrSentinel, len(m.Indinv), ncouls+1)
	}

	if int(m.Indinv[ncouls]) != ncouls-1 {
		return fmt.Errorf("%w: indinv[%d]=%d want %d", ErrSentinel, ncouls, m.Indinv[ncouls], ncouls-1)
	}

	for i, raw := range m.InvIgpIndex {
		if raw < 0 || int(raw) >= len(m.Indinv) {
			return fmt.Errorf("%w: inv_igp_index[%d]=%d outside [0,%d]", ErrIndexRange, i, raw, ncouls)
		}
	}

	for i, igp := range m.Indinv {
		if igp < 0 || int(igp) >= ncouls {
			return fmt.Errorf("%w: indinv[%d]=%d outside [0,%d)", ErrIndexRange, i, igp, ncouls)
		}
	}

	return nil
}
