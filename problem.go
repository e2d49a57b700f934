package algogpp

import (
	"fmt"

	"github.com/cwbudde/algo-gpp/internal/grid"
)

// NumFreq is the width of the frequency window. The GPP correction is
// evaluated at three frequency offsets.
const NumFreq = 3

// Problem bundles all inputs of one achtemp reduction. The backing slices
// are allocated once (NewProblem) and read-only to the kernel; Solve
// mutates nothing but the accumulators in its Result.
//
// Array layout is flat row-major: Wtilde and IEps are NGPown×NCouls,
// Aqsmtemp and Aqsntemp are NumBands×NCouls, addressed as r*NCouls + c.
type Problem[T Float] struct {
	NumBands int // electronic bands
	NGPown   int // group-owned reciprocal-space points
	NCouls   int // plane waves
	NW       int // frequency points, normally NumFreq

	// InvIgpIndex maps a group-owned index to a raw global group index
	// (len NGPown). Indinv maps a raw index to the final plane-wave column
	// (len NCouls+1, Indinv[NCouls] == NCouls-1).
	InvIgpIndex []int32
	Indinv      []int32

	Wx    []T // frequency offsets, len NW
	Vcoul []T // Coulomb scaling per plane wave, len NCouls

	Wtilde   []Complex[T] // plasmon-pole frequencies, NGPown×NCouls
	IEps     []Complex[T] // dielectric screening, NGPown×NCouls
	Aqsmtemp []Complex[T] // wavefunction overlaps, NumBands×NCouls
	Aqsntemp []Complex[T] // wavefunction overlaps, NumBands×NCouls
}

// NewProblem allocates a problem with all backing slices sized for the
// given dimensions and NW = NumFreq. The caller fills the arrays before
// Solve; the indinv sentinel slot is pre-set.
func NewProblem[T Float](numBands, ngpown, ncouls int) *Problem[T] {
	p := &Problem[T]{
		NumBands:    numBands,
		NGPown:      ngpown,
		NCouls:      ncouls,
		NW:          NumFreq,
		InvIgpIndex: make([]int32, ngpown),
		Indinv:      make([]int32, ncouls+1),
		Wx:          make([]T, NumFreq),
		Vcoul:       make([]T, ncouls),
		Wtilde:      make([]Complex[T], ngpown*ncouls),
		IEps:        make([]Complex[T], ngpown*ncouls),
		Aqsmtemp:    make([]Complex[T], numBands*ncouls),
		Aqsntemp:    make([]Complex[T], numBands*ncouls),
	}

	if ncouls > 0 {
		p.Indinv[ncouls] = int32(ncouls - 1)
	}

	return p
}

// MemFootprint returns the size in bytes of the problem's backing arrays.
func (p *Problem[T]) MemFootprint() uint64 {
	var t T

	scalar := uint64(1)
	switch any(t).(type) {
	case float32:
		scalar = 4
	case float64:
		scalar = 8
	}

	complexN := uint64(len(p.Wtilde) + len(p.IEps) + len(p.Aqsmtemp) + len(p.Aqsntemp))
	scalarN := uint64(len(p.Wx) + len(p.Vcoul))
	indexN := uint64(len(p.InvIgpIndex) + len(p.Indinv))

	return complexN*2*scalar + scalarN*scalar + indexN*4
}

// Validate checks every documented precondition: positive sizes, non-nil
// slices, lengths matching the dimensions, and the index-indirection
// invariants (sentinel slot, entries resolving inside [0, NCouls)). The
// kernels run check-free after a nil-error return.
func (p *Problem[T]) Validate() error {
	if p.NumBands < 0 || p.NGPown < 0 || p.NCouls <= 0 || p.NW <= 0 {
		return fmt.Errorf("%w: bands=%d ngpown=%d ncouls=%d nw=%d",
			ErrInvalidSize, p.NumBands, p.NGPown, p.NCouls, p.NW)
	}

	for name, s := range map[string]int{
		"inv_igp_index": len(p.InvIgpIndex),
		"indinv":        len(p.Indinv),
		"wx_array":      len(p.Wx),
		"vcoul":         len(p.Vcoul),
		"wtilde_array":  len(p.Wtilde),
		"i_eps_array":   len(p.IEps),
		"aqsmtemp":      len(p.Aqsmtemp),
		"aqsntemp":      len(p.Aqsntemp),
	} {
		if s == 0 && p.minLen(name) > 0 {
			return fmt.Errorf("%w: %s", ErrNilSlice, name)
		}

		if s != p.minLen(name) {
			return fmt.Errorf("%w: %s has %d elements, want %d", ErrLengthMismatch, name, s, p.minLen(name))
		}
	}

	m := grid.IndexMap{InvIgpIndex: p.InvIgpIndex, Indinv: p.Indinv}

	return m.Validate(p.NCouls)
}

// minLen returns the required length of a named input slice.
func (p *Problem[T]) minLen(name string) int {
	switch name {
	case "inv_igp_index":
		return p.NGPown
	case "indinv":
		return p.NCouls + 1
	case "wx_array":
		return p.NW
	case "vcoul":
		return p.NCouls
	case "wtilde_array", "i_eps_array":
		return p.NGPown * p.NCouls
	default:
		return p.NumBands * p.NCouls
	}
}
