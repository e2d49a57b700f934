package algogpp

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-gpp/internal/cplx"
	"github.com/cwbudde/algo-gpp/internal/kernel"
)

// Float is the type constraint for the scalar precision of a problem.
type Float = constraints.Float

// Complex is the two-component complex scalar used throughout the kernels.
// The canonical definition is in internal/cplx.
type Complex[T Float] = cplx.Complex[T]

// NewComplex returns the complex value re + im*i.
func NewComplex[T Float](re, im T) Complex[T] {
	return cplx.New(re, im)
}

// Strategy selects a reduction implementation.
type Strategy = kernel.Strategy

// Available strategies.
const (
	// KernelAuto consults wisdom, then picks by problem size.
	KernelAuto = kernel.KernelAuto

	// KernelStraight is the sequential reference-order kernel. Its output
	// is bit-deterministic and anchors all tolerance comparisons.
	KernelStraight = kernel.KernelStraight

	// KernelFused hoists the band-invariant factor out of the plane-wave
	// loop; sequential, agrees with KernelStraight within rounding.
	KernelFused = kernel.KernelFused

	// KernelParallel partitions bands across workers with a deterministic
	// partial-sum combination order.
	KernelParallel = kernel.KernelParallel
)

// ParseStrategy maps a name ("auto", "straight", "fused", "parallel") to a
// Strategy.
func ParseStrategy(name string) (Strategy, error) {
	return kernel.ParseStrategy(name)
}
