package kernel

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/exp/constraints"
)

// Strategy selects a reduction implementation.
type Strategy int

const (
	// KernelAuto consults wisdom, then picks KernelParallel for large
	// reductions and KernelFused otherwise.
	KernelAuto Strategy = iota

	// KernelStraight is the sequential reference-order kernel.
	KernelStraight

	// KernelFused is the sequential kernel with the band-invariant factor
	// hoisted out of the plane-wave loop.
	KernelFused

	// KernelParallel partitions bands across workers.
	KernelParallel
)

// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("kernel: unknown strategy")

var strategyNames = map[Strategy]string{
	KernelAuto:     "auto",
	KernelStraight: "straight",
	KernelFused:    "fused",
	KernelParallel: "parallel",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name ("auto", "straight", "fused", "parallel") to a
// Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return KernelAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Run executes the reduction with the given strategy, resolving KernelAuto
// through wisdom and problem size first. It returns the strategy that
// actually ran.
func Run[T constraints.Float](in Input[T], strat Strategy, workers int, achRe, achIm []T) Strategy {
	if strat == KernelAuto {
		strat = resolveAuto(in.NumBands, in.NGPown, in.NCouls)
	}

	switch strat {
	case KernelStraight:
		Straight(in, achRe, achIm)
	case KernelParallel:
		Parallel(in, workers, achRe, achIm)
	default:
		Fused(in, achRe, achIm)
	}

	return strat
}

func resolveAuto(bands, ngpown, ncouls int) Strategy {
	if s, ok := DefaultWisdom.Lookup(Shape{Bands: bands, NGPown: ngpown, NCouls: ncouls}); ok {
		return s
	}

	if bands*ngpown*ncouls >= MinParallelTerms && runtime.GOMAXPROCS(0) > 1 {
		return KernelParallel
	}

	return KernelFused
}
