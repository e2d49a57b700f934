package algogpp

import (
	"time"

	"github.com/cwbudde/algo-gpp/internal/grid"
	"github.com/cwbudde/algo-gpp/internal/kernel"
)

// Result holds the per-frequency achtemp accumulators produced by one
// Solve call, along with the strategy that ran and the kernel-only wall
// time.
type Result[T Float] struct {
	AchtempRe []T
	AchtempIm []T
	Strategy  Strategy
	Elapsed   time.Duration
}

// Achtemp assembles the complex accumulator for frequency index iw.
func (r *Result[T]) Achtemp(iw int) Complex[T] {
	return NewComplex(r.AchtempRe[iw], r.AchtempIm[iw])
}

// Option configures a Solve call.
type Option func(*solveConfig)

type solveConfig struct {
	strategy Strategy
	workers  int
}

// WithStrategy forces a specific kernel strategy instead of KernelAuto.
func WithStrategy(s Strategy) Option {
	return func(c *solveConfig) { c.strategy = s }
}

// WithWorkers sets the worker count for KernelParallel. Values <= 0 select
// GOMAXPROCS. The partial-sum combination order is fixed for a given
// worker count, so results are reproducible per count.
func WithWorkers(n int) Option {
	return func(c *solveConfig) { c.workers = n }
}

// Solve validates the problem, runs the reduction once and returns the
// per-frequency accumulators. The problem arrays are read-only to the
// kernel; Solve allocates the Result and nothing else.
//
// Numeric degeneracy is not guarded: a plasmon-pole frequency equal to a
// frequency offset yields a zero denominator and Inf/NaN propagate into
// the accumulators rather than being masked.
func Solve[T Float](p *Problem[T], opts ...Option) (*Result[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg := solveConfig{strategy: KernelAuto}
	for _, opt := range opts {
		opt(&cfg)
	}

	wtilde, err := grid.NewArray2D(p.Wtilde, p.NGPown, p.NCouls)
	if err != nil {
		return nil, err
	}

	ieps, err := grid.NewArray2D(p.IEps, p.NGPown, p.NCouls)
	if err != nil {
		return nil, err
	}

	aqsm, err := grid.NewArray2D(p.Aqsmtemp, p.NumBands, p.NCouls)
	if err != nil {
		return nil, err
	}

	aqsn, err := grid.NewArray2D(p.Aqsntemp, p.NumBands, p.NCouls)
	if err != nil {
		return nil, err
	}

	in := kernel.Input[T]{
		NumBands: p.NumBands,
		NGPown:   p.NGPown,
		NCouls:   p.NCouls,
		NW:       p.NW,
		Wx:       p.Wx,
		Map:      grid.IndexMap{InvIgpIndex: p.InvIgpIndex, Indinv: p.Indinv},
		Vcoul:    p.Vcoul,
		Wtilde:   wtilde,
		IEps:     ieps,
		Aqsm:     aqsm,
		Aqsn:     aqsn,
	}

	res := &Result[T]{
		AchtempRe: make([]T, p.NW),
		AchtempIm: make([]T, p.NW),
	}

	start := time.Now()
	res.Strategy = kernel.Run(in, cfg.strategy, cfg.workers, res.AchtempRe, res.AchtempIm)
	res.Elapsed = time.Since(start)

	return res, nil
}
