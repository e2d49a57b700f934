// Package kernel implements the GPP achtemp reduction: for every
// (band, group-point, plane-wave, frequency) tuple a complex correction
// term is computed and accumulated into one complex sum per frequency.
//
// The straight kernel is the reference: it reproduces the exact iteration
// and association order of the sequential formulation, so its output is
// bit-deterministic and anchors the tolerance comparisons for the fused and
// parallel variants.
package kernel

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-gpp/internal/cplx"
	"github.com/cwbudde/algo-gpp/internal/grid"
)

// Input bundles the validated, read-only inputs of one reduction. The
// kernels perform no allocation and no checking; callers validate shapes
// and the index map before handing an Input over.
type Input[T constraints.Float] struct {
	NumBands int // bands, outermost loop
	NGPown   int // group-owned points
	NCouls   int // plane waves
	NW       int // frequency points, length of Wx and the accumulators

	Wx    []T           // frequency offsets, len NW
	Map   grid.IndexMap // group point -> plane-wave column
	Vcoul []T           // Coulomb scaling, len NCouls

	Wtilde grid.Array2D[cplx.Complex[T]] // NGPown × NCouls
	IEps   grid.Array2D[cplx.Complex[T]] // NGPown × NCouls
	Aqsm   grid.Array2D[cplx.Complex[T]] // NumBands × NCouls
	Aqsn   grid.Array2D[cplx.Complex[T]] // NumBands × NCouls
}

// Straight runs the reduction in reference order, adding into achRe/achIm
// (len NW each, zeroed by the caller).
//
// Per innermost step, with w = wtilde(my_igp, ig):
//
//	wdiff = wx[iw] - w
//	delw  = w * conj(wdiff) * (1 / real(wdiff * conj(wdiff)))
//	sch   = delw * ieps(my_igp, ig) * conj(aqsm(n1, igp)) * aqsn(n1, igp) * 0.5 * vcoul[igp]
//
// The scalar reciprocal is computed first and multiplied into the complex
// product; a zero denominator propagates Inf/NaN unguarded.
func Straight[T constraints.Float](in Input[T], achRe, achIm []T) {
	for n1 := 0; n1 < in.NumBands; n1++ {
		for myIgp := 0; myIgp < in.NGPown; myIgp++ {
			// Loop-invariant across ig and iw: hoisted lookups only,
			// the arithmetic below stays in per-term order.
			igp := in.Map.Resolve(myIgp)
			aqsmConj := in.Aqsm.At(n1, igp).Conj()
			aqsn := in.Aqsn.At(n1, igp)
			vc := in.Vcoul[igp]
			wrow := in.Wtilde.Row(myIgp)
			erow := in.IEps.Row(myIgp)

			for ig := 0; ig < in.NCouls; ig++ {
				w := wrow[ig]
				eps := erow[ig]

				for iw := 0; iw < in.NW; iw++ {
					wdiff := w.SubFromReal(in.Wx[iw])
					delw := w.Mul(wdiff.Conj()).Scale(1 / wdiff.AbsSq())
					sch := delw.Mul(eps).Mul(aqsmConj).Mul(aqsn).Scale(0.5).Scale(vc)

					achRe[iw] += sch.Re
					achIm[iw] += sch.Im
				}
			}
		}
	}
}
