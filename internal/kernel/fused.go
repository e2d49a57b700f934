package kernel

import "golang.org/x/exp/constraints"

// Fused runs the reduction with the band-invariant factor
// conj(aqsm) * aqsn * 0.5 * vcoul[igp] folded into a single complex value
// per (band, group point), leaving one complex multiply and one scale in
// the innermost step. The association order differs from Straight, so
// results agree within rounding, not bit-exactly.
func Fused[T constraints.Float](in Input[T], achRe, achIm []T) {
	fusedRange(in, 0, in.NumBands, achRe, achIm)
}

// fusedRange reduces bands [lo, hi). The parallel kernel reuses it per
// chunk with private accumulators.
func fusedRange[T constraints.Float](in Input[T], lo, hi int, achRe, achIm []T) {
	for n1 := lo; n1 < hi; n1++ {
		for myIgp := 0; myIgp < in.NGPown; myIgp++ {
			igp := in.Map.Resolve(myIgp)
			pre := in.Aqsm.At(n1, igp).Conj().Mul(in.Aqsn.At(n1, igp)).Scale(0.5).Scale(in.Vcoul[igp])
			wrow := in.Wtilde.Row(myIgp)
			erow := in.IEps.Row(myIgp)

			for ig := 0; ig < in.NCouls; ig++ {
				w := wrow[ig]
				eps := erow[ig]

				for iw := 0; iw < in.NW; iw++ {
					wdiff := w.SubFromReal(in.Wx[iw])
					delw := w.Mul(wdiff.Conj()).Scale(1 / wdiff.AbsSq())
					sch := delw.Mul(eps).Mul(pre)

					achRe[iw] += sch.Re
					achIm[iw] += sch.Im
				}
			}
		}
	}
}
