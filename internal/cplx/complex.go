// Package cplx provides the explicit two-component complex scalar used by
// the GPP reduction kernels.
//
// The kernels depend on the exact association order of complex products and
// on realizing division as "multiply by conjugate, scale by reciprocal of
// the squared magnitude". Go's builtin complex128 division does not preserve
// that rounding behavior, so the type is kept explicit.
package cplx

import "golang.org/x/exp/constraints"

// Complex is an immutable complex scalar with separate real and imaginary
// components. At T = float64 a value occupies 16 bytes.
type Complex[T constraints.Float] struct {
	Re T
	Im T
}

// New returns the complex value re + im*i.
func New[T constraints.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Add returns a + b.
func (a Complex[T]) Add(b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a - b.
func (a Complex[T]) Sub(b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns the complex product a * b.
func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Scale returns a scaled by the real factor s, applied to both components.
func (a Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{Re: a.Re * s, Im: a.Im * s}
}

// Conj returns the complex conjugate of a.
func (a Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: a.Re, Im: -a.Im}
}

// Real returns the real component.
func (a Complex[T]) Real() T {
	return a.Re
}

// Imag returns the imaginary component.
func (a Complex[T]) Imag() T {
	return a.Im
}

// SubFromReal returns s - a for a real scalar s. The kernels use this for
// the frequency difference wx - wtilde without materializing a complex wx.
func (a Complex[T]) SubFromReal(s T) Complex[T] {
	return Complex[T]{Re: s - a.Re, Im: -a.Im}
}

// AbsSq returns the squared magnitude Re*Re + Im*Im, computed as the real
// part of a * conj(a) so rounding matches the kernel's denominator.
func (a Complex[T]) AbsSq() T {
	return a.Mul(a.Conj()).Re
}
