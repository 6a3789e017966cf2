package modulus

import "fmt"

// Int pairs a reduced value with the modulus it lives under. All
// arithmetic is delegated to the modulus; the wrapper only checks that
// binary operations combine values under one and the same modulus.
//
// The modulus is held as an interface value and compared with ==, so a
// Modulus implementation stored in an Int must be a comparable type (both
// Static and Dynamic are). Combining two Ints whose moduli differ panics.
type Int[T comparable] struct {
	value   T
	modulus Modulus[T]
}

// NewInt wraps value under m, reducing it first.
func NewInt[T comparable](value T, m Modulus[T]) Int[T] {
	return Int[T]{value: m.Rem(value), modulus: m}
}

// Zero returns 0 under m.
func Zero[T comparable](m Modulus[T]) Int[T] {
	return Int[T]{value: m.Zero(), modulus: m}
}

// One returns 1 under m.
func One[T comparable](m Modulus[T]) Int[T] {
	return Int[T]{value: m.One(), modulus: m}
}

// Value returns the reduced representative in [0, M).
func (a Int[T]) Value() T { return a.value }

// Modulus returns the modulus a lives under.
func (a Int[T]) Modulus() Modulus[T] { return a.modulus }

// Add returns a + b. Panics unless both share the same modulus.
func (a Int[T]) Add(b Int[T]) Int[T] {
	a.checkSameModulus(b)
	return Int[T]{value: a.modulus.Add(a.value, b.value), modulus: a.modulus}
}

// Sub returns a - b. Panics unless both share the same modulus.
func (a Int[T]) Sub(b Int[T]) Int[T] {
	a.checkSameModulus(b)
	return Int[T]{value: a.modulus.Sub(a.value, b.value), modulus: a.modulus}
}

// Mul returns a * b. Panics unless both share the same modulus.
func (a Int[T]) Mul(b Int[T]) Int[T] {
	a.checkSameModulus(b)
	return Int[T]{value: a.modulus.Mul(a.value, b.value), modulus: a.modulus}
}

// Div returns a / b. Panics unless both share the same modulus, or if b
// has no inverse.
func (a Int[T]) Div(b Int[T]) Int[T] {
	a.checkSameModulus(b)
	return Int[T]{value: a.modulus.Div(a.value, b.value), modulus: a.modulus}
}

// AddScalar returns a + x for a raw, possibly unreduced x.
func (a Int[T]) AddScalar(x T) Int[T] {
	return Int[T]{value: a.modulus.Add(a.value, a.modulus.Rem(x)), modulus: a.modulus}
}

// SubScalar returns a - x for a raw, possibly unreduced x.
func (a Int[T]) SubScalar(x T) Int[T] {
	return Int[T]{value: a.modulus.Sub(a.value, a.modulus.Rem(x)), modulus: a.modulus}
}

// MulScalar returns a * x for a raw, possibly unreduced x.
func (a Int[T]) MulScalar(x T) Int[T] {
	return Int[T]{value: a.modulus.Mul(a.value, a.modulus.Rem(x)), modulus: a.modulus}
}

// DivScalar returns a / x for a raw, possibly unreduced x.
func (a Int[T]) DivScalar(x T) Int[T] {
	return Int[T]{value: a.modulus.Div(a.value, a.modulus.Rem(x)), modulus: a.modulus}
}

// Neg returns -a.
func (a Int[T]) Neg() Int[T] {
	return Int[T]{value: a.modulus.Neg(a.value), modulus: a.modulus}
}

// Inv returns the multiplicative inverse of a. Panics if a is zero or
// not coprime with the modulus.
func (a Int[T]) Inv() Int[T] {
	return Int[T]{value: a.modulus.Inv(a.value), modulus: a.modulus}
}

// Pow returns a^n; Pow(0) is one.
func (a Int[T]) Pow(n uint) Int[T] {
	return Int[T]{value: a.modulus.Pow(a.value, n), modulus: a.modulus}
}

// Equal reports whether a and b hold the same value under the same
// modulus.
func (a Int[T]) Equal(b Int[T]) bool {
	return a.modulus == b.modulus && a.value == b.value
}

// String formats the reduced value only, like the plain integer it
// represents.
func (a Int[T]) String() string {
	return fmt.Sprint(a.value)
}

func (a Int[T]) checkSameModulus(b Int[T]) {
	if a.modulus != b.modulus {
		panic("modulus: mod mismatch")
	}
}
