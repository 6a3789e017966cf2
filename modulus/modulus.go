// Package modulus implements exact modular arithmetic over a single
// positive modulus M. A Modulus owns all arithmetic semantics; the Int
// wrapper only pairs a reduced value with its modulus and dispatches.
//
// Two strategies are provided: Static, fixed at construction over uint64
// with a 128-bit multiply-reduce intermediate, and Dynamic, chosen at run
// time over any signed built-in integer type.
//
// Every operation except Rem requires its operands to already be reduced,
// i.e. 0 <= x < M. Violating a precondition (unreduced operand, inverse of
// zero or of a non-unit, mixing values under different moduli) is a
// programming error and panics; none of these conditions is recoverable.
package modulus

// Modulus describes a positive modulus M together with arithmetic on
// values reduced mod M. All operations return reduced values.
type Modulus[T any] interface {
	// Modulus returns M.
	Modulus() T

	// Rem reduces x into [0, M). The only operation whose input need
	// not already be reduced.
	Rem(x T) T

	// Zero returns 0, One returns 1 mod M.
	Zero() T
	One() T

	// Neg returns (M - x) mod M.
	Neg(x T) T

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T

	// Div returns x * Inv(y). Panics if y is zero or not coprime with M.
	Div(x, y T) T

	// Pow returns x^n by square-and-multiply; Pow(x, 0) is One().
	Pow(x T, n uint) T

	// Inv returns the multiplicative inverse of x. Panics if x is zero
	// or gcd(x, M) != 1.
	Inv(x T) T

	// IsPrime reports whether M is prime.
	IsPrime() bool
}
