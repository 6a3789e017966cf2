package modulus

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Dynamic is a modulus chosen at run time over any signed built-in
// integer type. The modulus is set once at construction and never
// changed.
//
// Mul computes x*y in T itself, so the caller must pick a T wide enough
// for M^2; there is no widened intermediate for a generic type. Add is
// overflow-free for any positive M that fits T.
type Dynamic[T constraints.Signed] struct {
	m T
}

// NewDynamic returns the runtime modulus m. Panics unless m > 0.
func NewDynamic[T constraints.Signed](m T) Dynamic[T] {
	if m <= 0 {
		panic("modulus: modulus must be positive")
	}
	return Dynamic[T]{m: m}
}

// Modulus returns M.
func (d Dynamic[T]) Modulus() T { return d.m }

// Rem canonicalizes x into [0, M), including negative x.
func (d Dynamic[T]) Rem(x T) T {
	r := x % d.m
	if r < 0 {
		r += d.m
	}
	return r
}

// Zero returns 0.
func (d Dynamic[T]) Zero() T { return 0 }

// One returns 1 mod M.
func (d Dynamic[T]) One() T { return 1 % d.m }

// Neg returns (M - x) mod M.
func (d Dynamic[T]) Neg(x T) T {
	d.check(x)
	if x == 0 {
		return 0
	}
	return d.m - x
}

// Add returns x + y mod M. Written as x - (M - y) so the intermediate
// stays in (-M, M) and never overflows T.
func (d Dynamic[T]) Add(x, y T) T {
	d.check(x)
	d.check(y)
	z := x - (d.m - y)
	if z < 0 {
		z += d.m
	}
	return z
}

// Sub returns x - y mod M.
func (d Dynamic[T]) Sub(x, y T) T {
	return d.Add(x, d.Neg(y))
}

// Mul returns x * y mod M. The product is taken in T, so M^2 must fit.
func (d Dynamic[T]) Mul(x, y T) T {
	d.check(x)
	d.check(y)
	return (x * y) % d.m
}

// Div returns x * Inv(y).
func (d Dynamic[T]) Div(x, y T) T {
	return d.Mul(x, d.Inv(y))
}

// Pow returns x^n mod M; Pow(x, 0) is One().
func (d Dynamic[T]) Pow(x T, n uint) T {
	d.check(x)
	z := d.One()
	for n != 0 {
		if n&1 != 0 {
			z = d.Mul(z, x)
		}
		x = d.Mul(x, x)
		n >>= 1
	}
	return z
}

// Inv returns the inverse of x mod M via extended Euclid, using T's own
// negation for the Bézout coefficients. Panics if x is zero or
// gcd(x, M) != 1.
func (d Dynamic[T]) Inv(x T) T {
	d.check(x)
	if x == 0 {
		panic("modulus: division by zero occurred")
	}
	s0, s1 := d.m, T(0)
	t0, t1 := x, T(1)
	for t0 != 0 {
		u := s0 / t0
		s0, t0 = t0, s0-u*t0
		s1, t1 = t1, s1-u*t1
	}
	if s0 != 1 {
		panic(fmt.Sprintf("modulus: gcd(%v, %v) = %v, which is not 1", x, d.m, s0))
	}
	if s1 < 0 {
		s1 += d.m
	}
	return s1
}

// IsPrime reports whether M is prime by trial division, the only test a
// generic representation supports without double-width tricks.
func (d Dynamic[T]) IsPrime() bool {
	if d.m == 1 {
		return false
	}
	// i <= M/i avoids the i*i overflow near the top of T's range.
	for i := T(2); i <= d.m/i; i++ {
		if d.m%i == 0 {
			return false
		}
	}
	return true
}

// NewInt wraps x (reduced first) under this modulus.
func (d Dynamic[T]) NewInt(x T) Int[T] {
	return NewInt(x, d)
}

func (d Dynamic[T]) check(x T) {
	if x < 0 || x >= d.m {
		panic(fmt.Sprintf("modulus: operand %v not reduced mod %v", x, d.m))
	}
}
