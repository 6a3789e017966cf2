package modulus

import (
	"fmt"
	"math/bits"
)

// Static is a modulus fixed once at construction, operating on uint64
// values with 128-bit multiply-reduce intermediates. The zero Static is
// invalid; always construct through NewStatic or a predeclared instance.
//
// Inv (and therefore Div) runs extended Euclid on signed 64-bit
// coefficient pairs, so it requires M < 2^63. The remaining operations
// accept any positive M.
type Static struct {
	m uint64
}

// Common NTT-friendly and competitive-programming moduli.
var (
	Mod65537      = NewStatic(65537)
	Mod167772161  = NewStatic(167772161)
	Mod469762049  = NewStatic(469762049)
	Mod754974721  = NewStatic(754974721)
	Mod998244353  = NewStatic(998244353)
	Mod1000000007 = NewStatic(1000000007)
)

// NewStatic returns the fixed modulus m. Panics if m is zero.
func NewStatic(m uint64) Static {
	if m == 0 {
		panic("modulus: modulus must be positive")
	}
	return Static{m: m}
}

// Modulus returns M.
func (s Static) Modulus() uint64 { return s.m }

// Rem reduces x into [0, M).
func (s Static) Rem(x uint64) uint64 { return x % s.m }

// Zero returns 0.
func (s Static) Zero() uint64 { return 0 }

// One returns 1 mod M.
func (s Static) One() uint64 { return 1 % s.m }

// Neg returns (M - x) mod M.
func (s Static) Neg(x uint64) uint64 {
	s.check(x)
	if x == 0 {
		return 0
	}
	return s.m - x
}

// Add returns x + y mod M by conditional subtraction; the carry bit keeps
// moduli above 2^63 exact.
func (s Static) Add(x, y uint64) uint64 {
	s.check(x)
	s.check(y)
	z, c := bits.Add64(x, y, 0)
	if c == 1 || z >= s.m {
		z -= s.m
	}
	return z
}

// Sub returns x - y mod M.
func (s Static) Sub(x, y uint64) uint64 {
	return s.Add(x, s.Neg(y))
}

// Mul returns x * y mod M through the 128-bit intermediate.
func (s Static) Mul(x, y uint64) uint64 {
	s.check(x)
	s.check(y)
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi, lo, s.m)
	return rem
}

// Div returns x * Inv(y).
func (s Static) Div(x, y uint64) uint64 {
	return s.Mul(x, s.Inv(y))
}

// Pow returns x^n mod M; Pow(x, 0) is One().
func (s Static) Pow(x uint64, n uint) uint64 {
	return s.PowUint64(x, uint64(n))
}

// PowUint64 is Pow with a 64-bit exponent, independent of the platform
// width of uint. Exponents derived from the modulus itself (Fermat,
// subgroup orders) need this on 32-bit targets.
func (s Static) PowUint64(x, n uint64) uint64 {
	s.check(x)
	z := s.One()
	for n != 0 {
		if n&1 != 0 {
			z = s.Mul(z, x)
		}
		x = s.Mul(x, x)
		n >>= 1
	}
	return z
}

// Inv returns the inverse of x mod M via extended Euclid on (M, x).
// Panics if x is zero or gcd(x, M) != 1.
func (s Static) Inv(x uint64) uint64 {
	s.check(x)
	if x == 0 {
		panic("modulus: division by zero occurred")
	}
	// Bézout coefficients go negative mid-loop, hence the signed pairs.
	// Their magnitude stays below M, so int64 is wide enough for M < 2^63.
	s0, s1 := int64(s.m), int64(0)
	t0, t1 := int64(x), int64(1)
	for t0 != 0 {
		u := s0 / t0
		s0, t0 = t0, s0-u*t0
		s1, t1 = t1, s1-u*t1
	}
	if s0 != 1 {
		panic(fmt.Sprintf("modulus: gcd(%d, %d) = %d, which is not 1", x, s.m, s0))
	}
	if s1 < 0 {
		s1 += int64(s.m)
	}
	return uint64(s1)
}

// IsPrime reports whether M is prime (deterministic Miller–Rabin).
func (s Static) IsPrime() bool { return IsPrime(s.m) }

// Roots of the moduli every NTT user reaches for first; looked up before
// factoring M-1.
var knownPrimitiveRoots = map[uint64]uint64{
	2:         1,
	65537:     3,
	167772161: 3,
	469762049: 3,
	754974721: 11,
	998244353: 3,
}

// PrimitiveRoot returns a generator of the multiplicative group mod M.
// M must be prime; a composite modulus panics.
func (s Static) PrimitiveRoot() uint64 {
	if g, ok := knownPrimitiveRoots[s.m]; ok {
		return g
	}
	if !s.IsPrime() {
		panic(fmt.Sprintf("modulus: primitive root of non-prime modulus %d", s.m))
	}
	// g generates the full group of order M-1 iff g^((M-1)/p) != 1 for
	// every prime factor p of M-1.
	factors := PrimeFactors(s.m - 1)
	for g := uint64(2); ; g++ {
		ok := true
		for _, p := range factors {
			if powMod(g, (s.m-1)/p, s.m) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}
}

// NewInt wraps x (reduced first) under this modulus.
func (s Static) NewInt(x uint64) Int[uint64] {
	return NewInt(x, s)
}

func (s Static) check(x uint64) {
	if x >= s.m {
		panic(fmt.Sprintf("modulus: operand %d not reduced mod %d", x, s.m))
	}
}
