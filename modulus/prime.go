package modulus

import "math/bits"

// mulMod returns a*b mod m through the 128-bit intermediate, so any m and
// any reduced operands are safe.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powMod returns x^e mod m, iterating over the bits of e from least to
// most significant.
func powMod(x, e, m uint64) uint64 {
	z := 1 % m
	x %= m
	for e > 0 {
		if e&1 == 1 {
			z = mulMod(z, x, m)
		}
		x = mulMod(x, x, m)
		e >>= 1
	}
	return z
}

// Witnesses of the deterministic Miller–Rabin instance. The set {2, 7, 61}
// classifies every n below 3,215,031,751 exactly; all predeclared moduli
// sit well inside that range.
var millerRabinWitnesses = [...]uint64{2, 7, 61}

// IsPrime reports whether n is prime, using trial division for the
// trivial cases and deterministic Miller–Rabin otherwise.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	switch n {
	case 2, 7, 61:
		return true
	}
	if n&1 == 0 {
		return false
	}

	// n-1 = d * 2^r with d odd.
	d := n - 1
	r := 0
	for d&1 == 0 {
		d >>= 1
		r++
	}

	for _, a := range millerRabinWitnesses {
		a %= n
		if a == 0 {
			continue
		}
		y := powMod(a, d, n)
		if y == 1 || y == n-1 {
			continue
		}
		composite := true
		for i := 1; i < r; i++ {
			y = mulMod(y, y, n)
			if y == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// PrimeFactors returns the distinct prime factors of n in increasing
// order. n < 2 yields an empty slice.
func PrimeFactors(n uint64) []uint64 {
	var factors []uint64
	if n > 1 && n&1 == 0 {
		factors = append(factors, 2)
		for n&1 == 0 {
			n >>= 1
		}
	}
	for p := uint64(3); p <= n/p; p += 2 {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
