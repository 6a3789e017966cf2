// Package primesearch locates NTT-friendly primes, i.e. primes p with
// p ≡ 1 (mod nthRoot), which admit a primitive nthRoot-th root of unity
// and therefore a negacyclic or cyclic NTT of that length.
package primesearch

import (
	"fmt"

	"modarith/modulus"
)

// Find returns count distinct primes p ≡ 1 (mod nthRoot) scanning upward
// from 2^bits, testing at most budget candidates. The candidates step
// through the arithmetic progression 1 mod nthRoot, so every hit is in
// the right residue class by construction.
func Find(bits, nthRoot, count, budget int) ([]uint64, error) {
	if bits <= 2 || bits > 61 {
		return nil, fmt.Errorf("primesearch: bits = %d out of range (3..61)", bits)
	}
	if nthRoot <= 0 || count <= 0 || budget <= 0 {
		return nil, fmt.Errorf("primesearch: nthRoot, count and budget must be positive")
	}

	step := uint64(nthRoot)
	base := uint64(1) << uint(bits)

	// First candidate >= 2^bits in the class 1 mod nthRoot.
	candidate := ((base-1)/step+1)*step + 1

	var out []uint64
	for steps := 0; steps < budget && len(out) < count; steps++ {
		if modulus.IsPrime(candidate) {
			out = append(out, candidate)
		}
		if candidate > ^uint64(0)-step {
			break // next step would wrap
		}
		candidate += step
	}
	if len(out) < count {
		return nil, fmt.Errorf("primesearch: found %d/%d primes within budget %d", len(out), count, budget)
	}
	return out, nil
}

// NextPrime returns the smallest prime q > p with q ≡ 1 (mod nthRoot).
// p itself need not be in that residue class.
func NextPrime(p uint64, nthRoot int) (uint64, error) {
	if nthRoot <= 0 {
		return 0, fmt.Errorf("primesearch: nthRoot must be positive")
	}
	step := uint64(nthRoot)
	// Smallest member of the class 1 mod step strictly above p. When step
	// divides p that member is p+1 itself.
	candidate := p/step*step + 1
	if candidate <= p {
		candidate += step
	}
	for {
		if modulus.IsPrime(candidate) {
			return candidate, nil
		}
		if candidate > ^uint64(0)-step {
			return 0, fmt.Errorf("primesearch: no prime ≡ 1 (mod %d) above %d in range", nthRoot, p)
		}
		candidate += step
	}
}
