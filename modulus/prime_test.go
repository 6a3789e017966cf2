package modulus

import (
	"reflect"
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"

	"modarith/internal/randutil"
)

func TestIsPrimeBoundary(t *testing.T) {
	cases := []struct {
		n     uint64
		prime bool
	}{
		{0, false}, {1, false}, {2, true}, {3, true}, {4, false},
		{7, true}, {61, true}, {2047, false}, // strong pseudoprime base 2
		{65537, true}, {998244353, true},
		{1000000007, true}, {1000000008, false},
		{18446744073709551557, true}, // 2^64 - 59
	}
	for _, c := range cases {
		if got := IsPrime(c.n); got != c.prime {
			t.Fatalf("IsPrime(%d) = %v, want %v", c.n, got, c.prime)
		}
	}
}

// ring.IsPrime is the trusted reference. The sweep stays below the proven
// bound of the {2, 7, 61} witness set.
func TestIsPrimeMatchesReference(t *testing.T) {
	for n := uint64(3); n < 10000; n += 2 {
		if got, want := IsPrime(n), ring.IsPrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, reference says %v", n, got, want)
		}
	}
	prng := randutil.NewSeeded("prime/reference")
	for i := 0; i < 2000; i++ {
		n := randutil.Uint64n(prng, 1<<31) | 1
		if got, want := IsPrime(n), ring.IsPrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, reference says %v", n, got, want)
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	cases := []struct {
		n    uint64
		want []uint64
	}{
		{0, nil},
		{1, nil},
		{2, []uint64{2}},
		{60, []uint64{2, 3, 5}},
		{1 << 32, []uint64{2}},
		{998244352, []uint64{2, 7, 17}},
		{1000000006, []uint64{2, 500000003}},
		{1000000007, []uint64{1000000007}},
	}
	for _, c := range cases {
		if got := PrimeFactors(c.n); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("PrimeFactors(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

// Every factor returned is prime, and dividing them all out plus their
// multiplicities reconstructs n.
func TestPrimeFactorsComplete(t *testing.T) {
	prng := randutil.NewSeeded("prime/factors")
	for i := 0; i < 200; i++ {
		n := 2 + randutil.Uint64n(prng, 1<<40)
		rest := n
		for _, p := range PrimeFactors(n) {
			if !IsPrime(p) {
				t.Fatalf("PrimeFactors(%d) contains composite %d", n, p)
			}
			if rest%p != 0 {
				t.Fatalf("PrimeFactors(%d) contains non-factor %d", n, p)
			}
			for rest%p == 0 {
				rest /= p
			}
		}
		if rest != 1 {
			t.Fatalf("PrimeFactors(%d) incomplete, leftover %d", n, rest)
		}
	}
}
