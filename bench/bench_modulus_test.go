package bench

import (
	"testing"

	"modarith/modulus"
)

var sinkU64 uint64

func BenchmarkStaticMul(b *testing.B) {
	s := modulus.Mod998244353
	x, y := uint64(123456789), uint64(987654321%998244353)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = s.Mul(x, y)
	}
	sinkU64 = x
}

func BenchmarkStaticInv(b *testing.B) {
	s := modulus.Mod998244353
	x := uint64(123456789)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU64 = s.Inv(x)
	}
}

func BenchmarkStaticPow(b *testing.B) {
	s := modulus.Mod998244353
	n := uint(s.Modulus() - 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU64 = s.Pow(123456789, n)
	}
}

func BenchmarkDynamicMul(b *testing.B) {
	d := modulus.NewDynamic[int64](998244353)
	x, y := int64(123456789), int64(987654321%998244353)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = d.Mul(x, y)
	}
	sinkU64 = uint64(x)
}

func BenchmarkIsPrime64(b *testing.B) {
	var r bool
	for i := 0; i < b.N; i++ {
		r = modulus.IsPrime(18446744073709551557)
	}
	if !r {
		b.Fatal("2^64 - 59 is prime")
	}
}

func BenchmarkPrimitiveRootSearch(b *testing.B) {
	// Not in the lookup table, so every iteration factors M-1 and runs
	// the generator search.
	s := modulus.NewStatic(1000000007)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU64 = s.PrimitiveRoot()
	}
}
