// Package randutil derives deterministic keyed PRNGs from string labels,
// so property tests and sweeps replay the same stream on every run.
package randutil

import (
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// NewSeeded returns a keyed PRNG seeded with the SHAKE-256 digest of
// label.
func NewSeeded(label string) utils.PRNG {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte(label)); err != nil {
		panic(fmt.Errorf("randutil: write label: %w", err))
	}
	seed := make([]byte, 32)
	if _, err := h.Read(seed); err != nil {
		panic(fmt.Errorf("randutil: read seed: %w", err))
	}
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		panic(fmt.Errorf("randutil: keyed prng: %w", err))
	}
	return prng
}

// Uint64 reads the next 8 bytes of prng as a little-endian uint64.
func Uint64(prng utils.PRNG) uint64 {
	var buf [8]byte
	n, err := prng.Read(buf[:])
	if err != nil {
		panic(fmt.Errorf("randutil: read prng: %w", err))
	}
	if n != len(buf) {
		panic(fmt.Sprintf("randutil: short prng read: %d of %d bytes", n, len(buf)))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Uint64n returns a PRNG value in [0, n). n must be positive. The modulo
// bias is accepted: callers draw for reproducible sampling, not for
// uniformity-critical work.
func Uint64n(prng utils.PRNG, n uint64) uint64 {
	if n == 0 {
		panic("randutil: n must be positive")
	}
	return Uint64(prng) % n
}
