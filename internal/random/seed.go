// Package random provides seeding helpers for the launch randomness.
//
// Matches draw their launch directions and vertical speeds from a
// math/rand/v2 generator. The seed comes from crypto/rand unless one is
// configured, which makes a whole match reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a PCG-backed generator for the given seed.
func New(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// FromConfig returns a generator seeded with seed, or with a fresh crypto
// seed when seed is zero. The seed actually used is returned for logging.
func FromConfig(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		fresh, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = fresh
	}
	return New(seed), seed, nil
}
