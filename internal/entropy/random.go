// Package entropy provides the engine-owned random source.
// A Source is deterministic for a given seed; every stochastic decision in the
// simulation draws from one Source, so operation ordering fully determines the
// outcome sequence.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Source wraps a seeded PRNG behind a mutex. The simulation engine itself is
// single-threaded, but a Source may be shared by API sessions created from the
// same base seed.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a deterministic source from the given seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewUnseeded creates a source seeded from crypto/rand. Outcomes are not
// reproducible; use NewSource for deterministic runs.
func NewUnseeded() *Source {
	return NewSource(CryptoSeed())
}

// Float returns a uniform float64 in [0, 1).
func (s *Source) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// IntBetween returns a uniform int in [lo, hi], inclusive on both ends.
// Panics if hi < lo.
func (s *Source) IntBetween(lo, hi int) int {
	if hi < lo {
		panic("entropy: IntBetween bounds inverted")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Intn(hi-lo+1)
}

// CryptoSeed derives a seed from the OS entropy pool.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; a fixed seed at
		// least keeps the process alive.
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}
