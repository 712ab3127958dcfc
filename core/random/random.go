// Package random supplies the entropy every stochastic pipeline decision
// draws from. Each decision consumes exactly one Float, so a recorded
// sequence of floats replays a run exactly.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Source yields floats in [0, 1).
type Source interface {
	Float() float64
}

// Between maps one draw from src onto the inclusive range [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(math.Floor(src.Float()*float64(hi-lo+1)))
	if n > hi {
		return hi
	}
	return n
}

// D100 draws a percentile roll in [1, 100].
func D100(src Source) int {
	return Between(src, 1, 100)
}

// PRNG is a seeded PCG generator. It is not safe for concurrent use; give
// each run its own.
type PRNG struct {
	seed uint64
	r    *rand.Rand
}

// NewSeeded returns a generator that always yields the same stream for seed.
func NewSeeded(seed uint64) *PRNG {
	return &PRNG{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewUnseeded draws a seed from crypto/rand. Seed reports it so the run can
// be reproduced later.
func NewUnseeded() *PRNG {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return NewSeeded(uint64(rand.Uint64()))
	}
	return NewSeeded(binary.LittleEndian.Uint64(buf[:]))
}

// Seed returns the seed the generator was built from.
func (p *PRNG) Seed() uint64 {
	return p.seed
}

// Float implements Source
func (p *PRNG) Float() float64 {
	return p.r.Float64()
}
