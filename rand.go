// Copyright (c) 2026 The hexentropy developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"encoding/binary"
	"io"
	rand "math/rand/v2"
	"time"
)

// Source is the minimal uniform random bit generator contract the
// distribution helpers draw from.  *Engine, *Rand, and *Locked all satisfy
// it, as does any math/rand/v2 source.
type Source interface {
	Uint64() uint64
}

// Rand is a convenience facade over a single [Engine].  Draws are dispatched
// to the standard math/rand/v2 distributions and introspection calls pass
// through to the engine.  Distribution objects are transient per call; the
// engine is the only persisted mutable state.
//
// Rand methods are not safe for concurrent access.  See [Shared] for the
// mutex-guarded process-wide facade and [NewContext] for per-task storage.
type Rand struct {
	eng  *Engine
	dist *rand.Rand
}

// New returns a facade over a fresh engine seeded with entropy from the
// process CSPRNG.
func New() *Rand {
	return NewFromEngine(NewEngine())
}

// NewSeeded returns a facade over a fresh engine deterministically seeded
// from the provided value.
func NewSeeded(seed uint64) *Rand {
	return NewFromEngine(NewEngineSeed(seed))
}

// NewFromEngine returns a facade drawing from the provided engine.  The
// engine is referenced rather than copied, so draws through the facade
// advance it.
func NewFromEngine(e *Engine) *Rand {
	return &Rand{eng: e, dist: rand.New(e)}
}

// Engine returns the engine the facade draws from.
func (r *Rand) Engine() *Engine { return r.eng }

// Uint64 returns a raw engine draw, uniform over the closed interval
// [EngineMin, EngineMax].
func (r *Rand) Uint64() uint64 {
	return r.eng.Uint64()
}

// Uint32 returns a uniform random uint32.
func (r *Rand) Uint32() uint32 {
	return r.dist.Uint32()
}

// Float64 returns a uniform random float64 in [0,1).
func (r *Rand) Float64() float64 {
	return r.dist.Float64()
}

// Bool returns true with probability p.
// Panics if p is outside [0,1].
func (r *Rand) Bool(p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic("random: invalid probability to Bool")
	}
	return r.dist.Float64() < p
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (r *Rand) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("random: invalid argument to Duration")
	}
	return time.Duration(r.dist.Int64N(int64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.  Every permutation is equally likely.
// Panics if n < 0.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.dist.Shuffle(n, swap)
}

// Perm returns a uniform random permutation of the integers in [0,n).
func (r *Rand) Perm(n int) []int {
	return r.dist.Perm(n)
}

// Read fills p with bytes derived from engine draws.  Read never errors.
func (r *Rand) Read(p []byte) (n int, err error) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.eng.Uint64())
		p = p[8:]
		n += 8
	}
	if len(p) > 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], r.eng.Uint64())
		n += copy(p, b[:len(p)])
	}
	return n, nil
}

// Seed replaces the engine state deterministically from a single integer
// seed.
func (r *Rand) Seed(seed uint64) {
	r.eng.Seed(seed)
}

// SeedWords replaces the engine state deterministically from a sequence of
// seed words.
func (r *Rand) SeedWords(words ...uint64) {
	r.eng.SeedWords(words...)
}

// Discard advances the engine state as if n draws had been performed without
// retaining any output.
func (r *Rand) Discard(n uint64) {
	r.eng.Discard(n)
}

// Min returns the smallest value the engine can produce from Uint64.
func (r *Rand) Min() uint64 { return r.eng.Min() }

// Max returns the largest value the engine can produce from Uint64.
func (r *Rand) Max() uint64 { return r.eng.Max() }

// Equal returns whether both facades draw from engines with bit-identical
// internal state.
func (r *Rand) Equal(other *Rand) bool {
	return r.eng.Equal(other.eng)
}

// WriteState writes the engine state to w in the textual form described by
// [Engine.MarshalText].
func (r *Rand) WriteState(w io.Writer) error {
	return r.eng.WriteState(w)
}

// ReadState replaces the engine state with one previously written by
// WriteState.  Malformed input returns an error and leaves the engine state
// unchanged.
func (r *Rand) ReadState(src io.Reader) error {
	return r.eng.ReadState(src)
}
