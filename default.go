// Copyright (c) 2026 The hexentropy developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"io"
	"sync"
	"time"
)

// Locked wraps a [Rand] with a mutex so a single facade can be shared across
// goroutines.  Methods that touch engine state acquire the mutex for the
// duration of one call; generic helpers such as [IntRange] that take a
// Locked as their source serialize each underlying draw rather than the
// whole call.
type Locked struct {
	mu sync.Mutex
	r  *Rand
}

// NewLocked returns a mutex-guarded wrapper around the provided facade.  The
// wrapped facade must not be used directly while the wrapper is in use.
func NewLocked(r *Rand) *Locked {
	return &Locked{r: r}
}

// Uint64 returns a raw engine draw, uniform over the closed interval
// [EngineMin, EngineMax].
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Uint64()
}

// Uint32 returns a uniform random uint32.
func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Uint32()
}

// Float64 returns a uniform random float64 in [0,1).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Float64()
}

// Bool returns true with probability p.
// Panics if p is outside [0,1].
func (l *Locked) Bool(p float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Bool(p)
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (l *Locked) Duration(n time.Duration) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Duration(n)
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.r.Shuffle(n, swap)
}

// Perm returns a uniform random permutation of the integers in [0,n).
func (l *Locked) Perm(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Perm(n)
}

// Read fills p with bytes derived from engine draws.  Read never errors.
func (l *Locked) Read(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Read(p)
}

// Seed replaces the engine state deterministically from a single integer
// seed.
func (l *Locked) Seed(seed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.r.Seed(seed)
}

// SeedWords replaces the engine state deterministically from a sequence of
// seed words.
func (l *Locked) SeedWords(words ...uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.r.SeedWords(words...)
}

// Discard advances the engine state as if n draws had been performed without
// retaining any output.
func (l *Locked) Discard(n uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.r.Discard(n)
}

// Min returns the smallest value the engine can produce from Uint64.
func (l *Locked) Min() uint64 { return EngineMin }

// Max returns the largest value the engine can produce from Uint64.
func (l *Locked) Max() uint64 { return EngineMax }

// WriteState writes the engine state to w in the textual form described by
// [Engine.MarshalText].
func (l *Locked) WriteState(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.WriteState(w)
}

// ReadState replaces the engine state with one previously written by
// WriteState.  Malformed input returns an error and leaves the engine state
// unchanged.
func (l *Locked) ReadState(src io.Reader) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.ReadState(src)
}

// globalRand is the process-wide shared facade.
var globalRand = NewLocked(New())

// Shared returns the process-wide facade.  It is seeded once from the
// process CSPRNG at init and is safe for concurrent access.
func Shared() *Locked {
	return globalRand
}

// Uint64 returns a raw draw from the shared engine, uniform over the closed
// interval [EngineMin, EngineMax].
func Uint64() uint64 {
	return globalRand.Uint64()
}

// Uint32 returns a uniform random uint32 from the shared engine.
func Uint32() uint32 {
	return globalRand.Uint32()
}

// Float64 returns a uniform random float64 in [0,1) from the shared engine.
func Float64() float64 {
	return globalRand.Float64()
}

// Bool returns true with probability p using the shared engine.
// Panics if p is outside [0,1].
func Bool(p float64) bool {
	return globalRand.Bool(p)
}

// Duration returns a random duration in [0,n) from the shared engine.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	return globalRand.Duration(n)
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j using the shared engine.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	globalRand.Shuffle(n, swap)
}

// Perm returns a uniform random permutation of the integers in [0,n) from
// the shared engine.
func Perm(n int) []int {
	return globalRand.Perm(n)
}

// Read fills b with bytes derived from shared engine draws.
func Read(b []byte) {
	globalRand.Read(b)
}

// Seed replaces the shared engine state deterministically from a single
// integer seed.
func Seed(seed uint64) {
	globalRand.Seed(seed)
}

// SeedWords replaces the shared engine state deterministically from a
// sequence of seed words.
func SeedWords(words ...uint64) {
	globalRand.SeedWords(words...)
}

// Discard advances the shared engine state as if n draws had been performed
// without retaining any output.
func Discard(n uint64) {
	globalRand.Discard(n)
}

// Min returns the smallest value the shared engine can produce from Uint64.
func Min() uint64 {
	return EngineMin
}

// Max returns the largest value the shared engine can produce from Uint64.
func Max() uint64 {
	return EngineMax
}

// WriteState writes the shared engine state to w in the textual form
// described by [Engine.MarshalText].
func WriteState(w io.Writer) error {
	return globalRand.WriteState(w)
}

// ReadState replaces the shared engine state with one previously written by
// WriteState.  Malformed input returns an error and leaves the engine state
// unchanged.
func ReadState(src io.Reader) error {
	return globalRand.ReadState(src)
}
