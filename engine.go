// Copyright (c) 2026 The hexentropy developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"encoding/binary"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"

	crand "github.com/decred/dcrd/crypto/rand"
)

const (
	// EngineMin is the smallest value an engine can produce from a raw
	// draw.  It is a constant of the engine algorithm, not data dependent.
	EngineMin uint64 = 0

	// EngineMax is the largest value an engine can produce from a raw
	// draw.  It is a constant of the engine algorithm, not data dependent.
	EngineMax uint64 = 1<<64 - 1
)

// goldenRatio64 is the 64-bit golden ratio constant used by splitmix64.
const goldenRatio64 = 0x9e3779b97f4a7c15

// mix is the splitmix64 finalizer.  It is used to expand caller-provided
// seeds into full engine state so that small or nearby seeds still produce
// well-separated states.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// expandSeed folds the provided seed words into the two 64-bit words of
// engine state.  Sequences that differ in any word, or in word order or
// length, produce unrelated states.
func expandSeed(words ...uint64) (hi, lo uint64) {
	hi, lo = goldenRatio64, ^uint64(goldenRatio64)
	for _, w := range words {
		hi = mix(hi ^ w)
		lo = mix(lo ^ mix(w+goldenRatio64))
	}
	return hi, lo
}

// Engine is a deterministic uniform random bit generator backed by a 128-bit
// PCG.  It satisfies the math/rand/v2 Source contract and is the only
// mutable state behind a [Rand] facade: every draw advances it, and seeding,
// discarding, and state restoration replace it.  Engine methods are not safe
// for concurrent access.
//
// NewEngine, NewEngineSeed, or NewEngineSeedWords must be used to create an
// engine since the zero value starts from an all-zero state rather than an
// entropy-derived one.
type Engine struct {
	pcg rand.PCG
}

// NewEngine returns an engine seeded with entropy from the process CSPRNG.
func NewEngine() *Engine {
	e := new(Engine)
	e.Reseed()
	return e
}

// NewEngineSeed returns an engine deterministically seeded from a single
// integer seed.
func NewEngineSeed(seed uint64) *Engine {
	e := new(Engine)
	e.Seed(seed)
	return e
}

// NewEngineSeedWords returns an engine deterministically seeded from a
// multi-word seed sequence.
func NewEngineSeedWords(words ...uint64) *Engine {
	e := new(Engine)
	e.SeedWords(words...)
	return e
}

// Uint64 returns the next raw draw and advances the engine state.  Draws are
// uniform over the closed interval [EngineMin, EngineMax].
func (e *Engine) Uint64() uint64 {
	return e.pcg.Uint64()
}

// Seed replaces the engine state deterministically from a single integer
// seed.  Engines seeded with the same value produce identical output
// sequences.
func (e *Engine) Seed(seed uint64) {
	e.pcg.Seed(expandSeed(seed))
}

// SeedWords replaces the engine state deterministically from a sequence of
// seed words.
func (e *Engine) SeedWords(words ...uint64) {
	e.pcg.Seed(expandSeed(words...))
}

// Reseed replaces the engine state with fresh entropy from the process
// CSPRNG.
func (e *Engine) Reseed() {
	e.pcg.Seed(crand.Uint64(), crand.Uint64())
}

// Min returns the smallest value the engine can produce from Uint64.
func (e *Engine) Min() uint64 { return EngineMin }

// Max returns the largest value the engine can produce from Uint64.
func (e *Engine) Max() uint64 { return EngineMax }

// Discard advances the engine state as if n draws had been performed without
// retaining any output.  It is useful to decorrelate or fast forward
// streams.
func (e *Engine) Discard(n uint64) {
	for i := uint64(0); i < n; i++ {
		e.pcg.Uint64()
	}
}

// state returns the high and low 64-bit words of the engine state.
func (e *Engine) state() (hi, lo uint64) {
	// MarshalBinary on the underlying PCG never errors.  The encoding is
	// a short tag followed by the two big-endian state words.
	b, _ := e.pcg.MarshalBinary()
	hi = binary.BigEndian.Uint64(b[len(b)-16:])
	lo = binary.BigEndian.Uint64(b[len(b)-8:])
	return hi, lo
}

// Equal returns whether both engines have bit-identical internal state and
// will therefore produce identical future output sequences.
func (e *Engine) Equal(other *Engine) bool {
	ehi, elo := e.state()
	ohi, olo := other.state()
	return ehi == ohi && elo == olo
}

// MarshalText implements encoding.TextMarshaler.  The engine state is
// rendered as two base-10 tokens separated by a single space: the high and
// low 64-bit state words.
func (e *Engine) MarshalText() ([]byte, error) {
	hi, lo := e.state()
	return fmt.Appendf(nil, "%d %d", hi, lo), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  It accepts the two
// whitespace-separated base-10 tokens produced by MarshalText.  The text is
// parsed in full before any mutation, so malformed input returns an error
// and leaves the engine state unchanged.
func (e *Engine) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 2 {
		return fmt.Errorf("random: engine state requires 2 tokens, got %d",
			len(fields))
	}
	hi, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return fmt.Errorf("random: parse engine state: %w", err)
	}
	lo, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return fmt.Errorf("random: parse engine state: %w", err)
	}
	e.pcg.Seed(hi, lo)
	return nil
}

// WriteState writes the engine state to w in the textual form described by
// MarshalText.  The tokens are produced directly from the state words, so
// any formatting state carried by w cannot alter them.
func (e *Engine) WriteState(w io.Writer) error {
	text, _ := e.MarshalText()
	if _, err := w.Write(text); err != nil {
		return fmt.Errorf("random: write engine state: %w", err)
	}
	return nil
}

// ReadState replaces the engine state with one previously written by
// WriteState, consuming two whitespace-separated base-10 tokens from r.  The
// tokens are parsed in full before any mutation, so a malformed stream
// returns an error and leaves the engine state unchanged.
func (e *Engine) ReadState(r io.Reader) error {
	var hi, lo uint64
	if _, err := fmt.Fscan(r, &hi, &lo); err != nil {
		return fmt.Errorf("random: read engine state: %w", err)
	}
	e.pcg.Seed(hi, lo)
	return nil
}
