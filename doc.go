// Copyright (c) 2026 The hexentropy developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random provides a convenience facade over a deterministic
// pseudorandom engine and the standard uniform distributions.
//
// The engine is a 128-bit PCG that satisfies the math/rand/v2 Source
// contract.  It is seeded automatically from the process CSPRNG at
// construction and may be reseeded deterministically from a single integer
// or a multi-word seed sequence.  Engine state can be advanced without
// output via [Engine.Discard], compared for bit-identical equality via
// [Engine.Equal], and round-tripped through a textual representation via
// [Engine.WriteState] and [Engine.ReadState].
//
// [Rand] wraps one engine and dispatches draws to the appropriate
// distribution: [Rand.Bool] for Bernoulli booleans, [Rand.Duration] and
// [Rand.Uint64] for direct draws, and the generic helpers [IntRange],
// [FloatRange], [Choose], and [ShuffleSlice] for closed numeric ranges,
// uniform selection, and permutation over any element type.
//
// Three storage strategies are offered for the engine.  The package-level
// functions operate on a single mutex-guarded process-wide facade returned
// by [Shared].  [NewContext] and [FromContext] carry an independently
// seeded facade per task for contention-free concurrent use.  [New] and
// [NewSeeded] return per-instance facades whose methods avoid all locking
// and are therefore not safe for concurrent access.
package random
