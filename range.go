// Copyright (c) 2026 The hexentropy developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// uint64n returns a random value in [0,n) drawn from s without modulo bias.
// A limit of 0 is treated as the full 64-bit range.
func uint64n(s Source, n uint64) uint64 {
	if n == 0 {
		return s.Uint64()
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return s.Uint64() & (n - 1)
	}

	// Scale a full-width draw down to [0,n) via the high half of a
	// double-width multiply, rejecting the handful of draws that would
	// bias the result.  The rejection loop almost never runs since the
	// threshold is below n and n is usually far smaller than 2⁶⁴.
	//
	// See:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	// https://lemire.me/blog/2016/06/30/fast-random-shuffling
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}

// IntRange returns a uniform random integer in the closed interval bounded
// by lo and hi, which may be given in either order.  Both bounds must have
// the same integer type; mixed-type bounds do not compile, and promotion to
// a common type is left to the caller since an implicit conversion would
// silently reinterpret negative values as unsigned.
func IntRange[T constraints.Integer](s Source, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	// Two's complement subtraction yields the correct span for signed
	// bounds.  A span of 0 means the interval covers the full 64-bit
	// domain.
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return T(s.Uint64())
	}
	return lo + T(uint64n(s, span))
}

// floatBins is the number of subdivisions used to draw a closed-interval
// fraction.  Drawing from 2⁵³+1 evenly spaced points yields a uniform value
// over [0,1] with both endpoints reachable and every point exactly
// representable as a float64.
const floatBins = 1 << 53

// FloatRange returns a uniform random float in the closed interval bounded
// by lo and hi, which may be given in either order.  Both bounds must have
// the same floating point type.
func FloatRange[T constraints.Float](s Source, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	f := float64(uint64n(s, floatBins+1)) / floatBins
	v := float64(lo) + f*(float64(hi)-float64(lo))
	// Guard against rounding past hi.
	if v > float64(hi) {
		v = float64(hi)
	}
	return T(v)
}

// Choose returns a uniformly selected element from the provided non-empty
// set of candidate values.
// Panics if no values are provided.
func Choose[T any](s Source, items ...T) T {
	if len(items) == 0 {
		panic("random: no items to choose from")
	}
	return items[uint64n(s, uint64(len(items)))]
}

// ShuffleSlice randomizes the order of all elements in the provided slice
// such that every permutation is equally likely.
func ShuffleSlice[T any](s Source, items []T) {
	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := len(items) - 1; i > 0; i-- {
		j := int(uint64n(s, uint64(i+1)))
		items[i], items[j] = items[j], items[i]
	}
}
