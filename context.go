// Copyright (c) 2026 The hexentropy developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import "context"

// randContextKey is the context key for a task-local facade.
type randContextKey struct{}

// NewContext returns a copy of ctx carrying r as the task-local facade.
// Installing an independently seeded facade at the root of each concurrent
// task gives every task its own engine with no cross-task contention.  No
// reproducibility across tasks is implied.
func NewContext(ctx context.Context, r *Rand) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, randContextKey{}, r)
}

// FromContext returns the facade carried by ctx, or nil when ctx carries
// none.
func FromContext(ctx context.Context) *Rand {
	if ctx == nil {
		return nil
	}
	r, _ := ctx.Value(randContextKey{}).(*Rand)
	return r
}
