// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twiddle

import (
	"reflect"
	"sync"

	"github.com/splitfft/ctlfft/splitz"
)

// registry tracks refcounted Stores for one precision, keyed by size. Go
// generics cannot key a single package-level map by type parameter, so each
// instantiation of Get[F] resolves its own *registry[F] out of a type-keyed
// map of `any`, guarded by a single mutex — see DESIGN.md.
type registry[F splitz.Float] struct {
	mu      sync.Mutex
	entries map[int]*entry[F]
}

type entry[F splitz.Float] struct {
	store *Store[F]
	refs  int
}

var (
	registriesMu sync.Mutex
	registries   = map[reflect.Type]any{}
)

func registryFor[F splitz.Float]() *registry[F] {
	var zero F
	t := reflect.TypeOf(zero)

	registriesMu.Lock()
	defer registriesMu.Unlock()

	if r, ok := registries[t]; ok {
		return r.(*registry[F])
	}
	r := &registry[F]{entries: make(map[int]*entry[F])}
	registries[t] = r
	return r
}

// Get returns the shared twiddle Store for size n, creating it on first
// request and incrementing its reference count on every subsequent one. n
// must be a power of two. Callers must pair every Get with a Release.
func Get[F splitz.Float](n int) *Store[F] {
	if n <= 0 || n&(n-1) != 0 {
		panic("twiddle: Get requires a power-of-two size")
	}
	r := registryFor[F]()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[n]
	if !ok {
		e = &entry[F]{store: newStore[F](n)}
		r.entries[n] = e
	}
	e.refs++
	return e.store
}

// Release decrements s's reference count, freeing it from the registry once
// the count reaches zero. Releasing a Store not obtained from Get, or
// releasing the same Store more times than it was obtained, panics.
func Release[F splitz.Float](s *Store[F]) {
	r := registryFor[F]()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[s.n]
	if !ok || e.store != s {
		panic("twiddle: Release called on a Store not tracked by the registry")
	}
	e.refs--
	if e.refs < 0 {
		panic("twiddle: Release called more times than Get")
	}
	if e.refs == 0 {
		delete(r.entries, s.n)
	}
}
