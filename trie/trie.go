// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package trie implements a trie resolving names against literal keys and make style
// patterns with a single '%' wildcard. An exact match always wins. Otherwise the
// longest matching pattern is chosen and ties are resolved in favor of the pattern
// pushed first.
//
// A Trie is not safe for concurrent use. Results returned by Find and FindAll are
// owned by the trie and only valid until the next call on it.
package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"unsafe"

	"github.com/ccoveille/go-safecast"
	"github.com/rs/zerolog"

	"github.com/dadrus/makestem/internal/x/arena"
)

// Result describes a pushed key.
type Result[V any] struct {
	// Key is the key as given to Push, escaping backslashes included.
	Key   string
	Value V
	// Order is the position of the key in the sequence of successful pushes.
	Order int
}

type Usage struct {
	Nodes        int
	NodeCapacity int
	Keys         int
	KeyCapacity  int
}

type Trie[V any] struct {
	nodes *arena.Arena[node]
	root  arena.Handle

	results []Result[V]
	order   int

	// scratch buffers reused by every query
	found    []*Result[V]
	branches []branch

	probes   int
	released bool

	logger zerolog.Logger
	sink   io.Writer
}

// New creates a trie able to hold maxKeys keys with at most maxChars characters in
// total. The storage is allocated once; pushing beyond these bounds panics.
func New[V any](maxKeys, maxChars int, opts ...Option[V]) *Trie[V] {
	if maxKeys < 0 || maxChars < 0 {
		panic(fmt.Errorf("%w: invalid bounds: %d keys, %d characters", ErrCapacityExceeded, maxKeys, maxChars))
	}

	t := &Trie[V]{
		// one node per character plus the root
		nodes:   arena.New[node](maxChars + 1),
		results: make([]Result[V], 0, maxKeys),
		found:   make([]*Result[V], 0, maxKeys),
		logger:  zerolog.Nop(),
		sink:    os.Stdout,
	}

	t.root = t.nodes.Allocate()

	for _, opt := range opts {
		opt(t)
	}

	t.logger.Trace().
		Int("_max_keys", maxKeys).
		Int("_max_chars", maxChars).
		Msg("Trie created")

	return t
}

// Release frees all storage held by the trie. Any further use of it panics, except for
// Size and Usage.
func (t *Trie[V]) Release() {
	if t.released {
		return
	}

	t.nodes.Release()
	t.results = nil
	t.found = nil
	t.branches = nil
	t.released = true
}

// FindAll returns all keys matching query, the most specific first. The returned
// slice is reused by the next call on the trie.
func (t *Trie[V]) FindAll(query string) []*Result[V] {
	t.mustBeUsable()

	t.probes = 0
	found := t.found[:0]

	if res, ok := t.findExact(query); ok {
		found = append(found, res)
	}

	exact := len(found)
	found = t.collectFuzzy(found, query)

	rank(found, exact)

	t.found = found

	t.logger.Trace().
		Str("_query", query).
		Int("_matches", len(found)).
		Bool("_exact", exact != 0).
		Int("_probes", t.probes).
		Msg("Lookup done")

	return found
}

// Find returns the most specific key matching query.
func (t *Trie[V]) Find(query string) (*Result[V], bool) {
	found := t.FindAll(query)
	if len(found) == 0 {
		return nil, false
	}

	return found[0], true
}

// Has reports whether any key matches query. Both strategies give the same answer and
// only differ in the order the trie is explored: preferFuzzy tries the wildcard before
// literal edges, otherwise literal edges are tried first.
func (t *Trie[V]) Has(query string, preferFuzzy bool) bool {
	t.mustBeUsable()

	t.probes = 0

	var found bool
	if preferFuzzy {
		found = t.hasPreferFuzzy(query)
	} else {
		found = t.hasPreferExact(query)
	}

	t.logger.Trace().
		Str("_query", query).
		Bool("_prefer_fuzzy", preferFuzzy).
		Bool("_found", found).
		Int("_probes", t.probes).
		Msg("Presence check done")

	return found
}

// Probes returns the number of edge lookups the last query performed.
func (t *Trie[V]) Probes() int { return t.probes }

func (t *Trie[V]) Size() int { return len(t.results) }

func (t *Trie[V]) Usage() Usage {
	return Usage{
		Nodes:        t.nodes.Len(),
		NodeCapacity: t.nodes.Cap(),
		Keys:         len(t.results),
		KeyCapacity:  cap(t.results),
	}
}

// Footprint estimates the memory in bytes a trie created with the given bounds
// occupies once it is full. Referenced values are not accounted for.
func Footprint[V any](maxKeys, maxChars int) uint64 {
	var (
		n   node
		res Result[V]
		ptr *Result[V]
		h   arena.Handle
	)

	// every node but the root is reached by exactly one edge
	perNode := uint64(unsafe.Sizeof(n)) + uint64(unsafe.Sizeof(h)) + 1
	perKey := uint64(unsafe.Sizeof(res)) + uint64(unsafe.Sizeof(ptr))

	return safecast.MustConvert[uint64](maxChars+1)*perNode + safecast.MustConvert[uint64](maxKeys)*perKey
}

// Keys returns all pushed keys in depth first order of the trie, siblings ordered by
// character.
func (t *Trie[V]) Keys() []string {
	t.mustBeUsable()

	keys := make([]string, 0, len(t.results))

	t.walk(func(res *Result[V]) { keys = append(keys, res.Key) })

	return keys
}

// Print writes the keys in the order of Keys, one per line, to the debug sink.
func (t *Trie[V]) Print() error {
	t.mustBeUsable()

	out := bufio.NewWriter(t.sink)

	var err error

	t.walk(func(res *Result[V]) {
		if err == nil {
			_, err = fmt.Fprintln(out, res.Key)
		}
	})

	if err != nil {
		return err
	}

	return out.Flush()
}

func (t *Trie[V]) walk(visit func(res *Result[V])) {
	stack := []arena.Handle{t.root}

	for len(stack) != 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if res, ok := t.resultAt(current); ok {
			visit(res)
		}

		// reversed, so that the smallest label is visited first
		children := t.nodes.Get(current).children
		for _, child := range slices.Backward(children) {
			stack = append(stack, child)
		}
	}
}

func (t *Trie[V]) mustBeUsable() {
	if t.released {
		panic(ErrReleased)
	}
}
