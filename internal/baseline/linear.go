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

// Package baseline provides a linear container with the matching semantics of
// the trie. Every lookup compares the query with every stored key. It serves as
// reference for benchmarks and tests.
package baseline

import (
	"fmt"

	"github.com/dadrus/makestem/trie"
)

type entry[V any] struct {
	pattern trie.Pattern
	result  trie.Result[V]
}

type Linear[V any] struct {
	entries []entry[V]
	index   map[string]struct{}
}

func New[V any](maxKeys int) *Linear[V] {
	return &Linear[V]{
		entries: make([]entry[V], 0, maxKeys),
		index:   make(map[string]struct{}, maxKeys),
	}
}

func (l *Linear[V]) Push(key string, value V) error {
	pattern, err := trie.ParsePattern(key)
	if err != nil {
		return err
	}

	// keys are compared by their unescaped form, like the trie does
	canonical := fmt.Sprintf("%t:%s:%s", pattern.Wildcard, pattern.Prefix, pattern.Suffix)
	if _, ok := l.index[canonical]; ok {
		return fmt.Errorf("%w: %q", trie.ErrDuplicateKey, key)
	}

	l.index[canonical] = struct{}{}
	l.entries = append(l.entries, entry[V]{
		pattern: pattern,
		result:  trie.Result[V]{Key: key, Value: value, Order: len(l.entries)},
	})

	return nil
}

// Find returns the most specific key matching query: a literal key equal to query, or
// the longest matching pattern, the earliest one on ties.
func (l *Linear[V]) Find(query string) (*trie.Result[V], bool) {
	var best *entry[V]

	for idx := range l.entries {
		candidate := &l.entries[idx]

		if !candidate.pattern.Wildcard {
			if candidate.pattern.Prefix == query {
				return &candidate.result, true
			}

			continue
		}

		if _, ok := candidate.pattern.Stem(query); !ok {
			continue
		}

		if best == nil || len(candidate.result.Key) > len(best.result.Key) {
			best = candidate
		}
	}

	if best == nil {
		return nil, false
	}

	return &best.result, true
}

func (l *Linear[V]) Has(query string) bool {
	_, found := l.Find(query)

	return found
}

func (l *Linear[V]) Size() int { return len(l.entries) }
