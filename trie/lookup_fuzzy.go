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

package trie

import "github.com/dadrus/makestem/internal/x/arena"

// The search below has exactly three levels: the walk before the wildcard, the scan
// through the wildcard span and the literal walk after it. None of them calls itself,
// so the stack depth does not depend on the length of the query.

// collectFuzzy appends every result matching query through a wildcard to found. The
// exact match, if any, is not part of it.
func (t *Trie[V]) collectFuzzy(found []*Result[V], query string) []*Result[V] {
	current := t.root

	for pos := range len(query) {
		// query[pos] is the first stem character, the wildcard consumes at least one
		if span, ok := t.probe(current, wildcard); ok {
			found = t.collectSpan(found, span, query[pos+1:])
		}

		next, ok := t.literalStep(current, query[pos])
		if !ok {
			return found
		}

		current = next
	}

	// query exhausted without spending the wildcard, that is the exact match
	return found
}

// collectSpan tries to leave the wildcard span at every position of rest and finally
// lets the wildcard consume all of rest.
func (t *Trie[V]) collectSpan(found []*Result[V], span arena.Handle, rest string) []*Result[V] {
	for pos := range len(rest) {
		if next, ok := t.literalStep(span, rest[pos]); ok {
			if res, ok := t.walkLiteral(next, rest[pos+1:]); ok {
				found = append(found, res)
			}
		}
	}

	if res, ok := t.resultAt(span); ok {
		found = append(found, res)
	}

	return found
}
