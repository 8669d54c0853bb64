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

// branch is a point on the literal path at which the wildcard could have been spent.
type branch struct {
	span arena.Handle
	// offset of the first query character after the one consumed by the wildcard
	rest int
}

// hasPreferFuzzy spends the wildcard as early and as greedily as possible and falls
// back to literal edges afterwards.
func (t *Trie[V]) hasPreferFuzzy(query string) bool {
	current := t.root

	for pos := range len(query) {
		if span, ok := t.probe(current, wildcard); ok && t.spanMatchesLongestFirst(span, query[pos+1:]) {
			return true
		}

		next, ok := t.literalStep(current, query[pos])
		if !ok {
			return false
		}

		current = next
	}

	_, ok := t.resultAt(current)

	return ok
}

// hasPreferExact follows literal edges as far as possible first. Every wildcard edge
// passed on the way is remembered and tried afterwards, the deepest one first.
func (t *Trie[V]) hasPreferExact(query string) bool {
	branches := t.branches[:0]
	current := t.root
	walked := true

	for pos := range len(query) {
		if span, ok := t.probe(current, wildcard); ok {
			branches = append(branches, branch{span: span, rest: pos + 1})
		}

		next, ok := t.literalStep(current, query[pos])
		if !ok {
			walked = false

			break
		}

		current = next
	}

	// keep the grown buffer for the next query
	t.branches = branches[:0]

	if walked {
		if _, ok := t.resultAt(current); ok {
			return true
		}
	}

	for i := len(branches) - 1; i >= 0; i-- {
		if t.spanMatchesShortestFirst(branches[i].span, query[branches[i].rest:]) {
			return true
		}
	}

	return false
}

// spanMatchesShortestFirst leaves the wildcard span as early as possible.
func (t *Trie[V]) spanMatchesShortestFirst(span arena.Handle, rest string) bool {
	for pos := range len(rest) {
		if t.leavesSpanAt(span, rest, pos) {
			return true
		}
	}

	_, ok := t.resultAt(span)

	return ok
}

// spanMatchesLongestFirst lets the wildcard consume as much as possible.
func (t *Trie[V]) spanMatchesLongestFirst(span arena.Handle, rest string) bool {
	if _, ok := t.resultAt(span); ok {
		return true
	}

	for pos := len(rest) - 1; pos >= 0; pos-- {
		if t.leavesSpanAt(span, rest, pos) {
			return true
		}
	}

	return false
}

// leavesSpanAt reports whether rest[pos:] matches literally right after the span.
func (t *Trie[V]) leavesSpanAt(span arena.Handle, rest string, pos int) bool {
	next, ok := t.literalStep(span, rest[pos])
	if !ok {
		return false
	}

	_, ok = t.walkLiteral(next, rest[pos+1:])

	return ok
}
