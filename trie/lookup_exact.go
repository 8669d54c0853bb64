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

// probe looks up the edge label of the node identified by handle and counts the lookup.
func (t *Trie[V]) probe(handle arena.Handle, label byte) (arena.Handle, bool) {
	t.probes++

	return t.nodes.Get(handle).child(label)
}

// literalStep follows the edge for the query character char.
func (t *Trie[V]) literalStep(handle arena.Handle, char byte) (arena.Handle, bool) {
	label, ok := queryLabel(char)
	if !ok {
		return 0, false
	}

	return t.probe(handle, label)
}

// walkLiteral matches query character by character starting at from and returns the
// result stored at the node reached, if any.
func (t *Trie[V]) walkLiteral(from arena.Handle, query string) (*Result[V], bool) {
	current := from

	for pos := range len(query) {
		next, ok := t.literalStep(current, query[pos])
		if !ok {
			return nil, false
		}

		current = next
	}

	return t.resultAt(current)
}

func (t *Trie[V]) resultAt(handle arena.Handle) (*Result[V], bool) {
	if n := t.nodes.Get(handle); n.terminal {
		return &t.results[n.result], true
	}

	return nil, false
}

func (t *Trie[V]) findExact(query string) (*Result[V], bool) {
	return t.walkLiteral(t.root, query)
}
