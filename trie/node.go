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

import (
	"bytes"
	"slices"
	"unicode/utf8"

	"github.com/dadrus/makestem/internal/x/arena"
)

const (
	// Keys cannot contain NUL, so label 0 is free to stand for a backslash-escaped '%'.
	escapedPercent byte = 0
	wildcard       byte = '%'
	backslash      byte = '\\'
)

type node struct {
	// labels is kept sorted, children[i] is the target of the edge labels[i]
	labels   []byte
	children []arena.Handle

	terminal bool
	result   int
}

func (n *node) child(label byte) (arena.Handle, bool) {
	if idx := bytes.IndexByte(n.labels, label); idx != -1 {
		return n.children[idx], true
	}

	return 0, false
}

func (n *node) addChild(label byte, child arena.Handle) {
	idx, _ := slices.BinarySearch(n.labels, label)

	n.labels = slices.Insert(n.labels, idx, label)
	n.children = slices.Insert(n.children, idx, child)
}

// queryLabel maps a query character to the edge it has to follow. A '%' in a query is
// always literal data. NUL and non ASCII bytes can never be followed.
func queryLabel(char byte) (byte, bool) {
	switch {
	case char == wildcard:
		return escapedPercent, true
	case char == 0 || char >= utf8.RuneSelf:
		return 0, false
	default:
		return char, true
	}
}
