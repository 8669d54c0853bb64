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
	"cmp"
	"slices"
)

// moreSpecific orders fuzzy matches: the longer key first, equally long keys in the
// order they have been pushed.
func moreSpecific[V any](a, b *Result[V]) int {
	if c := cmp.Compare(len(b.Key), len(a.Key)); c != 0 {
		return c
	}

	return cmp.Compare(a.Order, b.Order)
}

// rank sorts found in place. The first exact entries are exact matches and keep their
// position in front of all fuzzy ones.
func rank[V any](found []*Result[V], exact int) {
	slices.SortFunc(found[exact:], moreSpecific[V])
}
