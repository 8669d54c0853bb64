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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dadrus/makestem/internal/x/arena"
)

// decode translates key into the sequence of edge labels it is stored under and hands
// every label to emit as soon as it is known. Following make, a run of n backslashes
// directly in front of a '%' stands for n/2 literal backslashes. The '%' itself is
// literal if n is odd and the wildcard otherwise. Backslashes not followed by a '%'
// are literal. At most one naked '%' is allowed.
//
// On error, labels emitted so far are not taken back.
func decode(key string, emit func(label byte)) error {
	if idx := strings.IndexFunc(key, func(r rune) bool { return r == 0 || r >= utf8.RuneSelf }); idx != -1 {
		return fmt.Errorf("%w: %q contains a non ASCII or NUL character at position %d",
			ErrMalformedKey, key, idx)
	}

	nakedSeen := false

	for pos := 0; pos < len(key); {
		switch char := key[pos]; char {
		case backslash:
			run := len(key[pos:]) - len(strings.TrimLeft(key[pos:], `\`))
			pos += run

			if pos == len(key) || key[pos] != wildcard {
				emitN(emit, backslash, run)

				continue
			}

			escaped := run%2 == 1
			if !escaped && nakedSeen {
				return fmt.Errorf("%w: %q has more than one unescaped %%", ErrMalformedKey, key)
			}

			emitN(emit, backslash, run/2)

			if escaped {
				emit(escapedPercent)
			} else {
				emit(wildcard)

				nakedSeen = true
			}

			pos++
		case wildcard:
			if nakedSeen {
				return fmt.Errorf("%w: %q has more than one unescaped %%", ErrMalformedKey, key)
			}

			emit(wildcard)

			nakedSeen = true
			pos++
		default:
			emit(char)

			pos++
		}
	}

	return nil
}

func emitN(emit func(label byte), label byte, count int) {
	for range count {
		emit(label)
	}
}

// extend follows the edge label from parent, creating the edge if there is none yet.
func (t *Trie[V]) extend(parent arena.Handle, label byte) arena.Handle {
	if next, ok := t.nodes.Get(parent).child(label); ok {
		return next
	}

	// Allocate never moves existing slots, so the parent can be fetched afterwards.
	next := t.nodes.Allocate()
	t.nodes.Get(parent).addChild(label, next)

	return next
}

// Push stores key together with value. It returns an error wrapping ErrMalformedKey if
// key is not a valid pattern and one wrapping ErrDuplicateKey if key has already been
// pushed. In both cases no result is stored. Exceeding the capacities the trie has been
// created with panics.
func (t *Trie[V]) Push(key string, value V) error {
	t.mustBeUsable()

	current := t.root

	if err := decode(key, func(label byte) { current = t.extend(current, label) }); err != nil {
		t.logger.Trace().Err(err).Msg("Key rejected")

		return err
	}

	end := t.nodes.Get(current)
	if end.terminal {
		t.logger.Trace().Str("_key", key).Msg("Key already present")

		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	if len(t.results) == cap(t.results) {
		panic(fmt.Errorf("%w: cannot store more than %d keys", ErrCapacityExceeded, cap(t.results)))
	}

	t.results = append(t.results, Result[V]{Key: key, Value: value, Order: t.order})
	t.order++

	end.terminal = true
	end.result = len(t.results) - 1

	t.logger.Trace().
		Str("_key", key).
		Int("_size", len(t.results)).
		Int("_nodes", t.nodes.Len()).
		Msg("Key pushed")

	return nil
}
