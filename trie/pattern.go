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

import "strings"

// Pattern is the unescaped form of a key. For keys with a naked '%', Prefix and Suffix
// hold the literal text around it. For literal keys, Prefix holds the whole text.
type Pattern struct {
	Prefix   string
	Suffix   string
	Wildcard bool
}

// ParsePattern applies the same escaping rules as Push to key.
func ParsePattern(key string) (Pattern, error) {
	var (
		prefix, suffix strings.Builder
		pattern        Pattern
	)

	err := decode(key, func(label byte) {
		switch {
		case label == wildcard:
			pattern.Wildcard = true
		case pattern.Wildcard:
			suffix.WriteByte(literal(label))
		default:
			prefix.WriteByte(literal(label))
		}
	})
	if err != nil {
		return Pattern{}, err
	}

	pattern.Prefix = prefix.String()
	pattern.Suffix = suffix.String()

	return pattern, nil
}

// Stem returns the part of query consumed by the wildcard. It reports false if the
// pattern has no wildcard or does not match query.
func (p Pattern) Stem(query string) (string, bool) {
	if !p.Wildcard ||
		len(query) <= len(p.Prefix)+len(p.Suffix) ||
		!strings.HasPrefix(query, p.Prefix) ||
		!strings.HasSuffix(query, p.Suffix) {
		return "", false
	}

	return query[len(p.Prefix) : len(query)-len(p.Suffix)], true
}

// Expand replaces the wildcard with stem. Literal patterns expand to their text.
func (p Pattern) Expand(stem string) string {
	if !p.Wildcard {
		return p.Prefix
	}

	return p.Prefix + stem + p.Suffix
}

func literal(label byte) byte {
	if label == escapedPercent {
		return wildcard
	}

	return label
}
