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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		key    string
		labels []byte
		err    error
	}{
		"empty key":                          {key: "", labels: []byte{}},
		"literal key":                        {key: "abc", labels: []byte("abc")},
		"naked wildcard":                     {key: "a%b", labels: []byte("a%b")},
		"single backslash escapes the %":     {key: `a\%b`, labels: []byte{'a', escapedPercent, 'b'}},
		"two backslashes keep the % naked":   {key: `a\\%b`, labels: []byte(`a\%b`)},
		"three backslashes escape the %":     {key: `a\\\%b`, labels: []byte{'a', '\\', escapedPercent, 'b'}},
		"four backslashes keep the % naked":  {key: `a\\\\%`, labels: []byte(`a\\%`)},
		"backslash not followed by %":        {key: `a\b`, labels: []byte(`a\b`)},
		"backslash run not followed by %":    {key: `a\\\b`, labels: []byte(`a\\\b`)},
		"trailing backslashes":               {key: `a\\`, labels: []byte(`a\\`)},
		"escaped % after the naked one":      {key: `%\%`, labels: []byte{'%', escapedPercent}},
		"escaped % before the naked one":     {key: `\%%`, labels: []byte{escapedPercent, '%'}},
		"multiple escaped %":                 {key: `\%a\%`, labels: []byte{escapedPercent, 'a', escapedPercent}},
		"two naked wildcards":                {key: "he%llo%", labels: []byte("he%llo"), err: ErrMalformedKey},
		"adjacent naked wildcards":           {key: "%%", labels: []byte("%"), err: ErrMalformedKey},
		"second naked after even backslash":  {key: `%a\\%`, labels: []byte("%a"), err: ErrMalformedKey},
		"naked after even run after naked":   {key: `a%\\\\%`, labels: []byte("a%"), err: ErrMalformedKey},
		"non ascii character":                {key: "héllo", labels: []byte{}, err: ErrMalformedKey},
		"nul character":                      {key: "a\x00b", labels: []byte{}, err: ErrMalformedKey},
		"invalid utf8 sequence":              {key: "a\xffb", labels: []byte{}, err: ErrMalformedKey},
		"slash is an ordinary character":     {key: "obj/%.o", labels: []byte("obj/%.o")},
		"printable ascii without specials":   {key: "~!@#$^&*()", labels: []byte("~!@#$^&*()")},
		"control characters are accepted":    {key: "a\tb", labels: []byte("a\tb")},
		"escaped percent as the only char":   {key: `\%`, labels: []byte{escapedPercent}},
		"wildcard as the only char":          {key: "%", labels: []byte("%")},
		"even run as the whole key before %": {key: `\\%`, labels: []byte(`\%`)},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			labels := []byte{}

			// WHEN
			err := decode(tc.key, func(label byte) { labels = append(labels, label) })

			// THEN
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.labels, labels)
		})
	}
}

func TestPushDoesNotCreateNodesForInvalidCharacters(t *testing.T) {
	t.Parallel()

	// GIVEN
	tr := New[int](4, 16)

	// WHEN
	err := tr.Push("abc\x80", 1)

	// THEN
	require.ErrorIs(t, err, ErrMalformedKey)
	assert.Equal(t, 1, tr.Usage().Nodes)
	assert.Equal(t, 0, tr.Size())
}

func TestPushKeepsSharedPrefixOfMalformedKey(t *testing.T) {
	t.Parallel()

	// GIVEN
	tr := New[int](4, 16)

	// WHEN
	err := tr.Push("ab%c%", 1)

	// THEN
	require.ErrorIs(t, err, ErrMalformedKey)
	assert.Equal(t, 0, tr.Size())
	// root + a, b, %, c
	assert.Equal(t, 5, tr.Usage().Nodes)

	_, found := tr.Find("abxc")
	assert.False(t, found)

	require.NoError(t, tr.Push("ab%c", 2))
	assert.Equal(t, 5, tr.Usage().Nodes)

	res, found := tr.Find("abxc")
	require.True(t, found)
	assert.Equal(t, "ab%c", res.Key)
}
