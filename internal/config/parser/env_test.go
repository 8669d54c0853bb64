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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	t.Parallel()

	for name, exp := range map[string]string{
		"MAKESTEM_LOG_LEVEL":          "log.level",
		"MAKESTEM_TRIE_MAX__KEYS":     "trie.max_keys",
		"MAKESTEM_CACHE_MAX__ENTRIES": "cache.max_entries",
		"MAKESTEM_FOO":                "foo",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, exp, envKey("MAKESTEM_", name))
		})
	}
}

func TestToRealType(t *testing.T) {
	t.Parallel()

	for val, exp := range map[string]any{
		"42":    42,
		"true":  true,
		"1.5":   1.5,
		"256MB": "256MB",
		"a: b":  "a: b",
	} {
		t.Run(val, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, exp, toRealType(val))
		})
	}
}

func TestKoanfFromEnv(t *testing.T) {
	// GIVEN
	t.Setenv("ENVTEST_TRIE_MAX__KEYS", "10")
	t.Setenv("ENVTEST_TRIE_MAX__MEMORY", "1MB")
	t.Setenv("ENVTEST_LOG_LEVEL", "debug")
	t.Setenv("OTHER_LOG_LEVEL", "trace")

	// WHEN
	konf, err := koanfFromEnv("ENVTEST_")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 10, konf.Get("trie.max_keys"))
	assert.Equal(t, "1MB", konf.Get("trie.max_memory"))
	assert.Equal(t, "debug", konf.Get("log.level"))
	assert.ElementsMatch(t, []string{"trie.max_keys", "trie.max_memory", "log.level"}, konf.Keys())
}
