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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/validation"
)

func newValidator(t *testing.T) validation.Validator {
	t.Helper()

	v, err := validation.NewValidator(
		validation.WithTagValidator(MemoryBudget{}),
		validation.WithErrorTranslator(MemoryBudget{}),
	)
	require.NoError(t, err)

	return v
}

func writeConfig(t *testing.T, content string) ConfigurationPath {
	t.Helper()

	path := filepath.Join(t.TempDir(), "makestem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return ConfigurationPath(path)
}

func TestNewConfiguration(t *testing.T) {
	for uc, tc := range map[string]struct {
		config string
		env    map[string]string
		assert func(t *testing.T, err error, conf *Configuration)
	}{
		"defaults only": {
			config: "{}\n",
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, defaultConfig(), *conf)
			},
		},
		"values from file": {
			config: `
log:
  level: debug
  format: gelf
trie:
  max_keys: 10
  max_chars: 100
  max_memory: 1MB
cache:
  max_entries: 0
output:
  format: json
`,
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
				assert.Equal(t, LogGelfFormat, conf.Log.Format)
				assert.Equal(t, 10, conf.Trie.MaxKeys)
				assert.Equal(t, 100, conf.Trie.MaxChars)
				assert.Equal(t, bytesize.MB, conf.Trie.MaxMemory)
				assert.Equal(t, uint64(0), conf.Cache.MaxEntries)
				assert.Equal(t, OutputJSONFormat, conf.Output.Format)
			},
		},
		"environment overrides file": {
			config: "trie:\n  max_keys: 10\n",
			env: map[string]string{
				"CONFIGTEST_TRIE_MAX__KEYS":   "20",
				"CONFIGTEST_TRIE_MAX__MEMORY": "512MB",
				"CONFIGTEST_LOG_LEVEL":        "warn",
			},
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, 20, conf.Trie.MaxKeys)
				assert.Equal(t, 512*bytesize.MB, conf.Trie.MaxMemory)
				assert.Equal(t, zerolog.WarnLevel, conf.Log.Level)
			},
		},
		"invalid bounds": {
			config: "trie:\n  max_keys: 0\n  max_chars: -1\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, makestem.ErrConfiguration)
				assert.Contains(t, err.Error(), "'max_keys' must be greater than 0")
				assert.Contains(t, err.Error(), "'max_chars' must be greater than 0")
			},
		},
		"memory budget exceeded": {
			config: "trie:\n  max_keys: 1000\n  max_chars: 100000\n  max_memory: 1KB\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, makestem.ErrConfiguration)
				assert.Contains(t, err.Error(), "'max_memory' is 1.00KB")
			},
		},
		"malformed max memory": {
			config: "trie:\n  max_memory: lots\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, makestem.ErrConfiguration)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			for key, val := range tc.env {
				t.Setenv(key, val)
			}

			path := writeConfig(t, tc.config)

			// WHEN
			conf, err := NewConfiguration("CONFIGTEST_", path, newValidator(t))

			// THEN
			tc.assert(t, err, conf)
		})
	}
}

func TestNewConfigurationWithMissingFile(t *testing.T) {
	t.Parallel()

	// WHEN
	_, err := NewConfiguration("MISSINGTEST_",
		ConfigurationPath(filepath.Join(t.TempDir(), "missing.yaml")), newValidator(t))

	// THEN
	require.ErrorIs(t, err, makestem.ErrConfiguration)
}

func TestDefaultConfigFitsMemoryBudget(t *testing.T) {
	t.Parallel()

	// GIVEN
	conf := defaultConfig()

	// WHEN
	err := newValidator(t).ValidateStruct(conf)

	// THEN
	require.NoError(t, err)
	assert.Less(t, conf.Trie.Footprint(), conf.Trie.MaxMemory)
}
