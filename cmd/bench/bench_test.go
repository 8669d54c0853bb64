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

package bench

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/internal/benchmark"
	"github.com/dadrus/makestem/internal/makestem"
)

func TestNewBenchCommand(t *testing.T) {
	t.Parallel()

	// WHEN
	cmd := NewBenchCommand()

	// THEN
	assert.Equal(t, "bench", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	keys := cmd.Flags().Lookup(flags.Keys)
	require.NotNil(t, keys)
	assert.Equal(t, "10000", keys.DefValue)

	for _, name := range []string{flags.Queries, flags.Seed, flags.MaxKeyLength} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "0", flag.DefValue, name)
	}
}

func TestBench(t *testing.T) {
	for uc, tc := range map[string]struct {
		args   []string
		assert func(t *testing.T, err error, out string)
	}{
		"invalid number of keys": {
			args: []string{"--keys", "0"},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.ErrorIs(t, err, makestem.ErrArgument)
			},
		},
		"text report": {
			args: []string{"--keys", "100", "--queries", "300", "--seed", "3"},
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, "building a trie of ")
				assert.Contains(t, out, "300 lookups (")
				assert.Contains(t, out, "in the linear scan took")
			},
		},
		"json report": {
			args: []string{"--keys", "50", "--max-key-length", "12", "-o", "json"},
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)

				var report benchmark.Report
				require.NoError(t, json.Unmarshal([]byte(out), &report))
				assert.Equal(t, 50, report.Queries)
				assert.Positive(t, report.Keys)
				assert.LessOrEqual(t, report.Chars, 50*13)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			cmd := NewBenchCommand()
			flags.RegisterGlobalFlags(cmd)

			buf := bytes.NewBuffer([]byte{})
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			require.NoError(t, cmd.ParseFlags(tc.args))

			// WHEN
			err := bench(cmd)

			// THEN
			tc.assert(t, err, buf.String())
		})
	}
}
