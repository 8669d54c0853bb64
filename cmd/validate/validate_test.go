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

package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/cmd/setup"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/x/testsupport"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	return file
}

func prepare(t *testing.T, cmd *cobra.Command, args ...string) *bytes.Buffer {
	t.Helper()

	flags.RegisterGlobalFlags(cmd)
	flags.RegisterRuleSetFlag(cmd)

	buf := bytes.NewBuffer([]byte{})
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.ParseFlags(args))

	return buf
}

func TestValidateConfig(t *testing.T) {
	valid := writeFile(t, "valid.yaml", "log:\n  level: debug\ntrie:\n  max_keys: 10\n  max_chars: 100\n")
	tooSmall := writeFile(t, "small.yaml", "trie:\n  max_keys: 1000\n  max_chars: 100000\n  max_memory: 1KB\n")
	broken := writeFile(t, "broken.yaml", "trie: [\n")

	for _, tc := range []struct {
		uc       string
		confFile string
		expError error
	}{
		{uc: "no config provided", expError: setup.ErrNoConfigFile},
		{uc: "not existing config", confFile: "doesnotexist.yaml", expError: os.ErrNotExist},
		{uc: "malformed config", confFile: broken, expError: makestem.ErrConfiguration},
		{uc: "config exceeding the memory budget", confFile: tooSmall, expError: makestem.ErrConfiguration},
		{uc: "valid config", confFile: valid},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewValidateConfigCommand()

			var args []string
			if len(tc.confFile) != 0 {
				args = []string{"--" + flags.Config, tc.confFile}
			}

			prepare(t, cmd, args...)

			// WHEN
			err := validateConfig(cmd)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRunValidateConfigCommand(t *testing.T) {
	valid := writeFile(t, "valid.yaml", "output:\n  format: json\n")

	for _, tc := range []struct {
		uc       string
		confFile string
		expError string
	}{
		{uc: "invalid config", confFile: "doesnotexist.yaml", expError: "no such file or dir"},
		{uc: "valid config", confFile: valid},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			exit, err := testsupport.PatchOSExit(t, func(int) {})
			require.NoError(t, err)

			cmd := NewValidateConfigCommand()
			buf := prepare(t, cmd, "--"+flags.Config, tc.confFile)

			// WHEN
			cmd.Run(cmd, []string{})

			// THEN
			log := buf.String()
			if len(tc.expError) != 0 {
				assert.Contains(t, log, tc.expError)
				assert.True(t, exit.Called)
				assert.Equal(t, 1, exit.Code)
			} else {
				assert.Contains(t, log, "Configuration is valid")
				assert.False(t, exit.Called)
			}
		})
	}
}

func TestValidateRuleSet(t *testing.T) {
	valid := writeFile(t, "rules.yaml", "rules:\n  - pattern: \"%.o\"\n    prerequisites: [\"%.c\"]\n")
	asJSON := writeFile(t, "rules.json", `{"rules": [{"pattern": "main.o"}]}`)
	badPattern := writeFile(t, "bad.yaml", "rules:\n  - pattern: \"%a%\"\n")
	unknownField := writeFile(t, "unknown.yaml", "rules:\n  - pattern: a\n    target: b\n")
	tooBig := writeFile(t, "big.yaml", "rules:\n  - pattern: a\n  - pattern: b\n")
	smallConf := writeFile(t, "config.yaml", "trie:\n  max_keys: 1\n  max_chars: 10\n")

	for _, tc := range []struct {
		uc       string
		args     []string
		ruleSet  string
		expError error
	}{
		{uc: "no rule set provided", expError: setup.ErrNoRuleSet},
		{uc: "not existing rule set", ruleSet: "doesnotexist.yaml", expError: makestem.ErrArgument},
		{uc: "malformed pattern", ruleSet: badPattern, expError: makestem.ErrConfiguration},
		{uc: "unknown field", ruleSet: unknownField, expError: makestem.ErrConfiguration},
		{uc: "too many rules", args: []string{"-c", smallConf}, ruleSet: tooBig, expError: makestem.ErrConfiguration},
		{uc: "valid yaml rule set", ruleSet: valid},
		{uc: "valid json rule set given by flag", args: []string{"-r", asJSON}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewValidateRulesCommand()
			prepare(t, cmd, tc.args...)

			var args []string
			if len(tc.ruleSet) != 0 {
				args = []string{tc.ruleSet}
			}

			// WHEN
			err := validateRuleSet(cmd, args)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRunValidateRulesCommand(t *testing.T) {
	// GIVEN
	exit, err := testsupport.PatchOSExit(t, func(int) {})
	require.NoError(t, err)

	cmd := NewValidateRulesCommand()
	buf := prepare(t, cmd)

	// WHEN
	cmd.Run(cmd, []string{writeFile(t, "rules.yaml", "rules:\n  - pattern: \"%.o\"\n")})

	// THEN
	assert.False(t, exit.Called)
	assert.Contains(t, buf.String(), "Rule set is valid")
}
