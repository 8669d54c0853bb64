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

package ruleset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dadrus/makestem/internal/encoding"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/validation"
	"github.com/dadrus/makestem/internal/x/errorchain"
)

// Rule binds a target pattern to the recipe building matching targets. Like in make,
// a '%' in a prerequisite is replaced by the stem the target pattern matched.
type Rule struct {
	Pattern       string   `json:"pattern"       validate:"required"`
	Recipe        string   `json:"recipe"`
	Prerequisites []string `json:"prerequisites"`
}

type RuleSet struct {
	Name  string `json:"name"`
	Rules []Rule `json:"rules" validate:"dive"`
}

// CharCount returns the number of characters of all patterns.
func (rs *RuleSet) CharCount() int {
	var count int

	for _, rule := range rs.Rules {
		count += len(rule.Pattern)
	}

	return count
}

// Load reads a rule set from a file. Files ending with .json are parsed as json,
// everything else as yaml. Environment variables referenced in the file are
// substituted.
func Load(path string, validator validation.Validator) (*RuleSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(makestem.ErrArgument,
			"failed to open rule set %s", path).CausedBy(err)
	}

	defer file.Close()

	ruleSet, err := Parse(contentType(path), file, validator)
	if err != nil {
		return nil, errorchain.NewWithMessagef(makestem.ErrConfiguration,
			"failed to load rule set %s", path).CausedBy(err)
	}

	if len(ruleSet.Name) == 0 {
		ruleSet.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return ruleSet, nil
}

func Parse(contentType string, reader io.Reader, validator validation.Validator) (*RuleSet, error) {
	var ruleSet RuleSet

	decoder := encoding.NewDecoder(
		encoding.WithSourceContentType(contentType),
		encoding.WithEnvVarsSubstitution(true),
		encoding.WithErrorOnUnused(true),
		encoding.WithValidator(validator),
	)

	if err := decoder.Decode(&ruleSet, reader); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errorchain.NewWithMessage(makestem.ErrConfiguration, "rule set is empty")
		}

		return nil, err
	}

	return &ruleSet, nil
}

func contentType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return encoding.ContentTypeJSON
	}

	return encoding.ContentTypeYAML
}
