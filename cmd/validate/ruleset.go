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
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/setup"
	"github.com/dadrus/makestem/internal/resolver"
	"github.com/dadrus/makestem/internal/ruleset"
)

// NewValidateRulesCommand represents the "validate rules" command.
func NewValidateRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rules [path to rule set]",
		Short:   "Validates a rule set",
		Args:    cobra.MaximumNArgs(1),
		Example: "makestem validate rules myruleset.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validateRuleSet(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)

				return
			}

			cmd.Println("Rule set is valid")
		},
	}
}

// validateRuleSet loads the rule set given either as argument or by the rules flag and builds
// a resolver from it, so that the patterns and the configured bounds are checked as well.
func validateRuleSet(cmd *cobra.Command, args []string) error {
	conf, err := setup.Configuration(cmd)
	if err != nil {
		return err
	}

	var rs *ruleset.RuleSet

	if len(args) == 1 {
		rs, err = setup.LoadRuleSet(args[0])
	} else {
		rs, err = setup.RuleSet(cmd)
	}

	if err != nil {
		return err
	}

	res, err := resolver.New(rs, conf.Trie)
	if err != nil {
		return err
	}

	res.Close()

	return nil
}
