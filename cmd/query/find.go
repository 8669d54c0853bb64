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

package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/cmd/setup"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/resolver"
	"github.com/dadrus/makestem/internal/x/errorchain"
)

type findResult struct {
	Target  string           `json:"target"  yaml:"target"`
	Matches []resolver.Match `json:"matches" yaml:"matches"`
}

// NewFindCommand represents the "find" command.
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find [target]...",
		Short:   "Finds the rules building the given targets",
		Args:    cobra.MinimumNArgs(1),
		Example: "makestem find -r rules.yaml main.o obj/util.o",
		Run: func(cmd *cobra.Command, args []string) {
			if err := find(cmd, args); err != nil {
				setup.Fail(cmd, err)
			}
		},
	}

	cmd.Flags().BoolP(flags.All, "a", false, "Lists all matching rules, the most specific one first")

	return cmd
}

func find(cmd *cobra.Command, targets []string) error {
	app, err := setup.NewApp(cmd)
	if err != nil {
		return err
	}

	defer app.Close()

	all, _ := cmd.Flags().GetBool(flags.All)

	var missing []string

	results := make([]findResult, len(targets))

	for idx, target := range targets {
		var matches []resolver.Match

		if all {
			matches = app.Resolver.ResolveAll(target)
		} else if match, ok := app.Resolver.Resolve(target); ok {
			matches = []resolver.Match{match}
		}

		if len(matches) == 0 {
			missing = append(missing, target)
		}

		results[idx] = findResult{Target: target, Matches: matches}
	}

	if err = setup.Render(cmd, app.Format, results, func(cmd *cobra.Command) {
		for _, result := range results {
			for _, match := range result.Matches {
				writeRule(cmd.OutOrStdout(), result.Target, match)
			}
		}
	}); err != nil {
		return err
	}

	if len(missing) != 0 {
		return errorchain.NewWithMessagef(makestem.ErrNoMatch, "no rule to make %s", strings.Join(missing, ", "))
	}

	return nil
}

// writeRule renders a match the way it would appear in a makefile.
func writeRule(out io.Writer, target string, match resolver.Match) {
	fmt.Fprintf(out, "%s:", target)

	for _, prerequisite := range match.Prerequisites {
		fmt.Fprintf(out, " %s", prerequisite)
	}

	if match.Exact {
		fmt.Fprintf(out, "  # %s\n", match.Pattern)
	} else {
		fmt.Fprintf(out, "  # %s, stem %s\n", match.Pattern, match.Stem)
	}

	if len(match.Recipe) != 0 {
		fmt.Fprintf(out, "\t%s\n", match.Recipe)
	}
}
