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
	"strings"

	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/cmd/setup"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/x/errorchain"
)

type presence struct {
	Name    string `json:"name"    yaml:"name"`
	Present bool   `json:"present" yaml:"present"`
}

// NewHasCommand represents the "has" command.
func NewHasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "has [name]...",
		Short:   "Checks whether a rule exists for each of the given names",
		Args:    cobra.MinimumNArgs(1),
		Example: "makestem has -r rules.yaml --prefer-fuzzy main.o",
		Run: func(cmd *cobra.Command, args []string) {
			if err := has(cmd, args); err != nil {
				setup.Fail(cmd, err)
			}
		},
	}

	cmd.Flags().Bool(flags.PreferFuzzy, false,
		"Explores patterns before literal keys. Faster for rule sets\ndominated by short patterns.")

	return cmd
}

func has(cmd *cobra.Command, names []string) error {
	app, err := setup.NewApp(cmd)
	if err != nil {
		return err
	}

	defer app.Close()

	preferFuzzy, _ := cmd.Flags().GetBool(flags.PreferFuzzy)

	var absent []string

	results := make([]presence, len(names))

	for idx, name := range names {
		results[idx] = presence{Name: name, Present: app.Resolver.Has(name, preferFuzzy)}

		if !results[idx].Present {
			absent = append(absent, name)
		}
	}

	if err = setup.Render(cmd, app.Format, results, func(cmd *cobra.Command) {
		for _, result := range results {
			cmd.Printf("%s: %t\n", result.Name, result.Present)
		}
	}); err != nil {
		return err
	}

	if len(absent) != 0 {
		return errorchain.NewWithMessagef(makestem.ErrNoMatch, "no rule for %s", strings.Join(absent, ", "))
	}

	return nil
}
