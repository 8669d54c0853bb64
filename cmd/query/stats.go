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
	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/setup"
)

// NewStatsCommand represents the "stats" command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Prints the storage usage of the trie built from the rule set",
		Args:    cobra.NoArgs,
		Example: "makestem stats -r rules.yaml -o json",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := stats(cmd); err != nil {
				setup.Fail(cmd, err)
			}
		},
	}
}

func stats(cmd *cobra.Command) error {
	app, err := setup.NewApp(cmd)
	if err != nil {
		return err
	}

	defer app.Close()

	st := app.Resolver.Stats()

	return setup.Render(cmd, app.Format, st, func(cmd *cobra.Command) {
		cmd.Printf("keys:      %d of %d\n", st.Usage.Keys, st.Usage.KeyCapacity)
		cmd.Printf("nodes:     %d of %d\n", st.Usage.Nodes, st.Usage.NodeCapacity)
		cmd.Printf("footprint: %s\n", st.Footprint)
		cmd.Printf("memory:    %s\n", st.Memory)
		cmd.Printf("cache:     %d entries, %d hits, %d misses\n", st.CacheEntries, st.CacheHits, st.CacheMisses)
	})
}
