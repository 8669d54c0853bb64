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
	"context"

	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/cmd/setup"
	"github.com/dadrus/makestem/internal/benchmark"
	"github.com/dadrus/makestem/internal/logging"
)

const defaultKeys = 10000

// NewBenchCommand represents the "bench" command.
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compares the trie with a linear scan over random keys",
		Long: "Generates random keys, about half of them patterns, and resolves random names\n" +
			"with the trie and with a linear scan. Fails if both disagree on any name.",
		Args:    cobra.NoArgs,
		Example: "makestem bench --keys 100000 --seed 42",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bench(cmd); err != nil {
				setup.Fail(cmd, err)
			}
		},
	}

	cmd.Flags().Int(flags.Keys, defaultKeys, "Number of keys to generate")
	cmd.Flags().Int(flags.Queries, 0, "Number of lookups. Defaults to the number of keys.")
	cmd.Flags().Uint64(flags.Seed, 0, "Seed of the random generator")
	cmd.Flags().Int(flags.MaxKeyLength, 0, "Maximum length of generated keys")

	return cmd
}

func bench(cmd *cobra.Command) error {
	conf, err := setup.Configuration(cmd)
	if err != nil {
		return err
	}

	keys, _ := cmd.Flags().GetInt(flags.Keys)
	queries, _ := cmd.Flags().GetInt(flags.Queries)
	seed, _ := cmd.Flags().GetUint64(flags.Seed)
	maxKeyLength, _ := cmd.Flags().GetInt(flags.MaxKeyLength)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := benchmark.Run(ctx, keys,
		benchmark.WithQueries(queries),
		benchmark.WithSeed(seed),
		benchmark.WithMaxKeyLength(maxKeyLength),
		benchmark.WithLogger(logging.NewLogger(conf.Log)),
	)
	if err != nil {
		return err
	}

	return setup.Render(cmd, setup.OutputFormat(cmd, conf), report, func(cmd *cobra.Command) {
		cmd.Printf("building a trie of %d keys (%d characters) took %s\n",
			report.Keys, report.Chars, report.TrieBuild)
		cmd.Printf("building a linear scan of %d keys took %s\n", report.Keys, report.LinearBuild)
		cmd.Printf("%d lookups (%d hits) in the trie took %s\n",
			report.Queries, report.Hits, report.TrieLookup)
		cmd.Printf("%d lookups (%d hits) in the linear scan took %s\n",
			report.Queries, report.Hits, report.LinearLookup)
	})
}
