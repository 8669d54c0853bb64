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
	"github.com/dadrus/makestem/internal/config"
)

// NewDumpCommand represents the "dump" command.
func NewDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dump",
		Short:   "Prints the patterns of the rule set in trie order",
		Args:    cobra.NoArgs,
		Example: "makestem dump -r rules.yaml",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := dump(cmd); err != nil {
				setup.Fail(cmd, err)
			}
		},
	}
}

func dump(cmd *cobra.Command) error {
	app, err := setup.NewApp(cmd)
	if err != nil {
		return err
	}

	defer app.Close()

	if app.Format == config.OutputTextFormat {
		return app.Resolver.Dump()
	}

	return setup.Render(cmd, app.Format, app.Resolver.Patterns(), nil)
}
