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

package setup

import (
	"errors"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/makestem/internal/config"
	"github.com/dadrus/makestem/internal/x/errorchain"
	"github.com/dadrus/makestem/internal/x/stringx"
)

// Render writes value in the given format. The text format is delegated to text.
func Render(cmd *cobra.Command, format config.OutputFormat, value any, text func(cmd *cobra.Command)) error {
	switch format {
	case config.OutputJSONFormat:
		raw, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(stringx.ToString(raw))
	case config.OutputYAMLFormat:
		raw, err := yaml.Marshal(value)
		if err != nil {
			return err
		}

		cmd.Print(stringx.ToString(raw))
	default:
		text(cmd)
	}

	return nil
}

// Fail reports err and terminates the process with exit code 1. Errors are rendered as
// JSON objects if JSON output is requested.
func Fail(cmd *cobra.Command, err error) {
	var chain *errorchain.ErrorChain

	if OutputFormat(cmd, nil) == config.OutputJSONFormat && errors.As(err, &chain) {
		if raw, jerr := json.Marshal(chain); jerr == nil {
			cmd.PrintErrln(stringx.ToString(raw))
			os.Exit(1)

			return
		}
	}

	cmd.PrintErrf("%v\n", err)
	os.Exit(1)
}
