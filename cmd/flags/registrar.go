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

package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to makestem's configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD/makestem.yaml\n  2. $HOME/.config/makestem/makestem.yaml")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "MAKESTEM_",
		"Prefix for the environment variables to consider for\nloading configuration from")
	cmd.PersistentFlags().StringP(Output, "o", "",
		"Output format, one of text, json or yaml.\nOverrides the format from the configuration.")
}

func RegisterRuleSetFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(RuleSet, "r", "",
		"Path to the rule set file. Files ending with .json are read\nas JSON, all others as YAML.")
}
