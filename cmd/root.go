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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/cmd/setup"
)

var (
	Version = "master"

	// RootCmd represents the base command when called without any subcommands.
	RootCmd = &cobra.Command{
		Use:           "makestem",
		Short:         "Resolves file names against make style pattern rules",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	flags.RegisterGlobalFlags(RootCmd)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		setup.Fail(RootCmd, err)
	}
}
