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

// Package setup wires configuration, logging and the resolver for the commands.
package setup

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/makestem/cmd/flags"
	"github.com/dadrus/makestem/internal/config"
	"github.com/dadrus/makestem/internal/logging"
	"github.com/dadrus/makestem/internal/resolver"
	"github.com/dadrus/makestem/internal/ruleset"
	"github.com/dadrus/makestem/internal/validation"
)

type App struct {
	Config   *config.Configuration
	Logger   zerolog.Logger
	Resolver *resolver.Resolver
	Format   config.OutputFormat
}

func (a *App) Close() {
	if a.Resolver != nil {
		a.Resolver.Close()
	}
}

// NewApp loads the configuration and the rule set referenced by the command flags and
// builds a resolver for it.
func NewApp(cmd *cobra.Command) (*App, error) {
	conf, err := Configuration(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(conf.Log)

	res, err := Resolver(cmd, conf, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   conf,
		Logger:   logger,
		Resolver: res,
		Format:   OutputFormat(cmd, conf),
	}, nil
}

func Validator() (validation.Validator, error) {
	budget := config.MemoryBudget{}

	return validation.NewValidator(
		validation.WithTagValidator(budget),
		validation.WithErrorTranslator(budget),
	)
}

func Configuration(cmd *cobra.Command) (*config.Configuration, error) {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)

	validator, err := Validator()
	if err != nil {
		return nil, err
	}

	return config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
}

func RuleSet(cmd *cobra.Command) (*ruleset.RuleSet, error) {
	path, _ := cmd.Flags().GetString(flags.RuleSet)

	return LoadRuleSet(path)
}

func LoadRuleSet(path string) (*ruleset.RuleSet, error) {
	if len(path) == 0 {
		return nil, ErrNoRuleSet
	}

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}

	return ruleset.Load(path, validator)
}

func Resolver(cmd *cobra.Command, conf *config.Configuration, logger zerolog.Logger) (*resolver.Resolver, error) {
	rs, err := RuleSet(cmd)
	if err != nil {
		return nil, err
	}

	return resolver.New(rs, conf.Trie,
		resolver.WithLogger(logger),
		resolver.WithCacheSize(conf.Cache.MaxEntries),
		resolver.WithOutput(cmd.OutOrStdout()),
	)
}

// OutputFormat returns the format given by the output flag, or the configured one if
// the flag is not set.
func OutputFormat(cmd *cobra.Command, conf *config.Configuration) config.OutputFormat {
	if format, _ := cmd.Flags().GetString(flags.Output); len(format) != 0 {
		return config.ParseOutputFormat(format)
	}

	if conf == nil {
		return config.OutputTextFormat
	}

	return conf.Output.Format
}
