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

package config

import (
	"os"
	"path/filepath"

	"github.com/dadrus/makestem/internal/config/parser"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/validation"
	"github.com/dadrus/makestem/internal/x/errorchain"
)

const defaultConfigFileName = "makestem.yaml"

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Log    LoggingConfig `koanf:"log"`
	Trie   TrieConfig    `koanf:"trie"`
	Cache  CacheConfig   `koanf:"cache"`
	Output OutputConfig  `koanf:"output"`
}

// NewConfiguration loads the configuration from the given file, or from makestem.yaml in
// the working directory or $HOME/.config/makestem if no file is given, and applies the
// environment variables starting with envPrefix on top.
func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(outputFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithDefaultConfigFilename(defaultConfigFileName),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigLookupDir("."),
	}

	if home, err := os.UserHomeDir(); err == nil {
		opts = append(opts, parser.WithConfigLookupDir(filepath.Join(home, ".config", "makestem")))
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(makestem.ErrConfiguration,
			"failed to load configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(makestem.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
