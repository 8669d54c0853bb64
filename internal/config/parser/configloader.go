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

package parser

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

func New(opts ...Option) ConfigLoader {
	loader := &configLoader{o: defaultOptions}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// Load fills config, which must be a pointer to a struct carrying lowercase koanf tags.
// Values already present in config act as defaults, and are overridden by the yaml
// config file, which in turn is overridden by the environment.
func (c *configLoader) Load(config any) error {
	configFile, err := c.configFile()
	if err != nil {
		return err
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	loadAndMerge := func(load func() (*koanf.Koanf, error)) error {
		konf, err := load()
		if err != nil {
			return err
		}

		return parser.Load(
			confmap.Provider(konf.Raw(), ""),
			nil,
			koanf.WithMergeFunc(func(src, dest map[string]any) error {
				mergeMaps(dest, src)

				return nil
			}))
	}

	if len(configFile) != 0 {
		if err = loadAndMerge(func() (*koanf.Koanf, error) { return koanfFromYaml(configFile) }); err != nil {
			return err
		}
	}

	if err = loadAndMerge(func() (*koanf.Koanf, error) { return koanfFromEnv(c.o.envPrefix) }); err != nil {
		return err
	}

	err = parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Result:           config,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return errorchain.NewWithMessage(makestem.ErrConfiguration, "failed to decode config").CausedBy(err)
	}

	return nil
}

func (c *configLoader) configFile() (string, error) {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return "", errorchain.NewWithMessagef(makestem.ErrConfiguration,
				"config file %s is not accessible", c.o.configFile).CausedBy(err)
		}

		return c.o.configFile, nil
	}

	for _, dir := range c.o.configLookupDirs {
		path := filepath.Join(dir, c.o.defaultConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}
