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
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

type opts struct {
	configFile            string
	defaultConfigFileName string
	configLookupDirs      []string
	envPrefix             string
	decodeHooks           []mapstructure.DecodeHookFunc
}

var defaultOptions = opts{ //nolint:gochecknoglobals
	defaultConfigFileName: "config.yaml",
	envPrefix:             "MAKESTEM_",
}

type Option func(*opts)

func WithConfigFile(file string) Option {
	return func(o *opts) {
		if configFile := strings.TrimSpace(file); len(configFile) != 0 {
			o.configFile = configFile
		}
	}
}

func WithDefaultConfigFilename(name string) Option {
	return func(o *opts) {
		if fileName := strings.TrimSpace(name); len(fileName) != 0 {
			o.defaultConfigFileName = fileName
		}
	}
}

// WithConfigLookupDir adds a directory searched for the default config file if no
// config file has been given explicitly. Directories are searched in the order added.
func WithConfigLookupDir(dir string) Option {
	return func(o *opts) {
		if lookupDir := strings.TrimSpace(dir); len(lookupDir) != 0 {
			o.configLookupDirs = append(o.configLookupDirs, lookupDir)
		}
	}
}

func WithEnvPrefix(prefix string) Option {
	return func(o *opts) {
		if envPrefix := strings.TrimSpace(prefix); len(envPrefix) != 0 {
			o.envPrefix = envPrefix
		}
	}
}

func WithDecodeHookFunc(hook mapstructure.DecodeHookFunc) Option {
	return func(o *opts) {
		if hook != nil {
			o.decodeHooks = append(o.decodeHooks, hook)
		}
	}
}
