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
	"fmt"
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/inhies/go-bytesize"

	"github.com/dadrus/makestem/trie"
)

type TrieConfig struct {
	MaxKeys   int               `koanf:"max_keys"   validate:"gt=0"`
	MaxChars  int               `koanf:"max_chars"  validate:"gt=0"`
	MaxMemory bytesize.ByteSize `koanf:"max_memory" validate:"gt=0,fits_memory"`
}

// Footprint is the memory a full trie with the configured bounds occupies.
func (c TrieConfig) Footprint() bytesize.ByteSize {
	return bytesize.ByteSize(trie.Footprint[any](c.MaxKeys, c.MaxChars))
}

type CacheConfig struct {
	MaxEntries uint64 `koanf:"max_entries"`
}

type OutputFormat int

const (
	OutputTextFormat OutputFormat = iota
	OutputJSONFormat
	OutputYAMLFormat
)

// ParseOutputFormat maps a format name to the OutputFormat. Unknown names result in
// OutputTextFormat.
func ParseOutputFormat(name string) OutputFormat {
	switch name {
	case "json":
		return OutputJSONFormat
	case "yaml":
		return OutputYAMLFormat
	default:
		return OutputTextFormat
	}
}

func (f OutputFormat) String() string {
	switch f {
	case OutputJSONFormat:
		return "json"
	case OutputYAMLFormat:
		return "yaml"
	default:
		return "text"
	}
}

type OutputConfig struct {
	Format OutputFormat `koanf:"format"`
}

// MemoryBudget verifies the trie bounds do not exceed the configured max_memory.
type MemoryBudget struct{}

func (MemoryBudget) Tag() string { return "fits_memory" }

func (MemoryBudget) Validate(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	conf, ok := parent.Interface().(TrieConfig)
	if !ok || conf.MaxKeys <= 0 || conf.MaxChars <= 0 {
		// the bounds are reported by their own rules
		return true
	}

	return conf.Footprint() <= conf.MaxMemory
}

func (MemoryBudget) MessageTemplate() string { return "{0} {1}" }

func (MemoryBudget) Translate(ut ut.Translator, fe validator.FieldError) string {
	conf, _ := fe.Value().(bytesize.ByteSize)
	msg := fmt.Sprintf("is %s, a trie with the configured bounds needs more", conf)

	translation, err := ut.T(fe.Tag(), fe.Field(), msg)
	if err != nil {
		return fe.Error()
	}

	return translation
}
