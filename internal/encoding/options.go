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

package encoding

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/makestem/internal/validation"
)

type noopValidator struct{}

func (noopValidator) ValidateStruct(_ any) error { return nil }

type decoderOpts struct {
	contentType       string
	validator         validation.Validator
	errorOnUnused     bool
	substituteEnvVars bool
	decodeHooks       mapstructure.DecodeHookFunc
	tagName           string
}

type DecoderOption func(o *decoderOpts)

func WithSourceContentType(contentType string) DecoderOption {
	return func(o *decoderOpts) {
		if len(contentType) != 0 {
			o.contentType = contentType
		}
	}
}

func WithValidator(validator validation.Validator) DecoderOption {
	return func(o *decoderOpts) {
		if validator != nil {
			o.validator = validator
		}
	}
}

func WithErrorOnUnused(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.errorOnUnused = flag
	}
}

func WithEnvVarsSubstitution(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.substituteEnvVars = flag
	}
}

func WithDecodeHooks(hooks ...mapstructure.DecodeHookFunc) DecoderOption {
	return func(o *decoderOpts) {
		if len(hooks) != 0 {
			o.decodeHooks = mapstructure.ComposeDecodeHookFunc(hooks...)
		}
	}
}

func WithTagName(tagName string) DecoderOption {
	return func(o *decoderOpts) {
		if len(tagName) != 0 {
			o.tagName = tagName
		}
	}
}
