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

package benchmark

import (
	"github.com/rs/zerolog"
)

type opts struct {
	queries      int
	maxKeyLength int
	seed         uint64
	logger       zerolog.Logger
}

type Option func(o *opts)

// WithQueries sets the number of lookups performed against each container. Defaults to
// the number of keys.
func WithQueries(count int) Option {
	return func(o *opts) {
		if count > 0 {
			o.queries = count
		}
	}
}

// WithMaxKeyLength bounds the length of the generated keys. Values below the minimum key
// length are ignored.
func WithMaxKeyLength(length int) Option {
	return func(o *opts) {
		if length >= minKeyLength {
			o.maxKeyLength = length
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(o *opts) {
		o.seed = seed
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *opts) {
		o.logger = logger
	}
}
