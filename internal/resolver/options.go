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

package resolver

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type opts struct {
	logger     zerolog.Logger
	out        io.Writer
	maxEntries uint64
}

type Option func(*opts)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *opts) {
		o.logger = logger
	}
}

// WithOutput sets the writer Dump writes to.
func WithOutput(out io.Writer) Option {
	return func(o *opts) {
		if out != nil {
			o.out = out
		}
	}
}

// WithCacheSize bounds the number of memoized resolutions. 0 disables memoization.
func WithCacheSize(maxEntries uint64) Option {
	return func(o *opts) {
		o.maxEntries = maxEntries
	}
}

func defaultOptions() opts {
	return opts{
		logger: zerolog.Nop(),
		out:    os.Stdout,
	}
}
