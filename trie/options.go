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

package trie

import (
	"io"

	"github.com/rs/zerolog"
)

type Option[V any] func(t *Trie[V])

// WithLogger sets the logger used to trace pushes and lookups. Only the trace level is
// used. Defaults to a no-op logger.
func WithLogger[V any](logger zerolog.Logger) Option[V] {
	return func(t *Trie[V]) {
		t.logger = logger
	}
}

// WithDebugSink sets the writer Print writes to. Defaults to os.Stdout.
func WithDebugSink[V any](sink io.Writer) Option[V] {
	return func(t *Trie[V]) {
		if sink != nil {
			t.sink = sink
		}
	}
}
