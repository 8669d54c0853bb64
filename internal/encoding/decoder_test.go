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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/validation"
)

type testEntry struct {
	Name  string `json:"name"  validate:"required"`
	Value string `json:"value"`
}

type testDocument struct {
	Entries []testEntry `json:"entries" validate:"dive"`
}

func TestDecoderDecode(t *testing.T) {
	v, err := validation.NewValidator()
	require.NoError(t, err)

	for uc, tc := range map[string]struct {
		opts   []DecoderOption
		input  string
		assert func(t *testing.T, err error, doc testDocument)
	}{
		"yaml document": {
			input: "entries:\n  - name: foo\n    value: bar\n",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, testDocument{Entries: []testEntry{{Name: "foo", Value: "bar"}}}, doc)
			},
		},
		"json document": {
			opts:  []DecoderOption{WithSourceContentType(ContentTypeJSON)},
			input: `{"entries": [{"name": "foo"}, {"name": "bar", "value": "baz"}]}`,
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, testDocument{Entries: []testEntry{{Name: "foo"}, {Name: "bar", Value: "baz"}}}, doc)
			},
		},
		"environment variables substituted": {
			opts:  []DecoderOption{WithEnvVarsSubstitution(true)},
			input: "entries:\n  - name: ${DECODERTEST_NAME}\n    value: ${DECODERTEST_UNSET:-fallback}\n",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, testDocument{Entries: []testEntry{{Name: "from env", Value: "fallback"}}}, doc)
			},
		},
		"environment variables kept without substitution": {
			input: "entries:\n  - name: ${DECODERTEST_NAME}\n",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "${DECODERTEST_NAME}", doc.Entries[0].Name)
			},
		},
		"unsupported content type": {
			opts:  []DecoderOption{WithSourceContentType("text/plain")},
			input: "entries: []",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, makestem.ErrInternal)
				assert.Contains(t, err.Error(), "text/plain")
			},
		},
		"empty document": {
			input: "",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, io.EOF)
			},
		},
		"malformed document": {
			input: "entries: [",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, makestem.ErrConfiguration)
				assert.Contains(t, err.Error(), "parsing of object failed")
			},
		},
		"unused key rejected": {
			opts:  []DecoderOption{WithErrorOnUnused(true)},
			input: "entries:\n  - name: foo\n    other: bar\n",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, makestem.ErrConfiguration)
				assert.Contains(t, err.Error(), "decoding of object failed")
			},
		},
		"validation fails": {
			opts:  []DecoderOption{WithValidator(v)},
			input: "entries:\n  - value: bar\n",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, makestem.ErrConfiguration)
				assert.Contains(t, err.Error(), "'name' is a required field")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			t.Setenv("DECODERTEST_NAME", "from env")

			var doc testDocument

			// WHEN
			err := NewDecoder(tc.opts...).Decode(&doc, strings.NewReader(tc.input))

			// THEN
			tc.assert(t, err, doc)
		})
	}
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) { return 0, errors.New("test error") }

func TestDecoderDecodeReadFailure(t *testing.T) {
	t.Parallel()

	// GIVEN
	var doc testDocument

	// WHEN
	err := NewDecoder(WithEnvVarsSubstitution(true)).Decode(&doc, failingReader{})

	// THEN
	require.ErrorIs(t, err, makestem.ErrInternal)
}
