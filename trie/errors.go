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

import "errors"

var (
	// ErrMalformedKey is returned by Push for keys with more than one naked '%' or with
	// characters outside of 7 bit ASCII.
	ErrMalformedKey = errors.New("malformed key")
	// ErrDuplicateKey is returned by Push if the key is already present. The trie is
	// left unchanged.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCapacityExceeded and ErrReleased are used as panic values only.
	ErrCapacityExceeded = errors.New("trie capacity exceeded")
	ErrReleased         = errors.New("trie has been released")
)
