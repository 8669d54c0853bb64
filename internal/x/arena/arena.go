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

// Package arena implements a fixed-capacity slot pool. All slots are carved out of a
// single block allocated up front, so the address of a slot never changes while the
// arena is alive. Slots are never freed individually.
package arena

import (
	"errors"
	"fmt"

	"github.com/ccoveille/go-safecast"
)

var ErrCapacityExceeded = errors.New("arena capacity exceeded")

// Handle identifies a slot. Handles are only meaningful for the arena that issued them.
type Handle uint32

type Arena[T any] struct {
	slots []T
}

// New creates an arena able to hand out exactly capacity slots. It panics if capacity
// is negative or does not fit into the handle space.
func New[T any](capacity int) *Arena[T] {
	if _, err := safecast.Convert[uint32](capacity); err != nil {
		panic(fmt.Errorf("%w: invalid capacity %d: %w", ErrCapacityExceeded, capacity, err))
	}

	return &Arena[T]{slots: make([]T, 0, capacity)}
}

// Allocate returns the handle of a fresh, zero-valued slot. Running out of slots is a
// sizing error of the caller and results in a panic.
func (a *Arena[T]) Allocate() Handle {
	if len(a.slots) == cap(a.slots) {
		panic(fmt.Errorf("%w: all %d slots are in use", ErrCapacityExceeded, cap(a.slots)))
	}

	handle := Handle(safecast.MustConvert[uint32](len(a.slots)))

	var zero T

	// never reallocates, the backing array has been sized in New
	a.slots = append(a.slots, zero)

	return handle
}

func (a *Arena[T]) Get(handle Handle) *T { return &a.slots[handle] }

func (a *Arena[T]) Len() int { return len(a.slots) }

func (a *Arena[T]) Cap() int { return cap(a.slots) }

// Release drops the whole block. The arena must not be used afterwards.
func (a *Arena[T]) Release() { a.slots = nil }
