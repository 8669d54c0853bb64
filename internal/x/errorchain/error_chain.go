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

package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err  error
	msg  string
	next *link
}

func (l *link) String() string {
	if len(l.msg) == 0 {
		return l.err.Error()
	}

	return l.err.Error() + ": " + l.msg
}

type report struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ErrorChain is an error made of a kind (the head) followed by its causes. errors.Is
// and errors.As walk the chain link by link.
type ErrorChain struct { // nolint: errname
	head *link
	tail *link
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).append(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).append(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).append(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err == nil {
		return ec
	}

	return ec.append(err, "")
}

func (ec *ErrorChain) Error() string {
	return ec.head.join()
}

func (ec *ErrorChain) Unwrap() error {
	if ec.head == nil || ec.head.next == nil {
		return nil
	}

	return &ErrorChain{head: ec.head.next, tail: ec.tail}
}

func (ec *ErrorChain) Is(target error) bool {
	return ec.head != nil && errors.Is(ec.head.err, target)
}

func (ec *ErrorChain) As(target any) bool {
	return ec.head != nil && errors.As(ec.head.err, target)
}

// Errors returns the errors of the chain, the kind first.
func (ec *ErrorChain) Errors() []error {
	var errs []error

	for l := ec.head; l != nil; l = l.next {
		errs = append(errs, l.err)
	}

	return errs
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	rep := report{
		Code:    strcase.ToLowerCamel(ec.head.err.Error()),
		Message: ec.head.msg,
	}

	if ec.head.next != nil {
		rep.Cause = ec.head.next.join()
	}

	return json.Marshal(rep)
}

func (l *link) join() string {
	parts := make([]string, 0, 2) //nolint:mnd

	for ; l != nil; l = l.next {
		parts = append(parts, l.String())
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) append(err error, msg string) *ErrorChain {
	next := &link{err: err, msg: msg}

	if ec.head == nil {
		ec.head = next
	} else {
		ec.tail.next = next
	}

	ec.tail = next

	return ec
}
