// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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

// Package errorchain links a sentinel error to the causes which led to it.
package errorchain

import (
	"errors"
	"fmt"
	"strings"
)

type link struct {
	err error
	msg string
}

func (l link) String() string {
	if len(l.msg) == 0 {
		return l.err.Error()
	}

	return l.err.Error() + ": " + l.msg
}

// ErrorChain is an ordered list of errors, the first one being the most specific. errors.Is
// matches against every element, errors.As against every error implementing the target.
type ErrorChain struct { // nolint: errname
	links []link
}

func New(err error) *ErrorChain {
	return &ErrorChain{links: []link{{err: err}}}
}

func NewWithMessage(err error, message string) *ErrorChain {
	return &ErrorChain{links: []link{{err: err, msg: message}}}
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return NewWithMessage(err, fmt.Sprintf(format, a...))
}

// CausedBy appends err as cause. A nil err leaves the chain untouched.
func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err != nil {
		ec.links = append(ec.links, link{err: err})
	}

	return ec
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, len(ec.links))

	for idx, l := range ec.links {
		parts[idx] = l.String()
	}

	return strings.Join(parts, ": ")
}

// Unwrap exposes every error of the chain to errors.Is and errors.As.
func (ec *ErrorChain) Unwrap() []error {
	return ec.Errors()
}

func (ec *ErrorChain) Errors() []error {
	errs := make([]error, len(ec.links))

	for idx, l := range ec.links {
		errs[idx] = l.err
	}

	return errs
}

// Message returns the message attached to the head of the chain.
func (ec *ErrorChain) Message() string {
	if len(ec.links) == 0 {
		return ""
	}

	return ec.links[0].msg
}

// Root returns the deepest cause.
func (ec *ErrorChain) Root() error {
	if len(ec.links) == 0 {
		return nil
	}

	root := ec.links[len(ec.links)-1].err
	for next := errors.Unwrap(root); next != nil; next = errors.Unwrap(next) {
		root = next
	}

	return root
}
