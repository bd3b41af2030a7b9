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

// Package accesscontext carries per request facts, which are only known deep inside the handler,
// back to the middlewares wrapping it, like the access log.
package accesscontext

import (
	"context"

	"github.com/sgex/pathless/internal/fallback"
)

type ctxKey struct{}

type accessContext struct {
	err       error
	decision  *fallback.Decision
	requestID string
}

func New(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, &accessContext{})
}

func Error(ctx context.Context) error {
	if c, ok := ctx.Value(ctxKey{}).(*accessContext); ok {
		return c.err
	}

	return nil
}

func SetError(ctx context.Context, err error) {
	if c, ok := ctx.Value(ctxKey{}).(*accessContext); ok {
		c.err = err
	}
}

// Decision returns the fallback decision taken for the request, if any.
func Decision(ctx context.Context) (fallback.Decision, bool) {
	if c, ok := ctx.Value(ctxKey{}).(*accessContext); ok && c.decision != nil {
		return *c.decision, true
	}

	return fallback.Decision{}, false
}

func SetDecision(ctx context.Context, decision fallback.Decision) {
	if c, ok := ctx.Value(ctxKey{}).(*accessContext); ok {
		c.decision = &decision
	}
}

func RequestID(ctx context.Context) string {
	if c, ok := ctx.Value(ctxKey{}).(*accessContext); ok {
		return c.requestID
	}

	return ""
}

func SetRequestID(ctx context.Context, id string) {
	if c, ok := ctx.Value(ctxKey{}).(*accessContext); ok {
		c.requestID = id
	}
}
