// Copyright 2026 The pathless Authors
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

package accesscontext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgex/pathless/internal/fallback"
	"github.com/sgex/pathless/internal/topology"
)

func TestAccessContextWithoutInitialization(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	SetError(ctx, errors.New("test error"))
	SetDecision(ctx, fallback.Decision{Kind: fallback.RootFallback, Target: "/"})
	SetRequestID(ctx, "foo")

	require.NoError(t, Error(ctx))
	assert.Empty(t, RequestID(ctx))

	_, ok := Decision(ctx)
	assert.False(t, ok)
}

func TestAccessContextRoundTrip(t *testing.T) {
	t.Parallel()

	// GIVEN
	ctx := New(context.Background())
	decision := fallback.Decision{
		Kind:           fallback.EncodedRedirect,
		Target:         "/sgex/?/dashboard",
		Classification: topology.Classification{Topology: topology.RootLanding},
	}

	// WHEN
	SetError(ctx, errors.New("test error"))
	SetDecision(ctx, decision)
	SetRequestID(ctx, "4711")

	// THEN
	require.EqualError(t, Error(ctx), "test error")
	assert.Equal(t, "4711", RequestID(ctx))

	got, ok := Decision(ctx)
	require.True(t, ok)
	assert.Equal(t, decision, got)
}
