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

package fxlcm

import (
	"context"
	"net"

	"github.com/stretchr/testify/mock"
	"go.uber.org/fx"
)

type MockServer struct {
	mock.Mock
}

func (m *MockServer) Serve(l net.Listener) error {
	args := m.Called(l)

	return args.Error(0)
}

func (m *MockServer) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

type MockShutdowner struct {
	mock.Mock
}

func (m *MockShutdowner) Shutdown(_ ...fx.ShutdownOption) error {
	args := m.Called()

	return args.Error(0)
}
