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

package fxlcm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/testsupport"
)

func closeListener(args mock.Arguments) {
	ln := args.Get(0).(net.Listener) // nolint: forcetypeassert
	_ = ln.Close()
}

func TestLifecycleManagerStart(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		setup  func(t *testing.T, srv *MockServer, sd *MockShutdowner)
		assert func(t *testing.T, sd *MockShutdowner, logs string)
	}{
		{
			uc: "successful start",
			setup: func(t *testing.T, srv *MockServer, _ *MockShutdowner) {
				t.Helper()

				srv.On("Serve", mock.Anything).Run(closeListener).Return(nil)
			},
			assert: func(t *testing.T, sd *MockShutdowner, logs string) {
				t.Helper()

				sd.AssertNotCalled(t, "Shutdown")
				assert.Contains(t, logs, "Starting listening")
				assert.NotContains(t, logs, "error")
			},
		},
		{
			uc: "failed to start",
			setup: func(t *testing.T, srv *MockServer, sd *MockShutdowner) {
				t.Helper()

				srv.On("Serve", mock.Anything).Run(closeListener).Return(errors.New("test error"))
				sd.On("Shutdown").Return(nil)
			},
			assert: func(t *testing.T, sd *MockShutdowner, logs string) {
				t.Helper()

				sd.AssertCalled(t, "Shutdown")
				assert.Contains(t, logs, "Starting listening")
				assert.Contains(t, logs, "test error")
			},
		},
		{
			uc: "started and stopped successfully",
			setup: func(t *testing.T, srv *MockServer, _ *MockShutdowner) {
				t.Helper()

				srv.On("Serve", mock.Anything).Run(closeListener).Return(http.ErrServerClosed)
			},
			assert: func(t *testing.T, sd *MockShutdowner, logs string) {
				t.Helper()

				sd.AssertNotCalled(t, "Shutdown")
				assert.Contains(t, logs, "Service stopped")
				assert.NotContains(t, logs, "error")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			port, err := testsupport.GetFreePort()
			require.NoError(t, err)

			srv := &MockServer{}
			sd := &MockShutdowner{}
			tc.setup(t, srv, sd)

			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			lcm := &LifecycleManager{
				ServiceName:    "foo",
				ServiceAddress: fmt.Sprintf("127.0.0.1:%d", port),
				Server:         srv,
				Logger:         logger,
				Shutdowner:     sd,
			}

			// WHEN
			err = lcm.Start(context.TODO())
			time.Sleep(50 * time.Millisecond)

			// THEN
			require.NoError(t, err)
			srv.AssertExpectations(t)
			tc.assert(t, sd, tb.CollectedLog())
		})
	}
}

func TestLifecycleManagerStartFailsForInvalidAddress(t *testing.T) {
	t.Parallel()

	lcm := &LifecycleManager{
		ServiceName:    "foo",
		ServiceAddress: "127.0.0.1:-1",
		Server:         &MockServer{},
		Logger:         zerolog.Nop(),
	}

	err := lcm.Start(context.TODO())

	require.ErrorIs(t, err, pathless.ErrInternal)
	require.ErrorContains(t, err, "foo service")
}

func TestLifecycleManagerStop(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		setup  func(t *testing.T, srv *MockServer)
		assert func(t *testing.T, err error, logs string)
	}{
		{
			uc: "stopped without error",
			setup: func(t *testing.T, srv *MockServer) {
				t.Helper()

				srv.On("Shutdown", mock.Anything).Return(nil)
			},
			assert: func(t *testing.T, err error, logs string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logs, "Tearing down service")
				assert.NotContains(t, logs, "error")
			},
		},
		{
			uc: "stopped with error",
			setup: func(t *testing.T, srv *MockServer) {
				t.Helper()

				srv.On("Shutdown", mock.Anything).Return(errors.New("test error"))
			},
			assert: func(t *testing.T, err error, logs string) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, logs, "Tearing down service")
				assert.Contains(t, logs, "test error")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			srv := &MockServer{}
			tc.setup(t, srv)

			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			lcm := &LifecycleManager{
				ServiceName: "foo",
				Server:      srv,
				Logger:      logger,
			}

			// WHEN
			err := lcm.Stop(context.TODO())

			// THEN
			tc.assert(t, err, tb.CollectedLog())
		})
	}
}
