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

package serve

import (
	"bytes"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"
)

func TestEventLoggerLogEvent(t *testing.T) {
	t.Parallel()

	testErr := errors.New("test error")

	for _, tc := range []struct {
		uc     string
		evt    fxevent.Event
		expMsg string
	}{
		{
			uc:     "OnStartExecuting",
			evt:    &fxevent.OnStartExecuting{FunctionName: "start", CallerName: "caller"},
			expMsg: `{"level":"trace", "_functionName":"start", "_caller":"caller", "message":"OnStart hook executing"}`,
		},
		{
			uc:     "OnStartExecuted with error",
			evt:    &fxevent.OnStartExecuted{FunctionName: "start", CallerName: "caller", Err: testErr, Runtime: time.Second},
			expMsg: `{"level":"error", "_functionName":"start", "_caller":"caller", "error":"test error", "message":"OnStart hook failed"}`,
		},
		{
			uc:     "OnStartExecuted without error",
			evt:    &fxevent.OnStartExecuted{FunctionName: "start", CallerName: "caller", Runtime: time.Second},
			expMsg: `{"level":"trace", "_functionName":"start", "_caller":"caller", "_runtime":"1s", "message":"OnStart hook executed"}`,
		},
		{
			uc:     "OnStopExecuted with error",
			evt:    &fxevent.OnStopExecuted{FunctionName: "stop", CallerName: "caller", Err: testErr},
			expMsg: `{"level":"error", "_functionName":"stop", "_caller":"caller", "error":"test error", "message":"OnStop hook failed"}`,
		},
		{
			uc: "Supplied without error",
			evt: &fxevent.Supplied{
				TypeName:    "*config.Configuration",
				ModuleTrace: []string{"trace"},
				ModuleName:  "host",
			},
			expMsg: `{"level":"trace", "_type":"*config.Configuration", "_moduleTrace":["trace"], "_module":"host", "message":"Module supplied"}`,
		},
		{
			uc: "Provided without error",
			evt: &fxevent.Provided{
				OutputTypeNames: []string{"*host.Handler"},
				ConstructorName: "NewHandler",
				ModuleTrace:     []string{"trace"},
				ModuleName:      "host",
			},
			expMsg: `{"level":"trace", "_constructor":"NewHandler", "_stacktrace":[], "_moduleTrace":["trace"], "_module":"host", "_type":"*host.Handler", "_private":false, "message":"Module provided"}`,
		},
		{
			uc: "Provided with error",
			evt: &fxevent.Provided{
				StackTrace:  []string{"stack"},
				ModuleTrace: []string{"trace"},
				ModuleName:  "host",
				Err:         testErr,
			},
			expMsg: `{"level":"error", "_stacktrace":["stack"], "_moduleTrace":["trace"], "_module":"host", "error":"test error", "message":"Error encountered while providing module"}`,
		},
		{
			uc: "Replaced without error",
			evt: &fxevent.Replaced{
				OutputTypeNames: []string{"zerolog.Logger"},
				ModuleName:      "host",
			},
			expMsg: `{"level":"trace", "_stacktrace":[], "_moduleTrace":[], "_module":"host", "_type":"zerolog.Logger", "message":"Module replaced"}`,
		},
		{
			uc: "Decorated with error",
			evt: &fxevent.Decorated{
				DecoratorName: "decorate",
				ModuleName:    "host",
				Err:           testErr,
			},
			expMsg: `{"level":"error", "_stacktrace":[], "_moduleTrace":[], "_module":"host", "error":"test error", "message":"Error encountered while decorating module"}`,
		},
		{
			uc:     "Run without error",
			evt:    &fxevent.Run{Name: "NewHandler", Kind: "provide", ModuleName: "host", Runtime: time.Second},
			expMsg: `{"level":"trace", "_name":"NewHandler", "_kind":"provide", "_module":"host", "_runtime":"1s", "message":"Starting"}`,
		},
		{
			uc:     "Invoked with error",
			evt:    &fxevent.Invoked{FunctionName: "registerHooks", ModuleName: "host", Trace: "stack", Err: testErr},
			expMsg: `{"level":"error", "_function":"registerHooks", "_module":"host", "_stack":"stack", "error":"test error", "message":"Invoke failed"}`,
		},
		{
			uc:     "Stopping",
			evt:    &fxevent.Stopping{Signal: syscall.SIGINT},
			expMsg: `{"level":"trace", "_signal":"INTERRUPT", "message":"Received signal"}`,
		},
		{
			uc:     "RollingBack",
			evt:    &fxevent.RollingBack{StartErr: testErr},
			expMsg: `{"level":"error", "error":"test error", "message":"Start failed, rolling back"}`,
		},
		{
			uc:     "Started without error",
			evt:    &fxevent.Started{},
			expMsg: `{"level":"trace", "message":"Started"}`,
		},
		{
			uc:     "LoggerInitialized without error",
			evt:    &fxevent.LoggerInitialized{ConstructorName: "newLogger"},
			expMsg: `{"level":"trace", "_function":"newLogger", "message":"Initialized custom fxevent.Logger"}`,
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			buf := bytes.NewBufferString("")
			logger := &eventLogger{l: zerolog.New(buf).Level(zerolog.TraceLevel)}

			// WHEN
			logger.LogEvent(tc.evt)

			// THEN
			assert.JSONEq(t, tc.expMsg, buf.String())
		})
	}
}
