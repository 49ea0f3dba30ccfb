/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lifecycle

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBind = errors.New("listen tcp 0.0.0.0:5000: bind: address already in use")

// blockingStart returns a Start implementation that signals started and
// blocks until its context is canceled.
func blockingStart(started chan<- struct{}) func(context.Context) error {
	return func(ctx context.Context) error {
		close(started)
		<-ctx.Done()

		return nil
	}
}

func TestRunServer(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(svc *MockService, started chan struct{})
		trigger     func(sigs chan os.Signal, cancel context.CancelFunc)
		expectError string
	}{
		{
			name: "signal_shuts_down",
			setup: func(svc *MockService, started chan struct{}) {
				svc.EXPECT().Start(gomock.Any()).DoAndReturn(blockingStart(started))
				svc.EXPECT().Stop(gomock.Any()).Return(nil)
			},
			trigger: func(sigs chan os.Signal, _ context.CancelFunc) {
				sigs <- syscall.SIGTERM
			},
		},
		{
			name: "context_cancel_shuts_down",
			setup: func(svc *MockService, started chan struct{}) {
				svc.EXPECT().Start(gomock.Any()).DoAndReturn(blockingStart(started))
				svc.EXPECT().Stop(gomock.Any()).Return(nil)
			},
			trigger: func(_ chan os.Signal, cancel context.CancelFunc) {
				cancel()
			},
		},
		{
			name: "bind_failure_is_fatal",
			setup: func(svc *MockService, started chan struct{}) {
				svc.EXPECT().Start(gomock.Any()).DoAndReturn(func(context.Context) error {
					close(started)

					return errBind
				})
				svc.EXPECT().Stop(gomock.Any()).Return(nil)
			},
			trigger:     func(chan os.Signal, context.CancelFunc) {},
			expectError: "address already in use",
		},
		{
			name: "stop_error_is_reported",
			setup: func(svc *MockService, started chan struct{}) {
				svc.EXPECT().Start(gomock.Any()).DoAndReturn(blockingStart(started))
				svc.EXPECT().Stop(gomock.Any()).Return(errors.New("drain failed"))
			},
			trigger: func(sigs chan os.Signal, _ context.CancelFunc) {
				sigs <- syscall.SIGINT
			},
			expectError: "shutdown error: drain failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockService(ctrl)
			started := make(chan struct{})
			tt.setup(svc, started)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			opts := &ServerOptions{
				ServiceName:     "rockpaperbattle",
				Service:         svc,
				ShutdownTimeout: time.Second,
				signals:         make(chan os.Signal, 1),
			}

			done := make(chan error, 1)
			go func() { done <- RunServer(ctx, opts) }()

			<-started
			tt.trigger(opts.signals, cancel)

			select {
			case err := <-done:
				if tt.expectError != "" {
					require.Error(t, err)
					assert.Contains(t, err.Error(), tt.expectError)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("RunServer did not return")
			}
		})
	}
}

func TestRunServerWithHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockService(ctrl)
	started := make(chan struct{})

	svc.EXPECT().Start(gomock.Any()).DoAndReturn(blockingStart(started))
	svc.EXPECT().Stop(gomock.Any()).Return(nil)

	opts := &ServerOptions{
		ServiceName: "rockpaperbattle",
		Service:     svc,
		HealthAddr:  "127.0.0.1:0",
		signals:     make(chan os.Signal, 1),
	}

	done := make(chan error, 1)
	go func() { done <- RunServer(context.Background(), opts) }()

	<-started
	opts.signals <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RunServer did not return")
	}
}

func TestRunServerSurvivesHealthBindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer taken.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockService(ctrl)
	started := make(chan struct{})

	svc.EXPECT().Start(gomock.Any()).DoAndReturn(blockingStart(started))
	svc.EXPECT().Stop(gomock.Any()).Return(nil)

	opts := &ServerOptions{
		ServiceName: "rockpaperbattle",
		Service:     svc,
		HealthAddr:  taken.Addr().String(),
		signals:     make(chan os.Signal, 1),
	}

	done := make(chan error, 1)
	go func() { done <- RunServer(context.Background(), opts) }()

	<-started

	assert.Never(t, func() bool { return len(done) > 0 }, 300*time.Millisecond, 20*time.Millisecond,
		"a failed health listener must not stop the server")

	opts.signals <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RunServer did not return")
	}
}
