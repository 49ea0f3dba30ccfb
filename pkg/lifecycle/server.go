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
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreeman451/rockpaperbattle/pkg/grpc"
	ggrpc "google.golang.org/grpc"
)

const (
	MaxRecvSize     = 64 * 1024 // health requests carry a service name only
	MaxSendSize     = 64 * 1024
	ShutdownTimeout = 10 * time.Second
)

// ServerOptions holds configuration for running a service.
type ServerOptions struct {
	ServiceName     string
	Service         Service
	HealthAddr      string // gRPC health listener, disabled when empty
	ShutdownTimeout time.Duration

	signals chan os.Signal
}

// RunServer starts a service with the provided options and handles lifecycle.
// It returns an error when the service fails, e.g. because it cannot bind.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("*** Starting service %s", opts.ServiceName)

	errChan := make(chan error, 1)

	var health *grpc.Server

	if opts.HealthAddr != "" {
		health = grpc.NewServer(opts.HealthAddr,
			grpc.WithServerOptions(
				ggrpc.MaxRecvMsgSize(MaxRecvSize),
				ggrpc.MaxSendMsgSize(MaxSendSize),
			),
		)
		health.SetServing(opts.ServiceName, true)

		// The health endpoint is optional: losing it never stops the game server.
		go func() {
			if err := health.Start(); err != nil {
				log.Printf("Health server unavailable, continuing without it: %v", err)
			}
		}()
	}

	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	return handleShutdown(ctx, cancel, opts, health, errChan)
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc, opts *ServerOptions, health *grpc.Server, errChan chan error) error {
	sigChan := opts.signals
	if sigChan == nil {
		sigChan = make(chan os.Signal, 1)
	}

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down server...", sig)
	case err := <-errChan:
		log.Printf("Received error: %v, initiating shutdown", err)

		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Printf("Context canceled, initiating shutdown")
	}

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = ShutdownTimeout
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	cancel()

	if health != nil {
		health.Stop(shutdownCtx)
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		log.Printf("Error during service shutdown: %v", err)

		if runErr == nil {
			runErr = fmt.Errorf("shutdown error: %w", err)
		}
	}

	return runErr
}
