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

// Package web pkg/web/server.go
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	httpx "github.com/mfreeman451/rockpaperbattle/pkg/http"
)

// Server is the HTTP front of the game: a mux router with request logging
// in front of the static handler.
type Server struct {
	mu       sync.RWMutex
	addr     string
	router   *mux.Router
	srv      *http.Server
	listener net.Listener
}

// NewServer creates a Server that will bind to addr and serve files through h.
func NewServer(addr string, h http.Handler) *Server {
	s := &Server{
		addr:   addr,
		// static.Resolve cleans paths; mux would answer unclean ones with a 301.
		router: mux.NewRouter().SkipClean(true),
	}

	s.setupRoutes(h)

	s.srv = &http.Server{
		Handler: s.router,
	}

	return s
}

func (s *Server) setupRoutes(h http.Handler) {
	s.router.Use(httpx.RequestLogger)

	// No method matcher: every method reaches the static handler.
	s.router.PathPrefix("/").Handler(h)
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the bound address once the server is listening, the
// configured one before.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.addr
}

// Listen binds the listening socket without serving.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errAlreadyStarted
	}

	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.listener = lis

	return nil
}

// Start binds if needed and serves until Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.RLock()
	bound := s.listener != nil
	s.mu.RUnlock()

	if !bound {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	log.Printf("Rock Paper Battle server running at http://%s/", s.Addr())

	s.mu.RLock()
	lis := s.listener
	s.mu.RUnlock()

	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Shutdown only closes listeners Serve has seen.
	if s.listener != nil {
		_ = s.listener.Close()
	}

	return nil
}
