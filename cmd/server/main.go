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

// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/mfreeman451/rockpaperbattle/pkg/bootstrap"
	"github.com/mfreeman451/rockpaperbattle/pkg/config"
	"github.com/mfreeman451/rockpaperbattle/pkg/lifecycle"
	"github.com/mfreeman451/rockpaperbattle/pkg/static"
	"github.com/mfreeman451/rockpaperbattle/pkg/web"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file (optional)")
	runBootstrap := flag.Bool("bootstrap", false, "Install npm dependencies and build before serving")
	flag.Parse()

	log.Printf("Starting Rock Paper Battle server...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	if *runBootstrap || cfg.Bootstrap.Enabled {
		if err := bootstrap.New(cfg.Bootstrap, nil, nil).Run(ctx); err != nil {
			log.Fatalf("Bootstrap failed: %v", err)
		}
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		log.Fatalf("Invalid root %q: %v", cfg.Root, err)
	}

	handler, err := static.NewDirHandler(root,
		static.WithIndex(cfg.IndexFile),
		static.WithFavicon(cfg.FaviconFile),
	)
	if err != nil {
		log.Fatalf("Failed to create static handler: %v", err)
	}

	server := web.NewServer(cfg.ListenAddr(), handler)

	// Bind up front so a taken port fails before anything else runs.
	if err := server.Listen(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}

	opts := &lifecycle.ServerOptions{
		ServiceName:     cfg.ServiceName,
		Service:         server,
		HealthAddr:      cfg.HealthAddr,
		ShutdownTimeout: time.Duration(cfg.ShutdownTimeout),
	}

	if err := lifecycle.RunServer(ctx, opts); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	log.Printf("Server stopped.")
}
