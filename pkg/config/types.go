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

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultIndex           = "index.html"
	DefaultFavicon         = "assets/icons/favicon.ico"
	DefaultShutdownTimeout = Duration(10 * time.Second)
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// BootstrapConfig controls the npm steps run before serving.
type BootstrapConfig struct {
	Enabled         bool   `json:"enabled"`
	WorkDir         string `json:"work_dir"`         // e.g., "." (directory holding package.json)
	DependenciesDir string `json:"dependencies_dir"` // e.g., "node_modules"
	BuildDir        string `json:"build_dir"`        // e.g., "dist"
	NpmPath         string `json:"npm_path"`         // e.g., "npm"
}

// ServerConfig represents the configuration for the game server.
type ServerConfig struct {
	Host            string          `json:"host"`
	Port            int             `json:"port"`
	Root            string          `json:"root"`          // server root, e.g. "."
	IndexFile       string          `json:"index_file"`    // relative to Root
	FaviconFile     string          `json:"favicon_file"`  // relative to Root
	HealthAddr      string          `json:"health_addr"`   // gRPC health listener, disabled when empty
	ServiceName     string          `json:"service_name"`  // reported by the health service
	ShutdownTimeout Duration        `json:"shutdown_timeout"`
	Bootstrap       BootstrapConfig `json:"bootstrap"`
}

// Default returns the configuration used when no file is given.
func Default() *ServerConfig {
	return &ServerConfig{
		Host:            DefaultHost,
		Port:            DefaultPort,
		Root:            ".",
		IndexFile:       DefaultIndex,
		FaviconFile:     DefaultFavicon,
		ServiceName:     "rockpaperbattle",
		ShutdownTimeout: DefaultShutdownTimeout,
		Bootstrap: BootstrapConfig{
			WorkDir:         ".",
			DependenciesDir: "node_modules",
			BuildDir:        "dist",
			NpmPath:         "npm",
		},
	}
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (c *ServerConfig) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate implements Validator.
func (c *ServerConfig) Validate() error {
	if c.Host == "" {
		return errEmptyHost
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.Port)
	}

	if c.Root == "" {
		return errEmptyRoot
	}

	if c.IndexFile == "" {
		return errEmptyIndex
	}

	return nil
}
