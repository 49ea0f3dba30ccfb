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

// Package bootstrap prepares the frontend before it is served: it installs
// npm dependencies and builds the bundle when their output is missing.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mfreeman451/rockpaperbattle/pkg/config"
	"github.com/spf13/afero"
)

// ExecRunner runs commands with os/exec, passing output through.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Bootstrapper runs the install and build steps.
type Bootstrapper struct {
	fs     afero.Fs
	runner Runner
	cfg    config.BootstrapConfig
}

// New creates a Bootstrapper. A nil fs means the OS filesystem and a nil
// runner means ExecRunner.
func New(cfg config.BootstrapConfig, fs afero.Fs, runner Runner) *Bootstrapper {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if runner == nil {
		runner = ExecRunner{}
	}

	return &Bootstrapper{fs: fs, runner: runner, cfg: cfg}
}

// Run installs dependencies and builds the project. Only a failed install
// is returned as an error; a failed build leaves the server in development
// mode, which serves the same files.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.EnsureDependencies(ctx); err != nil {
		return err
	}

	if err := b.Build(ctx); err != nil {
		log.Printf("%v", err)
		log.Printf("Falling back to development mode...")
	}

	return nil
}

// EnsureDependencies runs "npm install" when the dependencies directory is missing.
func (b *Bootstrapper) EnsureDependencies(ctx context.Context) error {
	if b.present(b.cfg.DependenciesDir) {
		return nil
	}

	log.Printf("Installing Node.js dependencies...")

	if err := b.runner.Run(ctx, b.cfg.WorkDir, b.cfg.NpmPath, "install"); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	return nil
}

// Build runs "npm run build" when the build output directory is missing.
func (b *Bootstrapper) Build(ctx context.Context) error {
	if b.present(b.cfg.BuildDir) {
		return nil
	}

	log.Printf("Building project...")

	if err := b.runner.Run(ctx, b.cfg.WorkDir, b.cfg.NpmPath, "run", "build"); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	return nil
}

func (b *Bootstrapper) present(dir string) bool {
	ok, err := afero.Exists(b.fs, filepath.Join(b.cfg.WorkDir, dir))
	if err != nil {
		log.Printf("Error checking %s: %v", dir, err)
	}

	return ok
}
