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

// Package static serves a single page application from a directory tree.
package static

import (
	"fmt"
	"log"
	"net/http"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// FaviconRoute is the request path answered from the favicon asset.
	FaviconRoute = "/favicon.ico"

	defaultIndex   = "/index.html"
	defaultFavicon = "/assets/icons/favicon.ico"
)

// Option is a function type that modifies Handler configuration.
type Option func(*Handler)

// Handler maps requests onto files in an afero filesystem rooted at the
// server root.
type Handler struct {
	fs          afero.Fs
	indexPath   string
	faviconPath string
}

// NewHandler creates a Handler serving files from fsys.
func NewHandler(fsys afero.Fs, opts ...Option) (*Handler, error) {
	if fsys == nil {
		return nil, errNilFilesystem
	}

	h := &Handler{
		fs:          fsys,
		indexPath:   defaultIndex,
		faviconPath: defaultFavicon,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// NewDirHandler creates a Handler for the directory root on the OS filesystem.
// Paths that would leave root are treated as missing.
func NewDirHandler(root string, opts ...Option) (*Handler, error) {
	return NewHandler(afero.NewBasePathFs(afero.NewOsFs(), root), opts...)
}

// WithIndex sets the document served for "/" and for missing paths.
func WithIndex(name string) Option {
	return func(h *Handler) {
		h.indexPath = rooted(name)
	}
}

// WithFavicon sets the asset answering FaviconRoute.
func WithFavicon(name string) Option {
	return func(h *Handler) {
		h.faviconPath = rooted(name)
	}
}

// IndexPath returns the rooted path of the index document.
func (h *Handler) IndexPath() string {
	return h.indexPath
}

// Resolve maps a URL path to the file this handler would serve.
func (h *Handler) Resolve(urlPath string) Resolution {
	return Resolve(h.fs, urlPath, h.indexPath)
}

// ServeHTTP implements http.Handler. The request method is not inspected.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == FaviconRoute && exists(h.fs, h.faviconPath) {
		h.serveFile(w, h.faviconPath, iconContentType)

		return
	}

	res := h.Resolve(r.URL.Path)

	h.serveFile(w, res.Path, ContentType(res.Path))
}

func (h *Handler) serveFile(w http.ResponseWriter, name, contentType string) {
	data, err := afero.ReadFile(h.fs, name)
	if err != nil {
		log.Printf("Error reading %s: %v", name, err)
		http.Error(w, fmt.Sprintf("Server Error: %s", ErrorCode(err)), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing response for %s: %v", name, err)
	}
}

func rooted(name string) string {
	return path.Join("/", filepath.ToSlash(name))
}
