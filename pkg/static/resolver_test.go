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

package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"index.html":             "text/html",
		"game.js":                "application/javascript",
		"style.css":              "text/css",
		"levels.json":            "application/json",
		"sprite.png":             "image/png",
		"photo.jpg":              "image/jpeg",
		"photo.JPEG":             "image/jpeg",
		"anim.gif":               "image/gif",
		"logo.svg":               "image/svg+xml",
		"favicon.ico":            "image/x-icon",
		"hit.wav":                "audio/wav",
		"theme.mp3":              "audio/mpeg",
		"hero.webp":              "image/webp",
		"site.webmanifest":       "application/manifest+json",
		"archive.tar.gz":         DefaultContentType,
		"README":                 DefaultContentType,
		"/nested/dir.html/video": DefaultContentType,
	}

	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}

func TestResolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/index.html", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/js/app.js", []byte("x"), 0o644))

	tests := []struct {
		name     string
		urlPath  string
		expected Resolution
	}{
		{
			name:     "root",
			urlPath:  "/",
			expected: Resolution{Candidate: "/index.html", Path: "/index.html"},
		},
		{
			name:     "existing file",
			urlPath:  "/js/app.js",
			expected: Resolution{Candidate: "/js/app.js", Path: "/js/app.js"},
		},
		{
			name:     "client route",
			urlPath:  "/lobby/42",
			expected: Resolution{Candidate: "/lobby/42", Path: "/index.html", Fallback: true},
		},
		{
			name:     "dot segments are cleaned",
			urlPath:  "/js/../js/app.js",
			expected: Resolution{Candidate: "/js/app.js", Path: "/js/app.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(fsys, tt.urlPath, "/index.html"))
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"permission", &os.PathError{Op: "open", Path: "/x", Err: syscall.EACCES}, "EACCES"},
		{"not exist", &os.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}, "ENOENT"},
		{"wrapped", fmt.Errorf("read: %w", &os.PathError{Op: "read", Path: "/x", Err: syscall.EACCES}), "EACCES"},
		{"sentinel not exist", fs.ErrNotExist, "ENOENT"},
		{"opaque", errors.New("boom"), unknownErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}
