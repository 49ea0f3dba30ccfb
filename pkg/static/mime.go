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
	"path"
	"strings"
)

const (
	// DefaultContentType is used for any extension missing from the MIME table.
	DefaultContentType = "application/octet-stream"

	iconContentType = "image/x-icon"
)

// mimeTypes is keyed by lowercased extension, leading dot included.
var mimeTypes = map[string]string{
	".html":        "text/html",
	".js":          "application/javascript",
	".css":         "text/css",
	".json":        "application/json",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".jpeg":        "image/jpeg",
	".gif":         "image/gif",
	".svg":         "image/svg+xml",
	".ico":         iconContentType,
	".wav":         "audio/wav",
	".mp3":         "audio/mpeg",
	".webp":        "image/webp",
	".webmanifest": "application/manifest+json",
}

// ContentType returns the content type for the extension of name.
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}

	return DefaultContentType
}
