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

	"github.com/spf13/afero"
)

// Resolution records how a request path was mapped onto the server root.
type Resolution struct {
	// Candidate is the path derived from the request before the existence check.
	Candidate string
	// Path is the file that will be served.
	Path string
	// Fallback is set when Candidate did not exist and Path is the index.
	Fallback bool
}

// Resolve maps a URL path to a file in fsys. The root path maps to index;
// any path that does not exist is replaced by index.
func Resolve(fsys afero.Fs, urlPath, index string) Resolution {
	candidate := index
	if urlPath != "/" {
		candidate = path.Join("/", urlPath)
	}

	res := Resolution{Candidate: candidate, Path: candidate}

	if !exists(fsys, candidate) {
		res.Path = index
		res.Fallback = true
	}

	return res
}

func exists(fsys afero.Fs, name string) bool {
	_, err := fsys.Stat(name)

	return err == nil
}
