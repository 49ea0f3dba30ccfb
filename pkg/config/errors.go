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
	"errors"
)

var (
	errInvalidDuration = errors.New("invalid duration")
	errInvalidPort     = errors.New("port must be between 1 and 65535")
	errEmptyRoot       = errors.New("root directory is required")
	errEmptyIndex      = errors.New("index file is required")
	errEmptyHost       = errors.New("host is required")
)
