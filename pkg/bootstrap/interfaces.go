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

package bootstrap

//go:generate mockgen -destination=mock_bootstrap.go -package=bootstrap github.com/mfreeman451/rockpaperbattle/pkg/bootstrap Runner

import "context"

// Runner executes an external command in a working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}
