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

// Package httpx holds middleware shared by the HTTP front.
package httpx

import (
	"log"
	"net/http"
)

// RequestLogger returns an http.Handler that logs the method and path of
// every request before calling the next handler.
func RequestLogger(next http.Handler) http.Handler {
	return LogRequests(log.Default())(next)
}

// LogRequests is RequestLogger with an explicit logger, usable as a
// mux.MiddlewareFunc.
func LogRequests(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Printf("%s %s", r.Method, r.URL.RequestURI())

			next.ServeHTTP(w, r)
		})
	}
}
