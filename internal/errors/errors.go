// Copyright 2025 AppWatch HQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across the application.
// The scripting contract is binary (exit 0 or 1), so the sentinels exist to tell
// failure classes apart for messaging and per-country isolation, not for exit codes.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrInvalidCountry indicates a requested storefront country code is not
	// in the supported set. Detected before any network activity and aborts
	// the whole run.
	ErrInvalidCountry = errors.New("unknown storefront country code")

	// ErrAppNotFound indicates the app has no presence in a given storefront.
	// The feed answers 404 for such combinations; the country simply yields
	// no further reviews.
	ErrAppNotFound = errors.New("app not available in storefront")

	// ErrFetchFailed indicates a feed page could not be fetched or parsed.
	// Fatal to that country's fetch only; remaining countries proceed.
	ErrFetchFailed = errors.New("feed fetch failed")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrWriteFailed indicates an output file could not be written.
	ErrWriteFailed = errors.New("output write failed")
)
