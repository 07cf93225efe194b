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

package appstore

import "net/http"

// headerTransport stamps the standard headers onto every feed request.
// The feed rejects requests without a browser-like User-Agent.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

// newHeaderTransport creates a transport that adds the configured
// User-Agent and an Accept header to each request.
func newHeaderTransport(userAgent string) http.RoundTripper {
	return &headerTransport{
		base:      http.DefaultTransport,
		userAgent: userAgent,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(req)
}
