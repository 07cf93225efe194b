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

package feederror

import (
	"errors"
	"net"
	"strings"

	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
)

// Inspector provides methods for analyzing feed errors.
type Inspector interface {
	// IsNotFound returns true if the error means the app has no presence in
	// the requested storefront.
	IsNotFound(err error) bool

	// IsNetworkError returns true if the error represents a network
	// connectivity failure.
	IsNetworkError(err error) bool

	// IsParseError returns true if the error represents a malformed or
	// unexpected feed payload.
	IsParseError(err error) bool
}

// FeedErrorInspector implements the Inspector interface for syndication feed errors.
type FeedErrorInspector struct{}

// NewInspector creates a new FeedErrorInspector.
func NewInspector() Inspector {
	return &FeedErrorInspector{}
}

// IsNotFound checks if the error is a storefront not-found error.
func (i *FeedErrorInspector) IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, relayerrors.ErrAppNotFound) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "not found")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *FeedErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "eof")
}

// IsParseError checks if the error came from decoding the feed envelope.
func (i *FeedErrorInspector) IsParseError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "invalid character") ||
		strings.Contains(errStr, "unexpected end of json") ||
		strings.Contains(errStr, "cannot unmarshal") ||
		strings.Contains(errStr, "parsing time")
}
