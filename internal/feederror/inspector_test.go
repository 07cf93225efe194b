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
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
)

func TestIsNotFound(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("country US: %w", relayerrors.ErrAppNotFound),
			want: true,
		},
		{
			name: "status code in message",
			err:  errors.New("feed returned status 404"),
			want: true,
		},
		{
			name: "not found phrase",
			err:  errors.New("storefront Not Found"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("GET failed: %w", relayerrors.ErrNetworkFailure),
			want: true,
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:80: connection refused"),
			want: true,
		},
		{
			name: "dns failure",
			err:  errors.New("lookup feed.example.invalid: no such host"),
			want: true,
		},
		{
			name: "timeout",
			err:  errors.New("context deadline exceeded (Client.Timeout exceeded)"),
			want: true,
		},
		{
			name: "unexpected eof",
			err:  errors.New("unexpected EOF"),
			want: true,
		},
		{
			name: "parse failure is not a network error",
			err:  errors.New("invalid character '<' looking for beginning of value"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsParseError(t *testing.T) {
	inspector := NewInspector()

	var envelope struct{ Feed int }
	jsonErr := json.Unmarshal([]byte(`{"feed": "x"}`), &envelope)
	if jsonErr == nil {
		t.Fatal("expected unmarshal error for fixture")
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "real unmarshal type error",
			err:  jsonErr,
			want: true,
		},
		{
			name: "html instead of json",
			err:  errors.New("invalid character '<' looking for beginning of value"),
			want: true,
		},
		{
			name: "truncated body",
			err:  errors.New("unexpected end of JSON input"),
			want: true,
		},
		{
			name: "bad timestamp",
			err:  errors.New(`parsing time "yesterday" as "2006-01-02T15:04:05-07:00"`),
			want: true,
		},
		{
			name: "network error is not a parse error",
			err:  errors.New("connection reset by peer"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsParseError(tt.err); got != tt.want {
				t.Errorf("IsParseError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
