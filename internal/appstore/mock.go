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

import (
	"context"
	"fmt"

	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Pages holds the feed content per country. Page n of a country is
	// Pages[country][n-1]; requests beyond the configured pages yield an
	// empty final page.
	Pages map[string][][]Review

	// FailCountries maps a country to the error its fetch should produce.
	FailCountries map[string]error

	// NotFoundCountries lists countries the feed answers 404 for.
	NotFoundCountries map[string]bool

	// FailOnPage, when > 0, fails the given page number of every country
	// with a fetch error. Used to exercise mid-pagination failures.
	FailOnPage int

	// Track calls for verification
	CallCount   int
	LastAppID   int64
	LastCountry string
	LastPage    int
}

// NewMockClient creates an empty mock client. Configure Pages and the
// failure fields before use.
func NewMockClient() *MockClient {
	return &MockClient{
		Pages:             make(map[string][][]Review),
		FailCountries:     make(map[string]error),
		NotFoundCountries: make(map[string]bool),
	}
}

// FetchReviewPage implements the Client interface.
func (m *MockClient) FetchReviewPage(ctx context.Context, appID int64, country string, page int) (*ReviewPage, error) {
	m.CallCount++
	m.LastAppID = appID
	m.LastCountry = country
	m.LastPage = page

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.NotFoundCountries[country] {
		return nil, fmt.Errorf("country %s: %w", country, relayerrors.ErrAppNotFound)
	}

	if err, ok := m.FailCountries[country]; ok {
		return nil, err
	}

	if m.FailOnPage > 0 && page == m.FailOnPage {
		return nil, fmt.Errorf("country %s page %d: %w", country, page, relayerrors.ErrFetchFailed)
	}

	pages := m.Pages[country]
	if page > len(pages) {
		return &ReviewPage{Reviews: nil, HasNextPage: false}, nil
	}

	return &ReviewPage{
		Reviews:     pages[page-1],
		HasNextPage: page < len(pages),
	}, nil
}
