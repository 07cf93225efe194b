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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
	"github.com/appwatchhq/review-relay/internal/feederror"
)

// FeedClient fetches review pages from the public syndication feed over HTTP.
// A client-side rate limiter enforces the politeness pause between
// consecutive page requests; the first request of a run is not delayed.
type FeedClient struct {
	endpoint  string
	hc        *http.Client
	limiter   *rate.Limiter
	inspector feederror.Inspector
}

// NewFeedClient creates a feed client for the given endpoint. pause is the
// minimum interval between consecutive requests; zero disables the pause.
func NewFeedClient(endpoint, userAgent string, timeout, pause time.Duration) *FeedClient {
	limit := rate.Inf
	if pause > 0 {
		limit = rate.Every(pause)
	}
	return &FeedClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		hc: &http.Client{
			Timeout:   timeout,
			Transport: newHeaderTransport(userAgent),
		},
		limiter:   rate.NewLimiter(limit, 1),
		inspector: feederror.NewInspector(),
	}
}

// pageURL builds the feed URL for one page of one app+storefront combination.
func (c *FeedClient) pageURL(appID int64, country string, page int) string {
	return fmt.Sprintf("%s/%s/rss/customerreviews/page=%d/sortby=mostrecent/id=%d/json",
		c.endpoint, strings.ToLower(country), page, appID)
}

// FetchReviewPage implements the Client interface. It waits on the rate
// limiter, performs one GET, and decodes the feed envelope. A 404 response
// means the app has no presence in the storefront and is reported as
// ErrAppNotFound; every other failure is wrapped with the country and page
// it occurred on.
func (c *FeedClient) FetchReviewPage(ctx context.Context, appID int64, country string, page int) (*ReviewPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.pageURL(appID, country, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("country %s page %d: %w", country, page, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if c.inspector.IsNetworkError(err) {
			return nil, fmt.Errorf("country %s page %d: %v: %w", country, page, err, relayerrors.ErrNetworkFailure)
		}
		return nil, fmt.Errorf("country %s page %d: %v: %w", country, page, err, relayerrors.ErrFetchFailed)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("country %s: %w", country, relayerrors.ErrAppNotFound)
	default:
		return nil, fmt.Errorf("country %s page %d: feed returned status %d: %w",
			country, page, resp.StatusCode, relayerrors.ErrFetchFailed)
	}

	var envelope feedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("country %s page %d: decoding feed: %v: %w",
			country, page, err, relayerrors.ErrFetchFailed)
	}

	canonical := strings.ToUpper(country)
	reviews := make([]Review, 0, len(envelope.Feed.Entry))
	for _, entry := range envelope.Feed.Entry {
		review, err := entry.toReview(canonical)
		if err != nil {
			return nil, fmt.Errorf("country %s page %d: malformed entry: %v: %w",
				country, page, err, relayerrors.ErrFetchFailed)
		}
		reviews = append(reviews, review)
	}

	return &ReviewPage{
		Reviews:     reviews,
		HasNextPage: envelope.hasNext(),
	}, nil
}
