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

// Package testutil provides common test helpers for review-relay
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// FeedEntry describes one review entry served by the mock feed.
type FeedEntry struct {
	ID      string
	Author  string
	Version string
	Rating  int
	Title   string
	Body    string
	Votes   int
	Date    time.Time
}

// NewFeedEntry creates a deterministic entry; i controls identity and age
// (higher i means older).
func NewFeedEntry(i int) FeedEntry {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.FixedZone("PDT", -7*3600))
	return FeedEntry{
		ID:      strconv.Itoa(1000 + i),
		Author:  fmt.Sprintf("user%d", i),
		Version: "1.0",
		Rating:  (i % 5) + 1,
		Title:   fmt.Sprintf("Review %d", i),
		Body:    fmt.Sprintf("Body of review %d", i),
		Votes:   0,
		Date:    base.Add(-time.Duration(i) * time.Hour),
	}
}

// entryJSON renders one entry in the feed's label-wrapped wire form.
func entryJSON(e FeedEntry) string {
	return fmt.Sprintf(`{
		"id": {"label": %q},
		"author": {"name": {"label": %q}},
		"im:version": {"label": %q},
		"im:rating": {"label": "%d"},
		"title": {"label": %q},
		"content": {"label": %q},
		"im:voteCount": {"label": "%d"},
		"im:voteSum": {"label": "%d"},
		"updated": {"label": %q}
	}`, e.ID, e.Author, e.Version, e.Rating, e.Title, e.Body, e.Votes, e.Votes,
		e.Date.Format("2006-01-02T15:04:05-07:00"))
}

// FeedPageJSON renders a complete feed page envelope. When hasNext is true
// the envelope advertises a rel="next" link.
func FeedPageJSON(entries []FeedEntry, hasNext bool) string {
	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = entryJSON(e)
	}
	links := `[{"attributes": {"rel": "self", "href": "https://example.com/page=1"}}`
	if hasNext {
		links += `, {"attributes": {"rel": "next", "href": "https://example.com/page=2"}}`
	}
	links += `]`
	return fmt.Sprintf(`{"feed": {"entry": [%s], "link": %s}}`,
		strings.Join(rendered, ","), links)
}

// FeedServer serves a configurable set of feed pages per storefront country.
type FeedServer struct {
	*httptest.Server
	requestCount int64
}

var feedPathPattern = regexp.MustCompile(`^/([a-z]{2})/rss/customerreviews/page=(\d+)/sortby=mostrecent/id=(\d+)/json$`)

// NewFeedServer creates a mock feed. pages maps a lower-case country code to
// its page contents; countries not in the map answer 404, like storefronts
// where the app is absent.
func NewFeedServer(t *testing.T, pages map[string][][]FeedEntry) *FeedServer {
	t.Helper()

	fs := &FeedServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fs.requestCount, 1)

		m := feedPathPattern.FindStringSubmatch(r.URL.Path)
		if m == nil {
			t.Errorf("unexpected feed request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		cc := m[1]
		page, _ := strconv.Atoi(m[2])

		countryPages, ok := pages[cc]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if page > len(countryPages) {
			fmt.Fprint(w, FeedPageJSON(nil, false))
			return
		}
		fmt.Fprint(w, FeedPageJSON(countryPages[page-1], page < len(countryPages)))
	}))

	t.Cleanup(fs.Server.Close)
	return fs
}

// RequestCount returns the number of feed requests served.
func (s *FeedServer) RequestCount() int {
	return int(atomic.LoadInt64(&s.requestCount))
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	}))
	t.Cleanup(server.Close)
	return server
}
