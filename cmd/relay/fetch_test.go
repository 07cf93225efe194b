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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/appwatchhq/review-relay/internal/appstore"
	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
	"github.com/appwatchhq/review-relay/internal/output"
)

func TestParseAppID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "12345", want: 12345},
		{input: " 42 ", want: 42},
		{input: "0", wantErr: true},
		{input: "-7", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "12.5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseAppID(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAppID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseAppID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFileNames(t *testing.T) {
	if got := countryFileName(12345, "US"); got != "12345-us.json" {
		t.Errorf("countryFileName() = %q, want 12345-us.json", got)
	}
	if got := mergedFileName(12345); got != "12345-all.json" {
		t.Errorf("mergedFileName() = %q, want 12345-all.json", got)
	}
}

// testReview builds a review with a deterministic timestamp offset in hours.
func testReview(id string, country string, hoursAgo int) appstore.Review {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return appstore.Review{
		ID:         id,
		Author:     "user-" + id,
		Rating:     4,
		Title:      "review " + id,
		Body:       "body " + id,
		Date:       base.Add(-time.Duration(hoursAgo) * time.Hour),
		AppVersion: "1.0",
		Country:    country,
	}
}

func TestFetchCountryReviews(t *testing.T) {
	tests := []struct {
		name        string
		pages       [][]appstore.Review
		wantReviews int
		wantPages   int
	}{
		{
			name: "three pages",
			pages: [][]appstore.Review{
				{testReview("1", "US", 1), testReview("2", "US", 2)},
				{testReview("3", "US", 3), testReview("4", "US", 4)},
				{testReview("5", "US", 5)},
			},
			wantReviews: 5,
			wantPages:   3,
		},
		{
			name: "single page",
			pages: [][]appstore.Review{
				{testReview("1", "US", 1)},
			},
			wantReviews: 1,
			wantPages:   1,
		},
		{
			name:        "no pages",
			pages:       nil,
			wantReviews: 0,
			wantPages:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := appstore.NewMockClient()
			client.Pages["US"] = tt.pages

			reviews, pages, err := fetchCountryReviews(context.Background(), client, 1, "US")
			if err != nil {
				t.Fatalf("fetchCountryReviews() error: %v", err)
			}
			if len(reviews) != tt.wantReviews {
				t.Errorf("review count = %d, want %d", len(reviews), tt.wantReviews)
			}
			if pages != tt.wantPages {
				t.Errorf("page count = %d, want %d", pages, tt.wantPages)
			}
			// One request per page: the last page carries no next link, so
			// the loop never asks for a page beyond it.
			wantCalls := tt.wantPages
			if client.CallCount != wantCalls {
				t.Errorf("request count = %d, want %d", client.CallCount, wantCalls)
			}
		})
	}
}

func TestFetchCountryReviewsNotFound(t *testing.T) {
	client := appstore.NewMockClient()
	client.NotFoundCountries["VA"] = true

	reviews, pages, err := fetchCountryReviews(context.Background(), client, 1, "VA")
	if err != nil {
		t.Fatalf("fetchCountryReviews() error: %v", err)
	}
	if len(reviews) != 0 || pages != 0 {
		t.Errorf("got %d reviews over %d pages for absent storefront, want none", len(reviews), pages)
	}
}

func TestFetchCountryReviewsDiscardsPartialOnError(t *testing.T) {
	client := appstore.NewMockClient()
	client.Pages["US"] = [][]appstore.Review{
		{testReview("1", "US", 1)},
		{testReview("2", "US", 2)},
		{testReview("3", "US", 3)},
	}
	client.FailOnPage = 2

	reviews, _, err := fetchCountryReviews(context.Background(), client, 1, "US")
	if !errors.Is(err, relayerrors.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
	if reviews != nil {
		t.Errorf("partial accumulation leaked: %d reviews", len(reviews))
	}
}

func TestSortNewestFirst(t *testing.T) {
	shared := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	reviews := []appstore.Review{
		{ID: "old", Date: shared.Add(-time.Hour)},
		{ID: "tie-a", Date: shared},
		{ID: "new", Date: shared.Add(time.Hour)},
		{ID: "tie-b", Date: shared},
	}

	sortNewestFirst(reviews)

	gotOrder := []string{reviews[0].ID, reviews[1].ID, reviews[2].ID, reviews[3].ID}
	wantOrder := []string{"new", "tie-a", "tie-b", "old"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("order = %v, want %v (stable ties)", gotOrder, wantOrder)
		}
	}
}

func readReviewFile(t *testing.T, path string) []appstore.Review {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var reviews []appstore.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return reviews
}

func TestFetchReviewsWritesPerCountryFiles(t *testing.T) {
	dir := t.TempDir()
	client := appstore.NewMockClient()
	client.Pages["FR"] = [][]appstore.Review{{testReview("f1", "FR", 5)}}
	client.Pages["US"] = [][]appstore.Review{
		{testReview("u1", "US", 1), testReview("u2", "US", 3)},
		{testReview("u3", "US", 2)},
	}

	err := fetchReviews(context.Background(), client, output.NewFileWriter(dir), 99, []string{"FR", "US"}, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("fetchReviews() error: %v", err)
	}

	fr := readReviewFile(t, filepath.Join(dir, "99-fr.json"))
	if len(fr) != 1 {
		t.Errorf("FR review count = %d, want 1", len(fr))
	}

	us := readReviewFile(t, filepath.Join(dir, "99-us.json"))
	if len(us) != 3 {
		t.Fatalf("US review count = %d, want 3", len(us))
	}
	// Cross-page sort: u3 (2h ago) lands between u1 (1h) and u2 (3h).
	if us[0].ID != "u1" || us[1].ID != "u3" || us[2].ID != "u2" {
		t.Errorf("US order = [%s %s %s], want [u1 u3 u2]", us[0].ID, us[1].ID, us[2].ID)
	}
}

func TestFetchReviewsIsolatesFailedCountries(t *testing.T) {
	dir := t.TempDir()
	client := appstore.NewMockClient()
	client.Pages["FR"] = [][]appstore.Review{{testReview("f1", "FR", 1)}}
	client.FailCountries["DE"] = fmt.Errorf("country DE page 1: %w", relayerrors.ErrFetchFailed)
	client.Pages["US"] = [][]appstore.Review{{testReview("u1", "US", 1)}}

	err := fetchReviews(context.Background(), client, output.NewFileWriter(dir), 7, []string{"DE", "FR", "US"}, false, zerolog.Nop())
	if !errors.Is(err, relayerrors.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}

	// The failed country produced no file; the others did.
	if _, statErr := os.Stat(filepath.Join(dir, "7-de.json")); !os.IsNotExist(statErr) {
		t.Error("failed country unexpectedly produced a file")
	}
	for _, name := range []string{"7-fr.json", "7-us.json"} {
		if _, statErr := os.Stat(filepath.Join(dir, name)); statErr != nil {
			t.Errorf("expected output file %s: %v", name, statErr)
		}
	}
}

func TestFetchReviewsSingleFile(t *testing.T) {
	dir := t.TempDir()
	client := appstore.NewMockClient()
	client.Pages["FR"] = [][]appstore.Review{{testReview("f1", "FR", 4), testReview("f2", "FR", 6)}}
	client.Pages["US"] = [][]appstore.Review{{testReview("u1", "US", 1), testReview("u2", "US", 5)}}

	err := fetchReviews(context.Background(), client, output.NewFileWriter(dir), 7, []string{"FR", "US"}, true, zerolog.Nop())
	if err != nil {
		t.Fatalf("fetchReviews() error: %v", err)
	}

	// No per-country files in single-file mode.
	for _, name := range []string{"7-fr.json", "7-us.json"} {
		if _, statErr := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(statErr) {
			t.Errorf("single-file mode wrote per-country file %s", name)
		}
	}

	merged := readReviewFile(t, filepath.Join(dir, "7-all.json"))
	// Combined count equals the sum of the per-country counts.
	if len(merged) != 4 {
		t.Fatalf("merged review count = %d, want 4", len(merged))
	}
	// Globally sorted newest first across countries.
	for i := 1; i < len(merged); i++ {
		if merged[i].Date.After(merged[i-1].Date) {
			t.Errorf("merged output out of order at index %d", i)
		}
	}
	if merged[0].ID != "u1" {
		t.Errorf("newest review = %s, want u1", merged[0].ID)
	}
}

func TestFetchReviewsSingleFileSkippedWhenAllFail(t *testing.T) {
	dir := t.TempDir()
	client := appstore.NewMockClient()
	client.FailCountries["US"] = fmt.Errorf("country US page 1: %w", relayerrors.ErrFetchFailed)

	err := fetchReviews(context.Background(), client, output.NewFileWriter(dir), 7, []string{"US"}, true, zerolog.Nop())
	if !errors.Is(err, relayerrors.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "7-all.json")); !os.IsNotExist(statErr) {
		t.Error("all-failed run unexpectedly produced a merged file")
	}
}

func TestFetchReviewsNotFoundCountryWritesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	client := appstore.NewMockClient()
	client.NotFoundCountries["VA"] = true

	err := fetchReviews(context.Background(), client, output.NewFileWriter(dir), 7, []string{"VA"}, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("fetchReviews() error: %v", err)
	}

	reviews := readReviewFile(t, filepath.Join(dir, "7-va.json"))
	if len(reviews) != 0 {
		t.Errorf("absent storefront produced %d reviews, want 0", len(reviews))
	}
}

func TestFetchReviewsContextCancellationAbortsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := appstore.NewMockClient()
	client.Pages["US"] = [][]appstore.Review{{testReview("u1", "US", 1)}}

	err := fetchReviews(ctx, client, output.NewFileWriter(t.TempDir()), 7, []string{"US", "FR"}, false, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// The run stops at the first country instead of recording failures
	// for the rest.
	if client.CallCount != 1 {
		t.Errorf("request count = %d, want 1", client.CallCount)
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "invalid country", err: relayerrors.ErrInvalidCountry, want: 1},
		{name: "fetch failure", err: relayerrors.ErrFetchFailed, want: 1},
		{name: "write failure", err: relayerrors.ErrWriteFailed, want: 1},
		{name: "arbitrary error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
