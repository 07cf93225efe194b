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

// Package summary tracks per-country outcomes of a fetch run. The tracker
// records what each storefront yielded (or why it failed), determines the
// overall run result, and produces the end-of-run report. Create one
// tracker per run and record every country exactly once.
package summary

import (
	"time"

	"github.com/rs/zerolog"
)

// Tracker collects per-country results during a fetch run.
type Tracker struct {
	startTime time.Time
	results   []CountryResult
}

// CountryResult holds the outcome of one country's fetch. Err is nil on
// success; a failed country has no review or page counts because partial
// accumulations are discarded.
type CountryResult struct {
	Country string
	Reviews int
	Pages   int
	Err     error
}

// New creates a new tracker and initializes it with the current time.
// Call this at the beginning of a fetch run.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// RecordSuccess records a completed country with its review and page counts.
func (t *Tracker) RecordSuccess(country string, reviews, pages int) {
	t.results = append(t.results, CountryResult{
		Country: country,
		Reviews: reviews,
		Pages:   pages,
	})
}

// RecordFailure records a country whose fetch or write failed.
func (t *Tracker) RecordFailure(country string, err error) {
	t.results = append(t.results, CountryResult{
		Country: country,
		Err:     err,
	})
}

// Results returns the recorded outcomes in recording order.
func (t *Tracker) Results() []CountryResult {
	return t.results
}

// Failed reports whether any recorded country failed.
func (t *Tracker) Failed() bool {
	return t.FailureCount() > 0
}

// FailureCount returns the number of failed countries.
func (t *Tracker) FailureCount() int {
	n := 0
	for _, r := range t.results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// SuccessCount returns the number of successfully fetched countries.
func (t *Tracker) SuccessCount() int {
	return len(t.results) - t.FailureCount()
}

// TotalReviews returns the number of reviews fetched across all countries.
func (t *Tracker) TotalReviews() int {
	n := 0
	for _, r := range t.results {
		n += r.Reviews
	}
	return n
}

// Elapsed returns the time since the tracker was created.
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Log emits the end-of-run report: one line per failed country and a
// totals line.
func (t *Tracker) Log(logger zerolog.Logger) {
	for _, r := range t.results {
		if r.Err != nil {
			logger.Error().Str("country", r.Country).Err(r.Err).Msg("country failed")
		}
	}
	logger.Info().
		Int("countries_ok", t.SuccessCount()).
		Int("countries_failed", t.FailureCount()).
		Int("reviews", t.TotalReviews()).
		Dur("elapsed", t.Elapsed().Round(time.Millisecond)).
		Msg("run complete")
}
