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
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/appwatchhq/review-relay/internal/appstore"
	"github.com/appwatchhq/review-relay/internal/config"
	"github.com/appwatchhq/review-relay/internal/country"
	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
	"github.com/appwatchhq/review-relay/internal/observability"
	"github.com/appwatchhq/review-relay/internal/output"
	"github.com/appwatchhq/review-relay/internal/summary"
)

// fetchOptions carries the flag values of one fetch invocation.
type fetchOptions struct {
	countries    []string
	outputFolder string
	singleFile   bool
	configPath   string
	pauseSeconds float64
	pauseSet     bool
}

// fetchCmd represents the fetch command
func newFetchCommand() *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch <app-id>",
		Short: "Fetch customer reviews for an app across storefront countries",
		Long: `Fetch publicly available customer reviews for an app from the storefront
syndication feed and save them as JSON files, newest first.

The app id is the numeric identifier seen in the storefront URL.
One file is written per selected country (<app-id>-<country>.json); with
--single_file every country's reviews are merged into <app-id>-all.json.

Countries are selected with repeatable -c flags:

  review-relay fetch 12345 -c US -c FR -c DE

When no country is given, every supported storefront is fetched. An
unrecognized country code aborts the run before any network activity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.pauseSet = cmd.Flags().Changed("pause")
			return runFetch(cmd.Context(), args[0], opts)
		},
	}

	// Define flags
	cmd.Flags().StringArrayVarP(&opts.countries, "country", "c", nil,
		"2-letter storefront country code; may be given several times (default: all countries)")
	cmd.Flags().StringVar(&opts.outputFolder, "output_folder", "",
		"destination directory for the JSON files (default: current working directory)")
	cmd.Flags().BoolVarP(&opts.singleFile, "single_file", "s", false,
		"merge every downloaded review into one <app-id>-all.json")
	cmd.Flags().Float64Var(&opts.pauseSeconds, "pause", 1.0,
		"seconds to wait between feed page requests")
	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"path to config file")

	return cmd
}

// runFetch executes the fetch command
func runFetch(ctx context.Context, appIDArg string, opts *fetchOptions) error {
	appID, err := parseAppID(appIDArg)
	if err != nil {
		return err
	}

	// Resolve the country selection before touching the network: an
	// unknown code aborts the whole run.
	countries, err := country.Resolve(opts.countries)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// Flags beat environment and config file.
	if opts.pauseSet {
		cfg.Defaults.PauseSeconds = opts.pauseSeconds
	}
	if opts.outputFolder != "" {
		cfg.Defaults.OutputFolder = opts.outputFolder
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := observability.NewLogger(os.Stderr, os.Getenv("RELAY_LOG"))
	client := appstore.NewFeedClient(cfg.Feed.Endpoint, cfg.Feed.UserAgent, cfg.RequestTimeout(), cfg.Pause())
	writer := output.NewFileWriter(cfg.Defaults.OutputFolder)

	return fetchReviews(ctx, client, writer, appID, countries, opts.singleFile, logger)
}

// fetchReviews runs the per-country fetch loop. Countries are fetched
// strictly one after another; a failed country is recorded and skipped so
// the remaining countries still produce output.
func fetchReviews(ctx context.Context, client appstore.Client, writer output.ReviewWriter, appID int64, countries []string, singleFile bool, logger zerolog.Logger) error {
	tracker := summary.New()
	var combined []appstore.Review

	logger.Info().Int64("app_id", appID).Int("countries", len(countries)).Msg("fetching reviews")

	for _, cc := range countries {
		reviews, pages, err := fetchCountryReviews(ctx, client, appID, cc)
		if err != nil {
			// An interrupt aborts the whole run, not just this country.
			if ctx.Err() != nil {
				return err
			}
			logger.Error().Str("country", cc).Err(err).Msg("fetch failed")
			tracker.RecordFailure(cc, err)
			continue
		}

		sortNewestFirst(reviews)

		if singleFile {
			combined = append(combined, reviews...)
			tracker.RecordSuccess(cc, len(reviews), pages)
			logger.Info().Str("country", cc).Int("reviews", len(reviews)).Msg("collected")
			continue
		}

		path, err := writer.WriteReviews(countryFileName(appID, cc), reviews)
		if err != nil {
			logger.Error().Str("country", cc).Err(err).Msg("write failed")
			tracker.RecordFailure(cc, err)
			continue
		}
		tracker.RecordSuccess(cc, len(reviews), pages)
		logger.Info().Str("country", cc).Int("reviews", len(reviews)).Str("file", path).Msg("saved")
	}

	if singleFile && tracker.SuccessCount() > 0 {
		sortNewestFirst(combined)
		path, err := writer.WriteReviews(mergedFileName(appID), combined)
		if err != nil {
			return err
		}
		logger.Info().Int("reviews", len(combined)).Str("file", path).Msg("merged")
	}

	tracker.Log(logger)

	if tracker.Failed() {
		return fmt.Errorf("%d of %d countries failed: %w",
			tracker.FailureCount(), len(countries), relayerrors.ErrFetchFailed)
	}
	return nil
}

// fetchCountryReviews downloads all reviews for one app+country combination
// by requesting consecutive feed pages. Pagination stops when the feed no
// longer advertises a next page or a page comes back empty. A fetch error
// mid-pagination discards the accumulated pages so no truncated file is
// ever written for that country.
func fetchCountryReviews(ctx context.Context, client appstore.Client, appID int64, cc string) ([]appstore.Review, int, error) {
	var reviews []appstore.Review

	for page := 1; ; page++ {
		result, err := client.FetchReviewPage(ctx, appID, cc, page)
		if err != nil {
			if errors.Is(err, relayerrors.ErrAppNotFound) {
				// The app has no presence in this storefront; whatever was
				// accumulated before the 404 stands.
				return reviews, page - 1, nil
			}
			return nil, 0, err
		}

		reviews = append(reviews, result.Reviews...)
		if len(result.Reviews) == 0 || !result.HasNextPage {
			return reviews, page, nil
		}
	}
}

// sortNewestFirst orders reviews by submission time descending. The sort is
// stable so reviews sharing a timestamp keep their feed order.
func sortNewestFirst(reviews []appstore.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.After(reviews[j].Date)
	})
}

// countryFileName returns the per-country output file name.
func countryFileName(appID int64, cc string) string {
	return fmt.Sprintf("%d-%s.json", appID, strings.ToLower(cc))
}

// mergedFileName returns the single-file-mode output file name.
func mergedFileName(appID int64) string {
	return fmt.Sprintf("%d-all.json", appID)
}

// parseAppID validates the positional app id argument.
func parseAppID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid app id %q: expected a positive numeric identifier", arg)
	}
	return id, nil
}
