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

import "context"

// Client defines the interface for fetching review pages from the feed.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchReviewPage retrieves one numbered page of reviews for the given
	// app and storefront country. Pages are numbered from 1. The returned
	// page reports whether the feed advertises a further page; callers drive
	// the pagination loop themselves.
	FetchReviewPage(ctx context.Context, appID int64, country string, page int) (*ReviewPage, error)
}
