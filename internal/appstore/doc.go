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

// Package appstore provides types and a client for the public customer-review
// syndication feed. The feed is paginated per app and storefront country;
// FeedClient fetches one numbered page at a time and reports whether the feed
// advertises a further page, leaving the pagination loop to the caller.
package appstore
