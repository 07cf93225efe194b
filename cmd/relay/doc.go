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

// Package main implements the review-relay command-line interface.
// This tool downloads publicly available customer reviews for an app from
// the storefront's public syndication feed and saves them as local JSON
// files, one per storefront country.
//
// The CLI supports:
//   - Selecting storefront countries with repeatable -c flags (all countries
//     when omitted)
//   - Merging every country's reviews into a single file with --single_file
//   - Customizable output directory, pause interval, and config file
//   - Listing the supported storefronts with the countries command
//
// Usage:
//
//	review-relay fetch <app-id> [flags]
//
// Example:
//
//	review-relay fetch 12345 -c US -c FR --output_folder ./reviews
//
// Exit codes:
//   - 0: Success
//   - 1: Invalid country selection (nothing fetched) or at least one
//     country's fetch failed
package main
