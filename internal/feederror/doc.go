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

// Package feederror classifies failures encountered while talking to the
// review syndication feed. The feed reports problems in several shapes
// (HTTP status codes, transport errors, malformed envelopes), and the
// Inspector normalizes them into the three classes the fetch pipeline
// cares about: not-found, network, and parse.
package feederror
