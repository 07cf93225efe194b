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

// Package output writes review lists to local JSON files. Each file holds a
// single pretty-printed UTF-8 JSON array, ordered as given by the caller.
// Writes are deterministic: the same review list always produces the same
// bytes, so re-running a fetch against an unchanged feed overwrites each
// file with identical content.
package output
