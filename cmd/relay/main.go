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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "review-relay",
		Short: "Download public customer reviews for an app from the storefront feed",
		Long: `review-relay downloads publicly available customer reviews for an app
from the storefront's public syndication feed. It paginates each selected
country's feed until exhaustion and saves the collected reviews to local
JSON files, newest first.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newCountriesCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to the exit code contract.
// The contract is binary: 0 on full success, 1 when the country selection
// was invalid or any country's fetch or write failed.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
