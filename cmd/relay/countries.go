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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appwatchhq/review-relay/internal/country"
)

// countriesCmd lists the supported storefronts
func newCountriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List supported storefront country codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, code := range country.All() {
				fmt.Fprintf(w, "%s\t%s\n", code, country.Storefronts[code])
			}
			return w.Flush()
		},
	}
}
