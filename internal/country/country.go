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

// Package country validates and resolves storefront country selections.
// The storefront set is fixed: each entry is an official regional variant
// of the app marketplace, keyed by its ISO-3166-1 alpha-2 code.
package country

import (
	"fmt"
	"sort"
	"strings"

	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
)

// Storefronts maps every supported storefront country code to its display name.
var Storefronts = map[string]string{
	"DZ": "Algeria", "AO": "Angola", "AI": "Anguilla", "AR": "Argentina",
	"AM": "Armenia", "AU": "Australia", "AT": "Austria", "AZ": "Azerbaijan",
	"BH": "Bahrain", "BB": "Barbados", "BY": "Belarus", "BE": "Belgium",
	"BZ": "Belize", "BM": "Bermuda", "BO": "Bolivia", "BW": "Botswana",
	"BR": "Brazil", "VG": "British Virgin Islands", "BN": "Brunei Darussalam",
	"BG": "Bulgaria", "CA": "Canada", "KY": "Cayman Islands", "CL": "Chile",
	"CN": "China", "CO": "Colombia", "CR": "Costa Rica", "HR": "Croatia",
	"CY": "Cyprus", "CZ": "Czech Republic", "DK": "Denmark", "DM": "Dominica",
	"EC": "Ecuador", "EG": "Egypt", "SV": "El Salvador", "EE": "Estonia",
	"FI": "Finland", "FR": "France", "DE": "Germany", "GH": "Ghana",
	"GB": "Great Britain", "GR": "Greece", "GD": "Grenada", "GT": "Guatemala",
	"GY": "Guyana", "HN": "Honduras", "HK": "Hong Kong", "HU": "Hungary",
	"IS": "Iceland", "IN": "India", "ID": "Indonesia", "IE": "Ireland",
	"IL": "Israel", "IT": "Italy", "JM": "Jamaica", "JP": "Japan",
	"JO": "Jordan", "KE": "Kenya", "KW": "Kuwait", "LV": "Latvia",
	"LB": "Lebanon", "LT": "Lithuania", "LU": "Luxembourg", "MO": "Macau",
	"MG": "Madagascar", "MY": "Malaysia", "ML": "Mali", "MT": "Malta",
	"MU": "Mauritius", "MX": "Mexico", "MS": "Montserrat", "NP": "Nepal",
	"NL": "Netherlands", "NZ": "New Zealand", "NI": "Nicaragua", "NE": "Niger",
	"NG": "Nigeria", "NO": "Norway", "OM": "Oman", "PK": "Pakistan",
	"PA": "Panama", "PY": "Paraguay", "PE": "Peru", "PH": "Philippines",
	"PL": "Poland", "PT": "Portugal", "QA": "Qatar",
	"MK": "Republic of North Macedonia", "RO": "Romania", "RU": "Russia",
	"SA": "Saudi Arabia", "SN": "Senegal", "SG": "Singapore", "SK": "Slovakia",
	"SI": "Slovenia", "ZA": "South Africa", "KR": "South Korea", "ES": "Spain",
	"LK": "Sri Lanka", "SR": "Suriname", "SE": "Sweden", "CH": "Switzerland",
	"TW": "Taiwan", "TZ": "Tanzania", "TH": "Thailand", "TN": "Tunisia",
	"TR": "Turkey", "UG": "Uganda", "UA": "Ukraine",
	"AE": "United Arab Emirates", "US": "United States", "UY": "Uruguay",
	"UZ": "Uzbekistan", "VE": "Venezuela", "VN": "Vietnam", "YE": "Yemen",
}

// All returns every supported storefront code in ascending order.
func All() []string {
	codes := make([]string, 0, len(Storefronts))
	for code := range Storefronts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsSupported reports whether code names a known storefront. The check is
// case-insensitive.
func IsSupported(code string) bool {
	_, ok := Storefronts[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Resolve canonicalizes a storefront selection. Codes are upper-cased and
// deduplicated; the result is sorted. An empty selection resolves to the
// full storefront set. Any unrecognized code fails the whole resolution
// with ErrInvalidCountry naming every offending code, so a run either
// covers all requested countries or none.
func Resolve(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return All(), nil
	}

	seen := make(map[string]struct{}, len(requested))
	unknown := make(map[string]struct{})
	for _, raw := range requested {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if _, ok := Storefronts[code]; !ok {
			unknown[code] = struct{}{}
			continue
		}
		seen[code] = struct{}{}
	}

	if len(unknown) > 0 {
		bad := make([]string, 0, len(unknown))
		for code := range unknown {
			bad = append(bad, code)
		}
		sort.Strings(bad)
		return nil, fmt.Errorf("%w: %s", relayerrors.ErrInvalidCountry, strings.Join(bad, ", "))
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}
