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

import (
	"encoding/json"
	"strconv"
	"time"
)

// Review represents one user-submitted review entry. This is the core data
// structure that gets serialized into the output files. A review is immutable
// once fetched; its identity is the review id within a country's feed.
type Review struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Date       time.Time `json:"date"`
	AppVersion string    `json:"app_version"`
	Country    string    `json:"country"`
	VoteCount  int       `json:"vote_count"`
	VoteSum    int       `json:"vote_sum"`
}

// ReviewPage represents one bounded response from the feed. HasNextPage
// reflects the rel="next" link of the feed envelope; the last page of a
// storefront omits it.
type ReviewPage struct {
	Reviews     []Review
	HasNextPage bool
}

// dateLayout is the timestamp format the feed emits for the updated field.
const dateLayout = "2006-01-02T15:04:05-07:00"

// label is the feed's wrapper for scalar values: every field arrives as
// {"label": "..."}.
type label struct {
	Value string `json:"label"`
}

// feedAuthor carries the nested author name of a feed entry.
type feedAuthor struct {
	Name label `json:"name"`
}

// feedEntry is one review entry as it appears on the wire.
type feedEntry struct {
	ID        label      `json:"id"`
	Author    feedAuthor `json:"author"`
	Version   label      `json:"im:version"`
	Rating    label      `json:"im:rating"`
	Title     label      `json:"title"`
	Content   label      `json:"content"`
	VoteCount label      `json:"im:voteCount"`
	VoteSum   label      `json:"im:voteSum"`
	Updated   label      `json:"updated"`
}

// entryList normalizes the feed's entry field. A page with a single review
// carries the entry as a bare object rather than a one-element array.
type entryList []feedEntry

func (l *entryList) UnmarshalJSON(data []byte) error {
	trimmed := trimLeadingSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var e feedEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		*l = entryList{e}
		return nil
	}
	var entries []feedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*l = entries
	return nil
}

func trimLeadingSpace(data []byte) []byte {
	for i, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return data[i:]
		}
	}
	return nil
}

// feedLink is one pagination link of the envelope; rel="next" marks a
// further page.
type feedLink struct {
	Attributes struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"attributes"`
}

// feedEnvelope is the outermost wire structure of one feed page.
type feedEnvelope struct {
	Feed struct {
		Entry entryList  `json:"entry"`
		Link  []feedLink `json:"link"`
	} `json:"feed"`
}

// hasNext reports whether the envelope advertises a following page.
func (e *feedEnvelope) hasNext() bool {
	for _, link := range e.Feed.Link {
		if link.Attributes.Rel == "next" {
			return true
		}
	}
	return false
}

// toReview converts a wire entry into a Review. The country code is recorded
// in canonical upper-case form so output files are self-describing.
func (e *feedEntry) toReview(country string) (Review, error) {
	date, err := time.Parse(dateLayout, e.Updated.Value)
	if err != nil {
		return Review{}, err
	}

	// Ratings and vote counts are small integers transported as strings.
	rating, err := strconv.Atoi(e.Rating.Value)
	if err != nil {
		return Review{}, err
	}
	voteCount, err := strconv.Atoi(e.VoteCount.Value)
	if err != nil {
		return Review{}, err
	}
	voteSum, err := strconv.Atoi(e.VoteSum.Value)
	if err != nil {
		return Review{}, err
	}

	return Review{
		ID:         e.ID.Value,
		Author:     e.Author.Name.Value,
		Rating:     rating,
		Title:      e.Title.Value,
		Body:       e.Content.Value,
		Date:       date,
		AppVersion: e.Version.Value,
		Country:    country,
		VoteCount:  voteCount,
		VoteSum:    voteSum,
	}, nil
}
