// Copyright 2025 SirSeer, LLC
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

package github

import (
	"bytes"
	"encoding/json"
)

// PullRequestFile represents one changed file in a pull request as reported
// by the list-files endpoint. Only the fields the labeler reads are decoded;
// the endpoint returns more (patch text, blob URLs) that would only inflate
// memory on large pull requests.
type PullRequestFile struct {
	Filename         string      `json:"filename"`
	PreviousFilename string      `json:"previous_filename,omitempty"`
	Status           string      `json:"status"`
	Additions        int         `json:"additions"`
	Deletions        int         `json:"deletions"`
	Changes          ChangeCount `json:"changes"`
}

// ChangeCount holds the "changes" field of a file entry. The API documents
// an integer, but one malformed value must not fail the whole page, so
// decoding marks the count invalid instead of returning an error. Invalid
// counts are skipped by the accumulator.
type ChangeCount struct {
	Value int
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error:
// anything that is not a JSON integer leaves the count invalid.
func (c *ChangeCount) UnmarshalJSON(data []byte) error {
	c.Value, c.Valid = 0, false
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	c.Value, c.Valid = n, true
	return nil
}

// ListOptions configures how changed files are fetched.
type ListOptions struct {
	// Page is the 1-based page index. Zero is treated as the first page.
	Page int

	// PerPage controls how many files to fetch per page.
	// Defaults to DefaultPerPage if not specified. Maximum is 100 per
	// GitHub's API limits.
	PerPage int
}

// DefaultPerPage is the page size used when listing changed files.
const DefaultPerPage = 100

// addLabelsRequest is the body of the add-labels call.
type addLabelsRequest struct {
	Labels []string `json:"labels"`
}

// apiErrorResponse is the error body GitHub attaches to non-2xx statuses.
type apiErrorResponse struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}
