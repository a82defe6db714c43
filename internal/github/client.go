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

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListPullRequestFiles retrieves one page of the files changed by a pull
	// request. Pagination is page-number based: callers advance opts.Page
	// until a page comes back empty or shorter than opts.PerPage.
	ListPullRequestFiles(ctx context.Context, owner, repo string, number int, opts ListOptions) ([]PullRequestFile, error)

	// AddLabels appends labels to a pull request. Labels already present are
	// left untouched by the API, so the call is safe to repeat.
	AddLabels(ctx context.Context, owner, repo string, number int, labels []string) error
}
