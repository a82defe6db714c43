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

// Package github provides a client for the two GitHub REST endpoints the
// labeler touches: listing the files changed by a pull request and adding
// labels to it. It is deliberately not a general-purpose API client.
//
// The package includes:
//   - A Client interface covering the two operations
//   - A REST implementation built on net/http with an authenticating transport
//   - Mock client for testing
//   - Type definitions for changed-file data
//
// Basic usage:
//
//	client := github.NewRESTClient("your-github-token", "https://api.github.com")
//	files, err := client.ListPullRequestFiles(ctx, "acme", "widgets", 42, github.ListOptions{
//	    Page:    1,
//	    PerPage: github.DefaultPerPage,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, f := range files {
//	    // Process changed file
//	}
package github
