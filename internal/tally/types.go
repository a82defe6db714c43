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

// Package tally types define the structures used to summarize a labeling
// run. These types capture what was examined and what came out of it so a
// run can be reconstructed from its debug output alone.
package tally

import (
	"time"
)

// RunSummary is the complete record of a single labeling run. It captures
// the pull request that was examined, the file statistics, and the label
// that was resolved. Summaries are never persisted; they exist only to be
// written to the debug log.
type RunSummary struct {
	ToolVersion string     `json:"tool_version"`
	RunID       string     `json:"run_id"`
	Target      Target     `json:"target"`
	Results     RunResults `json:"results"`
	DryRun      bool       `json:"dry_run,omitempty"`
}

// Target identifies the pull request a run operated on.
type Target struct {
	Owner      string `json:"owner"`
	Repository string `json:"repository"`
	Number     int    `json:"pull_number"`
}

// RunResults contains the statistics of a completed run: how many files
// each page carried, how many were excluded and why, the changed-line
// total, and timing information for troubleshooting slow runs.
type RunResults struct {
	FilesSeen    int       `json:"files_seen"`
	FilesIgnored int       `json:"files_ignored"`
	FilesSkipped int       `json:"files_skipped"`
	ChangedLines int       `json:"changed_lines"`
	Pages        int       `json:"pages_fetched"`
	APICallCount int       `json:"api_calls_made"`
	Label        string    `json:"label,omitempty"`
	Duration     string    `json:"run_duration"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
}
