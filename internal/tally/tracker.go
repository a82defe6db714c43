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

// Package tally provides functionality for tracking statistics about a
// labeling run. It records the files examined on each page, how many were
// excluded by ignore patterns or carried unreadable change counts, the
// running changed-line total, and the number of API calls made.
//
// The tally serves two purposes:
//   - Enables troubleshooting by recording exactly what a run counted
//   - Records API usage so rate-limit pressure can be diagnosed
//
// Everything lives in memory for the duration of a run. Summaries are
// emitted on the debug log and nowhere else.
package tally

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Tracker collects statistics during a labeling run and generates a summary.
// Create a new tracker at the start of each run and call its methods as
// pages and files are processed.
type Tracker struct {
	startTime    time.Time
	apiCallCount int
	stats        fileStats
}

// fileStats holds the running counts for the files a run has examined.
type fileStats struct {
	seen    int // files returned across all pages
	ignored int // files excluded by ignore patterns
	skipped int // files with unreadable change counts
	changed int // changed-line total over counted files
	pages   int // pages fetched
}

// New creates a new tracker and initializes it with the current time.
// Call this at the beginning of a run to start tracking.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// IncrementAPICall records that an API call was made. Call this after each
// GitHub API request to maintain accurate usage statistics.
func (t *Tracker) IncrementAPICall() {
	t.apiCallCount++
}

// RecordPage records one page of results containing fileCount files.
func (t *Tracker) RecordPage(fileCount int) {
	t.stats.pages++
	t.stats.seen += fileCount
}

// RecordIgnored records a file that was excluded by the ignore patterns.
func (t *Tracker) RecordIgnored() {
	t.stats.ignored++
}

// RecordSkipped records a file whose change count could not be read and
// was therefore left out of the total.
func (t *Tracker) RecordSkipped() {
	t.stats.skipped++
}

// AddChangedLines adds the change count of a single counted file to the
// running total.
func (t *Tracker) AddChangedLines(n int) {
	t.stats.changed += n
}

// ChangedLines returns the running changed-line total.
func (t *Tracker) ChangedLines() int {
	return t.stats.changed
}

// Summarize creates a RunSummary capturing the complete run statistics.
// Call this once at the end of a run.
//
// Parameters:
//   - toolVersion: The version of pr-size-label (from version.Version)
//   - target: The pull request this run operated on
//   - label: The resolved size label, or empty if none was resolved
//   - dryRun: Whether the label was actually applied
func (t *Tracker) Summarize(toolVersion string, target Target, label string, dryRun bool) *RunSummary {
	completedAt := time.Now()
	duration := completedAt.Sub(t.startTime)

	runID := fmt.Sprintf("%s-%d", runType(dryRun), t.startTime.Unix())

	return &RunSummary{
		ToolVersion: toolVersion,
		RunID:       runID,
		Target:      target,
		Results: RunResults{
			FilesSeen:    t.stats.seen,
			FilesIgnored: t.stats.ignored,
			FilesSkipped: t.stats.skipped,
			ChangedLines: t.stats.changed,
			Pages:        t.stats.pages,
			APICallCount: t.apiCallCount,
			Label:        label,
			Duration:     duration.String(),
			StartedAt:    t.startTime,
			CompletedAt:  completedAt,
		},
		DryRun: dryRun,
	}
}

// WriteSummary serializes a summary to JSON and writes it to the provided
// io.Writer. The output is formatted with indentation for readability.
// This is what the debug log uses to dump the run record to stderr.
func WriteSummary(summary *RunSummary, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func runType(dryRun bool) string {
	if dryRun {
		return "dry-run"
	}
	return "label"
}
