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
	"context"
	"fmt"

	labelerrors "github.com/iahmedsabry/pr-size-label/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// FilePages holds the pages returned by successive ListPullRequestFiles
	// calls: FilePages[0] is page 1. Requests past the last configured page
	// return an empty page, mirroring the live API.
	FilePages [][]PullRequestFile

	// Error to return from any call
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool
	ShouldFailAddLabel bool

	// Track calls for verification
	ListCalls   int
	AddCalls    int
	LastOwner   string
	LastRepo    string
	LastNumber  int
	LastOpts    ListOptions
	AddedLabels []string
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		FilePages: [][]PullRequestFile{generateTestFiles()},
	}
}

// NewMockClientWithOptions creates a mock client configured by options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	m := NewMockClient()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListPullRequestFiles implements the Client interface
func (m *MockClient) ListPullRequestFiles(ctx context.Context, owner, repo string, number int, opts ListOptions) ([]PullRequestFile, error) {
	// Track the call
	m.ListCalls++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastNumber = number
	m.LastOpts = opts

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := m.failure(owner, repo); err != nil {
		return nil, err
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}
	if page > len(m.FilePages) {
		return []PullRequestFile{}, nil
	}
	return m.FilePages[page-1], nil
}

// AddLabels implements the Client interface
func (m *MockClient) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	// Track the call
	m.AddCalls++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastNumber = number

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := m.failure(owner, repo); err != nil {
		return err
	}
	if m.ShouldFailAddLabel {
		return fmt.Errorf("github api /issues/%d/labels: status 422: Validation Failed: %w", number, labelerrors.ErrAPIResponse)
	}

	m.AddedLabels = append(m.AddedLabels, labels...)
	return nil
}

// failure simulates the configured error conditions shared by both calls.
func (m *MockClient) failure(owner, repo string) error {
	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", labelerrors.ErrInvalidToken)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", labelerrors.ErrNetworkFailure)
	}
	if m.ShouldFailNotFound || (owner == "nonexistent" && repo == "repo") {
		return fmt.Errorf("pull request not found: %w", labelerrors.ErrNotFound)
	}
	return m.Error
}

// generateTestFiles creates sample changed-file data for testing
func generateTestFiles() []PullRequestFile {
	return []PullRequestFile{
		{
			Filename:  "internal/service/handler.go",
			Status:    "modified",
			Additions: 24,
			Deletions: 6,
			Changes:   ChangeCount{Value: 30, Valid: true},
		},
		{
			Filename:  "internal/service/handler_test.go",
			Status:    "added",
			Additions: 120,
			Deletions: 0,
			Changes:   ChangeCount{Value: 120, Valid: true},
		},
		{
			Filename:         "docs/usage.md",
			PreviousFilename: "docs/README.md",
			Status:           "renamed",
			Additions:        4,
			Deletions:        2,
			Changes:          ChangeCount{Value: 6, Valid: true},
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithFiles sets a single page of files to return
func WithFiles(files []PullRequestFile) MockClientOption {
	return func(m *MockClient) {
		m.FilePages = [][]PullRequestFile{files}
	}
}

// WithFilePages sets the full sequence of pages to return
func WithFilePages(pages [][]PullRequestFile) MockClientOption {
	return func(m *MockClient) {
		m.FilePages = pages
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// WithNetworkFailure makes the client simulate a network failure
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// WithNotFound makes the client simulate a missing pull request
func WithNotFound() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNotFound = true
	}
}

// WithAddLabelFailure makes only the label write fail
func WithAddLabelFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAddLabel = true
	}
}
