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

// Package errors defines sentinel errors for consistent error handling across the application.
// The action contract keeps the exit surface to two codes: 0 for success or an
// ignored event action, 1 for every failure. Sentinels still exist so callers
// can branch on the failure class with errors.Is and print actionable messages.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingEnv indicates a required environment variable is not set.
	// Maps to exit code 1.
	ErrMissingEnv = errors.New("missing required environment variable")

	// ErrBadEvent indicates the webhook event payload is unreadable, malformed,
	// or missing the pull_request context.
	// Maps to exit code 1.
	ErrBadEvent = errors.New("invalid event payload")

	// ErrBadSizes indicates INPUT_SIZES is not a JSON object of string values.
	// Maps to exit code 1.
	ErrBadSizes = errors.New("invalid size thresholds")

	// ErrInvalidToken indicates GitHub authentication failed.
	// Maps to exit code 1.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrNotFound indicates the repository or pull request does not exist
	// or is not accessible with the supplied token.
	// Maps to exit code 1.
	ErrNotFound = errors.New("pull request not found")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 1.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 1.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrAPIResponse indicates GitHub answered with an unexpected status or an
	// undecodable body.
	// Maps to exit code 1.
	ErrAPIResponse = errors.New("unexpected github api response")

	// ErrNoSizeLabel indicates no configured threshold qualified for the
	// changed-line total.
	// Maps to exit code 1.
	ErrNoSizeLabel = errors.New("no size label computed")
)
