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

// Package main implements the pr-size-label command-line interface.
// The tool reads a pull_request webhook payload from the GitHub Actions
// runtime, sums the changed lines across the pull request's files, and
// applies the matching size/<name> label through the GitHub REST API.
//
// The CLI supports:
//   - Size thresholds and ignore patterns configured via environment
//     variables or a YAML file
//   - GitHub Enterprise endpoints via GITHUB_API_URL or --api-url
//   - A --dry-run mode that resolves the label without applying it
//   - GitHub token authentication via flag or environment variable
//   - Step outputs for downstream workflow steps via GITHUB_OUTPUT
//
// Usage:
//
//	pr-size-label [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	export GITHUB_EVENT_PATH=/github/workflow/event.json
//	pr-size-label
//
// Exit codes:
//   - 0: Success, including event actions that do not need labeling
//   - 1: Any failure
package main
