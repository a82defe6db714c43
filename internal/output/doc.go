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

// Package output provides utilities for publishing GitHub Actions step
// outputs. A step communicates results to later steps in the same workflow
// job by appending name=value lines to the file named by the GITHUB_OUTPUT
// environment variable.
//
// The primary type is Writer, which provides thread-safe appending of
// output lines. The file is opened in append mode because other tools in
// the same step may write their own outputs to it. When GITHUB_OUTPUT is
// not set, outputs are discarded, so the same code path works both inside
// and outside of GitHub Actions.
//
// Example usage:
//
//	w, err := output.FromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.Set(output.KeyLabel, "size/M"); err != nil {
//	    log.Printf("Failed to publish step output: %v", err)
//	}
package output
