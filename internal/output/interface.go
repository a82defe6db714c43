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

package output

// Step output names published after a successful run.
const (
	// KeyLabel carries the resolved size label.
	KeyLabel = "label"

	// KeyChangedLines carries the changed-line total the label was based on.
	KeyChangedLines = "changed-lines"
)

// StepWriter defines the interface for publishing workflow step outputs.
// This abstraction keeps the labeling logic independent of where outputs
// land, so tests can capture them in memory.
type StepWriter interface {
	// Set publishes a single named output value.
	// Each value should be flushed immediately so a later crash cannot
	// lose outputs that were already announced.
	Set(name, value string) error

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}
