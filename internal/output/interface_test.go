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

import (
	"bytes"
	"testing"
)

// Compile-time check that Writer implements StepWriter
var _ StepWriter = (*Writer)(nil)

func TestWriterImplementsInterface(t *testing.T) {
	// This test ensures our Writer satisfies the StepWriter interface
	buf := &bytes.Buffer{}
	writer := NewWriter(buf)

	// Test that we can use it as a StepWriter
	var w StepWriter = writer

	// Test Set method
	err := w.Set(KeyLabel, "size/M")
	if err != nil {
		t.Errorf("Set() error = %v", err)
	}

	// Test Close method
	err = w.Close()
	if err != nil {
		t.Errorf("Close() error = %v", err)
	}

	// Verify data was written
	if buf.Len() == 0 {
		t.Error("Expected data to be written to buffer")
	}
}
