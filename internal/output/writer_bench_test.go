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
	"io"
	"testing"
)

// BenchmarkWriter_Set benchmarks writing single output lines
func BenchmarkWriter_Set(b *testing.B) {
	w := NewWriter(io.Discard)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := w.Set(KeyLabel, "size/M"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWriter_Concurrent benchmarks concurrent writes
func BenchmarkWriter_Concurrent(b *testing.B) {
	w := NewWriter(io.Discard)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := w.Set(KeyChangedLines, "128"); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkFileWriter_Set benchmarks file-based appending
func BenchmarkFileWriter_Set(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tempFile := b.TempDir() + "/github_output"
		w, err := NewFileWriter(tempFile)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		// A realistic run publishes only a couple of outputs; write more
		// to make the timing measurable.
		for j := 0; j < 1000; j++ {
			if err := w.Set(KeyChangedLines, "128"); err != nil {
				b.Fatal(err)
			}
		}

		b.StopTimer()
		w.Close()
		b.StartTimer()
	}
}
