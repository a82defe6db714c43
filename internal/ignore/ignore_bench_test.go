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

package ignore

import (
	"fmt"
	"testing"
)

// generatePaths creates a realistic spread of repository paths.
func generatePaths(n int) []string {
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			paths = append(paths, fmt.Sprintf("internal/service/handler_%d.go", i))
		case 1:
			paths = append(paths, fmt.Sprintf("docs/guide/section_%d.md", i))
		case 2:
			paths = append(paths, fmt.Sprintf("vendor/github.com/dep%d/code.go", i))
		case 3:
			paths = append(paths, fmt.Sprintf("web/static/bundle_%d.min.js", i))
		}
	}
	return paths
}

// BenchmarkMatcherIgnores benchmarks path matching against a typical
// ignore list at several pull request sizes.
func BenchmarkMatcherIgnores(b *testing.B) {
	m := NewMatcher([]string{
		"vendor/**",
		"docs/**",
		"*.min.js",
		"!docs/CHANGELOG.md",
		"*.pb.go",
	})

	benchmarks := []struct {
		name      string
		pathCount int
	}{
		{"Small_10Files", 10},
		{"Medium_100Files", 100},
		{"Large_1000Files", 1000},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			paths := generatePaths(bm.pathCount)
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				for _, p := range paths {
					_ = m.Ignores(p)
				}
			}
		})
	}
}

// BenchmarkNewMatcher benchmarks pattern compilation.
func BenchmarkNewMatcher(b *testing.B) {
	patterns := []string{
		"vendor/**",
		"node_modules/**",
		"*.generated.go",
		"![!a-z]*",
		"dist/*.min.js",
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewMatcher(patterns)
	}
}
