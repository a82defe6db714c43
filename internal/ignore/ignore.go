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

// Package ignore matches repository-relative file paths against
// shell-style glob patterns to decide which changed files are excluded
// from the changed-line total.
//
// The pattern language is deliberately small: '*' matches any run of
// characters including '/', '?' matches any single character, and
// '[seq]' matches a character class. A leading '!' negates a pattern.
// Every run of "**" collapses to "*" before compilation, so the two
// spellings are equivalent.
package ignore

import (
	"regexp"
	"strings"
)

// devNull is the placeholder path GitHub reports for one side of an
// add or delete in a diff. It never contributes changed lines.
const devNull = "/dev/null"

// pattern is a single compiled ignore rule.
type pattern struct {
	negate bool
	re     *regexp.Regexp
}

// Matcher reports whether a changed file's path is excluded from the
// changed-line total. A Matcher is immutable after construction and
// safe for concurrent use.
type Matcher struct {
	patterns []pattern
}

// ParseList splits a newline-separated pattern list into individual
// patterns. Blank lines and lines starting with '#' are dropped.
// Parsing never fails: every surviving line is kept verbatim.
func ParseList(raw string) []string {
	var patterns []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// NewMatcher compiles the given patterns in order. Compilation never
// fails: a pattern that cannot be expressed as a regular expression
// falls back to a literal comparison.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{patterns: make([]pattern, 0, len(patterns))}
	for _, raw := range patterns {
		p := normalize(raw)
		negate := strings.HasPrefix(p, "!")
		if negate {
			p = p[1:]
		}
		m.patterns = append(m.patterns, pattern{negate: negate, re: compile(p)})
	}
	return m
}

// Ignores reports whether path is excluded. The empty path and
// "/dev/null" are always excluded. Patterns are evaluated in order:
// the first matching negated pattern decides "not ignored"
// immediately; a matching plain pattern marks the path ignored and
// later plain patterns cannot clear it.
func (m *Matcher) Ignores(path string) bool {
	if path == "" || path == devNull {
		return true
	}
	ignored := false
	for _, p := range m.patterns {
		if p.negate {
			if p.re.MatchString(path) {
				return false
			}
			continue
		}
		if !ignored && p.re.MatchString(path) {
			ignored = true
		}
	}
	return ignored
}

// normalize collapses every "**" to "*", left to right.
func normalize(p string) string {
	return strings.ReplaceAll(p, "**", "*")
}

// compile translates a glob into an anchored regular expression.
func compile(glob string) *regexp.Regexp {
	re, err := regexp.Compile(translate(glob))
	if err != nil {
		// Bad character class such as [z-a]. Match the pattern text
		// literally instead of failing the whole invocation.
		return regexp.MustCompile(`(?s)\A` + regexp.QuoteMeta(glob) + `\z`)
	}
	return re
}

// translate converts a glob to regular expression syntax. The
// conversion follows shell filename matching: '*' and '?' do not stop
// at path separators, and an unterminated '[' is a literal bracket.
func translate(glob string) string {
	var sb strings.Builder
	sb.WriteString(`(?s)\A`)
	for i := 0; i < len(glob); {
		c := glob[i]
		i++
		switch c {
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			j := i
			if j < len(glob) && glob[j] == '!' {
				j++
			}
			if j < len(glob) && glob[j] == ']' {
				j++
			}
			for j < len(glob) && glob[j] != ']' {
				j++
			}
			if j >= len(glob) {
				sb.WriteString(`\[`)
				continue
			}
			class := strings.ReplaceAll(glob[i:j], `\`, `\\`)
			i = j + 1
			sb.WriteByte('[')
			switch {
			case strings.HasPrefix(class, "!"):
				sb.WriteByte('^')
				class = class[1:]
			case strings.HasPrefix(class, "^"), strings.HasPrefix(class, "["):
				sb.WriteByte('\\')
			}
			sb.WriteString(class)
			sb.WriteByte(']')
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	sb.WriteString(`\z`)
	return sb.String()
}
