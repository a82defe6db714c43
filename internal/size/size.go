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

// Package size maps a changed-line total to a size label.
//
// A Table holds threshold keys as strings because they arrive from
// JSON configuration; keys are validated when a label is resolved, not
// when the table is built, so one bad key cannot take down an
// otherwise usable table.
package size

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	labelerrors "github.com/iahmedsabry/pr-size-label/internal/errors"
)

// LabelPrefix is prepended to every size name to form the label.
const LabelPrefix = "size/"

// Table maps a minimum changed-line count (as a decimal string) to a
// size name.
type Table map[string]string

// Default returns the built-in thresholds.
func Default() Table {
	return Table{
		"0":    "XS",
		"10":   "S",
		"30":   "M",
		"100":  "L",
		"500":  "XL",
		"1000": "XXL",
	}
}

// Parse decodes a JSON object of threshold -> size name. Anything
// other than an object with string values is an error.
func Parse(raw string) (Table, error) {
	var t Table
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, fmt.Errorf("parse INPUT_SIZES: %w: %v", labelerrors.ErrBadSizes, err)
	}
	if t == nil {
		return nil, fmt.Errorf("parse INPUT_SIZES: %w: expected a JSON object", labelerrors.ErrBadSizes)
	}
	return t, nil
}

// Resolve picks the label for the given changed-line count: the entry
// with the largest threshold less than or equal to changed wins. Keys
// that do not parse as integers are returned in skipped, sorted, so
// the caller can report them. ok is false when no threshold
// qualifies, including the empty table.
func (t Table) Resolve(changed int) (label string, skipped []string, ok bool) {
	type entry struct {
		min  int
		name string
	}
	entries := make([]entry, 0, len(t))
	for k, v := range t {
		min, err := strconv.Atoi(k)
		if err != nil {
			skipped = append(skipped, k)
			continue
		}
		entries = append(entries, entry{min: min, name: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].min != entries[j].min {
			return entries[i].min < entries[j].min
		}
		return entries[i].name < entries[j].name
	})
	sort.Strings(skipped)

	for _, e := range entries {
		if changed >= e.min {
			label = LabelPrefix + e.name
			ok = true
		}
	}
	return label, skipped, ok
}
