// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pack

import (
	"strconv"
	"strings"
)

// Reduce collapses entries that share identical coordinates by summing
// their values, returning a new store with at most one entry per distinct
// coordinate. Use this before Pack when a non-fully-dense Format must not
// retain duplicate coordinates as repeated stored values (see Pack for what
// it does with duplicates left unreduced).
//
// The coordinate key ties entries together exactly, not approximately:
// two coordinates reduce together only if every component matches.
func Reduce(store *CoordinateStore) *CoordinateStore {
	entries := store.Entries()
	sums := make(map[string]float64, len(entries))
	order := make([]string, 0, len(entries))
	coordsByKey := make(map[string][]uint32, len(entries))

	for _, e := range entries {
		key := coordKey(e.Coords)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
			coordsByKey[key] = e.Coords
		}
		sums[key] += e.Value
	}

	out := NewCoordinateStore()
	for _, key := range order {
		out.Insert(coordsByKey[key], sums[key])
	}
	return out
}

func coordKey(coords []uint32) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	return b.String()
}
