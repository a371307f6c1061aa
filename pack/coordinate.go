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

// Package pack transforms an unordered list of (coordinate, value) entries
// into the canonical per-level segment/index arrays matching a tensor's
// Format, plus a linearized values array.
package pack

// CoordinateEntry is one (coordinates, value) pair, unordered at intake.
// Coords are in logical dimension order, not storage order.
type CoordinateEntry struct {
	Coords []uint32
	Value  float64
}

// CoordinateStore is a resizable, append-only list of CoordinateEntry.
// Insertion never deduplicates: duplicate coordinates are retained and it
// is the caller's responsibility to pre-reduce if that isn't wanted (see
// Reduce).
type CoordinateStore struct {
	entries []CoordinateEntry
}

// NewCoordinateStore returns an empty store.
func NewCoordinateStore() *CoordinateStore {
	return &CoordinateStore{}
}

// Insert appends a new entry. coords is copied, so later mutation by the
// caller does not affect the store.
func (s *CoordinateStore) Insert(coords []uint32, value float64) {
	cp := make([]uint32, len(coords))
	copy(cp, coords)
	s.entries = append(s.entries, CoordinateEntry{Coords: cp, Value: value})
}

// Len returns the number of entries inserted so far.
func (s *CoordinateStore) Len() int { return len(s.entries) }

// Entries returns a copy of the entries inserted so far, in insertion
// order.
func (s *CoordinateStore) Entries() []CoordinateEntry {
	cp := make([]CoordinateEntry, len(s.entries))
	copy(cp, s.entries)
	return cp
}
