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

import "testing"

func TestReduceSumsDuplicateCoordinates(t *testing.T) {
	store := NewCoordinateStore()
	store.Insert([]uint32{0, 0}, 1)
	store.Insert([]uint32{0, 1}, 2)
	store.Insert([]uint32{0, 0}, 3)

	reduced := Reduce(store)
	if got, want := reduced.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	sums := map[string]float64{}
	for _, e := range reduced.Entries() {
		sums[coordKey(e.Coords)] = e.Value
	}
	if sums["0,0"] != 4 {
		t.Errorf("sum at (0,0) = %v, want 4", sums["0,0"])
	}
	if sums["0,1"] != 2 {
		t.Errorf("sum at (0,1) = %v, want 2", sums["0,1"])
	}
}

func TestReduceLeavesUniqueEntriesAlone(t *testing.T) {
	store := NewCoordinateStore()
	store.Insert([]uint32{1}, 10)
	store.Insert([]uint32{2}, 20)

	reduced := Reduce(store)
	if reduced.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reduced.Len())
	}
}
