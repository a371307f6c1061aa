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

package ir

import "strings"

// LevelType is the storage kind of one dimension of a Format.
type LevelType uint8

const (
	// Dense levels have no stored arrays: every coordinate in range is
	// implicitly present, and the fan-out at the level is the dimension's
	// size.
	Dense LevelType = iota
	// Sparse levels store explicit (segments, indices) arrays: only the
	// coordinates actually inserted are present.
	Sparse
)

// String returns "d" or "s".
func (l LevelType) String() string {
	if l == Sparse {
		return "s"
	}
	return "d"
}

// DefaultOrdering returns the identity permutation for a format of the
// given rank: storage level k corresponds to logical dimension k.
func DefaultOrdering(rank int) []int {
	order := make([]int, rank)
	for i := range order {
		order[i] = i
	}
	return order
}

// Format is an ordered sequence of LevelTypes, one per dimension, plus an
// optional storage ordering (a permutation mapping storage level index to
// logical dimension index; identity when omitted).
type Format struct {
	Levels   []LevelType
	Ordering []int
}

// NewFormat returns a Format with the given per-dimension level types and
// the identity ordering. Validation against a tensor's rank is deferred to
// TensorVar.Bind.
func NewFormat(levels ...LevelType) Format {
	return Format{
		Levels:   append([]LevelType{}, levels...),
		Ordering: DefaultOrdering(len(levels)),
	}
}

// WithOrdering returns a copy of f using the given storage ordering instead
// of the identity permutation. len(ordering) must equal len(f.Levels).
func (f Format) WithOrdering(ordering ...int) Format {
	cp := f
	cp.Ordering = append([]int{}, ordering...)
	return cp
}

// Rank is the number of levels (dimensions) in the format.
func (f Format) Rank() int { return len(f.Levels) }

// order returns the effective ordering, defaulting to identity if unset.
func (f Format) order() []int {
	if f.Ordering != nil {
		return f.Ordering
	}
	return DefaultOrdering(len(f.Levels))
}

// String returns a short tag such as "ds" (dense, sparse) in storage order.
func (f Format) String() string {
	var b strings.Builder
	for _, l := range f.Levels {
		b.WriteString(l.String())
	}
	return b.String()
}
