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
	"sort"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gx-org/taco/build/ir"
)

// sorted is one coordinate entry after axis reordering, kept alongside its
// original insertion index so the sort is stable without relying on the
// sort algorithm's own stability guarantees for ties the caller cares
// about (insertion order is part of the documented contract, not an
// incidental side effect of sort.SliceStable).
type sorted struct {
	permuted []uint32
	value    float64
	order    int
}

// group is a contiguous range of the sorted entries slice sharing the same
// coordinate prefix through the level currently being processed.
type group struct{ start, end int }

// Pack transforms store's entries into a PackedTensor matching format and
// shape. format.Rank() and shape.Rank() must both equal len(format.Levels);
// a mismatch returns ir.MalformedFormatErr. Duplicate coordinates are
// retained, not reduced, except when format is fully DENSE (see Reduce for
// a helper that pre-reduces duplicates before packing).
func Pack(store *CoordinateStore, format ir.Format, shape ir.Shape) (*PackedTensor, error) {
	rank := format.Rank()
	if rank != shape.Rank() {
		return nil, ir.MalformedFormatErr
	}
	entries := store.Entries()
	for _, e := range entries {
		if len(e.Coords) != rank {
			return nil, errors.Errorf("entry has %d coordinates, want %d", len(e.Coords), rank)
		}
	}

	if allDense(format) {
		return packFullyDense(entries, shape)
	}
	return packLeveled(entries, format, shape)
}

func allDense(format ir.Format) bool {
	for _, l := range format.Levels {
		if l != ir.Dense {
			return false
		}
	}
	return true
}

// order returns the effective storage ordering (identity if unset).
func order(format ir.Format) []int {
	if format.Ordering != nil {
		return format.Ordering
	}
	return ir.DefaultOrdering(format.Rank())
}

func packFullyDense(entries []CoordinateEntry, shape ir.Shape) (*PackedTensor, error) {
	rank := shape.Rank()
	sizes := make([]int, rank)
	total := 1
	for k := 0; k < rank; k++ {
		dim := shape.Dim(k)
		if !dim.IsKnown() {
			return nil, errors.Errorf("dense dimension %d has unknown size", k)
		}
		sizes[k] = int(dim.Size())
		total *= sizes[k]
	}
	values := make([]float64, total)
	dupes := 0
	for _, e := range entries {
		idx := 0
		for k := 0; k < rank; k++ {
			idx = idx*sizes[k] + int(e.Coords[k])
		}
		if values[idx] != 0 {
			dupes++
		}
		values[idx] += e.Value
	}
	if dupes > 0 {
		klog.Warningf("pack: summed %d duplicate coordinate(s) while scattering into a fully dense array", dupes)
	}
	levels := make([]Level, rank)
	for k := range levels {
		levels[k] = Level{Dense: true}
	}
	klog.V(2).Infof("pack: fully dense, %d elements", total)
	return &PackedTensor{Levels: levels, Values: values}, nil
}

func packLeveled(entries []CoordinateEntry, format ir.Format, shape ir.Shape) (*PackedTensor, error) {
	ord := order(format)
	rank := format.Rank()

	sortedEntries := make([]sorted, len(entries))
	for i, e := range entries {
		permuted := make([]uint32, rank)
		for level, dim := range ord {
			permuted[level] = e.Coords[dim]
		}
		sortedEntries[i] = sorted{permuted: permuted, value: e.Value, order: i}
	}
	sort.SliceStable(sortedEntries, func(i, j int) bool {
		a, b := sortedEntries[i].permuted, sortedEntries[j].permuted
		for k := 0; k < rank; k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return sortedEntries[i].order < sortedEntries[j].order
	})

	groups := []group{{0, len(sortedEntries)}}
	levels := make([]Level, rank)
	dupWarnings := 0

	for k := 0; k < rank; k++ {
		if format.Levels[k] == ir.Dense {
			dim := shape.Dim(ord[k])
			if !dim.IsKnown() {
				return nil, errors.Errorf("dense level %d has unknown size", k)
			}
			size := int(dim.Size())
			var next []group
			for _, g := range groups {
				next = append(next, splitAllSlots(sortedEntries, g, k, size)...)
			}
			groups = next
			levels[k] = Level{Dense: true}
			continue
		}

		segments := make([]uint32, 0, len(groups)+1)
		var indices []uint32
		var next []group
		segments = append(segments, 0)
		for _, g := range groups {
			subs, vals := splitPresentOnly(sortedEntries, g, k)
			for _, v := range subs {
				if k == rank-1 && v.end-v.start > 1 {
					dupWarnings++
				}
				next = append(next, v)
			}
			indices = append(indices, vals...)
			segments = append(segments, uint32(len(indices)))
		}
		groups = next
		levels[k] = Level{Dense: false, Segments: segments, Indices: indices}
	}

	if dupWarnings > 0 {
		klog.Warningf("pack: retained %d sparse leaf group(s) with more than one stored coordinate; pre-reduce with Reduce if this is unwanted", dupWarnings)
	}

	values := make([]float64, len(sortedEntries))
	for i, e := range sortedEntries {
		values[i] = e.value
	}
	klog.V(2).Infof("pack: %d levels, %d stored values", rank, len(values))
	return &PackedTensor{Levels: levels, Values: values}, nil
}

// splitAllSlots partitions g into exactly size sub-groups, one per value
// 0..size-1 in increasing order, producing an empty group for a value with
// no entries. Used for DENSE levels, where every slot is materialized
// regardless of occupancy.
func splitAllSlots(entries []sorted, g group, level, size int) []group {
	out := make([]group, size)
	idx := g.start
	for v := 0; v < size; v++ {
		start := idx
		for idx < g.end && int(entries[idx].permuted[level]) == v {
			idx++
		}
		out[v] = group{start, idx}
	}
	return out
}

// splitPresentOnly partitions g into one sub-group per distinct value
// actually present at level, in the order values appear after sorting,
// together with the list of those distinct values. Used for SPARSE
// levels, which only materialize occupied slots.
func splitPresentOnly(entries []sorted, g group, level int) ([]group, []uint32) {
	var subs []group
	var vals []uint32
	idx := g.start
	for idx < g.end {
		start := idx
		val := entries[idx].permuted[level]
		for idx < g.end && entries[idx].permuted[level] == val {
			idx++
		}
		subs = append(subs, group{start, idx})
		vals = append(vals, val)
	}
	return subs, vals
}
