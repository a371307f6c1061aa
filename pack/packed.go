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

// Level is one dimension's storage in a PackedTensor. A DENSE level has no
// arrays: every group fans out implicitly to the dimension's size. A
// SPARSE level stores Segments (cumulative child counts per parent group)
// and Indices (the children's coordinate values, concatenated in parent
// order).
type Level struct {
	Dense    bool
	Segments []uint32
	Indices  []uint32
}

// PackedTensor is the immutable output of Pack: a per-dimension list of
// Levels plus the linearized values array.
type PackedTensor struct {
	Levels []Level
	Values []float64
}

// Nnz is the number of explicitly stored values.
func (p *PackedTensor) Nnz() int { return len(p.Values) }
