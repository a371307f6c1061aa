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

import "testing"

func TestDimensionEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Dimension
		want bool
	}{
		{"both unknown", UnknownDim, UnknownDim, true},
		{"unknown agrees with known", UnknownDim, KnownDim(3), true},
		{"known agrees with unknown", KnownDim(3), UnknownDim, true},
		{"equal known", KnownDim(3), KnownDim(3), true},
		{"unequal known", KnownDim(3), KnownDim(4), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestDimensionString(t *testing.T) {
	if got := UnknownDim.String(); got != "?" {
		t.Errorf("UnknownDim.String() = %q, want %q", got, "?")
	}
	if got := KnownDim(5).String(); got != "5" {
		t.Errorf("KnownDim(5).String() = %q, want %q", got, "5")
	}
}

func TestShapeRankAndDims(t *testing.T) {
	s := NewShape(KnownDim(2), UnknownDim, KnownDim(4))
	if got, want := s.Rank(), 3; got != want {
		t.Fatalf("Rank() = %d, want %d", got, want)
	}
	if got, want := s.Dim(0).Size(), uint64(2); got != want {
		t.Errorf("Dim(0).Size() = %d, want %d", got, want)
	}
	if s.Dim(1).IsKnown() {
		t.Errorf("Dim(1) should be unknown")
	}

	dims := s.Dims()
	dims[0] = KnownDim(99)
	if s.Dim(0).Size() != 2 {
		t.Errorf("mutating Dims() result affected the Shape")
	}
}

func TestNewShapeCopiesInput(t *testing.T) {
	dims := []Dimension{KnownDim(1), KnownDim(2)}
	s := NewShape(dims...)
	dims[0] = KnownDim(99)
	if s.Dim(0).Size() != 1 {
		t.Errorf("NewShape retained a reference to the input slice")
	}
}

func TestTypeString(t *testing.T) {
	typ := NewType(Float64Kind, KnownDim(3), UnknownDim)
	want := "(3x?, f64)"
	if got := typ.String(); got != want {
		t.Errorf("Type.String() = %q, want %q", got, want)
	}
}
