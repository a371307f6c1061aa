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

package module

import (
	"testing"

	"github.com/gx-org/taco/build/ir"
)

func TestNewRejectsInvalidName(t *testing.T) {
	if _, err := New("Not A Valid Path"); err == nil {
		t.Errorf("New with an invalid module path succeeded")
	}
}

func TestNewAcceptsValidName(t *testing.T) {
	p, err := New("example.com/taco/prog")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Name() != "example.com/taco/prog" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestAddRejectsUnbound(t *testing.T) {
	p, err := New("example.com/taco/prog")
	if err != nil {
		t.Fatal(err)
	}
	a := ir.NewTensorVar("A", ir.NewType(ir.Float64Kind, ir.KnownDim(3)), ir.NewFormat(ir.Dense))
	if err := p.Add(a); err == nil {
		t.Errorf("Add accepted an unbound TensorVar")
	}
}

func TestTuples(t *testing.T) {
	p, err := New("example.com/taco/prog")
	if err != nil {
		t.Fatal(err)
	}
	i := ir.NewIndexVar("i")
	a := ir.NewTensorVar("A", ir.NewType(ir.Float64Kind, ir.KnownDim(3)), ir.NewFormat(ir.Dense))
	if err := a.Bind([]ir.IndexVar{i}, ir.Int(1), false); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(a); err != nil {
		t.Fatal(err)
	}

	tuples := p.Tuples()
	if len(tuples) != 1 {
		t.Fatalf("len(Tuples()) = %d, want 1", len(tuples))
	}
	if tuples[0].Name != "A" {
		t.Errorf("Tuples()[0].Name = %q, want %q", tuples[0].Name, "A")
	}
	if len(tuples[0].FreeVars) != 1 || tuples[0].FreeVars[0] != i {
		t.Errorf("Tuples()[0].FreeVars = %v, want [i]", tuples[0].FreeVars)
	}
}

func TestTensorsReturnsACopy(t *testing.T) {
	p, err := New("example.com/taco/prog")
	if err != nil {
		t.Fatal(err)
	}
	a := ir.NewTensorVar("A", ir.NewType(ir.Float64Kind, ir.KnownDim(1)), ir.NewFormat(ir.Dense))
	if err := a.Bind(nil, ir.Int(1), false); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(a); err != nil {
		t.Fatal(err)
	}

	tensors := p.Tensors()
	tensors[0] = nil
	if p.Tensors()[0] == nil {
		t.Errorf("mutating Tensors() result affected the Program")
	}
}
