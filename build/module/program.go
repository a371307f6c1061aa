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

// Package module groups bound TensorVars into a named unit for handoff to
// a downstream lowerer.
//
// The teacher's module package resolves a Module against the filesystem
// (finding go.mod, reading and parsing it). This core performs no file or
// network I/O, so only the pure, side-effect-free part of that idea
// survives here: validating a Program's name with the same syntax Go uses
// for module paths.
package module

import (
	"github.com/pkg/errors"
	"golang.org/x/mod/module"

	"github.com/gx-org/taco/build/ir"
)

// Program is a named, ordered collection of bound TensorVars exposed as a
// single unit to a downstream lowerer.
type Program struct {
	name    string
	tensors []*ir.TensorVar
}

// New returns an empty Program. name is validated the way Go validates a
// module path (golang.org/x/mod/module.CheckPath), giving downstream
// consumers a collision-resistant namespace when several frontends'
// output is combined.
func New(name string) (*Program, error) {
	if err := module.CheckPath(name); err != nil {
		return nil, errors.Wrapf(err, "invalid program name %q", name)
	}
	return &Program{name: name}, nil
}

// Name returns the program's validated name.
func (p *Program) Name() string { return p.name }

// Add appends a bound TensorVar to the program. It fails if t is not yet
// bound: an unbound tensor has no (freeVars, expr, accumulate, schedule)
// tuple to expose.
func (p *Program) Add(t *ir.TensorVar) error {
	if !t.Bound() {
		return errors.Errorf("cannot add unbound tensor %s to program %s", t.Name, p.name)
	}
	p.tensors = append(p.tensors, t)
	return nil
}

// Tensors returns the program's TensorVars, in the order they were added.
func (p *Program) Tensors() []*ir.TensorVar {
	return append([]*ir.TensorVar{}, p.tensors...)
}

// Tuple is the (name, type, format, freeVars, indexExpr, accumulate,
// schedule) handoff described for the core's downstream interface.
type Tuple struct {
	Name       string
	Type       ir.Type
	Format     ir.Format
	FreeVars   []ir.IndexVar
	Expr       ir.Expr
	Accumulate bool
	Schedule   ir.Schedule
}

// Tuples returns the exposed tuple for every TensorVar in the program, in
// order.
func (p *Program) Tuples() []Tuple {
	out := make([]Tuple, len(p.tensors))
	for i, t := range p.tensors {
		b := t.Binding()
		out[i] = Tuple{
			Name:       t.Name,
			Type:       t.Type,
			Format:     t.Format,
			FreeVars:   b.FreeVars,
			Expr:       b.Expr,
			Accumulate: b.Accumulate,
			Schedule:   t.Schedule(),
		}
	}
	return out
}
