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

import "github.com/gx-org/taco/base/uname"

// Binding is the (free-index-vars, expression, accumulate) triple a
// TensorVar carries once bound. The primitive operation is assignment
// (accumulate=false); accumulation (A(i,j) += expr) is the same operation
// with Accumulate set to true.
type Binding struct {
	FreeVars   []IndexVar
	Expr       Expr
	Accumulate bool
}

// TensorVar is the symbolic tensor: a name, a Type, a Format, and
// optionally a Binding. Two TensorVars are the same tensor iff they are
// the same *TensorVar pointer -- identity is the pointer itself, there is
// no separate handle indirection, since Go pointers already give reference
// identity and GC-safe lifetime.
type TensorVar struct {
	Name    string
	Type    Type
	Format  Format
	binding *Binding
}

// NewTensorVar returns a new, unbound symbolic tensor.
func NewTensorVar(name string, typ Type, format Format) *TensorVar {
	return &TensorVar{Name: name, Type: typ, Format: format}
}

// NewAnonymousTensorVar returns a new, unbound symbolic tensor with an
// auto-generated name drawn from the process-wide 'A'-prefixed counter.
func NewAnonymousTensorVar(typ Type, format Format) *TensorVar {
	return NewTensorVar(uname.Default.Next('A'), typ, format)
}

// Bound reports whether the tensor has been bound to an expression.
func (t *TensorVar) Bound() bool { return t.binding != nil }

// Binding returns the tensor's binding, or nil if unbound.
func (t *TensorVar) Binding() *Binding { return t.binding }

// Access builds an Access node reading t at the given index variables.
func (t *TensorVar) Access(vars ...IndexVar) (*Access, error) {
	return NewAccess(t, vars...)
}

// Bind runs the semantic validator and, if it passes, atomically records
// freeVars/expr/accumulate as t's binding. It fails with AlreadyBoundErr if
// t is already bound, and with MalformedFormatErr, *ValidationError
// (DimensionMismatch/UnsupportedTransposition/UnsupportedDistribution)
// otherwise. On any failure t is left unbound.
func (t *TensorVar) Bind(freeVars []IndexVar, expr Expr, accumulate bool) error {
	if t.Bound() {
		return AlreadyBoundErr
	}
	if t.Format.Rank() != t.Type.Shape.Rank() {
		return MalformedFormatErr
	}
	if err := validate(t, freeVars, expr); err != nil {
		return err
	}
	t.binding = &Binding{
		FreeVars:   append([]IndexVar{}, freeVars...),
		Expr:       expr,
		Accumulate: accumulate,
	}
	return nil
}

// Schedule returns the merged OperatorSplits collected by traversing the
// bound expression in pre-order. The result is a value snapshot: later
// splits recorded on the tree do not retroactively change a Schedule
// already returned by an earlier call.
func (t *TensorVar) Schedule() Schedule {
	if !t.Bound() {
		return Schedule{}
	}
	return ScheduleOf(t.binding.Expr)
}

// String prints the tensor as "Name : Type".
func (t *TensorVar) String() string {
	return t.Name + " : " + t.Type.String()
}
