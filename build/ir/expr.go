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

import "github.com/pkg/errors"

// Expr is an index-expression AST node. The set of implementations is
// closed: expr() prevents types outside this package from satisfying the
// interface, the same way the teacher's IR seals its Node interface.
//
// Expr nodes are structurally immutable (children are never rebound after
// construction) but each node owns a mutable Splits list: schedule
// annotations accumulate on a node for its lifetime, independent of the
// structural sharing of the node itself across trees.
type Expr interface {
	// expr seals the interface to this package's node types.
	expr()

	// Children returns the node's operands in traversal order. Access and
	// Imm nodes return nil; Neg returns one child; binary nodes return two
	// (lhs then rhs).
	Children() []Expr

	// Splits returns the OperatorSplit annotations owned by this node, in
	// the order they were recorded.
	Splits() []*OperatorSplit

	// addSplit appends a new annotation to this node's split list.
	addSplit(s *OperatorSplit)
}

// splits is embedded in every node to provide the shared, mutable
// operator-split bookkeeping -- the node-level equivalent of the teacher's
// per-node Annotations slice.
type splits struct {
	list []*OperatorSplit
}

func (s *splits) Splits() []*OperatorSplit { return append([]*OperatorSplit{}, s.list...) }
func (s *splits) addSplit(sp *OperatorSplit) { s.list = append(s.list, sp) }

type (
	// Access reads a TensorVar at the given IndexVars. Arity of IndexVars
	// must equal the tensor's rank; this is checked at construction.
	Access struct {
		splits
		Tensor    *TensorVar
		IndexVars []IndexVar
	}

	// IntImm is an immediate 64-bit integer literal.
	IntImm struct {
		splits
		Val int64
	}

	// FloatImm is an immediate 32-bit float literal.
	FloatImm struct {
		splits
		Val float32
	}

	// DoubleImm is an immediate 64-bit float literal.
	DoubleImm struct {
		splits
		Val float64
	}

	// Neg is unary negation.
	Neg struct {
		splits
		X Expr
	}

	// Add is lhs + rhs.
	Add struct {
		splits
		X, Y Expr
	}

	// Sub is lhs - rhs.
	Sub struct {
		splits
		X, Y Expr
	}

	// Mul is lhs * rhs.
	Mul struct {
		splits
		X, Y Expr
	}

	// Div is lhs / rhs.
	Div struct {
		splits
		X, Y Expr
	}
)

func (*Access) expr()    {}
func (*IntImm) expr()    {}
func (*FloatImm) expr()  {}
func (*DoubleImm) expr() {}
func (*Neg) expr()       {}
func (*Add) expr()       {}
func (*Sub) expr()       {}
func (*Mul) expr()       {}
func (*Div) expr()       {}

// Children implementations, in the order specified: Access/Imm have none,
// Neg has one, binary nodes have lhs then rhs.
func (*Access) Children() []Expr    { return nil }
func (*IntImm) Children() []Expr    { return nil }
func (*FloatImm) Children() []Expr  { return nil }
func (*DoubleImm) Children() []Expr { return nil }
func (n *Neg) Children() []Expr     { return []Expr{n.X} }
func (n *Add) Children() []Expr     { return []Expr{n.X, n.Y} }
func (n *Sub) Children() []Expr     { return []Expr{n.X, n.Y} }
func (n *Mul) Children() []Expr     { return []Expr{n.X, n.Y} }
func (n *Div) Children() []Expr     { return []Expr{n.X, n.Y} }

// NewAccess builds an Access node reading tensor at the given index
// variables. It returns an error wrapping ArityMismatchErr if len(vars) does not match the
// tensor's rank.
func NewAccess(tensor *TensorVar, vars ...IndexVar) (*Access, error) {
	rank := tensor.Type.Shape.Rank()
	if len(vars) != rank {
		return nil, errors.Wrapf(ArityMismatchErr, "tensor %s has rank %d but got %d index variables", tensor.Name, rank, len(vars))
	}
	return &Access{Tensor: tensor, IndexVars: append([]IndexVar{}, vars...)}, nil
}

// Int lifts an int64 literal into an IndexExpr.
func Int(v int64) *IntImm { return &IntImm{Val: v} }

// Float32 lifts a float32 literal into an IndexExpr.
func Float32(v float32) *FloatImm { return &FloatImm{Val: v} }

// Float64 lifts a float64 literal into an IndexExpr.
func Float64(v float64) *DoubleImm { return &DoubleImm{Val: v} }

// requireDefined panics if any operand is the nil Expr interface. Building
// an expression from an undefined operand is a programmer error with no
// recoverable path, the same way the teacher's IndexExpr() sentinel value
// is rejected by assertion rather than returned as an error.
func requireDefined(operands ...Expr) {
	for _, e := range operands {
		if e == nil {
			panic("ir: undefined operand in index expression")
		}
	}
}

// Negate returns the unary negation of x. x must be defined (non-nil).
func Negate(x Expr) *Neg {
	requireDefined(x)
	return &Neg{X: x}
}

// Plus returns lhs + rhs. Both operands must be defined.
func Plus(lhs, rhs Expr) *Add {
	requireDefined(lhs, rhs)
	return &Add{X: lhs, Y: rhs}
}

// Minus returns lhs - rhs. Both operands must be defined.
func Minus(lhs, rhs Expr) *Sub {
	requireDefined(lhs, rhs)
	return &Sub{X: lhs, Y: rhs}
}

// Times returns lhs * rhs. Both operands must be defined.
func Times(lhs, rhs Expr) *Mul {
	requireDefined(lhs, rhs)
	return &Mul{X: lhs, Y: rhs}
}

// Over returns lhs / rhs. Both operands must be defined.
func Over(lhs, rhs Expr) *Div {
	requireDefined(lhs, rhs)
	return &Div{X: lhs, Y: rhs}
}
