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

// Walk visits expr and every descendant, pre-order, calling visit once per
// node. The traversal is deterministic and total: every node reachable
// through Children is visited exactly once, in the order Children returns
// them (Access/Imm: none, Neg: one child, binary: lhs then rhs).
func Walk(expr Expr, visit func(Expr)) {
	if expr == nil {
		return
	}
	visit(expr)
	for _, child := range expr.Children() {
		Walk(child, visit)
	}
}

// Visitor holds one optional callback per node variant. Match invokes the
// matching callback for every node visited in pre-order; a nil callback is
// simply skipped. This mirrors the teacher's function(const FooNode*){...}
// style "match" helper, adapted to Go's type switch instead of C++
// overload resolution.
type Visitor struct {
	Access    func(*Access)
	IntImm    func(*IntImm)
	FloatImm  func(*FloatImm)
	DoubleImm func(*DoubleImm)
	Neg       func(*Neg)
	Add       func(*Add)
	Sub       func(*Sub)
	Mul       func(*Mul)
	Div       func(*Div)
}

// Match walks expr pre-order, invoking the visitor's callback matching
// each node's concrete variant.
func Match(expr Expr, v Visitor) {
	Walk(expr, func(n Expr) {
		switch t := n.(type) {
		case *Access:
			if v.Access != nil {
				v.Access(t)
			}
		case *IntImm:
			if v.IntImm != nil {
				v.IntImm(t)
			}
		case *FloatImm:
			if v.FloatImm != nil {
				v.FloatImm(t)
			}
		case *DoubleImm:
			if v.DoubleImm != nil {
				v.DoubleImm(t)
			}
		case *Neg:
			if v.Neg != nil {
				v.Neg(t)
			}
		case *Add:
			if v.Add != nil {
				v.Add(t)
			}
		case *Sub:
			if v.Sub != nil {
				v.Sub(t)
			}
		case *Mul:
			if v.Mul != nil {
				v.Mul(t)
			}
		case *Div:
			if v.Div != nil {
				v.Div(t)
			}
		}
	})
}

// Accesses returns every Access node in expr, in pre-order.
func Accesses(expr Expr) []*Access {
	var out []*Access
	Match(expr, Visitor{Access: func(a *Access) { out = append(out, a) }})
	return out
}
