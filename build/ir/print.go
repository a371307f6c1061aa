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

import (
	"fmt"
	"strconv"
	"strings"
)

// precedence level, higher binds tighter. Matches the distilled spec:
// '+'/'-' loosest, then '*'/'/' , then unary '-', then atoms.
const (
	precAdditive = iota
	precMultiplicative
	precUnary
	precAtom
)

func precOf(e Expr) int {
	switch e.(type) {
	case *Add, *Sub:
		return precAdditive
	case *Mul, *Div:
		return precMultiplicative
	case *Neg:
		return precUnary
	default:
		return precAtom
	}
}

// Sprint renders expr as infix notation with parentheses only where
// precedence demands them.
func Sprint(expr Expr) string {
	return sprint(expr, precAdditive)
}

func sprint(e Expr, parentPrec int) string {
	var s string
	switch t := e.(type) {
	case *Access:
		names := make([]string, len(t.IndexVars))
		for i, v := range t.IndexVars {
			names[i] = v.Name()
		}
		s = fmt.Sprintf("%s(%s)", t.Tensor.Name, strings.Join(names, ","))
	case *IntImm:
		s = strconv.FormatInt(t.Val, 10)
	case *FloatImm:
		s = strconv.FormatFloat(float64(t.Val), 'g', -1, 32)
	case *DoubleImm:
		s = strconv.FormatFloat(t.Val, 'g', -1, 64)
	case *Neg:
		s = "-" + sprint(t.X, precUnary)
	case *Add:
		s = sprint(t.X, precAdditive) + " + " + sprint(t.Y, precAdditive+1)
	case *Sub:
		s = sprint(t.X, precAdditive) + " - " + sprint(t.Y, precAdditive+1)
	case *Mul:
		s = sprint(t.X, precMultiplicative) + " * " + sprint(t.Y, precMultiplicative+1)
	case *Div:
		s = sprint(t.X, precMultiplicative) + " / " + sprint(t.Y, precMultiplicative+1)
	default:
		s = "?"
	}
	if precOf(e) < parentPrec {
		return "(" + s + ")"
	}
	return s
}
