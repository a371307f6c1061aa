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
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
)

// validate runs the three bind-time checks in order, returning the first
// failure. It never mutates t.
func validate(t *TensorVar, freeVars []IndexVar, expr Expr) error {
	if err := checkDimensions(t, freeVars, expr); err != nil {
		return err
	}
	if err := checkTransposition(t, freeVars, expr); err != nil {
		return err
	}
	if err := checkDistribution(freeVars, expr); err != nil {
		return err
	}
	return nil
}

// mergeDimension reports whether a and b agree, and if so the tightest
// Dimension implied by both (a known dimension wins over an unknown one).
func mergeDimension(a, b Dimension) (Dimension, bool) {
	if !a.Equal(b) {
		return Dimension{}, false
	}
	if a.IsKnown() {
		return a, true
	}
	return b, true
}

// checkDimensions builds the IndexVar -> Dimension table, seeded from
// freeVars against the LHS shape and then widened by every Access in expr.
// Every conflict found is recorded, not just the first, so the diagnostic
// can enumerate them all.
func checkDimensions(t *TensorVar, freeVars []IndexVar, expr Expr) error {
	table := make(map[IndexVar]Dimension, len(freeVars))
	var conflicts []DimensionConflict
	var aggregate error

	bind := func(v IndexVar, dim Dimension) {
		existing, ok := table[v]
		if !ok {
			table[v] = dim
			return
		}
		merged, ok := mergeDimension(existing, dim)
		if !ok {
			conflicts = append(conflicts, DimensionConflict{Var: v, Want: existing, Got: dim})
			aggregate = multierr.Append(aggregate, errors.Errorf(
				"index variable %s: %s disagrees with previously seen %s", v.Name(), dim, existing))
			return
		}
		table[v] = merged
	}

	shape := t.Type.Shape
	for k, v := range freeVars {
		if k < shape.Rank() {
			bind(v, shape.Dim(k))
		}
	}
	for _, acc := range Accesses(expr) {
		accShape := acc.Tensor.Type.Shape
		for k, v := range acc.IndexVars {
			if k < accShape.Rank() {
				bind(v, accShape.Dim(k))
			}
		}
	}

	if len(conflicts) == 0 {
		return nil
	}
	touched := make(map[IndexVar]bool, len(conflicts))
	for _, c := range conflicts {
		touched[c.Var] = true
	}
	vars := maps.Keys(touched)
	sort.Slice(vars, func(i, j int) bool { return vars[i].Less(vars[j]) })

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name()
	}
	err := newValidationError(DimensionMismatch, "dimension mismatch for index variables %v: %+v", names, aggregate)
	err.Conflicts = conflicts
	return err
}

// checkTransposition rejects an Access of the LHS tensor itself, or any
// Access whose free IndexVars appear in an order that would force a
// permuted storage traversal relative to the LHS format's ordering.
func checkTransposition(t *TensorVar, freeVars []IndexVar, expr Expr) error {
	pos := make(map[IndexVar]int, len(freeVars))
	for i, v := range freeVars {
		pos[v] = i
	}
	order := t.Format.order()
	invOrder := make([]int, len(order))
	for level, dim := range order {
		if dim < len(invOrder) {
			invOrder[dim] = level
		}
	}

	for _, acc := range Accesses(expr) {
		if acc.Tensor == t {
			return newValidationError(UnsupportedTransposition,
				"binding for %s reads %s itself, which is not a supported self-access pattern", t.Name, t.Name)
		}
		last := -1
		for _, v := range acc.IndexVars {
			p, ok := pos[v]
			if !ok {
				continue // reduction variable: not constrained by output ordering.
			}
			if p >= len(invOrder) {
				continue
			}
			level := invOrder[p]
			if level < last {
				return newValidationError(UnsupportedTransposition,
					"binding for %s would require permuting storage traversal relative to its format %s", t.Name, t.Format)
			}
			last = level
		}
	}
	return nil
}

// checkDistribution rejects an expression where a single non-free IndexVar
// is read under more than one Access at a SPARSE storage level: that
// reduction cannot be materialized without distributing the result across
// more than one output.
func checkDistribution(freeVars []IndexVar, expr Expr) error {
	free := make(map[IndexVar]bool, len(freeVars))
	for _, v := range freeVars {
		free[v] = true
	}

	sparseHits := make(map[IndexVar]int)
	for _, acc := range Accesses(expr) {
		order := acc.Tensor.Format.order()
		invOrder := make([]int, len(order))
		for level, dim := range order {
			if dim < len(invOrder) {
				invOrder[dim] = level
			}
		}
		for k, v := range acc.IndexVars {
			if free[v] {
				continue
			}
			if k >= len(invOrder) {
				continue
			}
			level := invOrder[k]
			if level < len(acc.Tensor.Format.Levels) && acc.Tensor.Format.Levels[level] == Sparse {
				sparseHits[v]++
			}
		}
	}

	var offenders []IndexVar
	for v, n := range sparseHits {
		if n > 1 {
			offenders = append(offenders, v)
		}
	}
	if len(offenders) == 0 {
		return nil
	}
	sort.Slice(offenders, func(i, j int) bool { return offenders[i].Less(offenders[j]) })
	return newValidationError(UnsupportedDistribution,
		"index variable(s) %s would require distributing the result across multiple sparse outputs",
		fmt.Sprint(offenders))
}
