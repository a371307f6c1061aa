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

// OperatorSplit is a scheduling annotation: iteration over Old at the
// operator node it is attached to is to be split into a tiled iteration
// over Left x Right. It is purely declarative -- it never alters the
// value structure of the expression tree it annotates.
type OperatorSplit struct {
	Node  Expr
	Old   IndexVar
	Left  IndexVar
	Right IndexVar
}

// Split records an OperatorSplit on the root node of expr. Repeated splits
// on the same (old, left, right) triple are preserved, not deduplicated:
// the annotation list is a record of every split call, not a set.
func Split(expr Expr, old, left, right IndexVar) {
	expr.addSplit(&OperatorSplit{Node: expr, Old: old, Left: left, Right: right})
}

// Schedule is a value snapshot of the OperatorSplits gathered from an
// expression tree, in pre-order traversal order. It is a copy, not a view:
// mutating the expression tree after Schedule is taken never changes an
// already-returned Schedule, unlike the teacher's schedule accessor, which
// cleared and repopulated a member in place (see DESIGN.md).
type Schedule struct {
	Splits []*OperatorSplit
}

// ScheduleOf traverses expr in pre-order and collects every OperatorSplit
// recorded on every visited node, preserving discovery order and
// duplicates across subtrees.
func ScheduleOf(expr Expr) Schedule {
	var sched Schedule
	Walk(expr, func(n Expr) {
		sched.Splits = append(sched.Splits, n.Splits()...)
	})
	return sched
}
