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

// IndexVar is the identity of an abstract iteration axis. Two IndexVars are
// the same variable iff they share the same underlying node: comparing
// IndexVar values with == is the intended and sufficient equality check,
// since IndexVar wraps a pointer to that node.
//
// The name is advisory and used only for printing; it is never consulted
// for equality, and collisions between names are allowed.
type IndexVar struct {
	node *indexVarNode
}

type indexVarNode struct {
	name string
}

// NewIndexVar returns a new IndexVar with the given display name.
func NewIndexVar(name string) IndexVar {
	return IndexVar{node: &indexVarNode{name: name}}
}

// NewAnonymousIndexVar returns a new IndexVar with an auto-generated name
// drawn from the process-wide 'i'-prefixed counter (e.g. "i3").
func NewAnonymousIndexVar() IndexVar {
	return NewIndexVar(uname.Default.Next('i'))
}

// Name returns the IndexVar's display name.
func (v IndexVar) Name() string { return v.node.name }

// Defined reports whether v refers to an actual node.
func (v IndexVar) Defined() bool { return v.node != nil }

// Equal reports whether v and o are the same variable (identity, not name).
func (v IndexVar) Equal(o IndexVar) bool { return v.node == o.node }

// Less provides an arbitrary but stable total order over IndexVars, based
// on the node's address. It exists so IndexVars can be sorted into a
// deterministic order for diagnostics without attaching meaning to names.
func (v IndexVar) Less(o IndexVar) bool {
	return uintptr(nodeAddr(v.node)) < uintptr(nodeAddr(o.node))
}

// String returns the IndexVar's display name.
func (v IndexVar) String() string { return v.Name() }
