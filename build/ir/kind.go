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

// Package ir is the intermediate representation of a sparse-tensor index
// expression: IndexVars, the Access/arithmetic expression tree, TensorVar
// bindings and the semantic validator that runs at bind time.
//
// The structure is modeled after a small Go IR package: a closed set of node
// kinds behind a sealed interface, identity-by-handle for names that must
// compare by reference rather than value, and validation performed once at
// the single mutation point (TensorVar.Bind) rather than scattered through
// construction.
package ir

// ScalarKind is the element type of a TensorVar. The core only distinguishes
// kinds for size and formatting purposes; it never performs arithmetic on
// values of these kinds.
type ScalarKind uint8

// Supported scalar kinds, consumed from the environment per the external
// interfaces: the core requires at least these three.
const (
	InvalidKind ScalarKind = iota
	Int32Kind
	Float32Kind
	Float64Kind
)

// String returns a short, human readable name for the kind.
func (k ScalarKind) String() string {
	switch k {
	case Int32Kind:
		return "i32"
	case Float32Kind:
		return "f32"
	case Float64Kind:
		return "f64"
	default:
		return "invalid"
	}
}

// DefaultScalarKind is the package-level default element kind. Mirrors the
// teacher's package-level DefaultFloatType/DefaultIntKind configuration
// knobs. NewType always takes an explicit kind; no constructor in this
// package reads DefaultScalarKind.
var DefaultScalarKind = Float64Kind
