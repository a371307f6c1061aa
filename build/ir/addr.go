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

import "unsafe"

// nodeAddr exposes a node pointer's address for use as a stable, arbitrary
// sort key. It never dereferences or retains the pointer beyond the call.
func nodeAddr[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}
