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

import "testing"

func TestScheduleOfCollectsAcrossTree(t *testing.T) {
	a := vec("A")
	i := NewIndexVar("i")
	access, err := a.Access(i)
	if err != nil {
		t.Fatal(err)
	}
	expr := Plus(access, Int(1))

	i0, i1 := NewIndexVar("i0"), NewIndexVar("i1")
	Split(access, i, i0, i1)
	Split(expr, i, i0, i1)

	sched := ScheduleOf(expr)
	if got, want := len(sched.Splits), 2; got != want {
		t.Fatalf("len(Schedule.Splits) = %d, want %d", got, want)
	}
}

func TestScheduleIsASnapshot(t *testing.T) {
	a := Int(1)
	i, l, r := NewIndexVar("i"), NewIndexVar("l"), NewIndexVar("r")
	Split(a, i, l, r)

	first := ScheduleOf(a)
	Split(a, i, l, r)
	if got, want := len(first.Splits), 1; got != want {
		t.Errorf("earlier Schedule grew after a later Split call: len = %d, want %d", got, want)
	}

	second := ScheduleOf(a)
	if got, want := len(second.Splits), 2; got != want {
		t.Errorf("len(second.Splits) = %d, want %d", got, want)
	}
}
