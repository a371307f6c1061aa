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
	"errors"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{DimensionMismatch, "DimensionMismatch"},
		{UnsupportedTransposition, "UnsupportedTransposition"},
		{UnsupportedDistribution, "UnsupportedDistribution"},
		{AlreadyBound, "AlreadyBound"},
		{ArityMismatch, "ArityMismatch"},
		{MalformedFormat, "MalformedFormat"},
		{ErrorKind(99), "Unknown"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestValidationErrorIs(t *testing.T) {
	err := newValidationError(UnsupportedTransposition, "boom")
	if !errors.Is(err, UnsupportedTranspositionErr) {
		t.Errorf("errors.Is(err, UnsupportedTranspositionErr) = false, want true")
	}
	if errors.Is(err, UnsupportedDistributionErr) {
		t.Errorf("errors.Is(err, UnsupportedDistributionErr) = true, want false")
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := newValidationError(DimensionMismatch, "mismatch: %d", 3)
	if errors.Unwrap(err) == nil {
		t.Errorf("Unwrap() = nil, want the wrapped cause")
	}
	if err.Error() == "" {
		t.Errorf("Error() returned empty string")
	}
}
