// Copyright 2010-2025 Google LLC
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

package cpmodel

import (
	"errors"
	"testing"

	"github.com/branchbound/solver/internal/vstore"
)

func TestBuildSimpleModel(t *testing.T) {
	b := NewBuilder()
	x := b.AddVar("x", 0, 2)
	y := b.AddVar("y", 0, 2)
	b.AddTemporalConstraint(x, 1, LE, y)

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if m.Props.Len() != 1 {
		t.Errorf("Props.Len() = %d, want 1", m.Props.Len())
	}
	if len(m.BranchVars) != 2 {
		t.Errorf("len(BranchVars) = %d, want 2", len(m.BranchVars))
	}
	if got := m.Store.Ub(x); got != 2 {
		t.Errorf("Ub(x) = %d, want 2", got)
	}
}

func TestUnknownVariableIsBuildError(t *testing.T) {
	b := NewBuilder()
	x := b.AddVar("x", 0, 2)
	bogus := vstore.VarID(99)
	b.AddTemporalConstraint(x, 0, LE, bogus)

	_, err := b.Build()
	if err == nil {
		t.Fatalf("Build() = nil error, want ErrUnknownVariable")
	}
	if !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("errors.Is(err, ErrUnknownVariable) = false, err = %v", err)
	}
}

func TestDuplicateVariableNameIsBuildError(t *testing.T) {
	b := NewBuilder()
	b.AddVar("x", 0, 2)
	b.AddVar("x", 0, 2)

	_, err := b.Build()
	if !errors.Is(err, ErrMalformedConstraint) {
		t.Errorf("errors.Is(err, ErrMalformedConstraint) = false, err = %v", err)
	}
}

func TestReifiedConstraintRequiresTemporalConjuncts(t *testing.T) {
	b := NewBuilder()
	bvar := b.AddVar("b", 0, 1)
	x := b.AddVar("x", 0, 5)
	y := b.AddVar("y", 0, 5)
	lhs := b.AddTemporalConstraint(x, 0, LE, y)
	rhs := b.AddTemporalConstraint(x, 0, EQ, y) // produces a LogicalAnd, not a Temporal
	b.AddReifiedConstraint(bvar, lhs, rhs)

	_, err := b.Build()
	if !errors.Is(err, ErrUnsupportedOperator) {
		t.Errorf("errors.Is(err, ErrUnsupportedOperator) = false, err = %v", err)
	}
}

func TestEqualityTemporalConstraintIsLogicalAnd(t *testing.T) {
	b := NewBuilder()
	x := b.AddVar("x", 0, 5)
	y := b.AddVar("y", 0, 5)
	p := b.AddTemporalConstraint(x, 2, EQ, y) // x + 2 == y

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	m.Store.Assign(x, 1)
	p.Propagate(m.Store)
	if got := m.Store.Get(y); got.Lb != 3 || got.Ub != 3 {
		t.Errorf("y after x=1, x+2==y = %+v, want [3,3]", got)
	}
}

func TestLinearConstraintGE(t *testing.T) {
	b := NewBuilder()
	x := b.AddVar("x", 0, 10)
	y := b.AddVar("y", 0, 10)
	p := b.AddLinearConstraint([]vstore.VarID{x, y}, []int64{1, 1}, GE, 15)

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	m.Store.Assign(x, 5)
	p.Propagate(m.Store)
	if got := m.Store.Lb(y); got != 10 {
		t.Errorf("lb(y) after x=5, x+y>=15 = %d, want 10", got)
	}
}
