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

package propagate

import (
	"testing"

	"github.com/branchbound/solver/internal/interval"
	"github.com/branchbound/solver/internal/vstore"
)

func newTestStore(domains map[vstore.VarID]interval.Bounds) *vstore.Store {
	n := 1
	for v := range domains {
		if int(v)+1 > n {
			n = int(v) + 1
		}
	}
	s := vstore.New(n)
	for v, b := range domains {
		s.Dom(v, b)
	}
	return s
}

func TestTemporalPropagate(t *testing.T) {
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 10},
		2: {Lb: 0, Ub: 3},
	})
	p := NewTemporal(1, 2, 2) // x <= y + 2

	if !p.Propagate(s) {
		t.Fatalf("Propagate() = false, want true (ub(x) should narrow to 5)")
	}
	if got := s.Ub(1); got != 5 {
		t.Errorf("ub(x) = %d, want 5", got)
	}
	if p.Propagate(s) {
		t.Errorf("Propagate() on an already-fixpoint store reported a change")
	}
}

func TestTemporalEntailedDisentailed(t *testing.T) {
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 2},
		2: {Lb: 5, Ub: 5},
	})
	p := NewTemporal(1, 2, 0) // x <= y

	if !p.IsEntailed(s) {
		t.Errorf("IsEntailed() = false, want true (ub(x)=2 <= lb(y)+0=5)")
	}
	if p.IsDisentailed(s) {
		t.Errorf("IsDisentailed() = true, want false")
	}

	s2 := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 6, Ub: 10},
		2: {Lb: 0, Ub: 5},
	})
	if !p.IsDisentailed(s2) {
		t.Errorf("IsDisentailed() = false, want true (lb(x)=6 > ub(y)+0=5)")
	}
}

func TestTemporalNegate(t *testing.T) {
	p := NewTemporal(1, 2, 3) // x <= y + 3
	neg := p.Negate()         // should enforce x > y + 3, i.e. y <= x - 4

	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 10},
		2: {Lb: 0, Ub: 10},
	})
	neg.Propagate(s)
	if got := s.Ub(2); got != 6 {
		t.Errorf("ub(y) after negated propagate = %d, want 6", got)
	}
}
