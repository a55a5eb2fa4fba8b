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

// newReifiedGuard builds b <=> (x <= y - 1 /\ y <= x + 3), spec scenario 4.
func newReifiedGuard() *Reified {
	t1 := NewTemporal(1, 2, -1) // x <= y - 1
	t2 := NewTemporal(2, 1, 3)  // y <= x + 3
	return NewReified(3, t1, t2)
}

func TestReifiedForcesBOnAssignment(t *testing.T) {
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 2, Ub: 2},
		2: {Lb: 4, Ub: 4},
		3: {Lb: 0, Ub: 1},
	})
	r := newReifiedGuard()
	r.Propagate(s)
	if got := s.Get(3); got.Lb != 1 {
		t.Errorf("b = %+v, want assigned to 1 (x=2,y=4 satisfies both conjuncts)", got)
	}
}

func TestReifiedForcesBFalseOnAssignment(t *testing.T) {
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 3, Ub: 3},
		2: {Lb: 3, Ub: 3},
		3: {Lb: 0, Ub: 1},
	})
	r := newReifiedGuard()
	r.Propagate(s)
	if got := s.Get(3); got.Ub != 0 {
		t.Errorf("b = %+v, want assigned to 0 (x=3,y=3 violates x<=y-1)", got)
	}
}

func TestReifiedBFixedPropagatesNegationWitness(t *testing.T) {
	// b fixed to 0, and t1 (x<=y-1) already entailed: t2 must be negated,
	// forcing y > x+3, i.e. lb(y) >= lb(x)+4.
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 0},
		2: {Lb: 1, Ub: 10},
		3: {Lb: 0, Ub: 0},
	})
	r := newReifiedGuard()
	r.Propagate(s)
	if got := s.Lb(2); got != 4 {
		t.Errorf("lb(y) = %d, want 4 (forced strictly above x+3)", got)
	}
}
