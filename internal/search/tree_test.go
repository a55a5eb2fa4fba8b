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

package search

import (
	"context"
	"testing"

	"github.com/branchbound/solver/internal/interval"
	"github.com/branchbound/solver/internal/propagate"
	"github.com/branchbound/solver/internal/vstore"
)

func newStore(n int, domains map[vstore.VarID]interval.Bounds) *vstore.Store {
	s := vstore.New(n)
	for v, b := range domains {
		s.Dom(v, b)
	}
	return s
}

// TestTrivialSat mirrors scenario 1: x,y in [0,2], x+1<=y has exactly three
// solutions and is exhaustive.
func TestTrivialSat(t *testing.T) {
	s := newStore(3, map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 2},
		2: {Lb: 0, Ub: 2},
	})
	set := propagate.NewSet()
	set.Register(propagate.NewTemporal(1, 2, -1))

	res := Run(context.Background(), s, set, Options{BranchVars: []vstore.VarID{1, 2}})

	if res.Stats.Solutions != 3 {
		t.Errorf("Solutions = %d, want 3", res.Stats.Solutions)
	}
	if !res.Stats.Exhaustive {
		t.Errorf("Exhaustive = false, want true")
	}
}

// TestLinearUnsatRoot mirrors scenario 2: a root-level contradiction is
// detected with no branching, so exactly one node is visited.
func TestLinearUnsatRoot(t *testing.T) {
	s := newStore(2, map[vstore.VarID]interval.Bounds{
		1: {Lb: 5, Ub: 10},
	})
	set := propagate.NewSet()
	set.Register(propagate.NewLinearIneq([]vstore.VarID{1}, []int64{1}, 4))

	res := Run(context.Background(), s, set, Options{BranchVars: []vstore.VarID{1}})

	if res.Stats.Solutions != 0 {
		t.Errorf("Solutions = %d, want 0", res.Stats.Solutions)
	}
	if res.Stats.Nodes != 1 {
		t.Errorf("Nodes = %d, want 1 (root contradiction, no branching)", res.Stats.Nodes)
	}
	if !res.Stats.Exhaustive {
		t.Errorf("Exhaustive = false, want true")
	}
}

// TestStopAfterNodes exercises the early-exit node budget: Exhaustive must
// go false once the cap is reached.
func TestStopAfterNodes(t *testing.T) {
	s := newStore(3, map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 100},
		2: {Lb: 0, Ub: 100},
	})
	set := propagate.NewSet()
	set.Register(propagate.NewTemporal(1, 2, -1))

	res := Run(context.Background(), s, set, Options{
		BranchVars:     []vstore.VarID{1, 2},
		StopAfterNodes: 2,
	})

	if res.Stats.Exhaustive {
		t.Errorf("Exhaustive = true, want false after hitting the node cap")
	}
	if res.Stats.Nodes < 2 {
		t.Errorf("Nodes = %d, want >= 2", res.Stats.Nodes)
	}
}

// TestFreeSearchSelectsSmallestDomain checks the branching-variable
// selection rule rather than the outcome: with FreeSearch, the first
// decision must split the narrower of the two unassigned variables.
func TestFreeSearchSelectsSmallestDomain(t *testing.T) {
	s := newStore(3, map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 100}, // wide
		2: {Lb: 0, Ub: 1},   // narrow
	})
	got := selectBranchVar(s, []vstore.VarID{1, 2}, true)
	if got != 2 {
		t.Errorf("selectBranchVar(freeSearch) = %d, want 2 (the narrower domain)", got)
	}
}
