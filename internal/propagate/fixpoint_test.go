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

func TestRunToFixpointChainsNarrowing(t *testing.T) {
	// x <= y, y <= z, z in [0,3]: a single sweep narrows z's effect onto y
	// but needs a second sweep to reach x, exercising the round-robin
	// re-sweep rather than a one-shot pass.
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 10},
		2: {Lb: 0, Ub: 10},
		3: {Lb: 0, Ub: 3},
	})
	set := NewSet()
	set.Register(NewTemporal(1, 2, 0))
	set.Register(NewTemporal(2, 3, 0))

	set.RunToFixpoint(s)

	if got := s.Ub(1); got != 3 {
		t.Errorf("ub(x) = %d, want 3", got)
	}
	if got := s.Ub(2); got != 3 {
		t.Errorf("ub(y) = %d, want 3", got)
	}
}

func TestRunToFixpointIdempotent(t *testing.T) {
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 0, Ub: 10},
		2: {Lb: 0, Ub: 3},
	})
	set := NewSet()
	set.Register(NewTemporal(1, 2, 0))

	set.RunToFixpoint(s)
	before := s.Snapshot()
	set.RunToFixpoint(s)
	after := s.Snapshot()

	for i := range before.Bounds {
		if before.Bounds[i] != after.Bounds[i] {
			t.Errorf("slot %d changed on second fixpoint run: %+v -> %+v", i, before.Bounds[i], after.Bounds[i])
		}
	}
}

func TestRunToFixpointStopsAtTop(t *testing.T) {
	s := newTestStore(map[vstore.VarID]interval.Bounds{
		1: {Lb: 5, Ub: 10},
		2: {Lb: 0, Ub: 2},
	})
	set := NewSet()
	set.Register(NewTemporal(1, 2, 0)) // x <= y, but lb(x)=5 > ub(y)=2

	set.RunToFixpoint(s)
	if !s.IsTop() {
		t.Fatalf("store not marked top for an unsatisfiable chain")
	}
}

func TestRunToFixpointPartitionedMatchesSequential(t *testing.T) {
	build := func() (*vstore.Store, *Set) {
		s := newTestStore(map[vstore.VarID]interval.Bounds{
			1: {Lb: 0, Ub: 20},
			2: {Lb: 0, Ub: 20},
			3: {Lb: 0, Ub: 20},
			4: {Lb: 0, Ub: 5},
		})
		set := NewSet()
		set.Register(NewTemporal(1, 2, 0))
		set.Register(NewTemporal(2, 3, 0))
		set.Register(NewTemporal(3, 4, 0))
		return s, set
	}

	sSeq, setSeq := build()
	setSeq.RunToFixpoint(sSeq)

	sPar, setPar := build()
	setPar.RunToFixpointPartitioned(sPar, 2)

	for _, v := range []vstore.VarID{1, 2, 3, 4} {
		if sSeq.Get(v) != sPar.Get(v) {
			t.Errorf("var %d: sequential=%+v partitioned=%+v", v, sSeq.Get(v), sPar.Get(v))
		}
	}
}
