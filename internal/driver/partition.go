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

package driver

import (
	"github.com/branchbound/solver/internal/interval"
	"github.com/branchbound/solver/internal/vstore"
)

// applyPrefix narrows store with the deterministic decomposition prefix
// for subproblem index, per spec §4.4/§4.5: the driver supplies a
// bit-string of length depth selecting the first depth branching
// variables in branchVars (always in their fixed registration order, even
// under free_search, so that partitioning stays deterministic regardless
// of the in-subtree variable-selection rule); bit k chooses left/right for
// decision k, most-significant bit first.
//
// It uses the same halving rule as the search tree's own branching step,
// but the decisions are applied to the store as given, with no propagation
// between them, and a variable that is already assigned is split too (its
// left half is empty), so a prefix need not match the path the sequential
// search takes.
func applyPrefix(store *vstore.Store, branchVars []vstore.VarID, index uint64, depth int) {
	if depth > len(branchVars) {
		depth = len(branchVars)
	}
	for k := 0; k < depth; k++ {
		if store.IsTop() {
			return
		}
		bit := (index >> uint(depth-1-k)) & 1
		v := branchVars[k]
		b := store.Get(v)
		width := b.Ub - b.Lb + 1
		leftUb := b.Lb + width/2 - 1
		rightLb := leftUb + 1
		if bit == 0 {
			store.Update(v, interval.Bounds{Lb: b.Lb, Ub: leftUb})
		} else {
			store.Update(v, interval.Bounds{Lb: rightLb, Ub: b.Ub})
		}
	}
}
