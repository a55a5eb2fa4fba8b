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

import "github.com/branchbound/solver/internal/vstore"

// Reified enforces B <=> RHS, where RHS must be a LogicalAnd of two
// Temporal propagators (spec §9: "the spec restricts the supported RHS to
// LogicalAnd(Temporal, Temporal) to remain faithful" — the source's
// negation rule for b=0 is under-specified for any wider RHS shape).
type Reified struct {
	base
	B   vstore.VarID
	RHS *LogicalAnd
	T1  *Temporal
	T2  *Temporal
}

// NewReified builds b <=> (t1 /\ t2).
func NewReified(b vstore.VarID, t1, t2 *Temporal) *Reified {
	return &Reified{B: b, RHS: NewLogicalAnd(t1, t2), T1: t1, T2: t2}
}

// Propagate implements the three-way case split of spec §4.2:
//   - b fixed to 1: propagate the RHS directly.
//   - b fixed to 0: propagate a negation witness — if one conjunct is
//     already entailed, the other is strengthened to its negation.
//   - b free: assign it once the RHS becomes entailed or disentailed.
func (r *Reified) Propagate(s *vstore.Store) bool {
	b := s.Get(r.B)
	switch {
	case b.Lb == 1: // b fixed to 1
		return r.RHS.Propagate(s)
	case b.Ub == 0: // b fixed to 0
		return r.propagateNegationWitness(s)
	default: // b free
		if r.RHS.IsEntailed(s) {
			return s.Assign(r.B, 1)
		}
		if r.RHS.IsDisentailed(s) {
			return s.Assign(r.B, 0)
		}
		return false
	}
}

// propagateNegationWitness strengthens whichever conjunct's negation is
// currently forced: if one conjunct is entailed, the RHS can only be
// disentailed through the other, so that other is narrowed to its strict
// negation.
func (r *Reified) propagateNegationWitness(s *vstore.Store) bool {
	switch {
	case r.T1.IsEntailed(s):
		return r.T2.Negate().Propagate(s)
	case r.T2.IsEntailed(s):
		return r.T1.Negate().Propagate(s)
	default:
		return false
	}
}

// IsEntailed holds once b has been fixed consistently with the RHS.
func (r *Reified) IsEntailed(s *vstore.Store) bool {
	b := s.Get(r.B)
	if b.Lb == 1 {
		return r.RHS.IsEntailed(s)
	}
	if b.Ub == 0 {
		return r.RHS.IsDisentailed(s)
	}
	return false
}

// IsDisentailed holds once b has been fixed inconsistently with the RHS.
func (r *Reified) IsDisentailed(s *vstore.Store) bool {
	b := s.Get(r.B)
	if b.Lb == 1 {
		return r.RHS.IsDisentailed(s)
	}
	if b.Ub == 0 {
		return r.RHS.IsEntailed(s)
	}
	return false
}

// Vars returns b plus the RHS's scope.
func (r *Reified) Vars() []vstore.VarID {
	return append([]vstore.VarID{r.B}, r.RHS.Vars()...)
}
