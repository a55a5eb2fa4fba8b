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

// Temporal enforces the difference constraint X <= Y + K. A constraint of
// the shape x + k <= y is the same inequality with the constant negated,
// Temporal(x, y, -k), which is how the cpmodel package builds it.
type Temporal struct {
	base
	X, Y vstore.VarID
	K    int64
}

// NewTemporal builds a Temporal propagator for x <= y + k.
func NewTemporal(x, y vstore.VarID, k int64) *Temporal {
	return &Temporal{X: x, Y: y, K: k}
}

// Propagate narrows ub(x) to at most ub(y)+k and lb(y) to at least lb(x)-k.
func (t *Temporal) Propagate(s *vstore.Store) bool {
	changed := s.UpdateUb(t.X, s.Ub(t.Y)+t.K)
	changed = s.UpdateLb(t.Y, s.Lb(t.X)-t.K) || changed
	return changed
}

// IsEntailed holds once ub(x) already satisfies x <= y + k for every
// remaining value of y, i.e. ub(x) <= lb(y) + k.
func (t *Temporal) IsEntailed(s *vstore.Store) bool {
	return s.Ub(t.X) <= s.Lb(t.Y)+t.K
}

// IsDisentailed holds once no value of x can satisfy x <= y + k against
// any remaining value of y, i.e. lb(x) > ub(y) + k.
func (t *Temporal) IsDisentailed(s *vstore.Store) bool {
	return s.Lb(t.X) > s.Ub(t.Y)+t.K
}

// Vars returns {x, y} (positive indices; polarity is resolved by the store).
func (t *Temporal) Vars() []vstore.VarID {
	return []vstore.VarID{t.X, t.Y}
}

// Negate returns the propagator for the strict negation, X > Y + K, which
// rewrites to the same canonical shape as Y <= X + (-K-1). Used by Reified
// to force the non-taken conjunct of a disentailed LogicalAnd.
func (t *Temporal) Negate() *Temporal {
	return NewTemporal(t.Y, t.X, -(t.K + 1))
}
