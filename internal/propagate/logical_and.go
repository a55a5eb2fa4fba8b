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

// LogicalAnd is the conjunction of two propagators. It owns its
// sub-propagators; the overall propagator set is a forest, never a cycle.
type LogicalAnd struct {
	base
	P1, P2 Propagator
}

// NewLogicalAnd builds the conjunction of p1 and p2.
func NewLogicalAnd(p1, p2 Propagator) *LogicalAnd {
	return &LogicalAnd{P1: p1, P2: p2}
}

// Propagate runs P1 then P2; changed if either changed.
func (l *LogicalAnd) Propagate(s *vstore.Store) bool {
	c1 := l.P1.Propagate(s)
	c2 := l.P2.Propagate(s)
	return c1 || c2
}

// IsEntailed holds iff both conjuncts are entailed.
func (l *LogicalAnd) IsEntailed(s *vstore.Store) bool {
	return l.P1.IsEntailed(s) && l.P2.IsEntailed(s)
}

// IsDisentailed holds iff either conjunct is disentailed.
func (l *LogicalAnd) IsDisentailed(s *vstore.Store) bool {
	return l.P1.IsDisentailed(s) || l.P2.IsDisentailed(s)
}

// Vars returns the union of both conjuncts' scopes.
func (l *LogicalAnd) Vars() []vstore.VarID {
	return append(append([]vstore.VarID{}, l.P1.Vars()...), l.P2.Vars()...)
}
