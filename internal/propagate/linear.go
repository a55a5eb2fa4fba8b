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
	"github.com/branchbound/solver/internal/interval"
	"github.com/branchbound/solver/internal/vstore"
)

// LinearIneq enforces sum(Coefs[i] * Vars[i]) <= C.
type LinearIneq struct {
	base
	Vars_ []vstore.VarID
	Coefs []int64
	C     int64
}

// NewLinearIneq builds a LinearIneq propagator for sum(coefs*vars) <= c.
// vars and coefs must have the same length.
func NewLinearIneq(vars []vstore.VarID, coefs []int64, c int64) *LinearIneq {
	return &LinearIneq{Vars_: vars, Coefs: coefs, C: c}
}

// lowerContrib returns the minimal possible contribution of term i.
func (l *LinearIneq) lowerContrib(s *vstore.Store, i int) int64 {
	c := l.Coefs[i]
	if c >= 0 {
		return c * s.Lb(l.Vars_[i])
	}
	return c * s.Ub(l.Vars_[i])
}

// upperContrib returns the maximal possible contribution of term i.
func (l *LinearIneq) upperContrib(s *vstore.Store, i int) int64 {
	c := l.Coefs[i]
	if c >= 0 {
		return c * s.Ub(l.Vars_[i])
	}
	return c * s.Lb(l.Vars_[i])
}

func (l *LinearIneq) minContrib(s *vstore.Store) int64 {
	var total int64
	for i := range l.Vars_ {
		total += l.lowerContrib(s, i)
	}
	return total
}

func (l *LinearIneq) maxContrib(s *vstore.Store) int64 {
	var total int64
	for i := range l.Vars_ {
		total += l.upperContrib(s, i)
	}
	return total
}

// Propagate narrows each term's variable in turn using the slack left by
// the other terms' minimal contributions, per spec §4.2.
func (l *LinearIneq) Propagate(s *vstore.Store) bool {
	min := l.minContrib(s)
	changed := false
	for i, c := range l.Coefs {
		if c == 0 {
			continue
		}
		slack := l.C - (min - l.lowerContrib(s, i))
		if c > 0 {
			newUb := interval.FloorDiv(slack, c)
			changed = s.UpdateUb(l.Vars_[i], newUb) || changed
		} else {
			newLb := interval.CeilDiv(slack, c)
			changed = s.UpdateLb(l.Vars_[i], newLb) || changed
		}
	}
	return changed
}

// IsEntailed holds once the constraint is satisfied for every remaining
// assignment, i.e. the worst case (maximal) contribution still fits.
func (l *LinearIneq) IsEntailed(s *vstore.Store) bool {
	return l.maxContrib(s) <= l.C
}

// IsDisentailed holds once the constraint cannot be satisfied by any
// remaining assignment, i.e. even the best case (minimal) contribution
// overshoots.
func (l *LinearIneq) IsDisentailed(s *vstore.Store) bool {
	return l.minContrib(s) > l.C
}

// Vars returns the scope of the constraint.
func (l *LinearIneq) Vars() []vstore.VarID {
	return l.Vars_
}
