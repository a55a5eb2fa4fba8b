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

// Package propagate implements the closed set of propagator variants
// (temporal, linear-inequality, logical-and, reified) and the fixpoint
// engine that iterates them to quiescence.
package propagate

import "github.com/branchbound/solver/internal/vstore"

// Propagator narrows a VStore and reports entailment. propagate may narrow
// any variable in Vars(), never outside it, and must be idempotent on a
// fixed input store.
type Propagator interface {
	// Propagate narrows s and reports whether it changed anything.
	Propagate(s *vstore.Store) bool
	// IsEntailed reports whether the constraint already holds in s.
	IsEntailed(s *vstore.Store) bool
	// IsDisentailed reports whether the constraint is already contradicted in s.
	IsDisentailed(s *vstore.Store) bool
	// Vars returns the variables this propagator may narrow.
	Vars() []vstore.VarID
	// UID returns the stable identifier assigned at registration time.
	UID() int
	setUID(int)
}

// base supplies the uid bookkeeping shared by every propagator variant.
type base struct {
	uid int
}

func (b *base) UID() int     { return b.uid }
func (b *base) setUID(u int) { b.uid = u }
