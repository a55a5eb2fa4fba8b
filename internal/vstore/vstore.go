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

// Package vstore implements the fixed-size interval store (VStore) that
// propagators narrow during search: a vector of bounded-integer intervals
// addressed by signed variable index, plus a sticky top/contradiction flag.
package vstore

import (
	"fmt"
	"sync/atomic"

	log "github.com/golang/glog"

	"github.com/branchbound/solver/internal/interval"
)

// VarID is a signed variable index. A positive value refers to variable v;
// a negative value -v refers to its negation view, [-ub, -lb]. Index 0 is
// a reserved sentinel slot, allocated by every Store, that can never be
// negated (-0 == 0).
type VarID int32

// Negate returns the negation view of v. Negating the sentinel is a
// programming error: the spec reserves index 0 specifically because it
// cannot be negated.
func (v VarID) Negate() VarID {
	if v == 0 {
		panic("vstore: cannot negate the sentinel variable (index 0)")
	}
	return -v
}

// Positive returns the non-negated variable this id refers to.
func (v VarID) Positive() VarID {
	if v < 0 {
		return -v
	}
	return v
}

// IsNegated reports whether v is a negation view.
func (v VarID) IsNegated() bool {
	return v < 0
}

// Snapshot is a cheap, atomics-free copy of a Store's bounds, used by the
// search tree to save a node on push and restore it on backtrack.
type Snapshot struct {
	Bounds []interval.Bounds
	Top    bool
}

// Store is a fixed-length vector of intervals plus a monotonic top flag.
// Its length is fixed at construction (New or Clone) and never changes.
type Store struct {
	slots []*interval.Interval
	top   atomic.Bool
	names []string
}

// New allocates a store of n variables (including the sentinel at index
// 0), each initialized to the full [MinBound, MaxBound] domain.
func New(n int) *Store {
	s := &Store{
		slots: make([]*interval.Interval, n),
		names: make([]string, n),
	}
	for i := range s.slots {
		s.slots[i] = interval.NewFull()
	}
	return s
}

// Size returns the number of variable slots, including the sentinel.
func (s *Store) Size() int {
	return len(s.slots)
}

// NameOf returns the registration-time name of variable v (not meaningful
// for a negated index; callers should pass v.Positive()).
func (s *Store) NameOf(v VarID) string {
	return s.names[v.Positive()]
}

// SetName records the name of variable v. Builder-only; names never change
// once solving begins.
func (s *Store) SetName(v VarID, name string) {
	s.names[v] = name
}

// Clone performs a structural deep copy: a new Store of the same size with
// independent Interval cells carrying the same bounds and top flag. Used
// to give each Or-parallel worker its own store derived from the root.
func (s *Store) Clone() *Store {
	c := &Store{
		slots: make([]*interval.Interval, len(s.slots)),
		names: s.names, // names are immutable after construction; share them.
	}
	for i, itv := range s.slots {
		c.slots[i] = interval.New(itv.Lb(), itv.Ub())
	}
	c.top.Store(s.top.Load())
	return c
}

// Snapshot captures the current bounds and top flag without allocating new
// Interval cells, for use as a search-stack entry.
func (s *Store) Snapshot() Snapshot {
	bounds := make([]interval.Bounds, len(s.slots))
	for i, itv := range s.slots {
		bounds[i] = itv.Bounds()
	}
	return Snapshot{Bounds: bounds, Top: s.top.Load()}
}

// Restore overwrites every interval and the top flag from a Snapshot taken
// earlier from a store of the same size. Used on backtrack.
func (s *Store) Restore(snap Snapshot) {
	if len(snap.Bounds) != len(s.slots) {
		panic(fmt.Sprintf("vstore: snapshot size %d does not match store size %d", len(snap.Bounds), len(s.slots)))
	}
	for i, b := range snap.Bounds {
		s.slots[i].Set(b)
	}
	s.top.Store(snap.Top)
}

// Reset overwrites every interval and the top flag of s from other. other
// must have the same size; a mismatch is an internal invariant violation
// and panics rather than failing silently.
func (s *Store) Reset(other *Store) {
	if len(other.slots) != len(s.slots) {
		panic(fmt.Sprintf("vstore: reset size mismatch: %d != %d", len(s.slots), len(other.slots)))
	}
	for i, itv := range other.slots {
		s.slots[i].Set(itv.Bounds())
	}
	s.top.Store(other.top.Load())
}

// IsTop reports whether the store as a whole is unsatisfiable.
func (s *Store) IsTop() bool {
	return s.top.Load()
}

// IsTopVar reports whether the individual variable v (after resolving
// negation) is itself empty.
func (s *Store) IsTopVar(v VarID) bool {
	return s.at(v).IsTop()
}

// markTopIfEmpty sets the sticky top flag once slot idx becomes empty.
func (s *Store) markTopIfEmpty(idx int) {
	if s.slots[idx].IsTop() {
		s.top.Store(true)
	}
}

// at resolves v to its underlying Interval, ignoring polarity: callers
// that need the negated view must apply Neg() themselves via Get/Update.
func (s *Store) at(v VarID) *interval.Interval {
	return s.slots[v.Positive()]
}

// bounds returns the bounds of v as seen through its polarity: v.Positive()'s
// raw bounds if v > 0, or their negation if v < 0.
func (s *Store) bounds(v VarID) interval.Bounds {
	b := s.at(v).Bounds()
	if v.IsNegated() {
		return b.Neg()
	}
	return b
}

// Get returns the current bounds of v, resolving its polarity.
func (s *Store) Get(v VarID) interval.Bounds {
	return s.bounds(v)
}

// Lb returns the lower bound of v.
func (s *Store) Lb(v VarID) int64 {
	return s.Get(v).Lb
}

// Ub returns the upper bound of v.
func (s *Store) Ub(v VarID) int64 {
	return s.Get(v).Ub
}

// IsAssigned reports whether v has narrowed to a single value.
func (s *Store) IsAssigned(v VarID) bool {
	return s.at(v).IsAssigned()
}

// Dom unconditionally sets the domain of v (builder-only use: there is no
// prior narrower state to preserve). Sets top if the result is empty.
func (s *Store) Dom(v VarID, b interval.Bounds) {
	idx := int(v.Positive())
	if v.IsNegated() {
		b = b.Neg()
	}
	s.slots[idx].Set(b)
	s.markTopIfEmpty(idx)
}

// UpdateLb narrows the effective lower bound of v (through its polarity)
// to at least newLb. Returns whether this strictly tightened the store.
// Writing through a negative index narrows the underlying positive slot's
// upper bound instead, since -x's lower bound is -(x's upper bound).
func (s *Store) UpdateLb(v VarID, newLb int64) bool {
	idx := int(v.Positive())
	var changed bool
	if v.IsNegated() {
		changed = s.slots[idx].StoreMinUB(-newLb)
	} else {
		changed = s.slots[idx].StoreMaxLB(newLb)
	}
	if changed {
		if log.V(2) {
			log.Infof("vstore: update_lb(%s) -> %d", s.NameOf(v), newLb)
		}
		s.markTopIfEmpty(idx)
	}
	return changed
}

// UpdateUb narrows the effective upper bound of v (through its polarity)
// to at most newUb. Returns whether this strictly tightened the store.
func (s *Store) UpdateUb(v VarID, newUb int64) bool {
	idx := int(v.Positive())
	var changed bool
	if v.IsNegated() {
		changed = s.slots[idx].StoreMaxLB(-newUb)
	} else {
		changed = s.slots[idx].StoreMinUB(newUb)
	}
	if changed {
		if log.V(2) {
			log.Infof("vstore: update_ub(%s) -> %d", s.NameOf(v), newUb)
		}
		s.markTopIfEmpty(idx)
	}
	return changed
}

// Update narrows both bounds of v to b, returning the disjunction of the
// two change bits (spec §4.1: update(v, itv)).
func (s *Store) Update(v VarID, b interval.Bounds) bool {
	changedLb := s.UpdateLb(v, b.Lb)
	changedUb := s.UpdateUb(v, b.Ub)
	return changedLb || changedUb
}

// Assign narrows v to the singleton {k}.
func (s *Store) Assign(v VarID, k int64) bool {
	return s.Update(v, interval.Singleton(k))
}

// AllAssigned reports whether every variable in vars is assigned.
func (s *Store) AllAssigned(vars []VarID) bool {
	for _, v := range vars {
		if !s.IsAssigned(v) {
			return false
		}
	}
	return true
}
