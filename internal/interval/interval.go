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

// Package interval implements the bounded-integer interval abstraction
// that backs every variable slot of a VStore: a pair of bounds, narrowed
// monotonically and never widened.
package interval

import (
	"math"
	"sync/atomic"
)

// MinBound and MaxBound stand in for the unbounded ends of a domain.
const (
	MinBound = math.MinInt64 / 2
	MaxBound = math.MaxInt64 / 2
)

// Bounds is a plain (non-atomic) snapshot of an interval's bounds. It is
// the value type used for initial domains, search-stack snapshots, and
// anywhere an Interval needs to be copied without its atomics.
type Bounds struct {
	Lb int64
	Ub int64
}

// Empty reports whether the bounds describe the empty ("top") interval.
func (b Bounds) Empty() bool {
	return b.Lb > b.Ub
}

// Neg returns the bounds of the negated view, -x.
func (b Bounds) Neg() Bounds {
	return Bounds{Lb: -b.Ub, Ub: -b.Lb}
}

// Full returns the unrestricted [MinBound, MaxBound] bounds.
func Full() Bounds {
	return Bounds{Lb: MinBound, Ub: MaxBound}
}

// Singleton returns the assigned bounds [v, v].
func Singleton(v int64) Bounds {
	return Bounds{Lb: v, Ub: v}
}

// Interval is a mutable, monotonically-narrowing bound cell. Its bounds are
// stored as atomics so that concurrent And-parallel helpers (see the
// propagate package) can narrow it during a single fixpoint sweep without a
// lock: narrowing never depends on interleaving because each update is
// itself a monotone compare-and-swap.
type Interval struct {
	lb atomic.Int64
	ub atomic.Int64
}

// New creates an interval with the given bounds.
func New(lb, ub int64) *Interval {
	itv := &Interval{}
	itv.lb.Store(lb)
	itv.ub.Store(ub)
	return itv
}

// NewFull creates an interval spanning [MinBound, MaxBound].
func NewFull() *Interval {
	return New(MinBound, MaxBound)
}

// Lb returns the current lower bound.
func (itv *Interval) Lb() int64 {
	return itv.lb.Load()
}

// Ub returns the current upper bound.
func (itv *Interval) Ub() int64 {
	return itv.ub.Load()
}

// Bounds returns a plain snapshot of the current bounds.
func (itv *Interval) Bounds() Bounds {
	return Bounds{Lb: itv.Lb(), Ub: itv.Ub()}
}

// IsAssigned reports whether the interval has narrowed to a single value.
func (itv *Interval) IsAssigned() bool {
	return itv.Lb() == itv.Ub()
}

// IsTop reports whether the interval is empty (lb > ub).
func (itv *Interval) IsTop() bool {
	return itv.Lb() > itv.Ub()
}

// Width returns ub - lb + 1, or 0 for an empty/top interval.
func (itv *Interval) Width() int64 {
	b := itv.Bounds()
	if b.Empty() {
		return 0
	}
	return b.Ub - b.Lb + 1
}

// Set overwrites both bounds unconditionally. Used by the builder to set
// the initial domain of a variable; it does not enforce monotonicity,
// since there is no prior state to narrow from.
func (itv *Interval) Set(b Bounds) {
	itv.lb.Store(b.Lb)
	itv.ub.Store(b.Ub)
}

// StoreMaxLB narrows the lower bound up to newLb via a CAS retry loop,
// never moving it past what a concurrent narrower already wrote. Returns
// true if this call strictly tightened the bound.
func (itv *Interval) StoreMaxLB(newLb int64) bool {
	for {
		prev := itv.lb.Load()
		if prev >= newLb {
			return false
		}
		if itv.lb.CompareAndSwap(prev, newLb) {
			return true
		}
	}
}

// StoreMinUB narrows the upper bound down to newUb via a CAS retry loop,
// never moving it past what a concurrent narrower already wrote. Returns
// true if this call strictly tightened the bound.
func (itv *Interval) StoreMinUB(newUb int64) bool {
	for {
		prev := itv.ub.Load()
		if prev <= newUb {
			return false
		}
		if itv.ub.CompareAndSwap(prev, newUb) {
			return true
		}
	}
}

// InplaceJoin narrows this interval to its intersection with b. Returns
// true if either bound was strictly tightened.
func (itv *Interval) InplaceJoin(b Bounds) bool {
	changed := itv.StoreMaxLB(b.Lb)
	changed = itv.StoreMinUB(b.Ub) || changed
	return changed
}

// Neg returns the bounds of the negated view of this interval. It does not
// mutate the interval; negation is always a read-only view transform
// (spec invariant: negated-index access never mutates the positive slot).
func (itv *Interval) Neg() Bounds {
	return itv.Bounds().Neg()
}

// Join returns the intersection of two Bounds values.
func Join(a, b Bounds) Bounds {
	lb := a.Lb
	if b.Lb > lb {
		lb = b.Lb
	}
	ub := a.Ub
	if b.Ub < ub {
		ub = b.Ub
	}
	return Bounds{Lb: lb, Ub: ub}
}

// FloorDiv computes floor(a/b) for b != 0, rounding toward negative
// infinity (Go's native / truncates toward zero).
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CeilDiv computes ceil(a/b) for b != 0, rounding toward positive infinity.
func CeilDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
