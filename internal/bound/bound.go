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

// Package bound implements the single shared best-bound cell that every
// Or-parallel search worker reads and races to tighten (spec §3, §4.5,
// §9: "A single atomically-updated cell, not a broadcast channel").
package bound

import (
	"sync/atomic"

	"github.com/branchbound/solver/internal/interval"
)

// Cell holds the objective's current upper-bound frontier for
// minimization. It starts at the objective's full domain and
// monotonically tightens: no caller can ever publish a value that does
// not strictly improve on what is already there.
type Cell struct {
	lb int64 // fixed at construction; minimization never raises it.
	ub atomic.Int64
}

// NewCell creates a bound cell over the objective's initial domain.
func NewCell(initial interval.Bounds) *Cell {
	c := &Cell{lb: initial.Lb}
	c.ub.Store(initial.Ub)
	return c
}

// UB returns the current upper bound (the minimization frontier).
func (c *Cell) UB() int64 {
	return c.ub.Load()
}

// Bounds returns the full current bounds: the objective's initial lower
// bound and the current upper bound.
func (c *Cell) Bounds() interval.Bounds {
	return interval.Bounds{Lb: c.lb, Ub: c.ub.Load()}
}

// Publish attempts to tighten the upper bound to candidate. It uses a
// monotone compare-and-swap retry loop (spec §4.5): it reads the current
// upper bound, tries to write the strictly smaller candidate, retries on
// contention, and gives up if another worker already published a value
// <= candidate. Returns true iff this call's candidate was installed.
func (c *Cell) Publish(candidate int64) bool {
	for {
		prev := c.ub.Load()
		if candidate >= prev {
			return false
		}
		if c.ub.CompareAndSwap(prev, candidate) {
			return true
		}
	}
}
