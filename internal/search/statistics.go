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

package search

// Statistics are the per-worker counters spec §3 requires, modeled
// field-for-field on original_source/include/statistics.hpp's Statistics
// struct (trimmed to the fields the core itself produces; MiniZinc/XCSP
// pretty-printing of these fields is a consumer concern, per spec §1).
type Statistics struct {
	Nodes              uint64
	Fails              uint64
	Solutions          uint64
	DepthMax           uint64
	Exhaustive         bool
	FixpointIterations uint64
	// BestBound is the best objective upper bound found by this worker,
	// or nil if it found none. Only meaningful for optimization problems.
	BestBound *int64
}

// New returns the zero-valued statistics of a worker that has not yet cut
// its search short: Exhaustive starts true and is only ever cleared.
func New() Statistics {
	return Statistics{Exhaustive: true}
}

// Join combines two workers' statistics associatively and commutatively:
// counts sum, DepthMax and BestBound take the more informative extreme,
// Exhaustive is a logical AND.
func (s Statistics) Join(o Statistics) Statistics {
	return Statistics{
		Nodes:              s.Nodes + o.Nodes,
		Fails:              s.Fails + o.Fails,
		Solutions:          s.Solutions + o.Solutions,
		DepthMax:           maxU64(s.DepthMax, o.DepthMax),
		Exhaustive:         s.Exhaustive && o.Exhaustive,
		FixpointIterations: s.FixpointIterations + o.FixpointIterations,
		BestBound:          minBound(s.BestBound, o.BestBound),
	}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minBound(a, b *int64) *int64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *a <= *b:
		return a
	default:
		return b
	}
}
