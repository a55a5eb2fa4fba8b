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
	log "github.com/golang/glog"

	"github.com/branchbound/solver/internal/vstore"
)

// Set holds the registered propagators of a problem, in registration
// order. uids are assigned in that order (spec §3: "uid assigned at
// registration time"); the propagator list is immutable once built and is
// shared, read-only, by every Or-parallel worker.
type Set struct {
	props []Propagator
}

// NewSet creates an empty propagator set.
func NewSet() *Set {
	return &Set{}
}

// Register appends p to the set and assigns it the next uid.
func (s *Set) Register(p Propagator) Propagator {
	p.setUID(len(s.props))
	s.props = append(s.props, p)
	return p
}

// Len returns the number of registered propagators.
func (s *Set) Len() int {
	return len(s.props)
}

// All returns the registered propagators in registration order.
func (s *Set) All() []Propagator {
	return s.props
}

// RunToFixpoint repeatedly sweeps every propagator in registration order
// until a full sweep makes no change, or the store becomes top. This is
// the naive "round until quiet" loop described in spec §4.3: no priority
// queue, no propagator deduplication, chosen for simplicity and for
// parallel worker friendliness. It returns the number of sweeps performed.
func (s *Set) RunToFixpoint(store *vstore.Store) int {
	sweeps := 0
	for {
		sweeps++
		changed := false
		for _, p := range s.props {
			if store.IsTop() {
				if log.V(1) {
					log.Infof("propagate: store is top after %d sweeps", sweeps)
				}
				return sweeps
			}
			if p.Propagate(store) {
				changed = true
			}
		}
		if !changed {
			if log.V(1) {
				log.Infof("propagate: fixpoint reached after %d sweeps", sweeps)
			}
			return sweeps
		}
	}
}

// RunToFixpointPartitioned runs the fixpoint loop with the propagator list
// split into h partitions, each swept by its own goroutine with a barrier
// between sweeps (spec §4.5's And-parallel helpers). Safe because every
// narrowing operation on the shared store is a monotone compare-and-swap
// (interval.Interval.StoreMaxLB/StoreMinUB): the final store does not
// depend on helper interleaving.
func (s *Set) RunToFixpointPartitioned(store *vstore.Store, h int) int {
	if h <= 1 || len(s.props) <= 1 {
		return s.RunToFixpoint(store)
	}
	partitions := partitionByUID(s.props, h)
	sweeps := 0
	for {
		sweeps++
		if store.IsTop() {
			return sweeps
		}
		changed := runPartitionsOnce(store, partitions)
		if !changed || store.IsTop() {
			return sweeps
		}
	}
}

func partitionByUID(props []Propagator, h int) [][]Propagator {
	partitions := make([][]Propagator, h)
	for _, p := range props {
		i := p.UID() % h
		partitions[i] = append(partitions[i], p)
	}
	return partitions
}
