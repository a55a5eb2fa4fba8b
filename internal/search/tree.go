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

// Package search implements TreeAndPar, the depth-first, left-first
// branch-and-bound traversal with an explicit stack described in spec
// §4.4.
package search

import (
	"context"

	"github.com/branchbound/solver/internal/bound"
	"github.com/branchbound/solver/internal/interval"
	"github.com/branchbound/solver/internal/propagate"
	"github.com/branchbound/solver/internal/vstore"
)

// node is a stack entry: the store snapshot taken just before a branching
// decision, plus the right-half alternative to apply when this entry is
// popped (spec §4.4: "push the right half ... as a resumable
// alternative").
type node struct {
	snapshot vstore.Snapshot
	v        vstore.VarID
	right    interval.Bounds
}

// Options configures one worker's traversal of its (sub)tree.
type Options struct {
	// BranchVars is the branching-variable order; with FreeSearch unset
	// the first unassigned variable in this order is selected at each
	// node (spec §4.4's "default order").
	BranchVars []vstore.VarID
	// Objective, if non-nil, makes this an optimization search: each
	// solution's objective upper bound races to tighten BestBound.
	Objective *vstore.VarID
	BestBound *bound.Cell
	// FreeSearch selects the unassigned variable of smallest current
	// domain width (ties broken by lowest BranchVars index) instead of
	// the fixed order (spec §6.2, resolved in SPEC_FULL.md).
	FreeSearch bool
	// StopAfterSolutions is 0 for "all solutions" (satisfaction only).
	StopAfterSolutions uint64
	// StopAfterNodes is 0 for "unbounded".
	StopAfterNodes uint64
	// Helpers is the number of And-parallel helpers to use within each
	// fixpoint sweep; 0 or 1 means sequential propagation.
	Helpers int
	// OnSolution, if non-nil, is called with a snapshot of every solution
	// as it is found: every strictly-improving one under Objective, every
	// leaf under plain satisfaction (spec's print_intermediate_solutions,
	// wired in SPEC_FULL.md to a callback instead of direct printing).
	OnSolution func(vstore.Snapshot)
}

// Result is one worker's search outcome.
type Result struct {
	Best  *vstore.Snapshot
	Stats Statistics
}

// Run executes the main loop of spec §4.4 against store, which the caller
// must have already narrowed with its subproblem prefix. props is shared,
// read-only, across every worker.
func Run(ctx context.Context, store *vstore.Store, props *propagate.Set, opts Options) Result {
	stats := New()
	var stack []node
	var best *vstore.Snapshot
	cutShort := false

	sweep := func() int {
		if opts.Helpers > 1 {
			return props.RunToFixpointPartitioned(store, opts.Helpers)
		}
		return props.RunToFixpoint(store)
	}

	pop := func() bool {
		if len(stack) == 0 {
			return false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		store.Restore(top.snapshot)
		store.Update(top.v, top.right)
		return true
	}

	for {
		if ctx.Err() != nil {
			cutShort = true
			break
		}

		// Every iteration of this loop examines one search-tree node,
		// counted here whether it ends in top, a solution, or a branch
		// (spec scenario 2: a root contradiction detected with no
		// branching still counts as one node).
		stats.Nodes++
		if depth := uint64(len(stack)); depth > stats.DepthMax {
			stats.DepthMax = depth
		}

		stats.FixpointIterations += uint64(sweep())

		if store.IsTop() {
			stats.Fails++
			if !pop() {
				break
			}
			continue
		}

		if ctx.Err() != nil {
			cutShort = true
			break
		}

		if allAssigned(store, opts.BranchVars) {
			stats.Solutions++
			if opts.Objective != nil {
				ub := store.Ub(*opts.Objective)
				if opts.BestBound.Publish(ub - 1) {
					snap := store.Snapshot()
					best = &snap
					stats.BestBound = int64Ptr(ub)
					if opts.OnSolution != nil {
						opts.OnSolution(snap)
					}
				}
				// A leaf has nowhere else to go regardless of whether it
				// improved the shared bound: force a fail and keep
				// searching for a strictly better solution.
				if !pop() {
					break
				}
				continue
			}
			snap := store.Snapshot()
			best = &snap
			if opts.OnSolution != nil {
				opts.OnSolution(snap)
			}
			if opts.StopAfterSolutions != 0 && stats.Solutions >= opts.StopAfterSolutions {
				cutShort = true
				break
			}
			if !pop() {
				break
			}
			continue
		}

		if opts.StopAfterNodes != 0 && stats.Nodes >= opts.StopAfterNodes {
			cutShort = true
			break
		}

		v := selectBranchVar(store, opts.BranchVars, opts.FreeSearch)
		b := store.Get(v)
		width := b.Ub - b.Lb + 1
		leftWidth := width / 2
		leftUb := b.Lb + leftWidth - 1
		rightLb := leftUb + 1

		snap := store.Snapshot()
		stack = append(stack, node{snapshot: snap, v: v, right: interval.Bounds{Lb: rightLb, Ub: b.Ub}})

		store.Update(v, interval.Bounds{Lb: b.Lb, Ub: leftUb})
	}

	if cutShort {
		stats.Exhaustive = false
	}
	return Result{Best: best, Stats: stats}
}

func allAssigned(store *vstore.Store, vars []vstore.VarID) bool {
	return store.AllAssigned(vars)
}

// selectBranchVar returns the first unassigned variable in vars (default
// order), or, under FreeSearch, the unassigned variable with the smallest
// current domain width (ties broken by lowest index in vars).
func selectBranchVar(store *vstore.Store, vars []vstore.VarID, freeSearch bool) vstore.VarID {
	if !freeSearch {
		for _, v := range vars {
			if !store.IsAssigned(v) {
				return v
			}
		}
		panic("search: selectBranchVar called with no unassigned variable")
	}
	var best vstore.VarID
	bestWidth := int64(-1)
	found := false
	for _, v := range vars {
		if store.IsAssigned(v) {
			continue
		}
		b := store.Get(v)
		w := b.Ub - b.Lb + 1
		if !found || w < bestWidth {
			best, bestWidth, found = v, w, true
		}
	}
	if !found {
		panic("search: selectBranchVar called with no unassigned variable")
	}
	return best
}

func int64Ptr(v int64) *int64 {
	return &v
}
