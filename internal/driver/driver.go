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

// Package driver implements the parallel Or/And driver of spec §4.5 and
// §5: it partitions the root search space into deterministic subproblems,
// hands them out to Or-parallel workers via an atomic counter, and joins
// their statistics and best solution at the end.
package driver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/golang/glog"

	"github.com/branchbound/solver/internal/bound"
	"github.com/branchbound/solver/internal/propagate"
	"github.com/branchbound/solver/internal/search"
	"github.com/branchbound/solver/internal/vstore"
)

// Result is the driver's aggregate outcome across every worker.
type Result struct {
	Best          *vstore.Snapshot
	BestObjective *int64
	Stats         search.Statistics
}

// Run solves root (the built model's initial store) with the propagators
// in props, branching on branchVars, using cfg. objective is nil for
// satisfaction problems. onSolution, if non-nil and
// cfg.PrintIntermediateSolutions is set, is called as soon as any worker
// finds a solution: every strictly-improving one when objective is set,
// every one for satisfaction problems.
func Run(ctx context.Context, root *vstore.Store, props *propagate.Set, branchVars []vstore.VarID, objective *vstore.VarID, cfg Config, onSolution func(vstore.Snapshot)) Result {
	ctx, cancel := withTimeout(ctx, cfg.TimeoutMs)
	defer cancel()

	orNodes := cfg.OrNodes
	if orNodes <= 0 {
		orNodes = 1
	}
	// A root that propagates to top is reported as one failed node, without
	// partitioning it into subproblems.
	probe := root.Clone()
	if iters := props.RunToFixpoint(probe); probe.IsTop() {
		stats := search.New()
		stats.Nodes, stats.Fails, stats.FixpointIterations = 1, 1, uint64(iters)
		return Result{Stats: stats}
	}
	// The partition prefix can only ever cover as many decisions as there
	// are branching variables: clamp here so that a SubproblemsPower
	// larger than len(branchVars) doesn't leave high-order index bits
	// unconsulted by applyPrefix, which would otherwise make distinct
	// subproblem indices collide on the same prefix and re-search (and
	// re-count) the same subtree more than once.
	power := cfg.SubproblemsPower
	if power > len(branchVars) {
		power = len(branchVars)
	}
	if power < 0 {
		power = 0
	}
	total := uint64(1) << uint(power)

	var bestCell *bound.Cell
	if objective != nil {
		bestCell = bound.NewCell(root.Get(*objective))
	}

	var counter atomic.Uint64
	var mu sync.Mutex
	var wg sync.WaitGroup

	joined := search.New()
	var best *vstore.Snapshot
	var bestObjective *int64

	notify := func(snap vstore.Snapshot) {
		if cfg.PrintIntermediateSolutions && onSolution != nil {
			onSolution(snap)
		}
	}

	worker := func(id int) {
		defer wg.Done()
		for {
			idx := counter.Add(1) - 1
			if idx >= total {
				log.V(1).Infof("driver: worker %d exhausted the subproblem range", id)
				return
			}
			if ctx.Err() != nil {
				// This subproblem is never searched.
				mu.Lock()
				joined.Exhaustive = false
				mu.Unlock()
				return
			}

			sub := root.Clone()
			applyPrefix(sub, branchVars, idx, power)

			res := search.Run(ctx, sub, props, search.Options{
				BranchVars:          branchVars,
				Objective:           objective,
				BestBound:           bestCell,
				FreeSearch:          cfg.FreeSearch,
				StopAfterSolutions:  cfg.StopAfterNSolutions,
				StopAfterNodes:      cfg.StopAfterNNodes,
				Helpers:             cfg.AndNodes,
				OnSolution:          notify,
			})

			mu.Lock()
			joined = joined.Join(res.Stats)
			if res.Best != nil {
				if objective == nil {
					best = res.Best
				} else {
					objVal := objectiveValue(*res.Best, *objective)
					if bestObjective == nil || objVal < *bestObjective {
						best = res.Best
						bestObjective = &objVal
					}
				}
			}
			if objective == nil && cfg.StopAfterNSolutions != 0 && joined.Solutions >= cfg.StopAfterNSolutions {
				joined.Exhaustive = false
				cancel()
			}
			mu.Unlock()
		}
	}

	wg.Add(orNodes)
	for i := 0; i < orNodes; i++ {
		go worker(i)
	}
	wg.Wait()

	return Result{Best: best, BestObjective: bestObjective, Stats: joined}
}

// objectiveValue reads the (assigned) value of v out of a solution snapshot.
func objectiveValue(snap vstore.Snapshot, v vstore.VarID) int64 {
	return snap.Bounds[int(v)].Ub
}

func withTimeout(ctx context.Context, timeoutMs uint64) (context.Context, context.CancelFunc) {
	if timeoutMs == 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
}
