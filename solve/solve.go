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

// Package solve wires a built cpmodel.Model into internal/driver and
// surfaces the result in the vocabulary of the original ortools/sat/go
// samples (a single Result value, solutions reported through a callback).
package solve

import (
	"context"

	"github.com/branchbound/solver/cpmodel"
	"github.com/branchbound/solver/internal/driver"
	"github.com/branchbound/solver/internal/search"
	"github.com/branchbound/solver/internal/vstore"
)

// Config mirrors driver.Config; re-exported here so callers never need to
// import internal/driver directly.
type Config = driver.Config

// DefaultConfig returns the documented defaults (one sequential worker, no
// helpers, 2^12 subproblems, no limits).
func DefaultConfig() Config {
	return driver.DefaultConfig()
}

// Intermediate is one solution surfaced mid-search, when
// Config.PrintIntermediateSolutions is set: an improving one under an
// objective, any one for satisfaction problems.
type Intermediate struct {
	Values map[string]int64
}

// Result is the outcome of solving a model to completion (or to whatever
// early-exit condition fired first).
type Result struct {
	// Exhaustive is true iff the search provably covered the whole space
	// (no timeout, node cap, or solution cap cut it short).
	Exhaustive bool
	// SolutionsCount is the number of leaf solutions visited across every
	// worker, including ones later superseded by a better bound.
	SolutionsCount uint64
	// Best is the best (for optimization) or first-found (for
	// satisfaction with StopAfterNSolutions==1) solution, or nil if none
	// was found.
	Best map[string]int64
	// BestObjective is the objective value of Best; nil for satisfaction
	// problems or when Best is nil.
	BestObjective *int64
	Stats         search.Statistics
}

// Solve builds and solves model with cfg. onSolution, if non-nil and
// cfg.PrintIntermediateSolutions is set, is invoked as soon as a solution
// is found: every strictly-improving one when the model has an objective,
// every one otherwise.
func Solve(ctx context.Context, m *cpmodel.Model, cfg Config, onSolution func(Intermediate)) Result {
	var notify func(vstore.Snapshot)
	if onSolution != nil {
		notify = func(snap vstore.Snapshot) {
			onSolution(Intermediate{Values: namedValues(m.Store, snap, m.BranchVars)})
		}
	}

	res := driver.Run(ctx, m.Store, m.Props, m.BranchVars, m.Objective, cfg, notify)

	out := Result{
		Exhaustive:     res.Stats.Exhaustive,
		SolutionsCount: res.Stats.Solutions,
		BestObjective:  res.BestObjective,
		Stats:          res.Stats,
	}
	if res.Best != nil {
		out.Best = namedValues(m.Store, *res.Best, m.BranchVars)
	}
	return out
}

// namedValues reads each branching variable's assigned value out of snap,
// keyed by its registration-time name.
func namedValues(store *vstore.Store, snap vstore.Snapshot, vars []vstore.VarID) map[string]int64 {
	out := make(map[string]int64, len(vars))
	for _, v := range vars {
		idx := int(v.Positive())
		out[store.NameOf(v)] = snap.Bounds[idx].Ub
	}
	return out
}
