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

package driver

// Config mirrors, field for field, the solver configuration described in
// spec §6.2 and grounded on original_source/include/config.hpp's
// Configuration<Allocator> (GPU-only fields such as Arch and StackKB are
// dropped: spec §1 keeps GPU dispatch as an external collaborator).
type Config struct {
	// OrNodes is the number of independent Or-parallel search workers.
	OrNodes int
	// AndNodes is the number of And-parallel helpers used within each
	// worker's fixpoint sweep.
	AndNodes int
	// SubproblemsPower partitions the root search space into
	// 2^SubproblemsPower deterministic subproblems.
	SubproblemsPower int
	// StopAfterNSolutions is 0 for "find all solutions" (satisfaction
	// problems only; ignored when an objective is set).
	StopAfterNSolutions uint64
	// StopAfterNNodes is 0 for "unbounded".
	StopAfterNNodes uint64
	// TimeoutMs is 0 for "no timeout".
	TimeoutMs uint64
	// FreeSearch ignores the fixed branching order, reselecting by
	// smallest domain at each node.
	FreeSearch bool
	// PrintIntermediateSolutions requests that every improving solution
	// be surfaced during optimization, not just the final one.
	PrintIntermediateSolutions bool
}

// DefaultConfig returns the spec's documented defaults: a single
// sequential worker, no helpers, 2^12 subproblems, no solution/node/time
// limit, fixed branching order.
func DefaultConfig() Config {
	return Config{
		OrNodes:          1,
		AndNodes:         1,
		SubproblemsPower: 12,
	}
}
