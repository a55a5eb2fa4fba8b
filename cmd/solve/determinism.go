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

package main

import (
	"context"
	"fmt"

	"github.com/branchbound/solver/cpmodel"
	"github.com/branchbound/solver/solve"
)

// determinismUnderOrNodes re-solves the trivial-SAT model of trivialSat with
// or_nodes in {1, 4, 16} and reports that the solution count never moves.
func determinismUnderOrNodes() error {
	for _, orNodes := range []int{1, 4, 16} {
		model := cpmodel.NewBuilder()
		x := model.AddVar("x", 0, 2)
		y := model.AddVar("y", 0, 2)
		model.AddTemporalConstraint(x, 1, cpmodel.LE, y)

		m, err := model.Build()
		if err != nil {
			return fmt.Errorf("failed to instantiate the model: %w", err)
		}

		cfg := solve.DefaultConfig()
		cfg.OrNodes = orNodes
		res := solve.Solve(context.Background(), m, cfg, nil)

		fmt.Printf("or_nodes=%2d: solutions=%d, depth_max=%d, exhaustive=%v\n",
			orNodes, res.SolutionsCount, res.Stats.DepthMax, res.Exhaustive)
	}
	return nil
}
