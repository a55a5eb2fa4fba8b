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

// minimization builds x, y in [0,10] with x + 1 <= y, minimizing y. The
// optimum is y = 1, x = 0.
func minimization() error {
	model := cpmodel.NewBuilder()

	x := model.AddVar("x", 0, 10)
	y := model.AddVar("y", 0, 10)
	model.AddTemporalConstraint(x, 1, cpmodel.LE, y)
	model.SetObjectiveMinimize(y)

	m, err := model.Build()
	if err != nil {
		return fmt.Errorf("failed to instantiate the model: %w", err)
	}

	cfg := solve.DefaultConfig()
	res := solve.Solve(context.Background(), m, cfg, nil)

	if res.Best == nil {
		fmt.Println("no solution found")
		return nil
	}
	fmt.Printf("best_objective_value = %d, x = %d, y = %d\n", *res.BestObjective, res.Best["x"], res.Best["y"])
	return nil
}
