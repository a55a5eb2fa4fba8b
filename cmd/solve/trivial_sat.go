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

// trivialSat enumerates every solution of x + 1 <= y over x, y in [0,2].
func trivialSat() error {
	model := cpmodel.NewBuilder()

	x := model.AddVar("x", 0, 2)
	y := model.AddVar("y", 0, 2)
	model.AddTemporalConstraint(x, 1, cpmodel.LE, y)

	m, err := model.Build()
	if err != nil {
		return fmt.Errorf("failed to instantiate the model: %w", err)
	}

	cfg := solve.DefaultConfig()
	res := solve.Solve(context.Background(), m, cfg, nil)

	fmt.Printf("solutions found: %d (exhaustive=%v)\n", res.SolutionsCount, res.Exhaustive)
	return nil
}
