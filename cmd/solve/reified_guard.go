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

// buildReifiedGuard builds b in [0,1], x, y in [0,5] with
// b <=> (x <= y - 1 /\ y <= x + 3), additionally pinning x and y to the
// single values xv, yv so that solving leaves only b to decide.
func buildReifiedGuard(xv, yv int64) (*cpmodel.Model, error) {
	model := cpmodel.NewBuilder()

	b := model.AddVar("b", 0, 1)
	x := model.AddVar("x", 0, 5)
	y := model.AddVar("y", 0, 5)
	model.StrengthenDomain(x, xv, xv)
	model.StrengthenDomain(y, yv, yv)

	lhs := model.AddTemporalConstraint(x, 1, cpmodel.LE, y)  // x + 1 <= y, i.e. x <= y - 1
	rhs := model.AddTemporalConstraint(y, -3, cpmodel.LE, x) // y - 3 <= x, i.e. y <= x + 3
	model.AddReifiedConstraint(b, lhs, rhs)

	return model.Build()
}

// reifiedGuard demonstrates that the reified guard forces b deterministically
// once x and y are pinned: x=2,y=4 forces b=1; x=3,y=3 forces b=0.
func reifiedGuard() error {
	for _, c := range []struct {
		x, y int64
		want int64
	}{
		{x: 2, y: 4, want: 1},
		{x: 3, y: 3, want: 0},
	} {
		m, err := buildReifiedGuard(c.x, c.y)
		if err != nil {
			return fmt.Errorf("failed to instantiate the model: %w", err)
		}
		res := solve.Solve(context.Background(), m, solve.DefaultConfig(), nil)
		if res.Best == nil {
			return fmt.Errorf("x=%d, y=%d: no solution found", c.x, c.y)
		}
		got := res.Best["b"]
		fmt.Printf("x=%d, y=%d -> b=%d (want %d)\n", c.x, c.y, got, c.want)
	}
	return nil
}
