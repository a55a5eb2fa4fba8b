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
	"sync"
	"sync/atomic"

	"github.com/branchbound/solver/internal/vstore"
)

// runPartitionsOnce sweeps every partition concurrently, one goroutine per
// partition, and waits for all of them before returning whether any
// partition reported a change. This is the per-sweep barrier of spec §5's
// And-parallel helpers.
func runPartitionsOnce(store *vstore.Store, partitions [][]Propagator) bool {
	var wg sync.WaitGroup
	var changed atomic.Bool
	for _, partition := range partitions {
		if len(partition) == 0 {
			continue
		}
		partition := partition
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range partition {
				if store.IsTop() {
					return
				}
				if p.Propagate(store) {
					changed.Store(true)
				}
			}
		}()
	}
	wg.Wait()
	return changed.Load()
}
