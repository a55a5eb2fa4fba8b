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

// The solve command runs the set of worked example models through the
// solver, one after another, printing each one's outcome.
package main

import (
	"flag"
	"fmt"

	log "github.com/golang/glog"
)

var scenario = flag.String("scenario", "all", "which worked example to run: trivial_sat, linear_unsat_root, minimization, reified_guard, determinism, or all")

func run(name string) error {
	switch name {
	case "trivial_sat":
		return trivialSat()
	case "linear_unsat_root":
		return linearUnsatRoot()
	case "minimization":
		return minimization()
	case "reified_guard":
		return reifiedGuard()
	case "determinism":
		return determinismUnderOrNodes()
	default:
		return fmt.Errorf("unknown scenario %q", name)
	}
}

func main() {
	flag.Parse()

	if *scenario != "all" {
		if err := run(*scenario); err != nil {
			log.Exitf("%s returned with error: %v", *scenario, err)
		}
		return
	}

	for _, name := range []string{"trivial_sat", "linear_unsat_root", "minimization", "reified_guard", "determinism"} {
		fmt.Printf("=== %s ===\n", name)
		if err := run(name); err != nil {
			log.Exitf("%s returned with error: %v", name, err)
		}
	}
}
