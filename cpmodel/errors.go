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

package cpmodel

import "fmt"

// Sentinel build-error kinds, matching spec §7's "Build errors" category:
// surfaced synchronously by the builder and never retried.
var (
	// ErrUnsupportedOperator is returned for an operator a constraint kind
	// does not accept (LT or GT in a linear constraint, an Op value outside
	// the defined set) and for a reified constraint whose operands are not
	// two Temporal propagators.
	ErrUnsupportedOperator = fmt.Errorf("cpmodel: operator not supported in this position")
	// ErrUnknownVariable is returned when a constraint names a variable
	// that was never registered with AddVar.
	ErrUnknownVariable = fmt.Errorf("cpmodel: unknown variable")
	// ErrMalformedConstraint is returned for constraints whose shape does
	// not match what the operator requires (e.g. mismatched coefficient
	// and variable slice lengths).
	ErrMalformedConstraint = fmt.Errorf("cpmodel: malformed constraint")
)

// BuildError wraps one of the sentinel errors above with the offending
// detail, so callers can both errors.Is against the kind and read a
// useful message.
type BuildError struct {
	Kind   error
	Detail string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *BuildError) Unwrap() error {
	return e.Kind
}

func buildError(kind error, format string, a ...any) *BuildError {
	return &BuildError{Kind: kind, Detail: fmt.Sprintf(format, a...)}
}
