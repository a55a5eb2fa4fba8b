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

// Package cpmodel is the public model-building API: it assembles a
// variable store and propagator set from a sequence of AddVar/AddXConstraint
// calls, grounded on ortools/sat/go/cpmodel's chainable Builder style and on
// original_source/include/model_builder.hpp's constraint normalization
// rules.
package cpmodel

import (
	"fmt"

	"github.com/branchbound/solver/internal/interval"
	"github.com/branchbound/solver/internal/propagate"
	"github.com/branchbound/solver/internal/vstore"
)

// Op is a comparison operator as written by the caller, before the builder
// normalizes it to the engine's canonical Temporal/LinearIneq shapes.
type Op int

const (
	LE Op = iota // <=
	GE           // >=
	LT           // <
	GT           // >
	EQ           // ==
)

// varInfo tracks a registered variable's id and name; its declared domain
// is kept in Builder.bounds, and the live domain lives in the Store itself.
type varInfo struct {
	id   vstore.VarID
	name string
}

// Builder accumulates variables and constraints and produces the immutable
// Model (Store, Set, branchVars, objective) that internal/driver solves. The zero
// value is not usable; construct with NewBuilder.
type Builder struct {
	vars       []varInfo
	byName     map[string]vstore.VarID
	bounds     []interval.Bounds
	props      *propagate.Set
	branchVars []vstore.VarID
	objective  *vstore.VarID
	err        error
}

// NewBuilder returns an empty builder. Variable index 0 is reserved as the
// sentinel slot (spec §3); callers never address it directly.
func NewBuilder() *Builder {
	b := &Builder{
		byName: make(map[string]vstore.VarID),
		props:  propagate.NewSet(),
	}
	b.bounds = append(b.bounds, interval.Singleton(0)) // sentinel, slot 0
	b.vars = append(b.vars, varInfo{id: 0, name: "$sentinel"})
	return b
}

// AddVar registers a new branching variable with initial domain [lb, ub]
// and returns its id. A duplicate name is a build error surfaced at Build.
func (b *Builder) AddVar(name string, lb, ub int64) vstore.VarID {
	if b.err != nil {
		return 0
	}
	if _, exists := b.byName[name]; exists {
		b.err = buildError(ErrMalformedConstraint, "duplicate variable name %q", name)
		return 0
	}
	id := vstore.VarID(len(b.vars))
	b.vars = append(b.vars, varInfo{id: id, name: name})
	b.bounds = append(b.bounds, interval.Bounds{Lb: lb, Ub: ub})
	b.byName[name] = id
	b.branchVars = append(b.branchVars, id)
	return id
}

// StrengthenDomain intersects v's initial domain with [lb, ub]. Unlike
// AddVar this only narrows; it never widens an already-registered variable.
func (b *Builder) StrengthenDomain(v vstore.VarID, lb, ub int64) {
	if b.err != nil {
		return
	}
	idx := int(v.Positive())
	if idx <= 0 || idx >= len(b.bounds) {
		b.err = buildError(ErrUnknownVariable, "variable id %d", v)
		return
	}
	b.bounds[idx] = interval.Join(b.bounds[idx], interval.Bounds{Lb: lb, Ub: ub})
}

func (b *Builder) checkVar(v vstore.VarID) bool {
	idx := int(v.Positive())
	if idx <= 0 || idx >= len(b.vars) {
		b.err = buildError(ErrUnknownVariable, "variable id %d", v)
		return false
	}
	return true
}

// AddTemporalConstraint adds x + k <op> y for op in {LE, GE, LT, GT, EQ},
// normalizing to the engine's canonical x <= y + k shape(s) per the
// derivation recorded in DESIGN.md:
//
//	LE (x+k <= y):  Temporal(x, y, -k)
//	GE (x+k >= y):  Temporal(y, x, k)
//	LT (x+k <  y):  Temporal(x, y, -k-1)   (LE with k' = k+1, folded)
//	GT (x+k >  y):  Temporal(y, x, k-1)    (GE with k' = k-1, folded)
//	EQ (x+k == y):  LogicalAnd of the LE and GE cases above
//
// EQ returns a *propagate.LogicalAnd; every other case returns a
// *propagate.Temporal. Both are registered into the builder's propagator
// set before returning; AddReifiedConstraint takes them back out of the set
// when they are passed to it as its two Temporal operands.
func (b *Builder) AddTemporalConstraint(x vstore.VarID, k int64, op Op, y vstore.VarID) propagate.Propagator {
	if b.err != nil {
		return nil
	}
	if !b.checkVar(x) || !b.checkVar(y) {
		return nil
	}
	switch op {
	case LE:
		p := b.props.Register(propagate.NewTemporal(x, y, -k))
		return p
	case GE:
		p := b.props.Register(propagate.NewTemporal(y, x, k))
		return p
	case LT:
		p := b.props.Register(propagate.NewTemporal(x, y, -k-1))
		return p
	case GT:
		p := b.props.Register(propagate.NewTemporal(y, x, k-1))
		return p
	case EQ:
		le := propagate.NewTemporal(x, y, -k)
		ge := propagate.NewTemporal(y, x, k)
		return b.props.Register(propagate.NewLogicalAnd(le, ge))
	default:
		b.err = buildError(ErrUnsupportedOperator, "temporal operator %v", op)
		return nil
	}
}

// AddLinearConstraint adds sum(coefs[i]*vars[i]) <op> c for op in {LE, GE,
// EQ}. vars and coefs must be the same length. GE is normalized by negating
// every coefficient and the constant; EQ registers both the LE and GE
// readings as a LogicalAnd, matching AddTemporalConstraint's EQ handling.
func (b *Builder) AddLinearConstraint(vars []vstore.VarID, coefs []int64, op Op, c int64) propagate.Propagator {
	if b.err != nil {
		return nil
	}
	if len(vars) != len(coefs) {
		b.err = buildError(ErrMalformedConstraint, "vars has %d entries, coefs has %d", len(vars), len(coefs))
		return nil
	}
	for _, v := range vars {
		if !b.checkVar(v) {
			return nil
		}
	}
	switch op {
	case LE:
		return b.props.Register(propagate.NewLinearIneq(vars, coefs, c))
	case GE:
		negCoefs := negate(coefs)
		return b.props.Register(propagate.NewLinearIneq(vars, negCoefs, -c))
	case EQ:
		le := propagate.NewLinearIneq(vars, coefs, c)
		ge := propagate.NewLinearIneq(vars, negate(coefs), -c)
		return b.props.Register(propagate.NewLogicalAnd(le, ge))
	default:
		b.err = buildError(ErrUnsupportedOperator, "linear operator %v", op)
		return nil
	}
}

func negate(coefs []int64) []int64 {
	out := make([]int64, len(coefs))
	for i, c := range coefs {
		out[i] = -c
	}
	return out
}

// AddReifiedConstraint adds bvar <=> (lhs /\ rhs), where lhs and rhs must
// each be a *propagate.Temporal produced by a prior LE/GE/LT/GT call to
// AddTemporalConstraint (spec §9's restriction to LogicalAnd(Temporal,
// Temporal); see Reified's doc comment). Passing an EQ result (a
// LogicalAnd) or any non-Temporal propagator is a build error. lhs and rhs
// are removed from the builder's standalone constraints, so they are
// enforced only through the reification.
func (b *Builder) AddReifiedConstraint(bvar vstore.VarID, lhs, rhs propagate.Propagator) propagate.Propagator {
	if b.err != nil {
		return nil
	}
	if !b.checkVar(bvar) {
		return nil
	}
	t1, ok1 := lhs.(*propagate.Temporal)
	t2, ok2 := rhs.(*propagate.Temporal)
	if !ok1 || !ok2 {
		b.err = buildError(ErrUnsupportedOperator, "reified constraint requires two Temporal conjuncts, not %T/%T", lhs, rhs)
		return nil
	}
	// lhs and rhs were registered as standalone constraints by
	// AddTemporalConstraint; as conjuncts they hold only when bvar is 1, so
	// they are taken out of the set (the others keep their order).
	kept := propagate.NewSet()
	for _, p := range b.props.All() {
		if p != lhs && p != rhs {
			kept.Register(p)
		}
	}
	b.props = kept
	return b.props.Register(propagate.NewReified(bvar, t1, t2))
}

// SetObjectiveMinimize marks v as the variable to minimize. Calling it more
// than once is a build error; a model with no call to this is a
// satisfaction problem.
func (b *Builder) SetObjectiveMinimize(v vstore.VarID) {
	if b.err != nil {
		return
	}
	if !b.checkVar(v) {
		return
	}
	if b.objective != nil {
		b.err = buildError(ErrMalformedConstraint, "objective already set to variable id %d", *b.objective)
		return
	}
	id := v
	b.objective = &id
}

// Model is the immutable result of Build: an initialized store, the
// registered propagator set, the branching-variable order (registration
// order, spec default), and the objective variable if any.
type Model struct {
	Store      *vstore.Store
	Props      *propagate.Set
	BranchVars []vstore.VarID
	Objective  *vstore.VarID
}

// Build finalizes the model: it applies every declared initial domain to a
// freshly allocated store and hands back the (store, propagators,
// branchVars, objective) tuple. A constraint made tautologically false
// purely by the declared domains is not detected here; it surfaces as
// store.IsTop() on the root fixpoint that internal/driver runs before
// partitioning, which reports it as a single failed node with zero
// branching taken. Returns a non-nil error (always a *BuildError) if anything
// registered above failed.
func (b *Builder) Build() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	store := vstore.New(len(b.vars))
	for i, v := range b.vars {
		store.SetName(vstore.VarID(i), v.name)
		if i == 0 {
			continue
		}
		store.Dom(vstore.VarID(i), b.bounds[i])
	}
	return &Model{
		Store:      store,
		Props:      b.props,
		BranchVars: b.branchVars,
		Objective:  b.objective,
	}, nil
}

func (o Op) String() string {
	switch o {
	case LE:
		return "<="
	case GE:
		return ">="
	case LT:
		return "<"
	case GT:
		return ">"
	case EQ:
		return "=="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}
