// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hindley

import (
	"errors"
	"log/slog"

	"github.com/wdamron/hindley/types"
)

// OccursIn reports whether tv occurs within t, after resolving links. OccursIn never mutates
// either type.
func OccursIn(tv *types.Var, t types.Type) bool {
	switch t := types.RealType(t).(type) {
	case *types.Var:
		return t == tv
	case *types.App:
		for i := 0; i < t.Arity(); i++ {
			if OccursIn(tv, t.Arg(i)) {
				return true
			}
		}
		return false
	default:
		panic("unreachable")
	}
}

// Unify makes a and b structurally equal by linking unbound type-variables reachable from
// either type. context is only used to describe failures; it may be nil.
//
// Unification stops at the first failure, which is returned as a *TypeError. Links made before
// the failure are kept; use TryUnify to discard them.
func (s *Session) Unify(context interface{}, a, b types.Type) error {
	if err := s.unify(context, a, b); err != nil {
		if s.debugEnabled() {
			te := err.(*TypeError)
			s.logger().Debug("Unification failed",
				slog.String("kind", te.Kind.String()),
				slog.String("a", types.TypeString(te.A)),
				slog.String("b", types.TypeString(te.B)),
				slog.Any("context", context))
		}
		return err
	}
	return nil
}

// TryUnify unifies a and b. If unification fails, every type-variable linked during the
// attempt is restored and the error is returned.
func (s *Session) TryUnify(context interface{}, a, b types.Type) error {
	txn := s.stash.NewUnifyTxn()
	if err := s.Unify(context, a, b); err != nil {
		s.stash.Rollback(txn)
		return err
	}
	s.stash.Commit(txn)
	return nil
}

// CanUnify reports whether a and b can be unified. No type-variable is left linked.
func (s *Session) CanUnify(a, b types.Type) bool {
	txn := s.stash.NewUnifyTxn()
	err := s.unify(nil, a, b)
	s.stash.Rollback(txn)
	return err == nil
}

// Pair of types to be unified.
type Pair struct {
	A, B types.Type
}

// Policy decides how UnifyEach handles failures.
type Policy int

const (
	// Stop at the first failing pair.
	AbortOnFirst Policy = iota
	// Attempt every pair and report all failures.
	CollectAll
)

// UnifyEach unifies each pair in order. With AbortOnFirst, the first *TypeError is returned
// and later pairs are not attempted. With CollectAll, every pair is attempted and failures are
// joined (see errors.Join); each may be recovered with errors.As.
func (s *Session) UnifyEach(context interface{}, pairs []Pair, policy Policy) error {
	var errs []error
	for _, p := range pairs {
		if err := s.Unify(context, p.A, p.B); err != nil {
			if policy == AbortOnFirst {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Session) unify(context interface{}, a, b types.Type) error {
	a, b = s.Prune(a), s.Prune(b)
	if a == b {
		return nil
	}
	if s.debugEnabled() {
		s.logger().Debug("Unifying types",
			slog.String("a", types.TypeString(a)),
			slog.String("b", types.TypeString(b)),
			slog.Any("context", context))
	}

	switch a := a.(type) {
	case *types.Var:
		// prevent cyclical types:
		if OccursIn(a, b) {
			return occursError(context, a, b)
		}
		switch b := b.(type) {
		case *types.Var:
			s.unifyVars(a, b)
			return nil
		case *types.App:
			if missing := a.Unsatisfied(b); missing.Len() > 0 {
				return constraintError(context, a, b, missing)
			}
			s.link(a, b)
			return nil
		}

	case *types.App:
		switch b := b.(type) {
		case *types.Var:
			return s.unify(context, b, a)
		case *types.App:
			if a.Constructor() != b.Constructor() {
				return mismatchError(ConstructorMismatch, context, a, b)
			}
			if a.Arity() != b.Arity() {
				return mismatchError(ArityMismatch, context, a, b)
			}
			for i := 0; i < a.Arity(); i++ {
				if err := s.unify(context, a.Arg(i), b.Arg(i)); err != nil {
					return err
				}
			}
			return nil
		}
	}
	panic("unreachable")
}

// Whatever type two constrained type-variables resolve to must satisfy the constraints of
// both, so both are linked to a fresh type-variable constrained by the union.
func (s *Session) unifyVars(a, b *types.Var) {
	switch {
	case a.HasConstraints() && b.HasConstraints():
		tv := s.FreshVarSet(a.Classes().Union(b.Classes()))
		s.link(a, tv)
		s.link(b, tv)
	case b.HasConstraints():
		s.link(a, b)
	case a.HasConstraints():
		s.link(b, a)
	default:
		s.link(a, b)
	}
}

func (s *Session) link(tv *types.Var, t types.Type) {
	if s.stash.Speculate {
		s.stash.StashLink(tv)
	}
	tv.SetLink(t)
}
