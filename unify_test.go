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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/wdamron/hindley/construct"
	"github.com/wdamron/hindley/types"
)

var (
	numClass  = types.NewTypeClass("Num", "Int", "Integer", "Float", "Double")
	showClass = types.NewTypeClass("Show", "Int", "Bool", "String", "[]")
)

func expectKind(t *testing.T, err error, kind ErrorKind) *TypeError {
	t.Helper()
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if te.Kind != kind {
		t.Fatalf("expected %v, got %v: %s", kind, te.Kind, te.Msg)
	}
	return te
}

func TestUnifySelf(t *testing.T) {
	s := NewSession()
	a := s.FreshVar()
	pair := construct.TTuple(a, construct.TList(a))

	if err := s.Unify(nil, a, a); err != nil {
		t.Fatal(err)
	}
	if err := s.Unify(nil, pair, pair); err != nil {
		t.Fatal(err)
	}
	if a.IsLinkVar() {
		t.Fatalf("expected unbound type-variable after unifying with itself")
	}
}

func TestUnifyVarWithConst(t *testing.T) {
	s := NewSession()
	a := s.FreshVar()
	intType := construct.TInt()

	if err := s.Unify(nil, a, intType); err != nil {
		t.Fatal(err)
	}
	if s.Prune(a) != intType {
		t.Fatalf("expected %s, got %s", intType, s.Prune(a))
	}

	// mirrored:
	b := s.FreshVar()
	if err := s.Unify(nil, intType, b); err != nil {
		t.Fatal(err)
	}
	if s.Prune(b) != intType {
		t.Fatalf("expected %s, got %s", intType, s.Prune(b))
	}
}

func TestUnifyVars(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar()

	if err := s.Unify(nil, a, b); err != nil {
		t.Fatal(err)
	}
	if s.Prune(a) != s.Prune(b) {
		t.Fatalf("expected shared representative, got %s and %s", s.Prune(a), s.Prune(b))
	}
	if a.Link() != b {
		t.Fatalf("expected %s to be linked to %s", a.Name(), b.Name())
	}
}

func TestUnifyVarsKeepsConstraints(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar(numClass)
	if err := s.Unify(nil, a, b); err != nil {
		t.Fatal(err)
	}
	if a.Link() != b || b.IsLinkVar() {
		t.Fatalf("expected unconstrained %s to be linked to constrained %s", a.Name(), b.Name())
	}

	c, d := s.FreshVar(numClass), s.FreshVar()
	if err := s.Unify(nil, c, d); err != nil {
		t.Fatal(err)
	}
	if d.Link() != c || c.IsLinkVar() {
		t.Fatalf("expected unconstrained %s to be linked to constrained %s", d.Name(), c.Name())
	}
}

func TestUnifyConstraintUnion(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(numClass), s.FreshVar(showClass)

	if err := s.Unify(nil, a, b); err != nil {
		t.Fatal(err)
	}
	ra, rb := s.Prune(a), s.Prune(b)
	if ra != rb {
		t.Fatalf("expected shared representative, got %s and %s", ra, rb)
	}
	rep, ok := ra.(*types.Var)
	if !ok {
		t.Fatalf("expected type-variable representative, got %s", ra)
	}
	if rep == a || rep == b {
		t.Fatalf("expected a fresh representative")
	}
	if diff := pretty.Diff(rep.Classes().Names(), []string{"Num", "Show"}); len(diff) > 0 {
		t.Fatalf("unexpected constraints: %v", diff)
	}
	if got := types.TypeString(rep); got != "(Num γ, Show γ) => γ" {
		t.Fatalf("type: %s", got)
	}

	// the merged constraints apply to later unifications:
	if err := s.Unify(nil, a, construct.TFloat()); err == nil {
		t.Fatalf("expected Float to be rejected by Show")
	}
	if err := s.Unify(nil, b, construct.TInt()); err != nil {
		t.Fatal(err)
	}
	if s.Prune(a).String() != "Int" {
		t.Fatalf("expected Int, got %s", s.Prune(a))
	}
}

func TestOccursCheck(t *testing.T) {
	s := NewSession()
	a := s.FreshVar()
	list := construct.TList(a)

	err := s.Unify("append", a, list)
	te := expectKind(t, err, OccursCheckFailure)
	if !errors.Is(err, ErrInfiniteType) {
		t.Fatalf("expected ErrInfiniteType")
	}
	if a.IsLinkVar() {
		t.Fatalf("expected %s to remain unbound", a.Name())
	}
	if te.A != a || te.B != list {
		t.Fatalf("unexpected offending types: %s, %s", te.A, te.B)
	}
	if te.Error() != "type error in append: α ∈ [α]" {
		t.Fatalf("message: %s", te.Error())
	}

	// nested occurrence through a link:
	b := s.FreshVar()
	if err := s.Unify(nil, b, construct.TTuple(construct.TInt(), a)); err != nil {
		t.Fatal(err)
	}
	expectKind(t, s.Unify(nil, a, construct.TList(b)), OccursCheckFailure)
}

func TestOccursIn(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar()
	if OccursIn(a, b) {
		t.Fatalf("unexpected occurrence of %s in %s", a, b)
	}
	if !OccursIn(a, construct.TArrow(construct.TInt(), construct.TList(a))) {
		t.Fatalf("expected occurrence")
	}
	b.SetLink(construct.TList(a))
	if !OccursIn(a, b) {
		t.Fatalf("expected occurrence through link")
	}
	if OccursIn(a, construct.TInt()) {
		t.Fatalf("unexpected occurrence in atomic type")
	}
}

func TestConstructorMismatch(t *testing.T) {
	s := NewSession()
	err := s.Unify(nil, construct.TInt(), construct.TBool())
	te := expectKind(t, err, ConstructorMismatch)
	if !errors.Is(err, ErrConstructorMismatch) {
		t.Fatalf("expected ErrConstructorMismatch")
	}
	if te.Error() != "type error: Int ⊥ Bool" {
		t.Fatalf("message: %s", te.Error())
	}
}

func TestArityMismatch(t *testing.T) {
	s := NewSession()
	i := construct.TInt()
	err := s.Unify(nil, construct.TTuple(i, i), construct.TTuple(i, i, i))
	expectKind(t, err, ArityMismatch)
	if !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("expected ErrArityMismatch")
	}
}

func TestConstraintRejected(t *testing.T) {
	s := NewSession()
	a := s.FreshVar(numClass, showClass)
	str := construct.TString()

	err := s.Unify(nil, a, str)
	te := expectKind(t, err, ConstraintUnsatisfied)
	if !errors.Is(err, ErrConstraintUnsatisfied) {
		t.Fatalf("expected ErrConstraintUnsatisfied")
	}
	if diff := pretty.Diff(te.Missing.Names(), []string{"Num"}); len(diff) > 0 {
		t.Fatalf("unexpected missing constraints: %v", diff)
	}
	if te.Msg != "String ∉ constraints of (Num α, Show α) => α" {
		t.Fatalf("message: %s", te.Msg)
	}
	if a.IsLinkVar() {
		t.Fatalf("expected %s to remain unbound", a.Name())
	}
}

func TestUnifyArgs(t *testing.T) {
	s := NewSession()
	a := s.FreshVar()
	if err := s.Unify(nil, construct.TList(a), construct.TList(construct.TInt())); err != nil {
		t.Fatal(err)
	}
	if s.Prune(a).String() != "Int" {
		t.Fatalf("expected Int, got %s", s.Prune(a))
	}
}

func TestUnifyIsNotTransactional(t *testing.T) {
	s := NewSession()
	a := s.FreshVar()
	left := construct.TTuple(a, construct.TInt())
	right := construct.TTuple(construct.TBool(), construct.TChar())

	te := expectKind(t, s.Unify(nil, left, right), ConstructorMismatch)
	if te.A.String() != "Int" || te.B.String() != "Char" {
		t.Fatalf("unexpected offending types: %s, %s", te.A, te.B)
	}
	if s.Prune(a).String() != "Bool" {
		t.Fatalf("expected earlier arguments to stay unified, got %s", s.Prune(a))
	}
}

func TestTryUnifyRollback(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(numClass), s.FreshVar(showClass)
	left := construct.TTuple(a, b, construct.TInt())
	right := construct.TTuple(b, construct.TInt(), construct.TChar())

	if err := s.TryUnify(nil, left, right); err == nil {
		t.Fatalf("expected failure")
	}
	if a.IsLinkVar() || b.IsLinkVar() {
		t.Fatalf("expected all links to be rolled back, got %s and %s", s.Prune(a), s.Prune(b))
	}

	if err := s.TryUnify(nil, construct.TList(a), construct.TList(construct.TInt())); err != nil {
		t.Fatal(err)
	}
	if s.Prune(a).String() != "Int" {
		t.Fatalf("expected committed link, got %s", s.Prune(a))
	}
}

func TestCanUnify(t *testing.T) {
	s := NewSession()
	a := s.FreshVar(numClass)
	if !s.CanUnify(a, construct.TDouble()) {
		t.Fatalf("expected Double to satisfy Num")
	}
	if a.IsLinkVar() {
		t.Fatalf("expected %s to remain unbound", a.Name())
	}
	if s.CanUnify(a, construct.TBool()) {
		t.Fatalf("expected Bool to be rejected by Num")
	}
}

func TestNestedTxn(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar()

	outer := s.stash.NewUnifyTxn()
	if err := s.TryUnify(nil, a, construct.TInt()); err != nil {
		t.Fatal(err)
	}
	if s.TryUnify(nil, b, construct.TList(b)) == nil {
		t.Fatalf("expected failure")
	}
	if s.Prune(a).String() != "Int" {
		t.Fatalf("expected inner commit to be visible, got %s", s.Prune(a))
	}
	s.stash.Rollback(outer)
	if a.IsLinkVar() || b.IsLinkVar() {
		t.Fatalf("expected outer rollback to restore all type-variables")
	}
}

func TestUnifyEach(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar()
	pairs := []Pair{
		{construct.TInt(), construct.TBool()},
		{a, construct.TChar()},
		{construct.TTuple(b), construct.TTuple(b, b)},
	}

	err := s.UnifyEach(nil, pairs, AbortOnFirst)
	expectKind(t, err, ConstructorMismatch)
	if a.IsLinkVar() {
		t.Fatalf("expected later pairs to be skipped")
	}

	err = s.UnifyEach(nil, pairs, CollectAll)
	if err == nil {
		t.Fatalf("expected failures")
	}
	if !errors.Is(err, ErrConstructorMismatch) || !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("expected both failures, got %v", err)
	}
	if s.Prune(a).String() != "Char" {
		t.Fatalf("expected passing pairs to be unified, got %s", s.Prune(a))
	}

	if err := s.UnifyEach(nil, pairs[1:2], CollectAll); err != nil {
		t.Fatal(err)
	}
}

func TestFreshVarNames(t *testing.T) {
	s := NewSession()
	seen := make(map[*types.Var]bool)
	names := make(map[string]bool)
	var got []string
	for i := 0; i < 30; i++ {
		tv := s.FreshVar()
		if seen[tv] || names[tv.Name()] {
			t.Fatalf("duplicate type-variable %s", tv.Name())
		}
		seen[tv], names[tv.Name()] = true, true
		got = append(got, tv.Name())
	}
	if got[0] != "α" || got[1] != "β" || got[2] != "γ" || got[24] != "ω" {
		t.Fatalf("unexpected greek names: %v", got[:26])
	}
	if got[26] != "26" || got[29] != "29" {
		t.Fatalf("unexpected numeric names: %v", got[26:])
	}

	s.Reset()
	if name := s.FreshVar().Name(); name != "α" {
		t.Fatalf("expected naming to restart after reset, got %s", name)
	}
	if name := NewSession().FreshVar().Name(); name != "α" {
		t.Fatalf("expected independent sessions, got %s", name)
	}
}

func TestPrunePathCompression(t *testing.T) {
	s := NewSession()
	a, b, c := s.FreshVar(), s.FreshVar(), s.FreshVar()
	a.SetLink(b)
	b.SetLink(c)
	c.SetLink(construct.TInt())

	s.EnablePathCompression(false)
	if s.Prune(a).String() != "Int" {
		t.Fatalf("expected Int")
	}
	if a.Link() != b {
		t.Fatalf("unexpected compression")
	}

	s.EnablePathCompression(true)
	rep := s.Prune(a)
	if s.Prune(rep) != rep {
		t.Fatalf("expected idempotent pruning")
	}
	if a.Link() != rep || b.Link() != rep {
		t.Fatalf("expected links to point directly to %s", rep)
	}
}

func TestPruneCycle(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar()
	a.SetLink(b)
	b.SetLink(a)
	s.EnablePathCompression(false)
	if rep := s.Prune(a); rep != a && rep != b {
		t.Fatalf("unexpected representative %s", rep.TypeName())
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession()
	s.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	a := s.FreshVar()
	if err := s.Unify("block 1", a, construct.TInt()); err != nil {
		t.Fatal(err)
	}
	if s.Unify("block 2", construct.TInt(), construct.TBool()) == nil {
		t.Fatalf("expected failure")
	}
	out := buf.String()
	for _, want := range []string{"Unifying types", "Unification failed", "kind=ConstructorMismatch", "block 2", "session=" + s.ID().String()} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}

	buf.Reset()
	s.SetLogger(nil)
	if err := s.Unify(nil, s.FreshVar(), construct.TInt()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected logging to be disabled")
	}
}

func TestRollbackWithPathCompression(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(), s.FreshVar()
	a.SetLink(b)

	left := construct.TTuple(b, a)
	right := construct.TTuple(construct.TInt(), construct.TBool())
	if s.TryUnify(nil, left, right) == nil {
		t.Fatalf("expected failure")
	}
	if b.IsLinkVar() || a.Link() != b || s.Prune(a) != b {
		t.Fatalf("rollback corrupted graph: a=%s b=%s", a, b)
	}

	if s.CanUnify(left, right) {
		t.Fatalf("expected failure")
	}
	if b.IsLinkVar() || a.Link() != b || s.Prune(a) != b {
		t.Fatalf("rollback corrupted graph: a=%s b=%s", a, b)
	}
}

func TestFlattenLinks(t *testing.T) {
	s := NewSession()
	a, b, c := s.FreshVar(), s.FreshVar(), s.FreshVar()
	intType := construct.TInt()
	a.SetLink(b)
	b.SetLink(c)
	c.SetLink(intType)

	txn := s.stash.NewUnifyTxn()
	s.FlattenLinks()
	if a.Link() != b || b.Link() != c {
		t.Fatalf("expected links to be kept while speculating")
	}
	s.stash.Rollback(txn)

	s.FlattenLinks()
	if a.Link() != intType || b.Link() != intType || c.Link() != intType {
		t.Fatalf("expected links to point directly to %s", intType)
	}
}

func TestZeroSession(t *testing.T) {
	var s Session
	a := s.FreshVar(numClass)
	if err := s.Unify(nil, construct.TList(a), construct.TList(construct.TInt())); err != nil {
		t.Fatal(err)
	}
	if s.Prune(a).String() != "Int" {
		t.Fatalf("expected Int, got %s", s.Prune(a))
	}
	if s.TryUnify(nil, s.FreshVar(), construct.TList(construct.TBool())) != nil {
		t.Fatalf("unexpected failure")
	}
	expectKind(t, s.Unify(nil, construct.TInt(), construct.TBool()), ConstructorMismatch)
}
