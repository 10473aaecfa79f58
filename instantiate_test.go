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
	"testing"

	"github.com/wdamron/hindley/construct"
	"github.com/wdamron/hindley/types"
)

func TestInstantiate(t *testing.T) {
	s := NewSession()
	a, b := s.FreshVar(numClass), s.FreshVar()
	ints := construct.TList(construct.TInt())
	// (+) :: Num α => α -> α -> α, paired with [Int] and β
	poly := construct.TTuple(construct.TFunc([]types.Type{a, a}, a), ints, b)

	inst := s.Instantiate(poly)
	if got := types.TypeString(inst); got != "Num γ => (γ -> γ -> γ, [Int], δ)" {
		t.Fatalf("type: %s", got)
	}
	if inst.(*types.App).Arg(1) != ints {
		t.Fatalf("expected sub-trees without type-variables to be shared")
	}

	// unifying the instance leaves the original untouched:
	if err := s.Unify(nil, inst, construct.TTuple(construct.TFunc([]types.Type{construct.TInt(), construct.TInt()}, construct.TInt()), ints, construct.TBool())); err != nil {
		t.Fatal(err)
	}
	if a.IsLinkVar() || b.IsLinkVar() {
		t.Fatalf("expected the original type to stay polymorphic")
	}
	if got := types.TypeString(poly); got != "Num α => (α -> α -> α, [Int], β)" {
		t.Fatalf("type: %s", got)
	}

	if s.Instantiate(construct.TInt()).String() != "Int" {
		t.Fatalf("expected atomic types to be shared")
	}
}
