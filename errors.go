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
	"fmt"

	"github.com/wdamron/hindley/types"
)

// ErrorKind classifies unification failures.
type ErrorKind int

const (
	// Linking a type-variable would create an infinite type.
	OccursCheckFailure ErrorKind = iota
	// A concrete type is not a member of every type-class constraining a type-variable.
	ConstraintUnsatisfied
	// Two concrete types have different type constructors.
	ConstructorMismatch
	// Two concrete types share a type constructor but differ in the number of type arguments.
	ArityMismatch
)

var (
	ErrInfiniteType          = errors.New("infinite type")
	ErrConstraintUnsatisfied = errors.New("type-class constraint not satisfied")
	ErrConstructorMismatch   = errors.New("type constructor mismatch")
	ErrArityMismatch         = errors.New("type arity mismatch")
)

func (k ErrorKind) String() string {
	switch k {
	case OccursCheckFailure:
		return "OccursCheckFailure"
	case ConstraintUnsatisfied:
		return "ConstraintUnsatisfied"
	case ConstructorMismatch:
		return "ConstructorMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case OccursCheckFailure:
		return ErrInfiniteType
	case ConstraintUnsatisfied:
		return ErrConstraintUnsatisfied
	case ConstructorMismatch:
		return ErrConstructorMismatch
	default:
		return ErrArityMismatch
	}
}

// TypeError reports a failed unification.
//
// A and B are the representatives being unified when unification failed, which may be nested
// within the types originally passed to Unify. Context is the diagnostic value passed to Unify.
type TypeError struct {
	Kind    ErrorKind
	Msg     string
	Context interface{}
	A, B    types.Type
	// Missing holds the constraints of A which B does not satisfy, for ConstraintUnsatisfied.
	Missing types.ClassSet
}

func (e *TypeError) Error() string {
	if e.Context == nil {
		return "type error: " + e.Msg
	}
	return fmt.Sprintf("type error in %v: %s", e.Context, e.Msg)
}

// Unwrap returns the sentinel error for the kind of failure, for use with errors.Is.
func (e *TypeError) Unwrap() error { return e.Kind.sentinel() }

func occursError(context interface{}, a *types.Var, b types.Type) *TypeError {
	return &TypeError{
		Kind:    OccursCheckFailure,
		Msg:     fmt.Sprintf("%s ∈ %s", a, b),
		Context: context,
		A:       a,
		B:       b,
	}
}

func constraintError(context interface{}, a *types.Var, b *types.App, missing types.ClassSet) *TypeError {
	return &TypeError{
		Kind:    ConstraintUnsatisfied,
		Msg:     fmt.Sprintf("%s ∉ constraints of %s", b, types.TypeString(a)),
		Context: context,
		A:       a,
		B:       b,
		Missing: missing,
	}
}

func mismatchError(kind ErrorKind, context interface{}, a, b *types.App) *TypeError {
	return &TypeError{
		Kind:    kind,
		Msg:     fmt.Sprintf("%s ⊥ %s", a, b),
		Context: context,
		A:       a,
		B:       b,
	}
}
