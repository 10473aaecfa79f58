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

package types

// Type is the base interface for all types. The only implementations are *Var and *App.
type Type interface {
	TypeName() string
	String() string
	typeNode()
}

func (t *Var) TypeName() string { return "Var" }
func (t *App) TypeName() string { return "App" }

func (t *Var) typeNode() {}
func (t *App) typeNode() {}

// Type application: `Int`, `[] a`, `(,) a b`, `-> a b`
//
// An App is immutable once constructed. Atomic types have no arguments.
type App struct {
	name string
	args []Type
}

// Create a new type application of the named constructor to args.
func NewApp(constructor string, args ...Type) *App {
	if len(args) == 0 {
		return &App{name: constructor}
	}
	owned := make([]Type, len(args))
	copy(owned, args)
	return &App{name: constructor, args: owned}
}

// Constructor returns the name of the type constructor.
func (t *App) Constructor() string { return t.name }

// Arity returns the number of type arguments.
func (t *App) Arity() int { return len(t.args) }

// Arg returns the i-th type argument.
func (t *App) Arg(i int) Type { return t.args[i] }

// Args returns a copy of the type arguments.
func (t *App) Args() []Type {
	if len(t.args) == 0 {
		return nil
	}
	args := make([]Type, len(t.args))
	copy(args, t.args)
	return args
}

// Get the underlying type for a chain of linked type-variables, when applicable.
//
// RealType never mutates t. A (malformed) cyclic chain of links stops at the first
// type-variable found to repeat.
func RealType(t Type) Type {
	slow := t
	for step := 0; ; step++ {
		tv, ok := t.(*Var)
		if !ok || tv.link == nil {
			return t
		}
		t = tv.link
		if step&1 == 1 {
			slow = slow.(*Var).link
		}
		if t == slow {
			return t
		}
	}
}
