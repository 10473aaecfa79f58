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

// Type-variable
type Var struct {
	classes ClassSet
	link    Type
	name    string
	id      int
}

// Instance of a type-variable
type VarType int

const (
	// Unbound type-variable
	UnboundVar VarType = iota
	// Linked type-variable
	LinkVar
)

// Create a new unbound type-variable with the given id, display name, and type-class constraints.
func NewVar(id int, name string, classes ClassSet) *Var {
	return &Var{id: id, name: name, classes: classes}
}

// VarType indicates whether the type-variable is linked or unbound.
func (tv *Var) VarType() VarType {
	if tv.link != nil {
		return LinkVar
	}
	return UnboundVar
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return tv.id }

// Name returns the display name of the type-variable.
func (tv *Var) Name() string { return tv.name }

// Link returns the type which the type-variable is bound to, if the type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

// Classes returns the type-class constraints of the type-variable.
func (tv *Var) Classes() ClassSet { return tv.classes }

func (tv *Var) IsUnboundVar() bool { return tv.link == nil }
func (tv *Var) IsLinkVar() bool    { return tv.link != nil }

// HasConstraints reports whether the type-variable is constrained by at least one type-class.
func (tv *Var) HasConstraints() bool { return tv.classes.Len() > 0 }

// HasConstraint reports whether t satisfies every type-class constraint of the type-variable.
func (tv *Var) HasConstraint(t *App) bool { return tv.Unsatisfied(t).Len() == 0 }

// Unsatisfied returns the type-class constraints of the type-variable which t is not a member of.
func (tv *Var) Unsatisfied(t *App) ClassSet {
	return tv.classes.Filter(func(tc *TypeClass) bool { return !tc.SatisfiedBy(t) })
}

// Set the type which the type-variable is bound to. Links are set by unification, after the
// occurs check; linking a bound type-variable to a different type corrupts prior decisions.
func (tv *Var) SetLink(t Type) { tv.link = t }

// Flatten a chain of linked type-variables so the type-variable links directly to its representative.
func (tv *Var) Flatten() {
	if tv.IsLinkVar() {
		tv.link = RealType(tv.link)
	}
}

// Update overwrites the identity and constraints of the type-variable, leaving it unbound.
func (tv *Var) Update(id int, name string, classes ClassSet) {
	*tv = Var{id: id, name: name, classes: classes}
}
