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

import (
	"unicode"

	"github.com/smasher164/xid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Named type-class: `Num`, `Show`, `Eq`
//
// Membership is decided by the constructor of a concrete type: either the constructor is a
// declared instance, or the membership predicate (when present) accepts the type.
// Type-classes are compared by name.
type TypeClass struct {
	Name      string
	instances map[string]bool
	satisfied func(*App) bool
}

// Create a new named type-class with a set of instance constructors.
func NewTypeClass(name string, instances ...string) *TypeClass {
	tc := &TypeClass{Name: name, instances: make(map[string]bool, len(instances))}
	for _, inst := range instances {
		tc.instances[inst] = true
	}
	return tc
}

// Create a new named type-class with a membership predicate.
func NewTypeClassFunc(name string, satisfied func(*App) bool) *TypeClass {
	return &TypeClass{Name: name, instances: make(map[string]bool), satisfied: satisfied}
}

// Add an instance constructor to the type-class.
func (tc *TypeClass) AddInstance(constructor string) { tc.instances[constructor] = true }

// Instances returns the declared instance constructors, sorted by name.
func (tc *TypeClass) Instances() []string {
	names := maps.Keys(tc.instances)
	slices.Sort(names)
	return names
}

// SatisfiedBy reports whether t is a member of the type-class.
func (tc *TypeClass) SatisfiedBy(t *App) bool {
	if tc.instances[t.Constructor()] {
		return true
	}
	return tc.satisfied != nil && tc.satisfied(t)
}

func (tc *TypeClass) String() string { return tc.Name }

// IsClassName reports whether name is a valid type-class name: an identifier starting with
// an upper-case letter.
func IsClassName(name string) bool {
	for i, r := range name {
		if i == 0 {
			if !xid.Start(r) || !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if r != '\'' && !xid.Continue(r) {
			return false
		}
	}
	return name != ""
}
