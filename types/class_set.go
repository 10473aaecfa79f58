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
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/samber/lo"
)

var emptyClasses = immutable.NewSortedMap(nil)

var EmptyClassSet = ClassSet{emptyClasses}

// ClassSet is an immutable set of type-classes, keyed and sorted by name.
// The zero value is an empty set.
type ClassSet struct {
	m *immutable.SortedMap
}

// Create a ClassSet containing each of the given type-classes.
func NewClassSet(classes ...*TypeClass) ClassSet {
	s := EmptyClassSet
	for _, tc := range classes {
		s = s.Add(tc)
	}
	return s
}

// Get the number of type-classes in the set.
func (s ClassSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the type-class with the given name.
func (s ClassSet) Get(name string) (*TypeClass, bool) {
	if s.m == nil {
		return nil, false
	}
	v, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*TypeClass), true
}

// Has reports whether a type-class with the given name is in the set.
func (s ClassSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Add returns a set which also contains tc. An existing type-class with the same name is kept.
func (s ClassSet) Add(tc *TypeClass) ClassSet {
	if s.Has(tc.Name) {
		return s
	}
	m := s.m
	if m == nil {
		m = emptyClasses
	}
	return ClassSet{m.Set(tc.Name, tc)}
}

// Union returns a set containing the type-classes of both sets. Neither operand is modified.
func (s ClassSet) Union(other ClassSet) ClassSet {
	if s.Len() < other.Len() {
		s, other = other, s
	}
	other.Range(func(tc *TypeClass) bool {
		s = s.Add(tc)
		return true
	})
	return s
}

// Iterate over type-classes in the set, sorted by name.
// If f returns false, iteration will be stopped.
func (s ClassSet) Range(f func(*TypeClass) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(*TypeClass)) {
			return
		}
	}
}

// Slice returns the type-classes in the set, sorted by name.
func (s ClassSet) Slice() []*TypeClass {
	classes := make([]*TypeClass, 0, s.Len())
	s.Range(func(tc *TypeClass) bool {
		classes = append(classes, tc)
		return true
	})
	return classes
}

// Names returns the names of type-classes in the set, sorted.
func (s ClassSet) Names() []string {
	return lo.Map(s.Slice(), func(tc *TypeClass, _ int) string { return tc.Name })
}

// Filter returns the subset of type-classes for which keep returns true.
func (s ClassSet) Filter(keep func(*TypeClass) bool) ClassSet {
	return NewClassSet(lo.Filter(s.Slice(), func(tc *TypeClass, _ int) bool { return keep(tc) })...)
}

// Equal reports whether both sets contain type-classes with the same names.
func (s ClassSet) Equal(other ClassSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.Range(func(tc *TypeClass) bool {
		equal = other.Has(tc.Name)
		return equal
	})
	return equal
}

func (s ClassSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
