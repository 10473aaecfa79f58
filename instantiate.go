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
	"github.com/wdamron/hindley/types"
)

// Instantiate returns a copy of t in which every unbound type-variable is replaced by a fresh
// type-variable with the same constraints. Occurrences of the same type-variable are replaced
// by the same fresh type-variable. Sub-trees without unbound type-variables are shared.
//
// Instantiation prepares polymorphic types (such as the type of a catalog function) for use at
// a new site, and creates disposable working copies for unification.
func (s *Session) Instantiate(t types.Type) types.Type {
	lookup := make(map[*types.Var]*types.Var, 8)
	t, _ = s.visitInstantiate(lookup, t)
	return t
}

func (s *Session) visitInstantiate(lookup map[*types.Var]*types.Var, t types.Type) (types.Type, bool) {
	switch t := types.RealType(t).(type) {
	case *types.Var:
		if tv, ok := lookup[t]; ok {
			return tv, true
		}
		next := s.FreshVarSet(t.Classes())
		lookup[t] = next
		return next, true

	case *types.App:
		var args []types.Type
		for i := 0; i < t.Arity(); i++ {
			arg, changed := s.visitInstantiate(lookup, t.Arg(i))
			if changed && args == nil {
				args = t.Args()
			}
			if args != nil {
				args[i] = arg
			}
		}
		if args == nil {
			return t, false
		}
		return types.NewApp(t.Constructor(), args...), true
	}
	panic("unreachable")
}
