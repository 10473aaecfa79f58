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

package construct

import (
	"github.com/wdamron/hindley/types"
)

// Types

// Type constant: `Int`, `Bool`, etc
func TConst(name string) *types.App {
	return types.NewApp(name)
}

// Type application: `Maybe a`, `Either a b`
func TApp(constructor string, args ...types.Type) *types.App {
	return types.NewApp(constructor, args...)
}

// List type: `[a]`
func TList(elem types.Type) *types.App {
	return types.NewApp("[]", elem)
}

// Tuple type: `(a, b)`
func TTuple(elems ...types.Type) *types.App {
	return types.NewApp(",", elems...)
}

// Function type: `a -> b`
func TArrow(arg, ret types.Type) *types.App {
	return types.NewApp("->", arg, ret)
}

// Curried function type: `a -> b -> c`
func TFunc(args []types.Type, ret types.Type) types.Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = TArrow(args[i], t)
	}
	return t
}

// Common type constants

func TInt() *types.App     { return TConst("Int") }
func TInteger() *types.App { return TConst("Integer") }
func TFloat() *types.App   { return TConst("Float") }
func TDouble() *types.App  { return TConst("Double") }
func TBool() *types.App    { return TConst("Bool") }
func TChar() *types.App    { return TConst("Char") }
func TString() *types.App  { return TConst("String") }
func TUnit() *types.App    { return TConst("()") }
