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

// hindley provides Hindley-Milner unification for a small Haskell-like type language.
//
// Types are either type-variables (optionally constrained by type-classes) or applications of
// a named type constructor to an ordered list of type arguments. Unification makes two types
// structurally equal by linking unbound type-variables reachable from either side.
//
// Supported Features:
//
//   - Occurs check (no infinite types)
//   - Type-class constraints on type-variables, merged by set union
//   - Session-scoped fresh type-variables named α, β, γ, ...
//   - Speculative (all-or-nothing) unification with rollback
//   - Abort-on-first or collect-all failure policies for batches of unifications
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Unification: https://en.wikipedia.org/wiki/Unification_(computer_science)
package hindley
