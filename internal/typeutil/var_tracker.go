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

package typeutil

import (
	"strconv"

	"github.com/wdamron/hindley/types"
)

// Greek letters cover the first 26 type-variable ids; later ids are printed as numbers.
const greekNames = 26

// VarName returns the display name for the type-variable with the given id.
func VarName(id int) string {
	if id < greekNames {
		return string(rune('α' + id))
	}
	return strconv.Itoa(id)
}

// VarTracker allocates type-variables and tracks allocations.
type VarTracker struct {
	NextId int
	vars   []*types.Var
	block  []types.Var
}

// Reset restarts numbering at zero and forgets tracked allocations. Type-variables allocated
// before the reset remain valid.
func (vt *VarTracker) Reset() { vt.NextId, vt.vars, vt.block = 0, nil, nil }

// Len returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Len() int { return len(vt.vars) }

// FlattenLinks links every tracked type-variable directly to its representative.
func (vt *VarTracker) FlattenLinks() {
	for _, tv := range vt.vars {
		tv.Flatten()
	}
}

// New allocates an unbound type-variable with the given constraints.
func (vt *VarTracker) New(classes types.ClassSet) *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, 8)
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	tv.Update(vt.NextId, VarName(vt.NextId), classes)
	vt.NextId++
	vt.vars = append(vt.vars, tv)
	return tv
}
