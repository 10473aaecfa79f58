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
	"github.com/wdamron/hindley/types"
)

type StashedLink struct {
	v    *types.Var
	prev types.Var
}

func (l *StashedLink) Restore() { *l.v = l.prev }

// LinkStash records the prior state of type-variables mutated during speculative unification.
type LinkStash struct {
	Speculate bool
	Links     []StashedLink

	// initial space:
	_links [32]StashedLink
}

func (s *LinkStash) Init() { s.Links = s._links[:0] }

func (s *LinkStash) Reset() {
	for i := range s._links {
		s._links[i] = StashedLink{}
	}
	s.Speculate, s.Links = false, s._links[:0]
}

func (s *LinkStash) StashLink(v *types.Var) {
	s.Links = append(s.Links, StashedLink{v, *v})
}

// UnstashLinks restores the most recently stashed count type-variables, newest first.
func (s *LinkStash) UnstashLinks(count int) {
	if count <= 0 {
		return
	}
	stash := s.Links
	for i := len(stash) - 1; i > len(stash)-1-count; i-- {
		stash[i].Restore()
	}
}

type UnifyTxn struct {
	Speculate bool
	Links     []StashedLink
}

func (s *LinkStash) NewUnifyTxn() UnifyTxn {
	txn := UnifyTxn{s.Speculate, s.Links}
	s.Speculate = true
	return txn
}

func (s *LinkStash) Rollback(txn UnifyTxn) {
	s.UnstashLinks(len(s.Links) - len(txn.Links))
	s.Speculate, s.Links = txn.Speculate, txn.Links
}

// Commit keeps mutations made since txn began. Stashed links are kept for an enclosing
// transaction, if one is open.
func (s *LinkStash) Commit(txn UnifyTxn) {
	if txn.Speculate {
		s.Speculate = true
		return
	}
	s.Speculate, s.Links = false, txn.Links
}
