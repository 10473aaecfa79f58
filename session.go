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
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wdamron/hindley/internal/typeutil"
	"github.com/wdamron/hindley/types"
)

// Session is a type-checking session: it owns the fresh type-variable counter and the
// speculation state used by unification.
//
// A session cannot be used concurrently. Independent sessions share no state. The zero value
// is ready to use, with logging and path compression disabled; NewSession enables path
// compression and assigns a session id.
type Session struct {
	id         uuid.UUID
	log        *slog.Logger
	compress   bool
	varTracker typeutil.VarTracker
	stash      typeutil.LinkStash
}

// Create a new type-checking session. Logging is disabled and path compression is enabled.
func NewSession() *Session {
	s := &Session{
		id:       uuid.New(),
		log:      discardLogger(),
		compress: true,
	}
	s.stash.Init()
	return s
}

// ID returns the unique identifier of the session, attached to every log record.
func (s *Session) ID() uuid.UUID { return s.id }

// Set the logger for unification attempts and failures (logged at debug level).
// A nil logger disables logging.
func (s *Session) SetLogger(log *slog.Logger) {
	if log == nil {
		log = discardLogger()
	}
	s.log = log.With(slog.String("session", s.id.String()))
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func (s *Session) logger() *slog.Logger {
	if s.log == nil {
		s.log = discardLogger()
	}
	return s.log
}

func (s *Session) debugEnabled() bool {
	return s.logger().Enabled(context.Background(), slog.LevelDebug)
}

// Path compression relinks type-variables directly to their representative while pruning.
// It never changes the outcome of unification.
//
// By default, path compression is enabled.
func (s *Session) EnablePathCompression(enabled bool) { s.compress = enabled }

// Reset restarts type-variable numbering at α. Type-variables created before the reset stay
// valid, but new type-variables may share their display names.
//
// Reset discards the link stash, so it must not be called while a TryUnify or CanUnify is in
// progress (for example from a type-class predicate); the enclosing rollback would restore
// nothing.
func (s *Session) Reset() {
	s.varTracker.Reset()
	s.stash.Reset()
}

// FreshVar creates a new unbound type-variable constrained by the given type-classes.
func (s *Session) FreshVar(classes ...*types.TypeClass) *types.Var {
	return s.varTracker.New(types.NewClassSet(classes...))
}

// FreshVarSet creates a new unbound type-variable constrained by a set of type-classes.
func (s *Session) FreshVarSet(classes types.ClassSet) *types.Var {
	return s.varTracker.New(classes)
}

// Prune returns the representative of t by following links between type-variables.
// With path compression enabled (and outside of speculative unification), each type-variable
// on the chain is relinked directly to the representative.
func (s *Session) Prune(t types.Type) types.Type {
	rep := types.RealType(t)
	if !s.compress || s.stash.Speculate {
		return rep
	}
	for {
		tv, ok := t.(*types.Var)
		if !ok || !tv.IsLinkVar() || tv.Link() == rep {
			return rep
		}
		t = tv.Link()
		tv.SetLink(rep)
	}
}

// FlattenLinks compresses the links of every type-variable created since the last reset.
func (s *Session) FlattenLinks() {
	if s.stash.Speculate {
		return
	}
	s.varTracker.FlattenLinks()
}
