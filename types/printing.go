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
	"sort"
	"strings"
	"sync"

	"github.com/sanity-io/litter"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		p := &typePrinter{preds: make(map[*Var]bool, 16)}
		p.order = p._order[:0]
		return p
	},
}

func newTypePrinter(withPreds bool) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.withPreds = withPreds
	return p
}

func (p *typePrinter) Release() {
	for k := range p.preds {
		delete(p.preds, k)
	}
	for i := range p.order {
		p.order[i] = nil
	}
	p.order = p._order[:0]
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	withPreds bool
	preds     map[*Var]bool
	order     []*Var
	_order    [16]*Var
	sb        strings.Builder
}

// Binding strength of the position a type is printed in.
const (
	precTop = iota
	precArrowArg
	precAppArg
)

// TypeString returns a string representation of a Type, prefixed with the type-class
// constraints of its unbound type-variables: `(Num α, Show α) => [α]`
func TypeString(t Type) string {
	p := newTypePrinter(true)
	typeString(p, precTop, t)
	if len(p.order) == 0 {
		s := p.sb.String()
		p.Release()
		return s
	}

	order := p.order
	sort.SliceStable(order, func(i, j int) bool { return order[i].Id() < order[j].Id() })
	var preds []string
	for _, tv := range order {
		for _, name := range tv.Classes().Names() {
			preds = append(preds, name+" "+tv.Name())
		}
	}
	var sb strings.Builder
	if len(preds) > 1 {
		sb.WriteByte('(')
	}
	sb.WriteString(strings.Join(preds, ", "))
	if len(preds) > 1 {
		sb.WriteByte(')')
	}
	sb.WriteString(" => ")
	sb.WriteString(p.sb.String())
	p.Release()
	return sb.String()
}

func (t *Var) String() string { return simpleString(t) }
func (t *App) String() string { return simpleString(t) }

func simpleString(t Type) string {
	p := newTypePrinter(false)
	typeString(p, precTop, t)
	s := p.sb.String()
	p.Release()
	return s
}

func isTupleConstructor(name string) bool {
	return name != "" && strings.Trim(name, ",") == ""
}

func typeString(p *typePrinter, prec int, t Type) {
	switch t := RealType(t).(type) {
	case *Var:
		p.sb.WriteString(t.Name())
		if !p.withPreds || !t.HasConstraints() || p.preds[t] {
			return
		}
		p.preds[t] = true
		p.order = append(p.order, t)

	case *App:
		switch {
		case t.name == "[]" && len(t.args) == 1:
			p.sb.WriteByte('[')
			typeString(p, precTop, t.args[0])
			p.sb.WriteByte(']')

		case isTupleConstructor(t.name) && len(t.args) > 0:
			p.sb.WriteByte('(')
			for i, arg := range t.args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, precTop, arg)
			}
			p.sb.WriteByte(')')

		case isTupleConstructor(t.name):
			p.sb.WriteByte('(')
			p.sb.WriteString(t.name)
			p.sb.WriteByte(')')

		case t.name == "->" && len(t.args) == 2:
			if prec > precTop {
				p.sb.WriteByte('(')
			}
			typeString(p, precArrowArg, t.args[0])
			p.sb.WriteString(" -> ")
			typeString(p, precTop, t.args[1])
			if prec > precTop {
				p.sb.WriteByte(')')
			}

		case len(t.args) == 0:
			p.sb.WriteString(t.name)

		default:
			if prec == precAppArg {
				p.sb.WriteByte('(')
			}
			p.sb.WriteString(t.name)
			for _, arg := range t.args {
				p.sb.WriteByte(' ')
				typeString(p, precAppArg, arg)
			}
			if prec == precAppArg {
				p.sb.WriteByte(')')
			}
		}

	default:
		panic("unreachable")
	}
}

// Dump returns a detailed rendering of the structure of t, including links and constraints,
// for debugging.
func Dump(t Type) string {
	return litter.Options{StripPackageNames: true}.Sdump(t)
}
