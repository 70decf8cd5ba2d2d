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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.bound, p.named = nil, 0
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	idNames map[int]string
	bound   VarSet
	named   int
	sb      strings.Builder
}

// TypeString returns a string representation of a Type. Type-variables are printed with their ids:
// `'_12 -> '_12`.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, precTop, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme. Quantified type-variables are named in
// order of first appearance (`'a -> 'a`); free type-variables are printed with their ids.
func SchemeString(s *Scheme) string {
	p := newTypePrinter()
	p.bound = s.Bound
	typeString(p, precTop, s.Body)
	str := p.sb.String()
	p.Release()
	return str
}

var _names [26]string

func init() {
	for i := range _names {
		_names[i] = "'" + string(rune('a'+i))
	}
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return _names[i%26] + strconv.Itoa(i/26)
}

func getUnboundVarName(id int) string { return "'_" + strconv.Itoa(id) }

// binding strength of the enclosing context
const (
	precTop = iota
	precArrow
	precTuple
)

func typeString(p *typePrinter, prec int, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		if name, ok := p.idNames[t.Id]; ok {
			p.sb.WriteString(name)
			return
		}
		var name string
		if p.bound.Has(t.Id) {
			name = getVarName(p.named)
			p.named++
		} else {
			name = getUnboundVarName(t.Id)
		}
		p.idNames[t.Id] = name
		p.sb.WriteString(name)

	case *Arrow:
		if prec > precTop {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			typeString(p, precArrow, t.Args[0])
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, precTop, arg)
			}
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" -> ")
		typeString(p, precTop, t.Return)
		if prec > precTop {
			p.sb.WriteByte(')')
		}

	case *Tuple:
		if prec > precArrow || len(t.Elems) < 2 {
			p.sb.WriteByte('(')
		}
		for i, el := range t.Elems {
			if i > 0 {
				p.sb.WriteString(" * ")
			}
			typeString(p, precTuple, el)
		}
		if prec > precArrow || len(t.Elems) < 2 {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
