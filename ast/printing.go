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

package ast

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, precLet, e)
	return sb.String()
}

// binding strength of an expression (and of the context it is printed in)
const (
	precLet = iota
	precCompare
	precAdd
	precMul
	precApp
	precAtom
)

func exprPrec(e Expr) int {
	switch e := e.(type) {
	case *Let, *LetRec, *LetTuple, *If:
		return precLet
	case *Eq, *LE:
		return precCompare
	case *Arith:
		if e.Op == Add || e.Op == Sub {
			return precAdd
		}
		return precMul
	case *Not, *Neg, *App:
		return precApp
	case *Int:
		if e.Value < 0 {
			return precApp
		}
	}
	return precAtom
}

func exprString(sb *strings.Builder, prec int, e Expr) {
	wrap := exprPrec(e) < prec
	if wrap {
		sb.WriteByte('(')
	}

	switch e := e.(type) {
	case *Unit:
		sb.WriteString("()")

	case *Bool:
		sb.WriteString(strconv.FormatBool(e.Value))

	case *Int:
		sb.WriteString(strconv.Itoa(e.Value))

	case *Not:
		sb.WriteString("not ")
		exprString(sb, precAtom, e.Value)

	case *Neg:
		sb.WriteByte('-')
		exprString(sb, precAtom, e.Value)

	case *Arith:
		p := exprPrec(e)
		exprString(sb, p, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		exprString(sb, p+1, e.Right)

	case *Eq:
		exprString(sb, precAdd, e.Left)
		sb.WriteString(" = ")
		exprString(sb, precAdd, e.Right)

	case *LE:
		exprString(sb, precAdd, e.Left)
		sb.WriteString(" <= ")
		exprString(sb, precAdd, e.Right)

	case *If:
		sb.WriteString("if ")
		exprString(sb, precLet, e.Cond)
		sb.WriteString(" then ")
		exprString(sb, precLet, e.Then)
		sb.WriteString(" else ")
		exprString(sb, precLet, e.Else)

	case *Let:
		sb.WriteString("let ")
		sb.WriteString(string(e.Var.Name))
		sb.WriteString(" = ")
		exprString(sb, precLet, e.Value)
		sb.WriteString(" in ")
		exprString(sb, precLet, e.Body)

	case *Var:
		sb.WriteString(string(e.Name))

	case *LetRec:
		sb.WriteString("let rec ")
		sb.WriteString(string(e.Func.Name.Name))
		for _, arg := range e.Func.Args {
			sb.WriteByte(' ')
			sb.WriteString(string(arg.Name))
		}
		sb.WriteString(" = ")
		exprString(sb, precLet, e.Func.Body)
		sb.WriteString(" in ")
		exprString(sb, precLet, e.Body)

	case *App:
		exprString(sb, precAtom, e.Func)
		if len(e.Args) == 0 {
			sb.WriteString(" ()")
		}
		for _, arg := range e.Args {
			sb.WriteByte(' ')
			exprString(sb, precAtom, arg)
		}

	case *Tuple:
		sb.WriteByte('(')
		for i, el := range e.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, precLet, el)
		}
		sb.WriteByte(')')

	case *LetTuple:
		sb.WriteString("let (")
		for i, v := range e.Vars {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(v.Name))
		}
		sb.WriteString(") = ")
		exprString(sb, precLet, e.Value)
		sb.WriteString(" in ")
		exprString(sb, precLet, e.Body)
	}

	if wrap {
		sb.WriteByte(')')
	}
}
