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

import "github.com/wdamron/mltype/types"

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Unit, *Bool, *Int, *Var:
		f(e)

	case *Not:
		f(e)
		WalkExpr(e.Value, f)

	case *Neg:
		f(e)
		WalkExpr(e.Value, f)

	case *Arith:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *Eq:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *LE:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *LetRec:
		f(e)
		WalkExpr(e.Func.Body, f)
		WalkExpr(e.Body, f)

	case *App:
		f(e)
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Tuple:
		f(e)
		for _, el := range e.Elems {
			WalkExpr(el, f)
		}

	case *LetTuple:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// RewriteTypes replaces the type in every writable slot within e (bindings and application
// results) with rewrite(slot). Empty slots are skipped.
func RewriteTypes(e Expr, rewrite func(types.Type) types.Type) {
	slot := func(t *types.Type) {
		if *t != nil {
			*t = rewrite(*t)
		}
	}
	WalkExpr(e, func(e Expr) {
		switch e := e.(type) {
		case *Let:
			slot(&e.Var.Type)
		case *LetRec:
			slot(&e.Func.Name.Type)
			for i := range e.Func.Args {
				slot(&e.Func.Args[i].Type)
			}
		case *App:
			slot(&e.inferred)
		case *LetTuple:
			for i := range e.Vars {
				slot(&e.Vars[i].Type)
			}
		}
	})
}
