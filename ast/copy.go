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

// CopyExpr returns a deep copy of e. Type slots are copied by value; types are immutable.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Unit:
		return &Unit{}

	case *Bool:
		return &Bool{e.Value}

	case *Int:
		return &Int{e.Value}

	case *Not:
		return &Not{CopyExpr(e.Value)}

	case *Neg:
		return &Neg{CopyExpr(e.Value)}

	case *Arith:
		return &Arith{e.Op, CopyExpr(e.Left), CopyExpr(e.Right)}

	case *Eq:
		return &Eq{CopyExpr(e.Left), CopyExpr(e.Right)}

	case *LE:
		return &LE{CopyExpr(e.Left), CopyExpr(e.Right)}

	case *If:
		return &If{CopyExpr(e.Cond), CopyExpr(e.Then), CopyExpr(e.Else)}

	case *Let:
		return &Let{e.Var, CopyExpr(e.Value), CopyExpr(e.Body)}

	case *Var:
		return &Var{e.Name}

	case *LetRec:
		return &LetRec{FuncDef{e.Func.Name, copyBindings(e.Func.Args), CopyExpr(e.Func.Body)}, CopyExpr(e.Body)}

	case *App:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &App{CopyExpr(e.Func), args, e.inferred}

	case *Tuple:
		elems := make([]Expr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = CopyExpr(el)
		}
		return &Tuple{elems}

	case *LetTuple:
		return &LetTuple{copyBindings(e.Vars), CopyExpr(e.Value), CopyExpr(e.Body)}

	case nil:
		return nil
	}
	panic("unknown expression type: " + e.ExprName())
}

func copyBindings(bs []Binding) []Binding {
	out := make([]Binding, len(bs))
	copy(out, bs)
	return out
}
