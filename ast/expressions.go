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
	"github.com/wdamron/mltype/types"
)

// Ident is an identifier. Identifiers are compared by value; their structure is not inspected
// during inference.
type Ident string

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Unit)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Int)(nil)
	_ Expr = (*Not)(nil)
	_ Expr = (*Neg)(nil)
	_ Expr = (*Arith)(nil)
	_ Expr = (*Eq)(nil)
	_ Expr = (*LE)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*LetTuple)(nil)
)

// Binding pairs an identifier with a writable type-annotation slot.
//
// Type holds the declared type of the identifier, usually an open type-variable. Inference
// overwrites the slot with the resolved type; a nil slot is treated as a fresh type-variable.
type Binding struct {
	Name Ident
	Type types.Type
}

// Unit literal: `()`
type Unit struct{}

// "Unit"
func (e *Unit) ExprName() string { return "Unit" }

// Boolean literal: `true`
type Bool struct {
	Value bool
}

// "Bool"
func (e *Bool) ExprName() string { return "Bool" }

// Integer literal: `1`
type Int struct {
	Value int
}

// "Int"
func (e *Int) ExprName() string { return "Int" }

// Logical negation: `not e`
type Not struct {
	Value Expr
}

// "Not"
func (e *Not) ExprName() string { return "Not" }

// Arithmetic negation: `-e`
type Neg struct {
	Value Expr
}

// "Neg"
func (e *Neg) ExprName() string { return "Neg" }

// Arithmetic operator
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

func (op ArithOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// Integer arithmetic: `a + b`, `a - b`, `a * b`, `a / b`
type Arith struct {
	Op    ArithOp
	Left  Expr
	Right Expr
}

// "Add", "Sub", "Mul" or "Div"
func (e *Arith) ExprName() string {
	switch e.Op {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	}
	return "Arith"
}

// Equality: `a = b`
type Eq struct {
	Left  Expr
	Right Expr
}

// "Eq"
func (e *Eq) ExprName() string { return "Eq" }

// Integer comparison: `a <= b`
type LE struct {
	Left  Expr
	Right Expr
}

// "LE"
func (e *LE) ExprName() string { return "LE" }

// Conditional: `if c then a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Let-binding: `let a = 1 in e`
type Let struct {
	Var   Binding
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Variable
type Var struct {
	Name Ident
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Named function within LetRec: `f x y = body`
//
// Name.Type is the declared type of the function; each argument has its own slot.
type FuncDef struct {
	Name Binding
	Args []Binding
	Body Expr
}

// Recursive function binding: `let rec f x y = body in e`
type LetRec struct {
	Func FuncDef
	Body Expr
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }

// Application: `f x y`
type App struct {
	Func     Expr
	Args     []Expr
	inferred types.Type
}

// "App"
func (e *App) ExprName() string { return "App" }

// Get the inferred (or assigned) result type of e.
func (e *App) Type() types.Type { return e.inferred }

// Assign a result type to e. Type assignments should occur indirectly, during inference.
func (e *App) SetType(t types.Type) { e.inferred = t }

// Tuple: `(a, b)`
type Tuple struct {
	Elems []Expr
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

// Tuple destructuring: `let (a, b) = e1 in e2`
type LetTuple struct {
	Vars  []Binding
	Value Expr
	Body  Expr
}

// "LetTuple"
func (e *LetTuple) ExprName() string { return "LetTuple" }
