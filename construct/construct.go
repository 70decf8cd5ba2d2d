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

// Package construct provides terse constructors for types and expressions.
package construct

import (
	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var { return types.NewVar(id) }

// Type constant: `unit`
func TUnit() *types.Const { return types.Unit }

// Type constant: `bool`
func TBool() *types.Const { return types.Bool }

// Type constant: `int`
func TInt() *types.Const { return types.Int }

// Function type: `(int, int) -> int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret}
}

// Function type: `int -> int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(int, int) -> int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Tuple type: `int * bool`
func TTuple(elems ...types.Type) *types.Tuple { return &types.Tuple{Elems: elems} }

// Type-scheme: `forall bound. body`
func TScheme(body types.Type, bound ...int) *types.Scheme {
	return &types.Scheme{Bound: types.NewVarSet(bound...), Body: body}
}

// Expressions:

// Unit literal: `()`
func Unit() *ast.Unit { return &ast.Unit{} }

// Boolean literal: `true`
func Bool(value bool) *ast.Bool { return &ast.Bool{Value: value} }

// Integer literal: `1`
func Int(value int) *ast.Int { return &ast.Int{Value: value} }

// Logical negation: `not e`
func Not(e ast.Expr) *ast.Not { return &ast.Not{Value: e} }

// Arithmetic negation: `-e`
func Neg(e ast.Expr) *ast.Neg { return &ast.Neg{Value: e} }

// Addition: `a + b`
func Add(a, b ast.Expr) *ast.Arith { return &ast.Arith{Op: ast.Add, Left: a, Right: b} }

// Subtraction: `a - b`
func Sub(a, b ast.Expr) *ast.Arith { return &ast.Arith{Op: ast.Sub, Left: a, Right: b} }

// Multiplication: `a * b`
func Mul(a, b ast.Expr) *ast.Arith { return &ast.Arith{Op: ast.Mul, Left: a, Right: b} }

// Division: `a / b`
func Div(a, b ast.Expr) *ast.Arith { return &ast.Arith{Op: ast.Div, Left: a, Right: b} }

// Equality: `a = b`
func Eq(a, b ast.Expr) *ast.Eq { return &ast.Eq{Left: a, Right: b} }

// Integer comparison: `a <= b`
func LE(a, b ast.Expr) *ast.LE { return &ast.LE{Left: a, Right: b} }

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// Variable
func Var(name string) *ast.Var { return &ast.Var{Name: ast.Ident(name)} }

// Paired identifier and declared type. A nil type leaves the slot to be filled during inference.
func Binding(name string, t types.Type) ast.Binding {
	return ast.Binding{Name: ast.Ident(name), Type: t}
}

// Let-binding: `let a = 1 in e`
func Let(name string, t types.Type, value, body ast.Expr) *ast.Let {
	return &ast.Let{Var: Binding(name, t), Value: value, Body: body}
}

// Recursive function binding: `let rec f x y = body in e`
func LetRec(name string, t types.Type, args []ast.Binding, body, in ast.Expr) *ast.LetRec {
	return &ast.LetRec{Func: ast.FuncDef{Name: Binding(name, t), Args: args, Body: body}, Body: in}
}

// Application: `f x y`
func App(f ast.Expr, args ...ast.Expr) *ast.App { return &ast.App{Func: f, Args: args} }

// Tuple: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple { return &ast.Tuple{Elems: elems} }

// Tuple destructuring: `let (a, b) = e1 in e2`
func LetTuple(vars []ast.Binding, value, body ast.Expr) *ast.LetTuple {
	return &ast.LetTuple{Vars: vars, Value: value, Body: body}
}

// Builder allocates a fresh type-variable for every declared type.
type Builder struct {
	Gen types.VarGenerator
}

// Create a builder which allocates type-variables from gen.
func NewBuilder(gen types.VarGenerator) *Builder { return &Builder{Gen: gen} }

// Paired identifier and fresh type-variable
func (b *Builder) Binding(name string) ast.Binding { return Binding(name, b.Gen.FreshVar()) }

// Let-binding with a fresh declared type: `let a = 1 in e`
func (b *Builder) Let(name string, value, body ast.Expr) *ast.Let {
	return Let(name, b.Gen.FreshVar(), value, body)
}

// Recursive function binding with fresh declared types: `let rec f x y = body in e`
func (b *Builder) LetRec(name string, args []string, body, in ast.Expr) *ast.LetRec {
	t := b.Gen.FreshVar()
	bindings := make([]ast.Binding, len(args))
	for i, arg := range args {
		bindings[i] = b.Binding(arg)
	}
	return LetRec(name, t, bindings, body, in)
}

// Tuple destructuring with fresh declared types: `let (a, b) = e1 in e2`
func (b *Builder) LetTuple(names []string, value, body ast.Expr) *ast.LetTuple {
	bindings := make([]ast.Binding, len(names))
	for i, name := range names {
		bindings[i] = b.Binding(name)
	}
	return LetTuple(bindings, value, body)
}
