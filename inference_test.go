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

package mltype_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/mltype"
	. "github.com/wdamron/mltype/construct"

	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/internal/log"
	"github.com/wdamron/mltype/types"
)

func bindings(names ...string) []ast.Binding {
	bs := make([]ast.Binding, len(names))
	for i, name := range names {
		bs[i] = Binding(name, nil)
	}
	return bs
}

// let rec id x = x in (id 1, id true)
func polyIdentity() *ast.LetRec {
	id := Var("id")
	return LetRec("id", nil, bindings("x"), Var("x"), Tuple(App(id, Int(1)), App(id, Bool(true))))
}

func TestLetPolymorphism(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext(nil)
	expr := polyIdentity()

	require.Equal(t, "let rec id x = x in (id 1, id true)", ast.ExprString(expr))

	// Infer twice to ensure state is properly reset between calls:

	ty, err := ctx.Infer(expr, env)
	require.NoError(t, err)
	assert.Equal(t, "int * bool", types.TypeString(ty))
	assert.Zero(t, env.Len())

	ty, err = ctx.Infer(expr, env)
	require.NoError(t, err)
	assert.Equal(t, "int * bool", types.TypeString(ty))

	fn := expr.Func
	assert.Equal(t, "'_1 -> '_1", types.TypeString(fn.Name.Type))
	assert.Equal(t, "'_1", types.TypeString(fn.Args[0].Type))
	apps := expr.Body.(*ast.Tuple).Elems
	assert.Equal(t, "int", types.TypeString(apps[0].(*ast.App).Type()))
	assert.Equal(t, "bool", types.TypeString(apps[1].(*ast.App).Type()))
}

func TestLetGeneralizesRecursiveValue(t *testing.T) {
	f := Var("f")
	expr := Let("f", nil,
		LetRec("id", nil, bindings("x"), Var("x"), Var("id")),
		Tuple(App(f, Int(1)), App(f, Bool(true))))

	require.Equal(t, "let f = let rec id x = x in id in (f 1, f true)", ast.ExprString(expr))

	ty, err := NewContext(nil).Infer(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "int * bool", types.TypeString(ty))
	assert.Equal(t, "'_3 -> '_3", types.TypeString(expr.Var.Type))
}

func TestMonomorphicRecursion(t *testing.T) {
	f := Var("f")
	second := App(f, Int(1))
	// let rec f x = let _ = f true in f 1 in f
	expr := LetRec("f", nil, bindings("x"), Let("_", nil, App(f, Bool(true)), second), f)

	ctx := NewContext(nil)
	_, err := ctx.Infer(expr, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.Equal(t, err, ctx.Error())
	assert.Same(t, second, ctx.InvalidExpr())

	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "Type mismatch: int and bool", typeErr.Error())
}

func TestIf(t *testing.T) {
	ctx := NewContext(nil)

	ty, err := ctx.Infer(If(Bool(true), Int(1), Int(2)), nil)
	require.NoError(t, err)
	assert.Equal(t, "int", types.TypeString(ty))

	_, err = ctx.Infer(If(Int(1), Int(1), Int(2)), nil)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.EqualError(t, err, "Type mismatch: bool and int")

	_, err = ctx.Infer(If(Bool(false), Int(1), Unit()), nil)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestApplication(t *testing.T) {
	env := NewTypeEnv()
	env.DeclareMono("succ", TArrow1(TInt(), TInt()))
	env.Declare("pair", TScheme(TArrow2(TVar(0), TVar(1), TTuple(TVar(0), TVar(1))), 0, 1))
	ctx := NewContext(nil)

	ty, err := ctx.Infer(App(Var("succ"), Int(1)), env)
	require.NoError(t, err)
	assert.Equal(t, "int", types.TypeString(ty))

	ty, err = ctx.Infer(App(Var("pair"), App(Var("succ"), Int(1)), Unit()), env)
	require.NoError(t, err)
	assert.Equal(t, "int * unit", types.TypeString(ty))

	_, err = ctx.Infer(App(Var("succ"), Tuple(Int(1), Int(2))), env)
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = ctx.Infer(App(Var("succ"), Int(1), Int(2)), env)
	assert.True(t, errors.Is(err, ErrArityMismatch))

	_, err = ctx.Infer(App(Int(1), Int(2)), env)
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	assert.Equal(t, 2, env.Len())
}

func TestUnboundVariable(t *testing.T) {
	ctx := NewContext(nil)
	y := Var("y")
	_, err := ctx.Infer(Let("x", nil, Int(1), Add(Var("x"), y)), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnboundVariable))
	assert.EqualError(t, err, "Variable y not found")
	assert.Same(t, y, ctx.InvalidExpr())
}

func TestOccursCheck(t *testing.T) {
	// let rec f x = f in f
	_, err := NewContext(nil).Infer(LetRec("f", nil, bindings("x"), Var("f"), Var("f")), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOccursCheck))
}

func TestOperators(t *testing.T) {
	for _, tc := range []struct {
		expr ast.Expr
		want string
		err  error
	}{
		{Add(Int(1), Mul(Int(2), Int(3))), "int", nil},
		{Div(Sub(Int(4), Int(1)), Neg(Int(2))), "int", nil},
		{Add(Int(1), Bool(true)), "", ErrTypeMismatch},
		{Add(Bool(true), Bool(true)), "", ErrTypeMismatch},
		{Eq(Int(1), Int(2)), "bool", nil},
		{Eq(Tuple(Int(1), Bool(true)), Tuple(Int(2), Bool(false))), "bool", nil},
		{Eq(Int(1), Bool(true)), "", ErrTypeMismatch},
		{Eq(Tuple(Int(1)), Tuple(Int(1), Int(2))), "", ErrArityMismatch},
		{LE(Int(1), Int(2)), "bool", nil},
		{LE(Bool(true), Int(1)), "", ErrTypeMismatch},
		{Not(LE(Int(1), Int(2))), "bool", nil},
		{Not(Int(1)), "", ErrTypeMismatch},
		{Neg(Int(1)), "int", nil},
		{Neg(Unit()), "", ErrTypeMismatch},
		{Unit(), "unit", nil},
		{Tuple(), "()", nil},
	} {
		t.Run(ast.ExprString(tc.expr), func(t *testing.T) {
			ty, err := NewContext(nil).Infer(tc.expr, nil)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, types.TypeString(ty))
		})
	}
}

func TestDeclaredLetType(t *testing.T) {
	ctx := NewContext(nil)

	ty, err := ctx.Infer(Let("x", TInt(), Add(Int(1), Int(2)), Var("x")), nil)
	require.NoError(t, err)
	assert.Equal(t, "int", types.TypeString(ty))

	_, err = ctx.Infer(Let("x", TBool(), Int(1), Var("x")), nil)
	assert.EqualError(t, err, "Type mismatch: bool and int")
}

func TestLetTupleGeneralizesEachBinding(t *testing.T) {
	f, n := Var("f"), Var("n")
	expr := LetTuple(bindings("f", "n"),
		Tuple(LetRec("id", nil, bindings("x"), Var("x"), Var("id")), Int(1)),
		Tuple(App(f, Int(1)), App(f, Bool(true)), n))

	ty, err := NewContext(nil).Infer(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "int * bool * int", types.TypeString(ty))
	assert.Equal(t, "'_4 -> '_4", types.TypeString(expr.Vars[0].Type))
	assert.Equal(t, "int", types.TypeString(expr.Vars[1].Type))
}

func TestLetTupleArity(t *testing.T) {
	expr := LetTuple(bindings("a", "b"), Tuple(Int(1), Int(2), Int(3)), Var("a"))
	_, err := NewContext(nil).Infer(expr, nil)
	assert.True(t, errors.Is(err, ErrArityMismatch))
}

func TestGeneralizationExcludesEnvironmentVars(t *testing.T) {
	env := NewTypeEnv()
	env.DeclareMono("z", TVar(100))
	k := Var("k")
	// let rec k y = z in (k 1, k true)
	expr := LetRec("k", nil, bindings("y"), Var("z"), Tuple(App(k, Int(1)), App(k, Bool(true))))

	ty, err := NewContext(nil).Infer(expr, env)
	require.NoError(t, err)
	assert.Equal(t, "'_100 * '_100", types.TypeString(ty))
	assert.Equal(t, "'_102 -> '_100", types.TypeString(expr.Func.Name.Type))
}

func TestAnnotateCopiesExpression(t *testing.T) {
	expr := Let("x", nil, Int(1), LetTuple(bindings("a", "b"), Tuple(Var("x"), Bool(true)), Var("b")))
	ctx := NewContext(nil)

	annotated, err := ctx.Annotate(expr, nil)
	require.NoError(t, err)
	assert.Nil(t, expr.Var.Type)
	assert.Nil(t, expr.Body.(*ast.LetTuple).Vars[0].Type)

	let := annotated.(*ast.Let)
	assert.Equal(t, "int", types.TypeString(let.Var.Type))
	vars := let.Body.(*ast.LetTuple).Vars
	assert.Equal(t, "int", types.TypeString(vars[0].Type))
	assert.Equal(t, "bool", types.TypeString(vars[1].Type))

	require.NoError(t, ctx.AnnotateDirect(expr, nil))
	assert.Equal(t, "int", types.TypeString(expr.Var.Type))
}

func TestEnvironmentRestoredAfterFailure(t *testing.T) {
	env := NewTypeEnv()
	env.DeclareMono("one", TInt())
	ctx := NewContext(nil)

	_, err := ctx.Infer(Let("a", nil, Int(1), LetRec("g", nil, bindings("x"), Not(Var("x")), App(Var("g"), Var("a")))), env)
	require.Error(t, err)
	assert.Equal(t, 1, env.Len())
	s, ok := env.Lookup("one")
	require.True(t, ok)
	assert.Equal(t, "int", types.SchemeString(s))

	ty, err := ctx.Infer(Add(Var("one"), Int(1)), env)
	require.NoError(t, err)
	assert.Equal(t, "int", types.TypeString(ty))
	assert.Nil(t, ctx.InvalidExpr())
}

func TestBuilderGenerator(t *testing.T) {
	gen := types.NewVarTracker(0)
	b := NewBuilder(gen)
	id := Var("id")
	expr := b.LetRec("id", []string{"x"}, Var("x"), Tuple(App(id, Int(1)), App(id, Unit())))
	assert.Equal(t, "'_0", types.TypeString(expr.Func.Name.Type))
	assert.Equal(t, "'_1", types.TypeString(expr.Func.Args[0].Type))

	ctx := NewContext(gen)
	ty, err := ctx.Infer(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "int * unit", types.TypeString(ty))
	assert.Equal(t, "'_1 -> '_1", types.TypeString(expr.Func.Name.Type))
	assert.True(t, ctx.Subst().Len() > 0)
}

func TestEmptyExpression(t *testing.T) {
	_, err := NewContext(nil).Infer(nil, nil)
	assert.EqualError(t, err, "Empty expression")

	_, err = NewContext(nil).Infer(Let("x", nil, nil, Unit()), nil)
	assert.EqualError(t, err, "Empty expression")
}

func TestGeneralizationTrace(t *testing.T) {
	log.SetLevel(slog.LevelDebug)
	defer log.SetLevel(slog.LevelError)

	var buf bytes.Buffer
	ctx := NewContext(nil)
	ctx.SetLogger(slog.New(slog.NewTextHandler(&buf, log.LoggerOpts)))
	_, err := ctx.Infer(polyIdentity(), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg=generalize name=id scheme="'a -> 'a"`)
}
