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

package mltype

import (
	"github.com/pkg/errors"

	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/internal/log"
	"github.com/wdamron/mltype/types"
)

// infer implements Algorithm J. Unification results are folded into the global substitution as
// they are produced; the substitution is applied to the environment and to declared types before
// each generalization, so only resolved type-variables are quantified.
//
// On failure the environment is left unbalanced; inferRoot restores it.
func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Unit:
		return types.Unit, nil

	case *ast.Bool:
		return types.Bool, nil

	case *ast.Int:
		return types.Int, nil

	case *ast.Not:
		t, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, types.Bool, t); err != nil {
			return nil, err
		}
		return types.Bool, nil

	case *ast.Neg:
		t, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, types.Int, t); err != nil {
			return nil, err
		}
		return types.Int, nil

	case *ast.Arith:
		t1, err := ti.infer(env, e.Left)
		if err != nil {
			return nil, err
		}
		t2, err := ti.infer(env, e.Right)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, t1, t2); err != nil {
			return nil, err
		}
		if err := ti.unify(e, t1, types.Int); err != nil {
			return nil, err
		}
		return types.Int, nil

	case *ast.Eq:
		// no equality constraint: any pair of unifiable types may be compared
		t1, err := ti.infer(env, e.Left)
		if err != nil {
			return nil, err
		}
		t2, err := ti.infer(env, e.Right)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, t1, t2); err != nil {
			return nil, err
		}
		return types.Bool, nil

	case *ast.LE:
		t1, err := ti.infer(env, e.Left)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, types.Int, t1); err != nil {
			return nil, err
		}
		t2, err := ti.infer(env, e.Right)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, types.Int, t2); err != nil {
			return nil, err
		}
		return types.Bool, nil

	case *ast.If:
		tc, err := ti.infer(env, e.Cond)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, types.Bool, tc); err != nil {
			return nil, err
		}
		tt, err := ti.infer(env, e.Then)
		if err != nil {
			return nil, err
		}
		tf, err := ti.infer(env, e.Else)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, tt, tf); err != nil {
			return nil, err
		}
		return types.Apply(tt, ti.subst), nil

	case *ast.Let:
		declared := ti.declared(&e.Var.Type)
		t, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(e, declared, t); err != nil {
			return nil, err
		}
		env.Apply(ti.subst)
		declared = types.Apply(declared, ti.subst)
		e.Var.Type = declared
		ti.bind(env, e.Var.Name, declared)
		t, err = ti.infer(env, e.Body)
		env.Pop()
		return t, err

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			err := &UnboundVariableError{Name: e.Name}
			ti.invalid, ti.err = e, err
			return nil, err
		}
		return scheme.Instantiate(ti.fresh), nil

	case *ast.LetRec:
		fn := &e.Func
		funcType := ti.declared(&fn.Name.Type)
		args := make([]types.Type, len(fn.Args))
		// the function is monomorphic within its own body
		env.PushMono(fn.Name.Name, funcType)
		for i := range fn.Args {
			args[i] = ti.declared(&fn.Args[i].Type)
			env.PushMono(fn.Args[i].Name, args[i])
		}
		ret, err := ti.infer(env, fn.Body)
		if err != nil {
			return nil, err
		}
		for range fn.Args {
			env.Pop()
		}
		env.Pop()
		if err := ti.unify(e, funcType, &types.Arrow{Args: args, Return: ret}); err != nil {
			return nil, err
		}
		env.Apply(ti.subst)
		funcType = types.Apply(funcType, ti.subst)
		fn.Name.Type = funcType
		for i := range fn.Args {
			fn.Args[i].Type = types.Apply(args[i], ti.subst)
		}
		ti.bind(env, fn.Name.Name, funcType)
		t, err := ti.infer(env, e.Body)
		env.Pop()
		return t, err

	case *ast.App:
		ft, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			if args[i], err = ti.infer(env, arg); err != nil {
				return nil, err
			}
		}
		ret := ti.fresh.FreshVar()
		if err := ti.unify(e, &types.Arrow{Args: args, Return: ret}, ft); err != nil {
			return nil, err
		}
		t := types.Apply(ret, ti.subst)
		e.SetType(t)
		return t, nil

	case *ast.Tuple:
		elems := make([]types.Type, len(e.Elems))
		for i, el := range e.Elems {
			t, err := ti.infer(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return &types.Tuple{Elems: elems}, nil

	case *ast.LetTuple:
		declared := make([]types.Type, len(e.Vars))
		for i := range e.Vars {
			declared[i] = ti.declared(&e.Vars[i].Type)
			env.PushMono(e.Vars[i].Name, declared[i])
		}
		t, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		for range e.Vars {
			env.Pop()
		}
		if err := ti.unify(e, t, &types.Tuple{Elems: declared}); err != nil {
			return nil, err
		}
		env.Apply(ti.subst)
		// each destructured binding is generalized on its own
		for i := range e.Vars {
			declared[i] = types.Apply(declared[i], ti.subst)
			e.Vars[i].Type = declared[i]
			ti.bind(env, e.Vars[i].Name, declared[i])
		}
		t, err = ti.infer(env, e.Body)
		for range e.Vars {
			env.Pop()
		}
		return t, err

	case nil:
		ti.err = errors.New("Empty expression")
		return nil, ti.err
	}
	ti.invalid, ti.err = e, errors.New("Unhandled expression type "+e.ExprName())
	return nil, ti.err
}

// bind generalizes t over env and pushes the resulting scheme for name.
func (ti *InferenceContext) bind(env *TypeEnv, name ast.Ident, t types.Type) {
	scheme := Generalize(t, env)
	if log.Enabled("infer") {
		ti.logger.Debug("generalize", "name", string(name), "scheme", types.SchemeString(scheme))
	}
	env.Push(name, scheme)
}
