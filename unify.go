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
	"github.com/wdamron/mltype/internal/log"
	"github.com/wdamron/mltype/types"
)

// Constraint requires two types to be equal.
type Constraint struct {
	Left  types.Type
	Right types.Type
}

// Unify computes a substitution which makes each pair of types in constraints equal.
//
// Constraints are processed as a stack: the last constraint is solved first. When a type-variable
// is bound, the new equation is applied to all pending constraints and placed before any equations
// produced while solving them; the result is therefore ordered by the time each equation was
// produced.
func Unify(constraints []Constraint) (types.Subst, error) {
	var out types.Subst
	pending := make([]Constraint, len(constraints))
	copy(pending, constraints)

	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		a, b := c.Left, c.Right

		if tv, ok := a.(*types.Var); ok {
			if bv, ok := b.(*types.Var); ok && bv.Id == tv.Id {
				continue
			}
			if err := bindVar(tv, b, pending, &out); err != nil {
				return nil, err
			}
			continue
		}
		if tv, ok := b.(*types.Var); ok {
			if err := bindVar(tv, a, pending, &out); err != nil {
				return nil, err
			}
			continue
		}

		switch a := a.(type) {
		case *types.Const:
			if b, ok := b.(*types.Const); ok && a.Name == b.Name {
				continue
			}

		case *types.Arrow:
			if b, ok := b.(*types.Arrow); ok {
				// argument counts are checked as tuple lengths, before the return types
				pending = append(pending,
					Constraint{a.Return, b.Return},
					Constraint{&types.Tuple{Elems: a.Args}, &types.Tuple{Elems: b.Args}})
				continue
			}

		case *types.Tuple:
			if b, ok := b.(*types.Tuple); ok {
				if len(a.Elems) != len(b.Elems) {
					return nil, typeError(ErrArityMismatch, a, b)
				}
				for i := range a.Elems {
					pending = append(pending, Constraint{a.Elems[i], b.Elems[i]})
				}
				continue
			}
		}
		return nil, typeError(ErrTypeMismatch, a, b)
	}
	return out, nil
}

func bindVar(tv *types.Var, t types.Type, pending []Constraint, out *types.Subst) error {
	if types.Occurs(tv.Id, t) {
		return typeError(ErrOccursCheck, tv, t)
	}
	for i, c := range pending {
		pending[i] = Constraint{types.Substitute(c.Left, tv.Id, t), types.Substitute(c.Right, tv.Id, t)}
	}
	if log.Enabled("unify") {
		log.DefaultLogger.Debug("bind", "section", "unify", "var", types.TypeString(tv), "type", types.TypeString(t))
	}
	out.Push(tv.Id, t)
	return nil
}
