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

// Package types contains the type values manipulated during inference: monotypes, type-schemes,
// substitutions and sets of type-variables.
//
// Types are immutable. Operations which rewrite a type return a new type; sub-trees which are
// unaffected by a rewrite may be shared between the old and the new type.
package types

// Type is the base interface for all monotypes.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string { return "Const" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Tuple) TypeName() string { return "Tuple" }
func (t *Var) TypeName() string   { return "Var" }

var (
	_ Type = (*Const)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Var)(nil)
)

// Type constant: `unit`, `bool` or `int`
type Const struct {
	Name string
}

// Predeclared type constants.
var (
	Unit = &Const{Name: "unit"}
	Bool = &Const{Name: "bool"}
	Int  = &Const{Name: "int"}
)

// Function type: `(int, int) -> int`
type Arrow struct {
	Args   []Type
	Return Type
}

// Tuple type: `int * bool`
type Tuple struct {
	Elems []Type
}

// Type-variable. Ids are unique within a single compilation unit.
type Var struct {
	Id int
}

// Create a new type-variable with the given id.
func NewVar(id int) *Var { return &Var{Id: id} }

// Equal reports whether a and b are structurally identical.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && equalLists(a.Args, b.Args) && Equal(a.Return, b.Return)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalLists(a.Elems, b.Elems)
	}
	return false
}

func equalLists(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Occurs reports whether the type-variable id appears anywhere within t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Id == id
	case *Arrow:
		for _, arg := range t.Args {
			if Occurs(id, arg) {
				return true
			}
		}
		return Occurs(id, t.Return)
	case *Tuple:
		for _, el := range t.Elems {
			if Occurs(id, el) {
				return true
			}
		}
	}
	return false
}

// FreeVars collects the ids of all type-variables reachable from t.
func FreeVars(t Type) VarSet {
	var ids []int
	collectVars(t, &ids)
	return NewVarSet(ids...)
}

func collectVars(t Type, ids *[]int) {
	switch t := t.(type) {
	case *Var:
		*ids = append(*ids, t.Id)
	case *Arrow:
		for _, arg := range t.Args {
			collectVars(arg, ids)
		}
		collectVars(t.Return, ids)
	case *Tuple:
		for _, el := range t.Elems {
			collectVars(el, ids)
		}
	}
}

// RewriteVar renames every occurrence of the type-variable `from` to `to`.
func RewriteVar(t Type, from, to int) Type {
	return mapVars(t, func(tv *Var) Type {
		if tv.Id == from {
			return &Var{Id: to}
		}
		return tv
	})
}

// mapVars rebuilds t with each type-variable replaced by f(tv). Sub-trees without
// replaced variables are returned as-is.
func mapVars(t Type, f func(*Var) Type) Type {
	switch t := t.(type) {
	case *Var:
		return f(t)

	case *Arrow:
		args, changed := mapList(t.Args, f)
		ret := mapVars(t.Return, f)
		if !changed && ret == t.Return {
			return t
		}
		return &Arrow{Args: args, Return: ret}

	case *Tuple:
		elems, changed := mapList(t.Elems, f)
		if !changed {
			return t
		}
		return &Tuple{Elems: elems}
	}
	return t
}

func mapList(ts []Type, f func(*Var) Type) ([]Type, bool) {
	var out []Type
	for i, t := range ts {
		mapped := mapVars(t, f)
		if mapped != t && out == nil {
			out = make([]Type, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = mapped
		}
	}
	if out == nil {
		return ts, false
	}
	return out, true
}
