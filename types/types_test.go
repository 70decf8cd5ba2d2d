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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrow(ret Type, args ...Type) *Arrow { return &Arrow{Args: args, Return: ret} }
func tuple(elems ...Type) *Tuple         { return &Tuple{Elems: elems} }

func TestFreeVars(t *testing.T) {
	a, b, c := NewVar(3), NewVar(1), NewVar(2)
	ty := arrow(tuple(a, Int, b), a, arrow(c, b))
	assert.Equal(t, VarSet{1, 2, 3}, FreeVars(ty))
	assert.Nil(t, FreeVars(arrow(Int, Bool, Unit)))
}

func TestVarSetAlgebra(t *testing.T) {
	s := NewVarSet(5, 1, 3, 1, 5)
	assert.Equal(t, VarSet{1, 3, 5}, s)
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))

	assert.Equal(t, VarSet{1, 2, 3, 5, 8}, s.Union(NewVarSet(8, 2, 3)))
	assert.Equal(t, VarSet{1, 5}, s.Diff(NewVarSet(3, 4)))
	assert.Nil(t, s.Diff(s))
	assert.Equal(t, s, s.Diff(nil))
	assert.Equal(t, s, VarSet(nil).Union(s))
	assert.True(t, s.Equal(NewVarSet(3, 5, 1)))
	assert.Equal(t, "{1, 3, 5}", s.String())

	// operands are left untouched
	assert.Equal(t, VarSet{1, 3, 5}, s)
}

func TestRewriteVar(t *testing.T) {
	ty := arrow(NewVar(1), NewVar(1), tuple(NewVar(2), NewVar(1)))
	got := RewriteVar(ty, 1, 7)
	assert.Equal(t, "('_7, '_2 * '_7) -> '_7", TypeString(got))
	assert.Equal(t, "('_1, '_2 * '_1) -> '_1", TypeString(ty))

	// unaffected types are shared
	same := arrow(Int, Bool)
	assert.Same(t, same, RewriteVar(same, 1, 2))
}

func TestApplyIsSequential(t *testing.T) {
	// 'a := 'b -> int, then 'b := bool rewrites the type introduced by the first equation
	var s Subst
	s.Push(1, arrow(Int, NewVar(2)))
	s.Push(2, Bool)
	got := Apply(NewVar(1), s)
	assert.True(t, Equal(arrow(Int, Bool), got), TypeString(got))

	// reversed order leaves 'b in place
	var r Subst
	r.Push(2, Bool)
	r.Push(1, arrow(Int, NewVar(2)))
	got = Apply(NewVar(1), r)
	assert.Equal(t, "'_2 -> int", TypeString(got))
}

func TestApplyEmptySubstIsIdentity(t *testing.T) {
	tys := []Type{
		Unit, Int, Bool, NewVar(4),
		arrow(tuple(NewVar(1), Int), NewVar(2), arrow(Bool)),
		tuple(),
	}
	for _, ty := range tys {
		assert.True(t, Equal(ty, Apply(ty, nil)), TypeString(ty))
		assert.True(t, Equal(ty, Apply(ty, Subst{})), TypeString(ty))
	}
}

func TestSubstAppend(t *testing.T) {
	var s Subst
	s.Push(1, Int)
	var o Subst
	o.Push(2, Bool)
	o.Push(3, Unit)
	s.Append(o)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, []int{s[0].Var, s[1].Var, s[2].Var})
	assert.Equal(t, "['_1 := int, '_2 := bool, '_3 := unit]", s.String())
}

func TestSchemeInstantiate(t *testing.T) {
	gen := NewVarTracker(100)
	scheme := &Scheme{Bound: NewVarSet(1, 2), Body: arrow(tuple(NewVar(1), NewVar(3)), NewVar(1), NewVar(2))}

	first := scheme.Instantiate(gen)
	second := scheme.Instantiate(gen)
	assert.Equal(t, "('_100, '_101) -> '_100 * '_3", TypeString(first))
	assert.Equal(t, "('_102, '_103) -> '_102 * '_3", TypeString(second))
	assert.Equal(t, VarSet{3}, scheme.FreeVars())
	assert.Equal(t, "('a, 'b) -> 'a * '_3", SchemeString(scheme))

	mono := Mono(NewVar(5))
	assert.Same(t, mono.Body, mono.Instantiate(gen))
}

func TestSchemeApplySkipsBound(t *testing.T) {
	scheme := &Scheme{Bound: NewVarSet(1), Body: arrow(NewVar(2), NewVar(1))}
	var s Subst
	s.Push(1, Int)
	s.Push(2, Bool)
	scheme.Apply(s)
	assert.Equal(t, "'a -> bool", SchemeString(scheme))
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		ty   Type
		want string
	}{
		{Int, "int"},
		{arrow(Int, Int), "int -> int"},
		{arrow(Int, Int, Bool), "(int, bool) -> int"},
		{arrow(Unit), "() -> unit"},
		{tuple(Int, Bool), "int * bool"},
		{arrow(Int, tuple(Int, Int)), "int * int -> int"},
		{arrow(Int, arrow(Int, Int)), "(int -> int) -> int"},
		{arrow(arrow(Int, Int), Int), "int -> int -> int"},
		{tuple(arrow(Int, Int), tuple(Bool, Unit)), "(int -> int) * (bool * unit)"},
		{tuple(), "()"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TypeString(c.ty))
	}
}
