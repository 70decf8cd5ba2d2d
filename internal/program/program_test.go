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

package program

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/types"
)

const polyIdentity = `
letrec:
  name: id
  args: [x]
  body: x
  in:
    - app: {func: id, args: [1]}
    - app: {func: id, args: [true]}
`

func TestParseProgram(t *testing.T) {
	p, err := Parse([]byte(polyIdentity))
	require.NoError(t, err)
	assert.Equal(t, "let rec id x = x in (id 1, id true)", ast.ExprString(p.Root))

	rec := p.Root.(*ast.LetRec)
	assert.Equal(t, "'_0", types.TypeString(rec.Func.Name.Type))
	assert.Equal(t, "'_1", types.TypeString(rec.Func.Args[0].Type))
	assert.Equal(t, 2, p.Gen.NextId)

	pos, ok := p.Position(rec)
	require.True(t, ok)
	assert.Equal(t, Position{Line: 2, Column: 1}, pos)

	second := rec.Body.(*ast.Tuple).Elems[1]
	pos, ok = p.Position(second)
	require.True(t, ok)
	assert.Equal(t, "8:7", pos.String())
}

func TestParseForms(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{`42`, "42"},
		{`-7`, "-7"},
		{`false`, "false"},
		{`null`, "()"},
		{`"()"`, "()"},
		{`[1, [true, x]]`, "(1, (true, x))"},
		{`{var: "true"}`, "true"},
		{`{not: {le: [1, 2]}}`, "not (1 <= 2)"},
		{`{neg: y}`, "-y"},
		{`{mul: [{add: [a, b]}, {sub: [c, {div: [d, 2]}]}]}`, "(a + b) * (c - d / 2)"},
		{`{eq: [a, b]}`, "a = b"},
		{`{if: {cond: c, then: 1, else: 2}}`, "if c then 1 else 2"},
		{`{let: {name: x, type: int, value: 1, body: x}}`, "let x = 1 in x"},
		{`{app: {func: f}}`, "f ()"},
		{`{tuple: []}`, "()"},
		{`{lettuple: {names: [a, b], value: p, body: b}}`, "let (a, b) = p in b"},
	} {
		p, err := Parse([]byte(tc.src))
		if assert.NoError(t, err, tc.src) {
			assert.Equal(t, tc.want, ast.ExprString(p.Root), tc.src)
		}
	}
}

func TestDeclaredLetType(t *testing.T) {
	p, err := Parse([]byte(`{let: {name: x, type: bool, value: 1, body: x}}`))
	require.NoError(t, err)
	assert.Equal(t, types.Bool, p.Root.(*ast.Let).Var.Type)

	p, err = Parse([]byte(`{let: {name: x, value: 1, body: x}}`))
	require.NoError(t, err)
	assert.Equal(t, "'_0", types.TypeString(p.Root.(*ast.Let).Var.Type))
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{`{frob: 1}`, "1:2: unknown expression \"frob\""},
		{`{add: [1]}`, "1:7: expected a list of 2 operands"},
		{`{let: {name: x, value: 1}}`, "1:7: missing key \"body\""},
		{`{let: {name: x, value: 1, body: x, extra: 2}}`, "1:36: unexpected key \"extra\""},
		{`{let: {name: 1, value: 1, body: x}}`, "1:14: expected an identifier"},
		{`{let: {name: x, type: string, value: 1, body: x}}`, "1:23: expected one of int, bool or unit"},
		{`{letrec: {name: f, args: x, body: x, in: f}}`, "1:26: expected a list of identifiers"},
		{"not: 1\nneg: 2", "1:1: expected a single-key mapping"},
		{`1.5`, "1:1: unsupported literal \"1.5\""},
	} {
		_, err := Parse([]byte(tc.src))
		var syntaxErr *SyntaxError
		if assert.True(t, errors.As(err, &syntaxErr), tc.src) {
			assert.Equal(t, tc.want, err.Error(), tc.src)
		}
	}

	_, err := Parse(nil)
	assert.EqualError(t, err, "parse program: empty document")

	_, err = Parse([]byte("{unterminated: [1, 2}"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader("{add: [1, 2]}"))
	require.NoError(t, err)
	assert.Equal(t, "1 + 2", ast.ExprString(p.Root))

	_, err = LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
