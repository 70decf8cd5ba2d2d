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

// Package program loads program trees from YAML documents.
//
// A program is a single YAML document holding one expression:
//
//	1, -2                       integer literals
//	true, false                 boolean literals
//	null, "()"                  the unit literal
//	x                           variable (any other string)
//	[a, b]                      tuple
//	{var: x}                    variable
//	{not: e}, {neg: e}
//	{add: [a, b]}               likewise sub, mul, div, eq and le
//	{if: {cond: c, then: t, else: f}}
//	{let: {name: x, type: int, value: v, body: b}}       type is optional
//	{letrec: {name: f, args: [x, y], body: b, in: e}}
//	{app: {func: f, args: [a, b]}}                       args is optional
//	{tuple: [a, b]}
//	{lettuple: {names: [a, b], value: v, body: b}}
//
// Every binding slot without a declared type is filled with a fresh type-variable allocated from
// the program's generator.
package program

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/construct"
	"github.com/wdamron/mltype/types"
)

// Position is a line and column within a YAML document, both starting at 1.
type Position struct {
	Line, Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// SyntaxError is returned when a YAML document does not describe a valid program tree.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string { return e.Pos.String() + ": " + e.Msg }

func syntaxError(n *yaml.Node, format string, args ...interface{}) error {
	return &SyntaxError{Pos: positionOf(n), Msg: fmt.Sprintf(format, args...)}
}

func positionOf(n *yaml.Node) Position { return Position{Line: n.Line, Column: n.Column} }

// Program is a loaded program tree.
type Program struct {
	Root ast.Expr
	// Gen allocated every type-variable in Root; inference must continue from it.
	Gen *types.VarTracker

	positions map[ast.Expr]Position
}

// Position returns the location of the YAML node e was loaded from.
func (p *Program) Position(e ast.Expr) (Position, bool) {
	pos, ok := p.positions[e]
	return pos, ok
}

// LoadFile reads and parses the program at path.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open program")
	}
	defer f.Close()
	return Load(f)
}

// Load reads and parses a program.
func Load(r io.Reader) (*Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read program")
	}
	return Parse(src)
}

// Parse a program from YAML source.
func Parse(src []byte) (*Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, errors.Wrap(err, "parse program")
	}
	if doc.Kind == 0 {
		return nil, errors.New("parse program: empty document")
	}
	gen := types.NewVarTracker(0)
	l := &loader{b: construct.NewBuilder(gen), positions: make(map[ast.Expr]Position)}
	root, err := l.expr(&doc)
	if err != nil {
		return nil, err
	}
	return &Program{Root: root, Gen: gen, positions: l.positions}, nil
}

type loader struct {
	b         *construct.Builder
	positions map[ast.Expr]Position
}

func (l *loader) at(n *yaml.Node, e ast.Expr) ast.Expr {
	l.positions[e] = positionOf(n)
	return e
}

func (l *loader) expr(n *yaml.Node) (ast.Expr, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, syntaxError(n, "expected a single expression")
		}
		return l.expr(n.Content[0])
	case yaml.AliasNode:
		return l.expr(n.Alias)
	case yaml.ScalarNode:
		return l.scalar(n)
	case yaml.SequenceNode:
		elems, err := l.exprs(n)
		if err != nil {
			return nil, err
		}
		return l.at(n, construct.Tuple(elems...)), nil
	case yaml.MappingNode:
		return l.form(n)
	}
	return nil, syntaxError(n, "unexpected YAML node")
}

func (l *loader) scalar(n *yaml.Node) (ast.Expr, error) {
	switch n.ShortTag() {
	case "!!int":
		var v int
		if err := n.Decode(&v); err != nil {
			return nil, syntaxError(n, "invalid integer %q", n.Value)
		}
		return l.at(n, construct.Int(v)), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return nil, syntaxError(n, "invalid boolean %q", n.Value)
		}
		return l.at(n, construct.Bool(v)), nil
	case "!!null":
		return l.at(n, construct.Unit()), nil
	case "!!str":
		if n.Value == "()" {
			return l.at(n, construct.Unit()), nil
		}
		name, err := ident(n)
		if err != nil {
			return nil, err
		}
		return l.at(n, construct.Var(name)), nil
	}
	return nil, syntaxError(n, "unsupported literal %q", n.Value)
}

func (l *loader) exprs(n *yaml.Node) ([]ast.Expr, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, syntaxError(n, "expected a list of expressions")
	}
	out := make([]ast.Expr, len(n.Content))
	for i, el := range n.Content {
		e, err := l.expr(el)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (l *loader) pair(n *yaml.Node) (ast.Expr, ast.Expr, error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return nil, nil, syntaxError(n, "expected a list of 2 operands")
	}
	left, err := l.expr(n.Content[0])
	if err != nil {
		return nil, nil, err
	}
	right, err := l.expr(n.Content[1])
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

var binaryForms = map[string]func(a, b ast.Expr) ast.Expr{
	"add": func(a, b ast.Expr) ast.Expr { return construct.Add(a, b) },
	"sub": func(a, b ast.Expr) ast.Expr { return construct.Sub(a, b) },
	"mul": func(a, b ast.Expr) ast.Expr { return construct.Mul(a, b) },
	"div": func(a, b ast.Expr) ast.Expr { return construct.Div(a, b) },
	"eq":  func(a, b ast.Expr) ast.Expr { return construct.Eq(a, b) },
	"le":  func(a, b ast.Expr) ast.Expr { return construct.LE(a, b) },
}

func (l *loader) form(n *yaml.Node) (ast.Expr, error) {
	if len(n.Content) != 2 {
		return nil, syntaxError(n, "expected a single-key mapping")
	}
	key, val := n.Content[0], n.Content[1]

	if build, ok := binaryForms[key.Value]; ok {
		left, right, err := l.pair(val)
		if err != nil {
			return nil, err
		}
		return l.at(key, build(left, right)), nil
	}

	switch key.Value {
	case "var":
		name, err := ident(val)
		if err != nil {
			return nil, err
		}
		return l.at(key, construct.Var(name)), nil

	case "not", "neg":
		v, err := l.expr(val)
		if err != nil {
			return nil, err
		}
		if key.Value == "not" {
			return l.at(key, construct.Not(v)), nil
		}
		return l.at(key, construct.Neg(v)), nil

	case "tuple":
		elems, err := l.exprs(val)
		if err != nil {
			return nil, err
		}
		return l.at(key, construct.Tuple(elems...)), nil

	case "if":
		f, err := fields(val, []string{"cond", "then", "else"})
		if err != nil {
			return nil, err
		}
		cond, then, els, err := l.expr3(f["cond"], f["then"], f["else"])
		if err != nil {
			return nil, err
		}
		return l.at(key, construct.If(cond, then, els)), nil

	case "let":
		f, err := fields(val, []string{"name", "value", "body"}, "type")
		if err != nil {
			return nil, err
		}
		name, err := ident(f["name"])
		if err != nil {
			return nil, err
		}
		value, body, err := l.expr2(f["value"], f["body"])
		if err != nil {
			return nil, err
		}
		if t, ok := f["type"]; ok {
			declared, err := constType(t)
			if err != nil {
				return nil, err
			}
			return l.at(key, construct.Let(name, declared, value, body)), nil
		}
		return l.at(key, l.b.Let(name, value, body)), nil

	case "letrec":
		f, err := fields(val, []string{"name", "args", "body", "in"})
		if err != nil {
			return nil, err
		}
		name, err := ident(f["name"])
		if err != nil {
			return nil, err
		}
		args, err := idents(f["args"])
		if err != nil {
			return nil, err
		}
		body, in, err := l.expr2(f["body"], f["in"])
		if err != nil {
			return nil, err
		}
		return l.at(key, l.b.LetRec(name, args, body, in)), nil

	case "app":
		f, err := fields(val, []string{"func"}, "args")
		if err != nil {
			return nil, err
		}
		fn, err := l.expr(f["func"])
		if err != nil {
			return nil, err
		}
		var args []ast.Expr
		if a, ok := f["args"]; ok {
			if args, err = l.exprs(a); err != nil {
				return nil, err
			}
		}
		return l.at(key, construct.App(fn, args...)), nil

	case "lettuple":
		f, err := fields(val, []string{"names", "value", "body"})
		if err != nil {
			return nil, err
		}
		names, err := idents(f["names"])
		if err != nil {
			return nil, err
		}
		value, body, err := l.expr2(f["value"], f["body"])
		if err != nil {
			return nil, err
		}
		return l.at(key, l.b.LetTuple(names, value, body)), nil
	}

	return nil, syntaxError(key, "unknown expression %q", key.Value)
}

func (l *loader) expr2(a, b *yaml.Node) (ast.Expr, ast.Expr, error) {
	ea, err := l.expr(a)
	if err != nil {
		return nil, nil, err
	}
	eb, err := l.expr(b)
	if err != nil {
		return nil, nil, err
	}
	return ea, eb, nil
}

func (l *loader) expr3(a, b, c *yaml.Node) (ast.Expr, ast.Expr, ast.Expr, error) {
	ea, eb, err := l.expr2(a, b)
	if err != nil {
		return nil, nil, nil, err
	}
	ec, err := l.expr(c)
	if err != nil {
		return nil, nil, nil, err
	}
	return ea, eb, ec, nil
}

// fields reads the entries of a mapping. Every required key must be present; optional keys may be
// omitted. Other keys are rejected.
func fields(n *yaml.Node, required []string, optional ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, syntaxError(n, "expected a mapping with keys %v", required)
	}
	allowed := make(map[string]bool, len(required)+len(optional))
	for _, k := range required {
		allowed[k] = true
	}
	for _, k := range optional {
		allowed[k] = true
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if !allowed[k.Value] {
			return nil, syntaxError(k, "unexpected key %q", k.Value)
		}
		if _, dup := out[k.Value]; dup {
			return nil, syntaxError(k, "duplicate key %q", k.Value)
		}
		out[k.Value] = v
	}
	for _, k := range required {
		if _, ok := out[k]; !ok {
			return nil, syntaxError(n, "missing key %q", k)
		}
	}
	return out, nil
}

func ident(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" || n.Value == "" {
		return "", syntaxError(n, "expected an identifier")
	}
	return n.Value, nil
}

func idents(n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, syntaxError(n, "expected a list of identifiers")
	}
	out := make([]string, len(n.Content))
	for i, el := range n.Content {
		name, err := ident(el)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}

func constType(n *yaml.Node) (types.Type, error) {
	if n.Kind == yaml.ScalarNode {
		switch n.Value {
		case "int":
			return types.Int, nil
		case "bool":
			return types.Bool, nil
		case "unit":
			return types.Unit, nil
		}
	}
	return nil, syntaxError(n, "expected one of int, bool or unit")
}
