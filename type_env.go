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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/types"
)

// TypeEnv is a type-environment: a stack of bindings from identifiers to type-schemes, mirroring
// lexical scope. Lookup finds the most recently pushed binding for an identifier.
//
// Bindings are stored in a persistent list; pushing, popping and applying substitutions never
// modify schemes reachable from a previous state of the environment.
//
// A type-environment cannot be used concurrently for inference.
type TypeEnv struct {
	bindings *immutable.List[envBinding]
}

type envBinding struct {
	Name   ast.Ident
	Scheme *types.Scheme
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{bindings: immutable.NewList[envBinding]()}
}

// Len returns the number of bindings in the environment, including shadowed bindings.
func (e *TypeEnv) Len() int { return e.bindings.Len() }

// Push a binding for name.
func (e *TypeEnv) Push(name ast.Ident, scheme *types.Scheme) {
	e.bindings = e.bindings.Append(envBinding{name, scheme})
}

// Push a monomorphic binding for name.
func (e *TypeEnv) PushMono(name ast.Ident, t types.Type) { e.Push(name, types.Mono(t)) }

// Declare a type-scheme for an externally defined identifier.
//
// Declare is an alias for Push.
func (e *TypeEnv) Declare(name ast.Ident, scheme *types.Scheme) { e.Push(name, scheme) }

// Declare a monomorphic type for an externally defined identifier.
//
// DeclareMono is an alias for PushMono.
func (e *TypeEnv) DeclareMono(name ast.Ident, t types.Type) { e.PushMono(name, t) }

// Pop removes the most recently pushed binding.
func (e *TypeEnv) Pop() {
	n := e.bindings.Len()
	if n == 0 {
		panic("pop from empty type-environment")
	}
	e.bindings = e.bindings.Slice(0, n-1)
}

// Lookup the type-scheme of the most recently pushed binding for name.
func (e *TypeEnv) Lookup(name ast.Ident) (*types.Scheme, bool) {
	for i := e.bindings.Len() - 1; i >= 0; i-- {
		if b := e.bindings.Get(i); b.Name == name {
			return b.Scheme, true
		}
	}
	return nil, false
}

// Apply a substitution to every binding. Quantified type-variables of each scheme are not substituted.
func (e *TypeEnv) Apply(sub types.Subst) {
	if len(sub) == 0 {
		return
	}
	bindings := e.bindings
	for i := 0; i < bindings.Len(); i++ {
		b := bindings.Get(i)
		applied := &types.Scheme{Bound: b.Scheme.Bound, Body: b.Scheme.Body}
		applied.Apply(sub)
		if applied.Body != b.Scheme.Body {
			bindings = bindings.Set(i, envBinding{b.Name, applied})
		}
	}
	e.bindings = bindings
}

// FreeVars returns the union of the free type-variables of every binding.
func (e *TypeEnv) FreeVars() types.VarSet {
	var free types.VarSet
	itr := e.bindings.Iterator()
	for !itr.Done() {
		_, b := itr.Next()
		free = free.Union(b.Scheme.FreeVars())
	}
	return free
}

// Range calls f for each binding, from the most recently pushed binding to the first.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(ast.Ident, *types.Scheme) bool) {
	for i := e.bindings.Len() - 1; i >= 0; i-- {
		b := e.bindings.Get(i)
		if !f(b.Name, b.Scheme) {
			return
		}
	}
}

func (e *TypeEnv) snapshot() *immutable.List[envBinding] { return e.bindings }

func (e *TypeEnv) restore(bindings *immutable.List[envBinding]) { e.bindings = bindings }
