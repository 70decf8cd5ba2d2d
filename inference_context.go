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
	"log/slog"

	"github.com/pkg/errors"

	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/internal/log"
	"github.com/wdamron/mltype/types"
)

// InferenceContext is a reusable context for type inference.
//
// A context owns the global substitution of the current pass. An inference context cannot be used
// concurrently; to check independent programs concurrently, create one context, one type-environment
// and one generator for each program.
type InferenceContext struct {
	gen        types.VarGenerator
	fresh      types.VarGenerator
	subst      types.Subst
	logger     *slog.Logger
	needsReset bool

	rootExpr ast.Expr
	err      error
	invalid  ast.Expr
}

// Create a new type-inference context. Fresh type-variables are allocated from gen, which must be
// the generator used to allocate the type-variables already present in the program tree.
//
// If gen is nil, each pass allocates fresh type-variables above the largest id found in the
// program tree and the type-environment.
func NewContext(gen types.VarGenerator) *InferenceContext {
	return &InferenceContext{gen: gen, logger: log.DefaultLogger.With("section", "infer")}
}

// Replace the logger used for debug traces.
func (ti *InferenceContext) SetLogger(l *slog.Logger) { ti.logger = l }

func (ti *InferenceContext) reset() {
	ti.rootExpr, ti.err, ti.invalid, ti.subst, ti.fresh, ti.needsReset = nil, nil, nil, nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Get the global substitution computed by the most recent pass.
func (ti *InferenceContext) Subst() types.Subst { return ti.subst }

// Infer the type of expr within env. Type-annotations will be written directly to expr.
//
// The bindings of env are restored after inference, whether or not inference succeeds.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	nocopy := true
	_, t, err := ti.inferRoot(expr, env, nocopy)
	return t, err
}

// Infer the type of expr within env. The type-annotated copy of expr will be returned; expr is
// not modified.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, error) {
	nocopy := false
	root, _, err := ti.inferRoot(expr, env, nocopy)
	return root, err
}

// Infer the type of expr within env. Type-annotations will be written directly to expr.
// All sub-expressions of expr must have unique addresses.
func (ti *InferenceContext) AnnotateDirect(expr ast.Expr, env *TypeEnv) error {
	nocopy := true
	_, _, err := ti.inferRoot(expr, env, nocopy)
	return err
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv, nocopy bool) (ast.Expr, types.Type, error) {
	if root == nil {
		return nil, nil, errors.New("Empty expression")
	}
	if env == nil {
		env = NewTypeEnv()
	}
	if !nocopy {
		root = ast.CopyExpr(root)
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.rootExpr, ti.fresh = root, ti.gen
	if ti.fresh == nil {
		ti.fresh = types.NewVarTracker(maxVarId(root, env) + 1)
	}
	saved := env.snapshot()
	t, err := ti.infer(env, root)
	env.restore(saved)
	ti.needsReset, ti.rootExpr = true, nil
	if err != nil {
		return root, nil, err
	}
	// resolve every slot against the final substitution
	subst := ti.subst
	ast.RewriteTypes(root, func(t types.Type) types.Type { return types.Apply(t, subst) })
	return root, types.Apply(t, subst), nil
}

// unify a and b under the global substitution, then extend the global substitution.
func (ti *InferenceContext) unify(e ast.Expr, a, b types.Type) error {
	a, b = types.Apply(a, ti.subst), types.Apply(b, ti.subst)
	s, err := Unify([]Constraint{{a, b}})
	if err != nil {
		ti.invalid, ti.err = e, err
		return err
	}
	ti.subst.Append(s)
	return nil
}

// declared returns the type in a binding slot, filling an empty slot with a fresh type-variable.
func (ti *InferenceContext) declared(slot *types.Type) types.Type {
	if *slot == nil {
		*slot = ti.fresh.FreshVar()
	}
	return *slot
}

func maxVarId(root ast.Expr, env *TypeEnv) int {
	maxId := -1
	track := func(t types.Type) {
		for _, id := range types.FreeVars(t) {
			if id > maxId {
				maxId = id
			}
		}
	}
	ast.RewriteTypes(root, func(t types.Type) types.Type {
		track(t)
		return t
	})
	env.Range(func(_ ast.Ident, s *types.Scheme) bool {
		track(s.Body)
		return true
	})
	return maxId
}
