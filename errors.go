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
	"github.com/wdamron/mltype/types"
)

// Inference fails with one of the following errors. Failures are terminal for the current pass.
var (
	// A type-variable would be bound to a type containing itself.
	ErrOccursCheck = errors.New("Implicitly recursive types are not supported")
	// Two types have incompatible shapes.
	ErrTypeMismatch = errors.New("Type mismatch")
	// Two tuple types (or argument lists) have different lengths.
	ErrArityMismatch = errors.New("Arity mismatch")
	// An identifier is not bound in the type-environment.
	ErrUnboundVariable = errors.New("Unbound variable")
)

// TypeError is returned when unification fails. Kind is one of ErrOccursCheck,
// ErrTypeMismatch or ErrArityMismatch.
type TypeError struct {
	Kind  error
	Left  types.Type
	Right types.Type
}

func (e *TypeError) Error() string {
	if e.Kind == ErrOccursCheck {
		return e.Kind.Error() + ": " + types.TypeString(e.Left) + " occurs in " + types.TypeString(e.Right)
	}
	return e.Kind.Error() + ": " + types.TypeString(e.Left) + " and " + types.TypeString(e.Right)
}

func (e *TypeError) Unwrap() error { return e.Kind }

func typeError(kind error, left, right types.Type) error {
	return &TypeError{Kind: kind, Left: left, Right: right}
}

// UnboundVariableError is returned when a variable is not found in the type-environment.
type UnboundVariableError struct {
	Name ast.Ident
}

func (e *UnboundVariableError) Error() string {
	return "Variable " + string(e.Name) + " not found"
}

func (e *UnboundVariableError) Unwrap() error { return ErrUnboundVariable }
