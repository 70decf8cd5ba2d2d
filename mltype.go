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

// mltype provides type inference for a small statically-typed functional language: literals,
// arithmetic, conditionals, let and recursive let bindings, function application, tuples and
// tuple destructuring.
//
// The type-system is Hindley-Milner with let-polymorphism. Inference follows Algorithm J: a single
// global substitution is threaded through the traversal and extended as each constraint is
// unified, and the substitution is applied to the type-environment before every generalization so
// only resolved type-variables are quantified.
//
// Substitutions are ordered lists of equations. Applying a substitution applies each equation in
// turn, so later equations rewrite the types introduced by earlier ones.
//
//
// Supported Features:
//
//   * Let-polymorphism for let bindings, recursive functions and destructured tuples
//   * Monomorphic recursion within a function's own body
//   * Occurs check, type mismatch and arity mismatch errors
//   * Resolved types written back into binding and application slots of the program tree
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// MinCaml: https://github.com/esumii/min-caml
package mltype
