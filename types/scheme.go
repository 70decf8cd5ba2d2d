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

// Scheme is a polymorphic type: `forall Bound. Body`
type Scheme struct {
	Bound VarSet
	Body  Type
}

// Create a scheme without quantified type-variables.
func Mono(t Type) *Scheme { return &Scheme{Body: t} }

// Instantiate returns a copy of the scheme's body, with each quantified type-variable renamed to a
// fresh type-variable allocated from gen. Quantified variables are renamed in ascending id order.
func (s *Scheme) Instantiate(gen VarGenerator) Type {
	t := s.Body
	for _, id := range s.Bound {
		t = RewriteVar(t, id, gen.FreshId())
	}
	return t
}

// FreeVars returns the type-variables of the body which are not quantified.
func (s *Scheme) FreeVars() VarSet { return FreeVars(s.Body).Diff(s.Bound) }

// Apply each equation of sub to the body of s, skipping equations for quantified type-variables.
func (s *Scheme) Apply(sub Subst) {
	for _, eq := range sub {
		if s.Bound.Has(eq.Var) {
			continue
		}
		s.Body = Substitute(s.Body, eq.Var, eq.Type)
	}
}
