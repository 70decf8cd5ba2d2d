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

import "strings"

// Equation binds a type-variable to a type: `'a := int`
type Equation struct {
	Var  int
	Type Type
}

// Subst is an ordered list of equations.
//
// Applying a substitution applies each equation in list order, so a later equation also rewrites
// the types introduced by earlier equations. Application is sequential, not simultaneous, and
// composition is plain concatenation; callers are responsible for ordering equations correctly.
type Subst []Equation

// Append a single equation.
func (s *Subst) Push(id int, t Type) { *s = append(*s, Equation{Var: id, Type: t}) }

// Append the equations of other after the equations of s.
func (s *Subst) Append(other Subst) { *s = append(*s, other...) }

func (s Subst) Len() int { return len(s) }

func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, eq := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeString(&Var{Id: eq.Var}))
		sb.WriteString(" := ")
		sb.WriteString(TypeString(eq.Type))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Substitute replaces every occurrence of the type-variable id within t with `to`.
func Substitute(t Type, id int, to Type) Type {
	return mapVars(t, func(tv *Var) Type {
		if tv.Id == id {
			return to
		}
		return tv
	})
}

// Apply each equation of s to t, in order.
func Apply(t Type, s Subst) Type {
	for _, eq := range s {
		t = Substitute(t, eq.Var, eq.Type)
	}
	return t
}
