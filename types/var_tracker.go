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

// VarGenerator allocates type-variable ids. Ids must be unique for the lifetime of a compilation
// unit; a generator cannot be shared by concurrent inference passes.
type VarGenerator interface {
	// Allocate the next unused id.
	FreshId() int
	// Allocate a type-variable with the next unused id.
	FreshVar() *Var
}

// VarTracker is a counter-based VarGenerator.
type VarTracker struct {
	NextId int
}

// Create a tracker which allocates ids starting at next.
func NewVarTracker(next int) *VarTracker { return &VarTracker{NextId: next} }

func (vt *VarTracker) FreshId() int {
	id := vt.NextId
	vt.NextId++
	return id
}

func (vt *VarTracker) FreshVar() *Var { return &Var{Id: vt.FreshId()} }

// Allocate count type-variables with consecutive ids.
func (vt *VarTracker) FreshVars(count int) []Type {
	vars := make([]Type, count)
	for i := range vars {
		vars[i] = vt.FreshVar()
	}
	return vars
}
