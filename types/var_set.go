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
	"sort"
	"strconv"
	"strings"

	"github.com/xtgo/set"
)

// VarSet is a sorted set of type-variable ids. The zero value is the empty set.
//
// Sets are values: operations return new sets and never modify their receivers.
type VarSet []int

// Create a set from the given ids. Duplicates are removed.
func NewVarSet(ids ...int) VarSet {
	if len(ids) == 0 {
		return nil
	}
	s := make(VarSet, len(ids))
	copy(s, ids)
	sort.Ints(s)
	return s[:set.Uniq(sort.IntSlice(s))]
}

func (s VarSet) Len() int { return len(s) }

// Has reports whether id is a member of s.
func (s VarSet) Has(id int) bool {
	i := sort.SearchInts(s, id)
	return i < len(s) && s[i] == id
}

// Union returns the ids in either s or o.
func (s VarSet) Union(o VarSet) VarSet {
	switch {
	case len(o) == 0:
		return s
	case len(s) == 0:
		return o
	}
	data := make([]int, 0, len(s)+len(o))
	data = append(append(data, s...), o...)
	return VarSet(data[:set.Union(sort.IntSlice(data), len(s))])
}

// Diff returns the ids in s which are not in o.
func (s VarSet) Diff(o VarSet) VarSet {
	if len(s) == 0 || len(o) == 0 {
		return s
	}
	data := make([]int, 0, len(s)+len(o))
	data = append(append(data, s...), o...)
	n := set.Diff(sort.IntSlice(data), len(s))
	if n == 0 {
		return nil
	}
	return VarSet(data[:n])
}

// Equal reports whether s and o contain the same ids.
func (s VarSet) Equal(o VarSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s VarSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteByte('}')
	return sb.String()
}
