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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "prog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	path := writeProgram(t, `
letrec:
  name: id
  args: [x]
  body: x
  in: [{app: {func: id, args: [1]}}, {app: {func: id, args: [true]}}]
`)
	var out bytes.Buffer
	require.NoError(t, check(&out, palette{}, path, false))
	assert.Equal(t, "int * bool\n", out.String())

	out.Reset()
	require.NoError(t, check(&out, palette{}, path, true))
	assert.Equal(t, ""+
		"2:1: let rec id : '_1 -> '_1\n"+
		"2:1:   arg x : '_1\n"+
		"6:9: id 1 : int\n"+
		"6:39: id true : bool\n"+
		"int * bool\n", out.String())
}

func TestCheckReportsPosition(t *testing.T) {
	path := writeProgram(t, `
let:
  name: x
  value: 1
  body: {add: [x, true]}
`)
	err := check(&bytes.Buffer{}, palette{}, path, false)
	assert.EqualError(t, err, path+":5:10: Type mismatch: int and bool")

	path = writeProgram(t, "{let: {name: x, value: 1, body: y}}")
	err = check(&bytes.Buffer{}, palette{}, path, false)
	assert.EqualError(t, err, path+":1:33: Variable y not found")

	path = writeProgram(t, "{frob: 1}")
	err = check(&bytes.Buffer{}, palette{}, path, false)
	assert.EqualError(t, err, path+":1:2: unknown expression \"frob\"")
}

func TestPalette(t *testing.T) {
	assert.Equal(t, "int", palette{}.paint(cyan, "int"))
	assert.Equal(t, "\x1b[36mint\x1b[0m", palette{enabled: true}.paint(cyan, "int"))
	assert.False(t, newPalette(&bytes.Buffer{}).enabled)
}
