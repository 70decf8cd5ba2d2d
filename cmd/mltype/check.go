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
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/mltype"
	"github.com/wdamron/mltype/ast"
	"github.com/wdamron/mltype/internal/log"
	"github.com/wdamron/mltype/internal/program"
	"github.com/wdamron/mltype/types"
)

var checkCmd = &cobra.Command{
	Use:          "check file.yaml",
	Short:        "Infer the type of a program",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	annotate    *bool
	logLevel    *int
	logSections *[]string
)

func init() {
	annotate = checkCmd.Flags().BoolP("annotate", "a", false, "print the type of every binding and application")
	logLevel = checkCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	logSections = checkCmd.Flags().StringSlice("log-sections", []string{"infer", "unify"}, "sections which may log below warn")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))
	log.EnableSections(*logSections...)

	out := cmd.OutOrStdout()
	return check(out, newPalette(out), args[0], *annotate)
}

// check infers the type of the program at path and prints it to w. Errors are prefixed with the
// position of the failing node.
func check(w io.Writer, colors palette, path string, annotate bool) error {
	prog, err := program.LoadFile(path)
	if err != nil {
		var syntaxErr *program.SyntaxError
		if errors.As(err, &syntaxErr) {
			return errors.Errorf("%s:%v", path, syntaxErr)
		}
		return err
	}

	ctx := mltype.NewContext(prog.Gen)
	ty, err := ctx.Infer(prog.Root, mltype.NewTypeEnv())
	if err != nil {
		if pos, ok := prog.Position(ctx.InvalidExpr()); ok {
			return errors.Errorf("%s:%v: %v", path, pos, err)
		}
		return errors.Errorf("%s: %v", path, err)
	}

	if annotate {
		for _, a := range annotations(prog) {
			_, _ = fmt.Fprintf(w, "%s %s : %s\n", colors.paint(dim, a.pos.String()+":"), a.label, colors.paint(cyan, a.typ))
		}
	}
	_, err = fmt.Fprintln(w, colors.paint(cyan, types.TypeString(ty)))
	return err
}

type annotation struct {
	pos   program.Position
	label string
	typ   string
}

// annotations lists the resolved type slots of a program, in pre-order.
func annotations(prog *program.Program) []annotation {
	var out []annotation
	add := func(e ast.Expr, label string, t types.Type) {
		pos, _ := prog.Position(e)
		out = append(out, annotation{pos, label, types.TypeString(t)})
	}
	ast.WalkExpr(prog.Root, func(e ast.Expr) {
		switch e := e.(type) {
		case *ast.Let:
			add(e, "let "+string(e.Var.Name), e.Var.Type)
		case *ast.LetRec:
			add(e, "let rec "+string(e.Func.Name.Name), e.Func.Name.Type)
			for _, arg := range e.Func.Args {
				add(e, "  arg "+string(arg.Name), arg.Type)
			}
		case *ast.App:
			add(e, ast.ExprString(e), e.Type())
		case *ast.LetTuple:
			for _, v := range e.Vars {
				add(e, "let "+string(v.Name), v.Type)
			}
		}
	})
	return out
}
