// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/creachadair/jsonast"
	"github.com/creachadair/jsonast/ast"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
)

// checkCommand reports the defects and errors found in each input.
type checkCommand struct {
	env      *env
	files    []string
	strict   bool
	maxDepth int
}

func (cmd *checkCommand) run(*kingpin.ParseContext) error {
	ins, err := cmd.env.readInputs(cmd.files)
	if err != nil {
		return err
	}
	p := ast.Parser{MaxDepth: cmd.maxDepth}

	var nBytes, nDefects, nFailed int
	for _, in := range ins {
		start := time.Now()
		res := p.Parse(in.text)
		level.Debug(cmd.env.logger).Log("msg", "parsed input", "file", in.name, "elapsed", time.Since(start))
		nBytes += len(in.text)

		switch t := res.(type) {
		case *ast.Success:
			for _, d := range ast.Diagnostics(t.Tree) {
				printWarning(cmd.env.stdout, in.name, d)
				nDefects++
			}
		case *ast.Failure:
			nFailed++
			if t.Tree != nil {
				for _, d := range ast.Diagnostics(t.Tree) {
					printWarning(cmd.env.stdout, in.name, d)
					nDefects++
				}
			}
			for _, perr := range t.Errors {
				printError(cmd.env.stdout, in.name, perr)
			}
		}
	}

	fmt.Fprintf(cmd.env.stdout, "checked %d %s (%s): %d %s, %d %s\n",
		len(ins), plural(len(ins), "input", "inputs"),
		humanize.Bytes(uint64(nBytes)),
		nDefects, plural(nDefects, "defect", "defects"),
		nFailed, plural(nFailed, "failure", "failures"),
	)
	if nFailed > 0 || (cmd.strict && nDefects > 0) {
		return errFailed
	}
	return nil
}

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

func printWarning(w io.Writer, name string, perr *ast.ParseError) {
	fmt.Fprintf(w, "%s:%v: ", name, perr.Pos)
	warnColor.Fprint(w, "warning: ")
	fmt.Fprintf(w, "%v %s\n", perr.Kind, perr.Message)
}

// printError writes err to w, located at its position in the input if it
// has one.
func printError(w io.Writer, name string, err error) {
	var perr *ast.ParseError
	var serr *jsonast.SyntaxError
	switch {
	case errors.As(err, &perr):
		fmt.Fprintf(w, "%s:%v: ", name, perr.Pos)
		errorColor.Fprint(w, "error: ")
		if perr.Message == "" {
			fmt.Fprintln(w, perr.Kind)
		} else {
			fmt.Fprintf(w, "%v: %s\n", perr.Kind, perr.Message)
		}
	case errors.As(err, &serr):
		fmt.Fprintf(w, "%s:%v: ", name, serr.Pos)
		errorColor.Fprint(w, "error: ")
		fmt.Fprintln(w, serr.Message)
	default:
		fmt.Fprintf(w, "%s: ", name)
		errorColor.Fprint(w, "error: ")
		fmt.Fprintln(w, err)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func addCheckCommand(app *kingpin.Application, e *env) {
	cmd := &checkCommand{env: e}
	c := app.Command("check", "Report missing and trailing commas and parse errors.").Action(cmd.run)
	c.Flag("strict", "Treat recovered defects as failures.").BoolVar(&cmd.strict)
	c.Flag("max-depth", "Maximum nesting of objects and arrays (0 for the default).").IntVar(&cmd.maxDepth)
	c.Arg("file", "Input files (default stdin).").StringsVar(&cmd.files)
}
