// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/creachadair/jsonast/ast"
	"github.com/creachadair/jsonast/jpath"
	"github.com/fatih/color"
)

// treeCommand prints an outline of the syntax tree of each input.
type treeCommand struct {
	env      *env
	files    []string
	maxDepth int
	path     string
}

func (cmd *treeCommand) run(*kingpin.ParseContext) error {
	expr, err := jpath.Parse(cmd.path)
	if err != nil {
		return fmt.Errorf("invalid --path: %w", err)
	}
	ins, err := cmd.env.readInputs(cmd.files)
	if err != nil {
		return err
	}
	p := ast.Parser{MaxDepth: cmd.maxDepth}
	failed := false
	for _, in := range ins {
		if len(ins) > 1 {
			color.New(color.Bold).Fprintf(cmd.env.stdout, "%s:\n", in.name)
		}
		res := p.Parse(in.text)
		switch t := res.(type) {
		case *ast.Success:
			n, err := expr.Find(t.Tree)
			if err != nil {
				failed = true
				printError(cmd.env.stdout, in.name, err)
				continue
			}
			printTree(cmd.env.stdout, n, 0)
		case *ast.Failure:
			failed = true
			for _, perr := range t.Errors {
				printError(cmd.env.stdout, in.name, perr)
			}
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

var defectColor = color.New(color.FgYellow)

// printTree writes an indented outline of n to w.
func printTree(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case ast.Object:
		fmt.Fprintf(w, "%sObject %v\n", indent, t.Span())
		for _, p := range t.Children {
			printTree(w, p, depth+1)
		}
	case ast.Property:
		fmt.Fprintf(w, "%sProperty %q %v", indent, t.Key.Raw, t.Span())
		if t.Status != ast.Valid {
			defectColor.Fprintf(w, " [%v]", t.Status)
		}
		fmt.Fprintln(w)
		printTree(w, t.Value, depth+1)
	case ast.Array:
		fmt.Fprintf(w, "%sArray %v", indent, t.Span())
		for _, e := range t.Status.Errors {
			defectColor.Fprintf(w, " [%v]", e)
		}
		fmt.Fprintln(w)
		for _, v := range t.Children {
			printTree(w, v, depth+1)
		}
	case ast.String:
		fmt.Fprintf(w, "%sString %q %v\n", indent, t.Raw, t.Span())
	case ast.Number:
		fmt.Fprintf(w, "%sNumber %s %v\n", indent, t.Raw, t.Span())
	case ast.Bool:
		fmt.Fprintf(w, "%sBool %s %v\n", indent, t.Raw, t.Span())
	case ast.Null:
		fmt.Fprintf(w, "%sNull %v\n", indent, t.Span())
	}
}

func addTreeCommand(app *kingpin.Application, e *env) {
	cmd := &treeCommand{env: e}
	c := app.Command("tree", "Print the syntax tree of each input.").Action(cmd.run)
	c.Flag("max-depth", "Maximum nesting of objects and arrays (0 for the default).").IntVar(&cmd.maxDepth)
	c.Flag("path", "Print only the subtree selected by this path, for example $.items[0].name.").
		Default("$").StringVar(&cmd.path)
	c.Arg("file", "Input files (default stdin).").StringsVar(&cmd.files)
}
