// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/creachadair/jsonast"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
)

// tokensCommand prints the tokens of each input.
type tokensCommand struct {
	env   *env
	files []string
}

func (cmd *tokensCommand) run(*kingpin.ParseContext) error {
	ins, err := cmd.env.readInputs(cmd.files)
	if err != nil {
		return err
	}
	failed := false
	for _, in := range ins {
		if len(ins) > 1 {
			color.New(color.Bold).Fprintf(cmd.env.stdout, "%s:\n", in.name)
		}
		if !cmd.printTokens(in) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// printTokens prints the tokens of in, and reports whether the whole input
// was tokenized.
func (cmd *tokensCommand) printTokens(in input) bool {
	s := jsonast.NewScanner(in.text)
	var n int
	for s.Next() == nil {
		tok := s.Token()
		if tok.HasValue() {
			fmt.Fprintf(cmd.env.stdout, "%-8v %-12v %s\n", tok.Kind.Label(), tok.Span(), tok.Value)
		} else {
			fmt.Fprintf(cmd.env.stdout, "%-8v %v\n", tok.Kind.Label(), tok.Span())
		}
		n++
	}
	level.Debug(cmd.env.logger).Log("msg", "scanned tokens", "file", in.name, "tokens", n)
	if err := s.Err(); err != io.EOF {
		printError(cmd.env.stdout, in.name, err)
		return false
	}
	return true
}

func addTokensCommand(app *kingpin.Application, e *env) {
	cmd := &tokensCommand{env: e}
	c := app.Command("tokens", "Print the tokens of each input.").Action(cmd.run)
	c.Arg("file", "Input files (default stdin).").StringsVar(&cmd.files)
}
