// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jsonast inspects JSON source with a lenient parser. It can list
// the tokens of its input, print an outline of the syntax tree, or report
// the missing and trailing commas the parser recovered from.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errFailed is reported by a command whose output already describes the
// failure, and only needs a nonzero exit status.
var errFailed = errors.New("check failed")

// env holds the settings and I/O streams shared by all commands.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	logger         log.Logger

	verbose bool
	noColor bool
}

// exitStatus is the panic value used to stop parsing when kingpin asks to
// terminate, for example after printing help.
type exitStatus int

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, logger: log.NewNopLogger()}

	app := kingpin.New("jsonast", "Inspect JSON source with a lenient parser.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(func(status int) { panic(exitStatus(status)) })
	defer func() {
		if x := recover(); x != nil {
			status, ok := x.(exitStatus)
			if !ok {
				panic(x)
			}
			code = int(status)
		}
	}()
	app.Flag("verbose", "Log debugging detail to stderr.").Short('v').BoolVar(&e.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&e.noColor)
	app.PreAction(e.setup)

	addTokensCommand(app, e)
	addTreeCommand(app, e)
	addCheckCommand(app, e)

	if _, err := app.Parse(args); errors.Is(err, errFailed) {
		return 1
	} else if err != nil {
		fmt.Fprintf(stderr, "jsonast: %v\n", err)
		return 2
	}
	return 0
}

// setup configures logging and color once flags have been parsed.
func (e *env) setup(*kingpin.ParseContext) error {
	allow := level.AllowInfo()
	if e.verbose {
		allow = level.AllowDebug()
	}
	e.logger = level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(e.stderr)), allow)
	if e.noColor {
		color.NoColor = true
	}
	return nil
}

// input is the contents of a single named input.
type input struct {
	name string
	text string
}

// readInputs reads the named files. The name "-", or an empty list of names,
// denotes standard input.
func (e *env) readInputs(names []string) ([]input, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var out []input
	for _, name := range names {
		var data []byte
		var err error
		if name == "-" {
			name = "<stdin>"
			data, err = io.ReadAll(e.stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		level.Debug(e.logger).Log("msg", "read input", "file", name, "bytes", len(data))
		out = append(out, input{name: name, text: string(data)})
	}
	return out, nil
}
