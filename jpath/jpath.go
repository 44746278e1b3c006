// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jpath implements a small subset of JSONPath for selecting a single
// node from a syntax tree.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jsonast/ast"
	"github.com/creachadair/jsonast/ast/cursor"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = "[" name "]"
  step = "[" INDEX "]"
  name = WORD
  name = "'" QTEXT "'"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

The recursive, wildcard, slice, filter, and script forms of JSONPath select
multiple nodes, and are rejected.
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", t, err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse is as Parse, but panics on error.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member:
			fmt.Fprint(&buf, ".", s.Name)
		case QName:
			fmt.Fprintf(&buf, "['%s']", s.Name)
		case Index:
			fmt.Fprintf(&buf, "[%d]", s.Index)
		}
	}
	return buf.String()
}

// Path returns the steps of e as a path for cursor.Cursor.Down. The final
// element is nil, so that a path ending in a member resolves to the value of
// that member rather than the property.
func (e Expr) Path() []any {
	out := make([]any, 0, len(e)+1)
	for _, s := range e {
		if s.Op == Index {
			out = append(out, s.Index)
		} else {
			out = append(out, s.Name)
		}
	}
	return append(out, nil)
}

// Find returns the node selected by e from the tree rooted at root.
func (e Expr) Find(root ast.Node) (ast.Node, error) {
	c := cursor.New(root).Down(e.Path()...)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("path %s: %w", e, err)
	}
	return c.Node(), nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "..") {
		return Step{}, s, errors.New("recursive descent is not supported")
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		if strings.HasPrefix(t, "*") {
			return Step{}, s, errors.New("wildcards are not supported")
		}
		m := wordRE.FindStringSubmatch(t)
		if m == nil {
			return Step{}, s, errors.New("invalid .name")
		}
		return Step{Op: Member, Name: m[1]}, t[len(m[0]):], nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var out Step
		if m := indexRE.FindStringSubmatch(t); m != nil {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return Step{}, s, fmt.Errorf("invalid index: %w", err)
			}
			out, t = Step{Op: Index, Index: v}, t[len(m[0]):]
		} else if m := quoteRE.FindStringSubmatch(t); m != nil {
			out, t = Step{Op: QName, Name: m[1]}, t[len(m[0]):]
		} else if m := wordRE.FindStringSubmatch(t); m != nil {
			out, t = Step{Op: Member, Name: m[1]}, t[len(m[0]):]
		} else {
			return Step{}, s, fmt.Errorf("unsupported selector: %q", t)
		}
		u, ok := strings.CutPrefix(t, "]")
		if !ok {
			return Step{}, t, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup by unquoted name
	QName             // member lookup by quoted name
	Index             // array or object index
)

var opText = [...]string{
	Invalid: "invalid",
	Member:  ".",
	QName:   "qname",
	Index:   "index",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}

// A Step is a single step of a path expression.
type Step struct {
	Op    Op
	Name  string // for Member and QName
	Index int    // for Index
}
