// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"cmp"
	"fmt"
	"slices"
)

// Walk traverses the tree rooted at n in depth-first order. It calls f for
// each node; if f returns false, the children of that node are skipped.
// The properties of an object are visited before their values.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch t := n.(type) {
	case Object:
		for _, p := range t.Children {
			Walk(p, f)
		}
	case Property:
		Walk(t.Value, f)
	case Array:
		for _, v := range t.Children {
			Walk(v, f)
		}
	}
}

// Diagnostics returns the separator defects recorded in the tree rooted at n,
// in order of their position in the source. Each error is recoverable, and
// has kind MissingCommaError or TrailingCommaError.
//
// For a property, the reported position is the end of the property's value.
// For an array, it is the position recorded in the ArrayError.
func Diagnostics(n Node) []*ParseError {
	var out []*ParseError
	Walk(n, func(n Node) bool {
		switch t := n.(type) {
		case Property:
			if t.Status != Valid {
				out = append(out, &ParseError{
					Kind:    statusKind(t.Status),
					Pos:     t.End,
					Message: fmt.Sprintf("after property %q", t.Key.Raw),
				})
			}
		case Array:
			for _, e := range t.Status.Errors {
				out = append(out, &ParseError{
					Kind:    statusKind(e.Kind),
					Pos:     e.Pos,
					Message: "in array",
				})
			}
		}
		return true
	})
	slices.SortStableFunc(out, func(a, b *ParseError) int {
		return cmp.Compare(a.Pos.Index, b.Pos.Index)
	})
	return out
}

func statusKind(s Status) ErrorKind {
	switch s {
	case MissingComma:
		return MissingCommaError
	case TrailingComma:
		return TrailingCommaError
	}
	return UnknownError
}
