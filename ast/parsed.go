// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jsonast"
)

// Parsed is the result of a parse. Its concrete type is either *Success or
// *Failure.
type Parsed interface {
	// Err returns nil for a Success, or the error that ended a Failure.
	Err() error

	isParsed()
}

// Success is the result of parsing a complete value. Separator defects the
// parser recovered from are recorded in the tree; see Diagnostics.
type Success struct {
	Tree Node
}

// Err satisfies the Parsed interface. It always returns nil.
func (*Success) Err() error { return nil }

// Failure is the result of a parse that could not produce a value.
type Failure struct {
	// Tokens are the tokens scanned from the input. This is nil if the input
	// could not be tokenized.
	Tokens []jsonast.Token

	// Tree is nil, except when a complete value was followed by extra input.
	Tree Node

	// Errors holds the error that ended the parse.
	Errors []*ParseError
}

// Err satisfies the Parsed interface.
func (f *Failure) Err() error {
	if len(f.Errors) == 0 {
		return &ParseError{Kind: Unexpected, Message: "parse failed"}
	}
	return f.Errors[0]
}

func (*Success) isParsed() {}
func (*Failure) isParsed() {}

// ErrorKind classifies a ParseError.
type ErrorKind byte

// Constants defining the valid ErrorKind values. MissingComma and
// TrailingComma are recoverable, and are reported only by Diagnostics.
const (
	UnknownError       ErrorKind = iota
	MissingCommaError            // elements not separated by a comma
	TrailingCommaError           // comma before a closing bracket
	Lexical                      // input could not be tokenized
	Unexpected                   // token not allowed by the grammar here
	UnexpectedEOF                // input ended inside a value
	ExtraInput                   // tokens after a complete value
	TooDeep                      // nesting exceeds the parser limit
	Empty                        // no tokens in the input
)

var kindStr = [...]string{
	UnknownError:       "unknown error",
	MissingCommaError:  "missing comma",
	TrailingCommaError: "trailing comma",
	Lexical:            "lexical error",
	Unexpected:         "unexpected token",
	UnexpectedEOF:      "unexpected end of input",
	ExtraInput:         "extra input after value",
	TooDeep:            "nesting too deep",
	Empty:              "empty input",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return kindStr[UnknownError]
}

// Recoverable reports whether k is a defect the parser records in the tree
// rather than failing.
func (k ErrorKind) Recoverable() bool { return k == MissingCommaError || k == TrailingCommaError }

// ParseError describes a parse error or a recovered defect, and its location.
type ParseError struct {
	Kind    ErrorKind
	Pos     jsonast.Position
	Message string

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("at %s: %v", e.Pos, e.Kind)
	}
	return fmt.Sprintf("at %s: %v: %s", e.Pos, e.Kind, e.Message)
}

// Unwrap supports error wrapping. For a Lexical error it returns the
// underlying *jsonast.SyntaxError.
func (e *ParseError) Unwrap() error { return e.err }
