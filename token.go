// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonast

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // number
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindLabel = [...]string{
	Invalid: "invalid token",
	LBrace:  "{",
	RBrace:  "}",
	LSquare: "[",
	RSquare: "]",
	Colon:   ":",
	Comma:   ",",
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
}

// Label returns a plain name for k, such as { or number.
func (k Kind) Label() string {
	if int(k) >= len(kindLabel) {
		return kindLabel[Invalid]
	}
	return kindLabel[k]
}

// String returns the label of k, quoted if k is punctuation, for use in
// messages such as: expected ":", got number.
func (k Kind) String() string {
	if k >= LBrace && k <= Comma {
		return `"` + kindLabel[k] + `"`
	}
	return k.Label()
}

// IsLiteral reports whether k is a kind that carries a value: a string,
// number, or one of the constants true, false, null.
func (k Kind) IsLiteral() bool { return k >= String && k <= Null }

// StartsValue reports whether a token of kind k can begin a JSON value.
func (k Kind) StartsValue() bool { return k == LBrace || k == LSquare || k.IsLiteral() }

// A Token is a single lexical unit of JSON source.
// Tokens are values and are not modified once scanned.
type Token struct {
	Kind Kind

	// Value is the raw text of a literal token. It is empty for punctuation.
	// For a String, it is the text between the quotation marks with escape
	// sequences as written.
	Value string

	Start, End Position
}

// HasValue reports whether t carries a Value.
func (t Token) HasValue() bool { return t.Kind.IsLiteral() }

// Span returns the span of source text covered by t.
func (t Token) Span() Span { return Span{Start: t.Start, End: t.End} }

func (t Token) String() string {
	if t.HasValue() {
		return fmt.Sprintf("%v <%s> %v", t.Kind, t.Value, t.Span())
	}
	return fmt.Sprintf("%v %v", t.Kind, t.Span())
}
