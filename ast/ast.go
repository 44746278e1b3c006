// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a position-annotated syntax tree for JSON values, and a
// lenient parser that constructs syntax trees from JSON source.
//
// The parser tolerates two classes of structural defect, a missing comma
// between elements and a trailing comma before a closing bracket. These are
// recorded on the affected Property or Array and parsing continues. Any other
// deviation from the JSON grammar stops the parse with a Failure.
package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jsonast"
)

// A Node is an element of a JSON syntax tree. The concrete type of a value
// node is one of Object, Array, String, Number, Bool, or Null.
//
// Property also satisfies Node so that traversals can stop at an object
// member, but a Property never appears as an array element, a property value,
// or the root of a tree.
type Node interface {
	// Span reports the source span covered by the node.
	Span() jsonast.Span

	isNode()
}

// Status records whether a Property was followed by a well-formed separator.
type Status byte

const (
	Valid         Status = iota // no defect
	MissingComma                // followed by another element with no comma
	TrailingComma               // followed by a comma and then a closing bracket
)

var statusStr = [...]string{
	Valid:         "valid",
	MissingComma:  "missing comma",
	TrailingComma: "trailing comma",
}

func (s Status) String() string {
	if int(s) < len(statusStr) {
		return statusStr[s]
	}
	return "invalid status"
}

// An Object is a collection of key-value properties.
type Object struct {
	Children   []Property
	Start, End jsonast.Position
}

// Span satisfies the Node interface.
func (o Object) Span() jsonast.Span { return jsonast.Span{Start: o.Start, End: o.End} }

// Len reports the number of properties in o.
func (o Object) Len() int { return len(o.Children) }

// Find returns the first property of o whose decoded key equals key, or nil.
// Escape sequences in the key text are decoded before comparison, so the
// raw spelling of a key does not match unless it decodes to itself.
func (o Object) Find(key string) *Property {
	for i, p := range o.Children {
		if p.Key.Unquote() == key {
			return &o.Children[i]
		}
	}
	return nil
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.Children)) }

// A Property is a single key-value pair belonging to an Object. Its span runs
// from the start of its key to the end of its value.
type Property struct {
	Status     Status
	Key        Identifier
	Value      Node
	Start, End jsonast.Position
}

// Span satisfies the Node interface.
func (p Property) Span() jsonast.Span { return jsonast.Span{Start: p.Start, End: p.End} }

func (p Property) String() string {
	return fmt.Sprintf("Property(key=%q, %v)", p.Key.Raw, p.Status)
}

// An Identifier is the key of a Property. Raw is the key text as written,
// without its quotation marks.
type Identifier struct {
	Raw        string
	Start, End jsonast.Position
}

// Span reports the source span of the key including its quotation marks.
func (id Identifier) Span() jsonast.Span { return jsonast.Span{Start: id.Start, End: id.End} }

// Unquote returns the key with escape sequences decoded. If the key contains
// an incomplete escape, the raw text is returned.
func (id Identifier) Unquote() string { return unquoteOr(id.Raw) }

// An Array is a sequence of values.
type Array struct {
	Children   []Node
	Status     ArrayStatus
	Start, End jsonast.Position
}

// Span satisfies the Node interface.
func (a Array) Span() jsonast.Span { return jsonast.Span{Start: a.Start, End: a.End} }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a.Children) }

func (a Array) String() string {
	return fmt.Sprintf("Array(len=%d, %v)", len(a.Children), a.Status)
}

// ArrayStatus records the separator defects found in an array. An array with
// no errors is valid.
type ArrayStatus struct {
	Errors []ArrayError
}

// Valid reports whether s records no defects.
func (s ArrayStatus) Valid() bool { return len(s.Errors) == 0 }

func (s ArrayStatus) String() string {
	if s.Valid() {
		return "valid"
	}
	return fmt.Sprintf("invalid(%d)", len(s.Errors))
}

// An ArrayError is a single separator defect in an array. For a missing comma
// Pos is the end of the element preceding the gap; for a trailing comma it is
// the start of the closing bracket.
type ArrayError struct {
	Kind Status // MissingComma or TrailingComma
	Pos  jsonast.Position
}

func (e ArrayError) String() string { return fmt.Sprintf("%v at %v", e.Kind, e.Pos) }

type datum struct {
	Raw        string
	Start, End jsonast.Position
}

// Span satisfies the Node interface.
func (d datum) Span() jsonast.Span { return jsonast.Span{Start: d.Start, End: d.End} }

func (datum) isNode() {}

// A String is a string value. Raw is the text between the quotation marks,
// with escape sequences as written.
type String struct{ datum }

// Unquote returns the value of s with escape sequences decoded. If the text
// contains an incomplete escape, the raw text is returned.
func (s String) Unquote() string { return unquoteOr(s.Raw) }

// A Number is a numeric value. Raw is the text of the number as written.
type Number struct{ datum }

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool {
	_, err := strconv.ParseInt(n.Raw, 10, 64)
	return err == nil
}

// Int64 returns the value of n as an integer. It panics if n is not
// representable as an int64.
func (n Number) Int64() int64 {
	v, err := strconv.ParseInt(n.Raw, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of n as a floating-point number. Values out of
// range are reported as ±Inf.
func (n Number) Float64() float64 {
	v, _ := strconv.ParseFloat(n.Raw, 64)
	return v
}

// A Bool is a Boolean constant, true or false.
type Bool struct{ datum }

// Value reports the truth value of b.
func (b Bool) Value() bool { return b.Raw == "true" }

// Null represents the null constant.
type Null struct{ datum }

func (Object) isNode()   {}
func (Property) isNode() {}
func (Array) isNode()    {}

// NewString constructs a String node with the given raw text and span.
// The other leaf constructors are similar.
func NewString(raw string, start, end jsonast.Position) String {
	return String{datum{Raw: raw, Start: start, End: end}}
}

// NewNumber constructs a Number node.
func NewNumber(raw string, start, end jsonast.Position) Number {
	return Number{datum{Raw: raw, Start: start, End: end}}
}

// NewBool constructs a Bool node.
func NewBool(raw string, start, end jsonast.Position) Bool {
	return Bool{datum{Raw: raw, Start: start, End: end}}
}

// NewNull constructs a Null node.
func NewNull(raw string, start, end jsonast.Position) Null {
	return Null{datum{Raw: raw, Start: start, End: end}}
}

func unquoteOr(raw string) string {
	s, err := jsonast.Unquote(raw)
	if err != nil {
		return raw
	}
	return s
}
