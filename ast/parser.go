// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jsonast"
)

// DefaultMaxDepth is the nesting limit for objects and arrays used by a
// Parser whose MaxDepth is zero.
const DefaultMaxDepth = 10000

// Parser carries settings for parsing. The zero value is ready for use.
// A Parser may be used for multiple concurrent parses.
type Parser struct {
	// MaxDepth bounds the nesting of objects and arrays. Input nested more
	// deeply fails with a TooDeep error. If MaxDepth <= 0, DefaultMaxDepth
	// is used.
	MaxDepth int
}

// Parse tokenizes and parses a single JSON value from text using a
// zero-valued Parser.
func Parse(text string) Parsed { return Parser{}.Parse(text) }

// ParseTokens parses a single JSON value from tokens using a zero-valued
// Parser.
func ParseTokens(tokens []jsonast.Token) Parsed { return Parser{}.ParseTokens(tokens) }

// Parse tokenizes and parses a single JSON value from text.
func (p Parser) Parse(text string) Parsed {
	toks, err := jsonast.Tokenize(text)
	if err != nil {
		perr := &ParseError{Kind: Lexical, Message: err.Error(), err: err}
		var serr *jsonast.SyntaxError
		if errors.As(err, &serr) {
			perr.Pos = serr.Pos
			perr.Message = serr.Message
		}
		return &Failure{Errors: []*ParseError{perr}}
	}
	return p.ParseTokens(toks)
}

// ParseTokens parses a single JSON value from tokens. The value must account
// for all the tokens.
func (p Parser) ParseTokens(tokens []jsonast.Token) Parsed {
	if len(tokens) == 0 {
		return &Failure{Errors: []*ParseError{{Kind: Empty, Pos: jsonast.Position{Line: 1, Column: 1}}}}
	}
	ps := &parser{
		cur:      tokenCursor{toks: tokens},
		maxDepth: p.MaxDepth,
	}
	if ps.maxDepth <= 0 {
		ps.maxDepth = DefaultMaxDepth
	}

	root, err := ps.parseValue()
	if err != nil {
		return &Failure{Tokens: tokens, Errors: []*ParseError{err}}
	}
	if tok, ok := ps.cur.peek(); ok {
		return &Failure{Tokens: tokens, Tree: root, Errors: []*ParseError{{
			Kind:    ExtraInput,
			Pos:     tok.Start,
			Message: fmt.Sprintf("unexpected %v", tok.Kind),
		}}}
	}
	return &Success{Tree: root}
}

// A tokenCursor is a forward-only view of a token sequence.
type tokenCursor struct {
	toks []jsonast.Token
	pos  int
}

// peek returns the next unconsumed token, if there is one.
func (c *tokenCursor) peek() (jsonast.Token, bool) { return c.peekAt(0) }

// peekAt returns the token i positions past the next unconsumed token.
func (c *tokenCursor) peekAt(i int) (jsonast.Token, bool) {
	if c.pos+i < len(c.toks) {
		return c.toks[c.pos+i], true
	}
	return jsonast.Token{}, false
}

// next consumes and returns the next token, if there is one.
func (c *tokenCursor) next() (jsonast.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// end returns the end of the last token in the sequence.
func (c *tokenCursor) end() jsonast.Position { return c.toks[len(c.toks)-1].End }

// parser holds the state of a single parse.
type parser struct {
	cur      tokenCursor
	depth    int
	maxDepth int
}

// parseValue dispatches on the kind of the next token to parse an object, an
// array, or a literal value.
func (p *parser) parseValue() (Node, *ParseError) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.eof("value")
	}
	switch tok.Kind {
	case jsonast.LBrace, jsonast.LSquare:
		if p.depth >= p.maxDepth {
			return nil, &ParseError{
				Kind:    TooDeep,
				Pos:     tok.Start,
				Message: fmt.Sprintf("more than %d levels", p.maxDepth),
			}
		}
		p.depth++
		defer func() { p.depth-- }()
		if tok.Kind == jsonast.LBrace {
			return p.parseObject()
		}
		return p.parseArray()

	case jsonast.String, jsonast.Number, jsonast.True, jsonast.False, jsonast.Null:
		return p.parseLiteral()
	}
	return nil, p.unexpected(tok, "value")
}

type objectState byte

const (
	objStart objectState = iota
	objOpen
	objProperty
	objComma
	objTrailingComma
)

// parseObject consumes an object and its closing brace.
func (p *parser) parseObject() (Node, *ParseError) {
	var obj Object
	state := objStart
	for {
		tok, ok := p.cur.peek()
		if !ok {
			return nil, p.eof(`"}"`)
		}

		switch state {
		case objStart:
			if tok.Kind != jsonast.LBrace {
				return nil, p.unexpected(tok, jsonast.LBrace)
			}
			p.cur.next()
			obj.Start = tok.Start
			state = objOpen

		case objOpen:
			if tok.Kind == jsonast.RBrace {
				return p.closeObject(obj), nil
			}
			prop, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			obj.Children = append(obj.Children, prop)
			state = objProperty

		case objProperty:
			switch tok.Kind {
			case jsonast.Comma:
				// Look past the comma to decide whether it is a trailing comma,
				// before the closing brace is consumed.
				if next, ok := p.cur.peekAt(1); ok && next.Kind == jsonast.RBrace {
					state = objTrailingComma
				} else {
					state = objComma
				}
				p.cur.next()

			case jsonast.RBrace:
				return p.closeObject(obj), nil

			case jsonast.String:
				// A key where a separator belongs: the comma is missing.
				// Parse the next property without consuming anything.
				obj.Children = withLastStatus(obj.Children, MissingComma)
				state = objComma

			default:
				return nil, p.unexpected(tok, jsonast.Comma, jsonast.RBrace)
			}

		case objComma:
			prop, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			obj.Children = append(obj.Children, prop)
			state = objProperty

		case objTrailingComma:
			if tok.Kind != jsonast.RBrace {
				return nil, p.unexpected(tok, jsonast.RBrace)
			}
			obj.Children = withLastStatus(obj.Children, TrailingComma)
			return p.closeObject(obj), nil
		}
	}
}

// closeObject consumes the closing brace of obj.
func (p *parser) closeObject(obj Object) Object {
	tok, _ := p.cur.next()
	obj.End = tok.End
	return obj
}

// withLastStatus replaces the last element of ps with a copy having status s.
func withLastStatus(ps []Property, s Status) []Property {
	last := ps[len(ps)-1]
	last.Status = s
	return append(ps[:len(ps)-1], last)
}

type propertyState byte

const (
	propStart propertyState = iota
	propKey
	propColon
)

// parseProperty consumes a single "key": value pair.
func (p *parser) parseProperty() (Property, *ParseError) {
	var prop Property
	state := propStart
	for {
		switch state {
		case propStart:
			tok, ok := p.cur.next()
			if !ok {
				return prop, p.eof("property key")
			} else if tok.Kind != jsonast.String {
				return prop, p.unexpected(tok, "property key")
			}
			prop.Key = Identifier{Raw: tok.Value, Start: tok.Start, End: tok.End}
			prop.Start = tok.Start
			state = propKey

		case propKey:
			tok, ok := p.cur.next()
			if !ok {
				return prop, p.eof(jsonast.Colon)
			} else if tok.Kind != jsonast.Colon {
				return prop, p.unexpected(tok, jsonast.Colon)
			}
			state = propColon

		case propColon:
			v, err := p.parseValue()
			if err != nil {
				return prop, err
			}
			prop.Value = v
			prop.End = v.Span().End
			return prop, nil
		}
	}
}

type arrayState byte

const (
	arrStart arrayState = iota
	arrOpen
	arrValue
	arrComma
)

// parseArray consumes an array and its closing bracket.
func (p *parser) parseArray() (Node, *ParseError) {
	var arr Array
	var errs []ArrayError
	state := arrStart
	for {
		tok, ok := p.cur.peek()
		if !ok {
			return nil, p.eof(`"]"`)
		}

		switch state {
		case arrStart:
			if tok.Kind != jsonast.LSquare {
				return nil, p.unexpected(tok, jsonast.LSquare)
			}
			p.cur.next()
			arr.Start = tok.Start
			state = arrOpen

		case arrOpen:
			if tok.Kind == jsonast.RSquare {
				return p.closeArray(arr, errs), nil
			}
			if err := p.parseElement(&arr); err != nil {
				return nil, err
			}
			state = arrValue

		case arrValue:
			switch {
			case tok.Kind == jsonast.RSquare:
				return p.closeArray(arr, errs), nil

			case tok.Kind == jsonast.Comma:
				p.cur.next()
				state = arrComma

			case tok.Kind.StartsValue():
				// A value where a separator belongs: the comma is missing.
				prev := arr.Children[len(arr.Children)-1]
				errs = append(errs, ArrayError{Kind: MissingComma, Pos: prev.Span().End})
				if err := p.parseElement(&arr); err != nil {
					return nil, err
				}

			default:
				return nil, p.unexpected(tok, jsonast.Comma, jsonast.RSquare)
			}

		case arrComma:
			if tok.Kind == jsonast.RSquare {
				errs = append(errs, ArrayError{Kind: TrailingComma, Pos: tok.Start})
				return p.closeArray(arr, errs), nil
			}
			if err := p.parseElement(&arr); err != nil {
				return nil, err
			}
			state = arrValue
		}
	}
}

// parseElement parses a value and appends it to the elements of arr.
func (p *parser) parseElement(arr *Array) *ParseError {
	v, err := p.parseValue()
	if err != nil {
		return err
	}
	arr.Children = append(arr.Children, v)
	return nil
}

// closeArray consumes the closing bracket of arr.
func (p *parser) closeArray(arr Array, errs []ArrayError) Array {
	tok, _ := p.cur.next()
	arr.End = tok.End
	arr.Status = ArrayStatus{Errors: errs}
	return arr
}

// parseLiteral consumes a single string, number, or constant token.
func (p *parser) parseLiteral() (Node, *ParseError) {
	tok, ok := p.cur.next()
	if !ok {
		return nil, p.eof("value")
	}
	switch tok.Kind {
	case jsonast.String:
		return NewString(tok.Value, tok.Start, tok.End), nil
	case jsonast.Number:
		return NewNumber(tok.Value, tok.Start, tok.End), nil
	case jsonast.True, jsonast.False:
		return NewBool(tok.Value, tok.Start, tok.End), nil
	case jsonast.Null:
		return NewNull(tok.Value, tok.Start, tok.End), nil
	}
	return nil, p.unexpected(tok, "value")
}

// unexpected reports that tok is not one of the wanted alternatives, which
// may be token kinds or descriptive labels.
func (p *parser) unexpected(tok jsonast.Token, want ...any) *ParseError {
	return &ParseError{
		Kind:    Unexpected,
		Pos:     tok.Start,
		Message: tokLabel(want, tok.Kind),
	}
}

func (p *parser) eof(want ...any) *ParseError {
	return &ParseError{
		Kind:    UnexpectedEOF,
		Pos:     p.cur.end(),
		Message: tokLabel(want, "end of input"),
	}
}

// tokLabel makes a human-readable summary string for the given alternatives.
func tokLabel(want []any, got any) string {
	if len(want) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(want) == 1 {
		exp = fmt.Sprint(want[0])
	} else {
		last := len(want) - 1
		ss := make([]string, last)
		for i, w := range want[:last] {
			ss[i] = fmt.Sprint(w)
		}
		exp = strings.Join(ss, ", ") + " or " + fmt.Sprint(want[last])
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
