// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonast

import (
	"fmt"
	"io"
	"unicode/utf8"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from JSON source text. Each call to Next
// advances the scanner to the next token, or reports an error.
//
// At each position the scanner tries, in order, whitespace, punctuation, the
// constants true, false, and null, strings, and numbers. The first of these
// that matches consumes its text. If none matches, scanning stops with a
// *SyntaxError and all further calls to Next report the same error.
type Scanner struct {
	src mem.RO
	cur Position // location of the next unread byte
	tok Token
	err error
}

// NewScanner constructs a new lexical scanner that consumes text.
func NewScanner(text string) *Scanner {
	return &Scanner{src: mem.S(text), cur: Position{Line: 1, Column: 1}}
}

// Tokenize scans all the tokens of text. In case of error, it returns the
// tokens scanned before the error, along with a *SyntaxError.
func Tokenize(text string) ([]Token, error) {
	var out []Token
	s := NewScanner(text)
	for {
		err := s.Next()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}
		out = append(out, s.Token())
	}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.tok = Token{}
	if s.err != nil {
		return s.err
	}
	for s.cur.Index < s.src.Len() {
		if s.skipSpace() {
			continue
		}

		start := s.cur
		rest := s.src.SliceFrom(start.Index)
		kind, n, err := s.scanToken(rest)
		if err != nil {
			return s.setErr(err)
		}
		tok := Token{Kind: kind, Start: start}
		switch kind {
		case String:
			tok.Value = rest.Slice(1, n-1).StringCopy()
		case Number, True, False, Null:
			tok.Value = rest.SliceTo(n).StringCopy()
		}
		s.cur.Index += n
		s.cur.Column += runeCount(rest.SliceTo(n))
		tok.End = s.cur
		s.tok = tok
		return nil
	}
	return s.setErr(io.EOF)
}

// Token returns the current token. It is the zero Token if the most recent
// call to Next reported an error.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Pos returns the location of the next unread input.
func (s *Scanner) Pos() Position { return s.cur }

// skipSpace consumes a single whitespace character, if one is next, and
// reports whether it did so.
func (s *Scanner) skipSpace() bool {
	switch s.src.At(s.cur.Index) {
	case ' ', '\t':
		s.cur.Index++
		s.cur.Column++
	case '\n':
		s.cur.Index++
		s.cur.Line++
		s.cur.Column = 1
	case '\r':
		// A CR counts as a line break, and absorbs an LF that follows it.
		s.cur.Index++
		if s.cur.Index < s.src.Len() && s.src.At(s.cur.Index) == '\n' {
			s.cur.Index++
		}
		s.cur.Line++
		s.cur.Column++
	default:
		return false
	}
	return true
}

// scanToken matches a single token at the front of rest, and returns its kind
// and length in bytes.
func (s *Scanner) scanToken(rest mem.RO) (Kind, int, error) {
	ch := rest.At(0)
	if k, ok := punct[ch]; ok {
		return k, 1, nil
	}
	for _, kw := range keywords {
		if mem.HasPrefix(rest, kw.text) {
			return kw.kind, kw.text.Len(), nil
		}
	}
	if ch == '"' {
		n, err := s.scanString(rest)
		return String, n, err
	}
	if ch == '-' || isDigit(ch) {
		n, err := s.scanNumber(rest)
		return Number, n, err
	}
	r, _ := mem.DecodeRune(rest)
	return Invalid, 0, s.failf(0, "unexpected %q", r)
}

var punct = map[byte]Kind{
	'{': LBrace, '}': RBrace,
	'[': LSquare, ']': RSquare,
	':': Colon, ',': Comma,
}

var keywords = []struct {
	text mem.RO
	kind Kind
}{
	{mem.S("true"), True},
	{mem.S("false"), False},
	{mem.S("null"), Null},
}

type stringState byte

const (
	strStart stringState = iota
	strBody
	strEscape
)

// scanString returns the length of the quoted string at the front of rest,
// including both quotation marks.
func (s *Scanner) scanString(rest mem.RO) (int, error) {
	state := strStart
	i := 0
	for i < rest.Len() {
		ch := rest.At(i)
		switch state {
		case strStart:
			if ch != '"' {
				return 0, s.failf(i, "want quotation mark, got %q", ch)
			}
			state = strBody
			i++

		case strBody:
			switch {
			case ch == '"':
				return i + 1, nil
			case ch == '\\':
				state = strEscape
				i++
			case ch < ' ':
				return 0, s.failf(i, "unescaped control %q in string", ch)
			case ch < utf8.RuneSelf:
				i++
			default:
				// Step over a complete multi-byte sequence.
				_, n := mem.DecodeRune(rest.SliceFrom(i))
				i += n
			}

		case strEscape:
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				i++
				for j := 0; j < 4; j, i = j+1, i+1 {
					if i >= rest.Len() {
						return 0, s.failf(i, "incomplete Unicode escape")
					} else if !isHexDigit(rest.At(i)) {
						return 0, s.failf(i, "invalid Unicode escape: not a hex digit: %q", rest.At(i))
					}
				}
			default:
				r, _ := mem.DecodeRune(rest.SliceFrom(i))
				return 0, s.failf(i, "invalid %q after escape", r)
			}
			state = strBody
		}
	}
	return 0, s.failf(i, "unterminated string")
}

type numberState byte

const (
	numStart numberState = iota
	numMinus
	numZero
	numDigit
	numPoint
	numFraction
	numExp
	numExpDigit
)

// scanNumber returns the length of the longest prefix of rest that is a
// valid JSON number. The scan stops at the first byte that cannot extend the
// number, so that for example "01" scans as "0" and leaves "1" for the next
// token, and "1.x" scans as "1".
func (s *Scanner) scanNumber(rest mem.RO) (int, error) {
	state := numStart
	valid := 0 // length of the longest valid prefix seen so far

scan:
	for i := 0; i < rest.Len(); i++ {
		ch := rest.At(i)
		switch state {
		case numStart, numMinus:
			switch {
			case ch == '-' && state == numStart:
				state = numMinus
			case ch == '0':
				valid, state = i+1, numZero
			case '1' <= ch && ch <= '9':
				valid, state = i+1, numDigit
			default:
				break scan
			}

		case numZero:
			switch ch {
			case '.':
				state = numPoint
			case 'e', 'E':
				state = numExp
			default:
				break scan
			}

		case numDigit:
			switch {
			case isDigit(ch):
				valid = i + 1
			case ch == '.':
				state = numPoint
			case ch == 'e' || ch == 'E':
				state = numExp
			default:
				break scan
			}

		case numPoint:
			if !isDigit(ch) {
				break scan
			}
			valid, state = i+1, numFraction

		case numFraction:
			switch {
			case isDigit(ch):
				valid = i + 1
			case ch == 'e' || ch == 'E':
				state = numExp
			default:
				break scan
			}

		case numExp:
			switch {
			case ch == '+' || ch == '-':
				state = numExpDigit
			case isDigit(ch):
				valid, state = i+1, numExpDigit
			default:
				break scan
			}

		case numExpDigit:
			if !isDigit(ch) {
				break scan
			}
			valid = i + 1
		}
	}
	if valid == 0 {
		return 0, s.failf(1, "want digit after %q", '-')
	}
	return valid, nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

// failf returns a *SyntaxError located off bytes past the current position.
// The offset must not cross a line break.
func (s *Scanner) failf(off int, msg string, args ...any) error {
	pos := s.cur
	pos.Index += off
	pos.Column += runeCount(s.src.Slice(s.cur.Index, min(pos.Index, s.src.Len())))
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(msg, args...)}
}

// SyntaxError is the concrete type of errors reported by the scanner.
type SyntaxError struct {
	Pos     Position
	Message string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}

func runeCount(m mem.RO) int {
	var nr int
	for m.Len() != 0 {
		_, n := mem.DecodeRune(m)
		if n == 0 {
			n = 1
		}
		m = m.SliceFrom(n)
		nr++
	}
	return nr
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
