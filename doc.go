// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonast implements a lenient JSON tokenizer.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON text held in memory.
// Construct a scanner from a string and call its Next method to iterate over
// the tokens. Next advances to the next input token and returns nil, or
// reports an error:
//
//	s := jsonast.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// has concrete type *jsonast.SyntaxError and reports the position of the
// input that could not be lexed:
//
//	if err := s.Err(); err != io.EOF {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// To scan all the tokens of an input at once, use Tokenize.
//
// # Tokens
//
// Each Token records its Kind, the start and end Position of the source text
// it was derived from, and for literal kinds (string, number, true, false,
// null) the raw text of the value. String values are reported as written,
// without their enclosing quotation marks and with escape sequences left
// undecoded; use Unquote to decode them.
//
// Positions carry a 1-based line, a 1-based column counted in characters, and
// a 0-based byte offset.
//
// # Parsing
//
// The ast subpackage consumes tokens and builds a syntax tree that records
// missing and trailing commas rather than rejecting them.
package jsonast
