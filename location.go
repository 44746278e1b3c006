// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonast

import "fmt"

// A Position describes a single location in source text.
type Position struct {
	Line   int // line number, 1-based
	Column int // character offset of column in line, 1-based
	Index  int // byte offset from the start of input, 0-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// A Span describes a contiguous span of source text.
// The End position is exclusive.
type Span struct {
	Start, End Position
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End.Index - s.Start.Index }

// Contains reports whether s covers all of o.
func (s Span) Contains(o Span) bool {
	return s.Start.Index <= o.Start.Index && o.End.Index <= s.End.Index
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
