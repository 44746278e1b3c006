// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpath_test

import (
	"fmt"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/creachadair/jsonast/ast"
	"github.com/creachadair/jsonast/jpath"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"$", []any{nil}},
		{"$.store.book", []any{"store", "book", nil}},
		{"$.store.book[2]", []any{"store", "book", 2, nil}},
		{"$.book[-1].title", []any{"book", -1, "title", nil}},
		{"$['apple sauce'].pearPlum['cherry apple']", []any{"apple sauce", "pearPlum", "cherry apple", nil}},
		{"$[0][1]", []any{0, 1, nil}},
	}
	for _, test := range tests {
		e, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: %v", test.input, err)
			continue
		}
		if got := e.String(); got != test.input {
			t.Errorf("Parse %q:\n got %q\nwant %q", test.input, got, test.input)
		}
		if diff := cmp.Diff(test.want, e.Path()); diff != "" {
			t.Errorf("Path %q (-want, +got):\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"store",
		"$..author",
		"$.store.*",
		"$.book[:2]",
		"$.book[?(@.isbn)]",
		"$.book[(@.length-1)]",
		"$.book[0,1]",
		"$.book[1",
		"$.",
	}
	for _, input := range tests {
		if e, err := jpath.Parse(input); err == nil {
			t.Errorf("Parse %q: got %v, wanted error", input, e)
		} else {
			t.Logf("Parse %q: got expected error: %v", input, err)
		}
	}
	mtest.MustPanic(t, func() { jpath.MustParse("$..x") })
}

func TestFind(t *testing.T) {
	res := ast.Parse(`{"store": {"book": [{"title": "A"}, {"title": "B", "x y": 3}]}}`)
	if err := res.Err(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := res.(*ast.Success).Tree

	tests := []struct {
		path string
		want string // raw text of the result, or "" for an error
	}{
		{"$.store.book[0].title", "A"},
		{"$.store.book[-1]['x y']", "3"},
		{"$.store.book[1][0]", "B"},
		{"$.store.book[2]", ""},
		{"$.store.nonesuch", ""},
		{"$.store.book.title", ""},
	}
	for _, tc := range tests {
		n, err := jpath.MustParse(tc.path).Find(root)
		if tc.want == "" {
			if err == nil {
				t.Errorf("Find %q: got %v, wanted error", tc.path, n)
			}
			continue
		} else if err != nil {
			t.Errorf("Find %q: unexpected error: %v", tc.path, err)
			continue
		}
		var got string
		switch v := n.(type) {
		case ast.String:
			got = v.Raw
		case ast.Number:
			got = v.Raw
		default:
			t.Errorf("Find %q: got %T, want a literal", tc.path, n)
		}
		if got != tc.want {
			t.Errorf("Find %q: got %q, want %q", tc.path, got, tc.want)
		}
	}
}

// Paths with no negative indices should select the same text that
// jsonparser finds for the equivalent key path.
func TestFindJSONParser(t *testing.T) {
	const input = `{
  "store": {
    "book": [
      {"title": "Moby Dick", "price": 8.99, "tags": ["sea", "whale"]},
      {"title": "A \"quoted\" title", "price": 12, "isbn": "0-553-21311-3"}
    ],
    "open hours": {"mon": "9-5"}
  }
}`
	root := ast.Parse(input).(*ast.Success).Tree

	tests := []string{
		"$.store.book[0].title",
		"$.store.book[0].price",
		"$.store.book[0].tags[1]",
		"$.store.book[1].title",
		"$.store.book[1].price",
		"$.store.book[1]['isbn']",
		"$.store['open hours'].mon",
	}
	for _, path := range tests {
		e := jpath.MustParse(path)
		var keys []string
		for _, s := range e {
			if s.Op == jpath.Index {
				keys = append(keys, fmt.Sprintf("[%d]", s.Index))
			} else {
				keys = append(keys, s.Name)
			}
		}
		want, _, _, err := jsonparser.Get([]byte(input), keys...)
		if err != nil {
			t.Fatalf("jsonparser.Get %q: %v", keys, err)
		}

		n, err := e.Find(root)
		if err != nil {
			t.Errorf("Find %q: unexpected error: %v", path, err)
			continue
		}
		var got string
		switch v := n.(type) {
		case ast.String:
			got = v.Raw
		case ast.Number:
			got = v.Raw
		}
		if got != string(want) {
			t.Errorf("Find %q: got %q, jsonparser found %q", path, got, want)
		}
	}
}
