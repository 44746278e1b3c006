// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor navigates the syntax tree produced by the ast package.
//
// A Cursor starts at an origin node and descends one step at a time, keeping
// the nodes it passed through so that it can later move back up:
//
//	c := cursor.New(tree).Down("items", 0, "name")
//	if err := c.Err(); err != nil {
//	   log.Fatalf("Lookup failed: %v", err)
//	}
//	prop := c.Node().(ast.Property)
package cursor

import (
	"fmt"

	"github.com/creachadair/jsonast/ast"
)

// Path descends from n along path and returns the node it reaches, which
// must have type T. The steps of path are interpreted as for Cursor.Down.
func Path[T ast.Node](n ast.Node, path ...any) (T, error) {
	var zero T
	c := New(n).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	v, ok := c.Node().(T)
	if !ok {
		return zero, fmt.Errorf("path ends at %T, not %T", c.Node(), zero)
	}
	return v, nil
}

// A Cursor records a position in a syntax tree as the sequence of nodes
// leading to it from an origin.
type Cursor struct {
	origin ast.Node
	trail  []ast.Node // nodes visited below origin, innermost last
	err    error
}

// New returns a Cursor positioned at origin.
func New(origin ast.Node) *Cursor { return &Cursor{origin: origin} }

// Origin returns the node at which c was created.
func (c *Cursor) Origin() ast.Node { return c.origin }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.trail) == 0 }

// Node returns the node at the current position of c.
func (c *Cursor) Node() ast.Node {
	if n := len(c.trail); n > 0 {
		return c.trail[n-1]
	}
	return c.origin
}

// Path returns the nodes from the origin to the current position, inclusive.
func (c *Cursor) Path() []ast.Node {
	return append([]ast.Node{c.origin}, c.trail...)
}

// Err returns the error from the last call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position. At the origin it has
// no effect. It returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.trail); n > 0 {
		c.trail = c.trail[:n-1]
	}
	return c
}

// Reset moves c back to its origin and clears its error.
func (c *Cursor) Reset() { c.trail = c.trail[:0]; c.err = nil }

// Down descends from the current position of c, one step for each element
// of path, and returns c. If a step cannot be taken, c stays at the last
// node reached and Err reports why.
//
// Each step must be one of:
//
//   - A string, to select the first property of an Object whose decoded key
//     equals it. The Property itself becomes the current node.
//   - An int, to select a child of an Array or an Object by position.
//     Negative values count from the end, so -1 is the last child.
//   - A func(ast.Node) (ast.Node, error), whose result becomes the current
//     node. An error from the function stops the descent.
//   - nil, which takes no step of its own.
//
// When the current node is a Property, the next step applies to its value.
// A trailing nil therefore moves from a property to its value.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Node()
	for _, step := range path {
		if p, ok := cur.(ast.Property); ok {
			cur = c.push(p.Value)
		}
		next, err := c.step(cur, step)
		if err != nil {
			c.err = err
			return c
		} else if next != nil {
			cur = c.push(next)
		}
	}
	return c
}

// step resolves a single path element relative to n. It returns a nil node
// and no error for a step that does not move.
func (c *Cursor) step(n ast.Node, step any) (ast.Node, error) {
	switch t := step.(type) {
	case nil:
		return nil, nil
	case string:
		obj, ok := n.(ast.Object)
		if !ok {
			return nil, fmt.Errorf("key %q: %T is not an object", t, n)
		}
		p := obj.Find(t)
		if p == nil {
			return nil, fmt.Errorf("key %q not found", t)
		}
		return *p, nil
	case int:
		switch e := n.(type) {
		case ast.Array:
			if i, ok := childIndex(e.Len(), t); ok {
				return e.Children[i], nil
			}
			return nil, fmt.Errorf("index %d out of range for array of length %d", t, e.Len())
		case ast.Object:
			if i, ok := childIndex(e.Len(), t); ok {
				return e.Children[i], nil
			}
			return nil, fmt.Errorf("index %d out of range for object of length %d", t, e.Len())
		}
		return nil, fmt.Errorf("index %d: %T has no children", t, n)
	case func(ast.Node) (ast.Node, error):
		return t(n)
	}
	return nil, fmt.Errorf("unsupported path step of type %T", step)
}

func (c *Cursor) push(n ast.Node) ast.Node { c.trail = append(c.trail, n); return n }

// childIndex maps i to an offset among n children, counting negative values
// from the end, and reports whether the result is in range.
func childIndex(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
