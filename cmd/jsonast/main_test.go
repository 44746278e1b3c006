// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTest runs the program with args and the given standard input, and
// returns its exit status and output.
func runTest(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--no-color"}, args...), strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func TestCheck(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		code, out, _ := runTest(t, `{"a": [1, 2]}`, "check")
		assert.Equal(t, 0, code)
		assert.Equal(t, "checked 1 input (13 B): 0 defects, 0 failures\n", out)
	})

	t.Run("Defects", func(t *testing.T) {
		code, out, _ := runTest(t, `[1 2,]`, "check")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "<stdin>:1:3: warning: missing comma in array\n")
		assert.Contains(t, out, "<stdin>:1:6: warning: trailing comma in array\n")
		assert.Contains(t, out, "2 defects, 0 failures")
	})

	t.Run("Strict", func(t *testing.T) {
		code, out, _ := runTest(t, `{"a": 1,}`, "check", "--strict")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, `<stdin>:1:8: warning: trailing comma after property "a"`)
	})

	t.Run("Failure", func(t *testing.T) {
		bad := writeFile(t, "bad.json", `{"a" 1}`)
		good := writeFile(t, "good.json", `null`)
		code, out, _ := runTest(t, "", "check", good, bad)
		assert.Equal(t, 1, code)
		assert.Contains(t, out, bad+`:1:6: error: unexpected token: expected ":", got number`)
		assert.Contains(t, out, "checked 2 inputs")
		assert.Contains(t, out, "0 defects, 1 failure\n")
	})

	t.Run("Lexical", func(t *testing.T) {
		code, out, _ := runTest(t, `["\x"]`, "check")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, `error: lexical error: invalid 'x' after escape`)
	})

	t.Run("MaxDepth", func(t *testing.T) {
		code, out, _ := runTest(t, `[[[1]]]`, "check", "--max-depth=2")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "<stdin>:1:3: error: nesting too deep")
	})

	t.Run("MissingFile", func(t *testing.T) {
		code, _, errs := runTest(t, "", "check", filepath.Join(t.TempDir(), "nonesuch.json"))
		assert.Equal(t, 2, code)
		assert.Contains(t, errs, "failed to read input")
	})
}

func TestTokens(t *testing.T) {
	code, out, _ := runTest(t, `[true, "a b"]`, "tokens")
	require.Equal(t, 0, code)

	var got [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		got = append(got, strings.Fields(line))
	}
	assert.Equal(t, [][]string{
		{"[", "1:1-2"},
		{"true", "1:2-6", "true"},
		{",", "1:6-7"},
		{"string", "1:8-13", "a", "b"},
		{"]", "1:13-14"},
	}, got)

	code, out, _ = runTest(t, `[1, ?]`, "tokens")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "<stdin>:1:5: error:")
}

func TestTree(t *testing.T) {
	code, out, _ := runTest(t, `{"a": 1 "b": [null]}`, "tree")
	require.Equal(t, 0, code)
	assert.Equal(t, `Object 1:1-21
  Property "a" 1:2-8 [missing comma]
    Number 1 1:7-8
  Property "b" 1:9-20
    Array 1:14-20
      Null 1:15-19
`, out)

	code, out, _ = runTest(t, `{"a": [true, {"b c": null}]}`, "tree", "--path", "$.a[-1]['b c']")
	require.Equal(t, 0, code)
	assert.Equal(t, "Null 1:22-26\n", out)

	code, out, _ = runTest(t, `{"a": 1}`, "tree", "--path", "$.b")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `<stdin>: error: path $.b: key "b" not found`)

	code, _, errs := runTest(t, `{}`, "tree", "--path", "$..b")
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "invalid --path")

	code, out, _ = runTest(t, `[1] 2`, "tree")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "<stdin>:1:5: error: extra input after value")
}

func TestUsage(t *testing.T) {
	code, _, errs := runTest(t, "")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errs)

	code, out, errs := runTest(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(out, "usage: jsonast"), "usage blocks in:\n%s", out)
	assert.Empty(t, errs)

	code, out, errs = runTest(t, `[1,]`, "check", "--help")
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(out, "usage: jsonast check"), "usage blocks in:\n%s", out)
	assert.NotContains(t, out, "checked")
	assert.Empty(t, errs)

	code, _, errs = runTest(t, "", "check", "--bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "bogus")
}

func TestVerbose(t *testing.T) {
	code, _, errs := runTest(t, `{}`, "--verbose", "check")
	assert.Equal(t, 0, code)
	assert.Contains(t, errs, "level=debug")
	assert.Contains(t, errs, `msg="read input"`)
	assert.Contains(t, errs, "file=<stdin>")
}
