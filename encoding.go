// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonast

import (
	"github.com/creachadair/jsonast/internal/escape"

	"go4.org/mem"
)

// Unquote decodes the raw text of a JSON string, as reported in the Value of
// a String token. The raw text must not include the enclosing quotation
// marks. Escape sequences are replaced with their unescaped equivalents, and
// UTF-16 surrogate pairs written as \u escapes are combined.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(raw string) (string, error) {
	dec, err := escape.Unquote(mem.S(raw))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
