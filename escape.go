// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "fmt"

// Escape applies the scripting-language string-escape rules of
// spec.md §4.1: backslash, double-quote, carriage return and line feed
// get their two-character escapes; any code point at or above 0x80 is
// emitted as \xHH (code points ≤ 0xFF) or \uHHHH (otherwise), with
// uppercase hex digits.
func Escape(s string) string {
	var out []byte
	for _, r := range s {
		switch r {
		case '\\':
			out = append(out, '\\', '\\')
		case '"':
			out = append(out, '\\', '"')
		case '\r':
			out = append(out, '\\', 'r')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			switch {
			case r < 0x80:
				out = append(out, byte(r))
			case r <= 0xFF:
				out = append(out, []byte(fmt.Sprintf(`\x%02X`, r))...)
			default:
				out = append(out, []byte(fmt.Sprintf(`\u%04X`, r))...)
			}
		}
	}
	return string(out)
}

// Quote returns s wrapped in double quotes, with its contents escaped
// by Escape.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// EscapeClassChar escapes a rune for use inside a regular-expression
// character class (spec.md §4.4.18): the class metacharacters that
// would otherwise be misread, plus the general Escape rules above.
func EscapeClassChar(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return `\` + string(r)
	case '\r':
		return `\r`
	case '\n':
		return `\n`
	default:
		if r < 0x80 {
			return string(r)
		}
		if r <= 0xFF {
			return fmt.Sprintf(`\x%02X`, r)
		}
		return fmt.Sprintf(`\u%04X`, r)
	}
}
