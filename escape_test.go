// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc", "abc"},
		{`a\b`, `a\\b`},
		{`a"b`, `a\"b`},
		{"a\rb", `a\rb`},
		{"a\nb", `a\nb`},
		{"aéb", `a\xE9b`},
		{"a b", "a\\u2028b"},
	}
	for _, c := range tests {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestQuote(t *testing.T) {
	if got, want := Quote(`a"b`), `"a\"b"`; got != want {
		t.Errorf("Quote=%q, want %q", got, want)
	}
}

func TestEscapeClassChar(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'a', "a"},
		{']', `\]`},
		{'^', `\^`},
		{'-', `\-`},
		{'\\', `\\`},
		{'\n', `\n`},
		{0xe9, `\xE9`},
	}
	for _, c := range tests {
		if got := EscapeClassChar(c.in); got != c.want {
			t.Errorf("EscapeClassChar(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}
