// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"testing"

	"github.com/eaburns/pretty"
)

func TestFormatJoinsPartsWithNewline(t *testing.T) {
	got, err := Format(nil, "a", "b")
	if err != nil {
		t.Fatalf("Format failed: %s", err)
	}
	want := "a\nb"
	if got != want {
		t.Errorf("Format(nil, \"a\", \"b\")=%s, want %s", pretty.String(got), pretty.String(want))
	}
}

func TestFormatInterpolatesVariable(t *testing.T) {
	got, err := Format(Vars{"x": "hello"}, "a ${x} b")
	if err != nil {
		t.Fatalf("Format failed: %s", err)
	}
	want := "a hello b"
	if got != want {
		t.Errorf("got %s, want %s", pretty.String(got), pretty.String(want))
	}
}

func TestFormatStringFilterQuotesAndEscapes(t *testing.T) {
	got, err := Format(Vars{"x": "a\"b"}, "${x|string}")
	if err != nil {
		t.Fatalf("Format failed: %s", err)
	}
	want := `"a\"b"`
	if got != want {
		t.Errorf("got %s, want %s", pretty.String(got), pretty.String(want))
	}
}

func TestFormatUndefinedVariable(t *testing.T) {
	_, err := Format(nil, "${missing}")
	if err == nil {
		t.Fatal("Format succeeded, want UndefinedVariableError")
	}
	if _, ok := err.(*UndefinedVariableError); !ok {
		t.Errorf("got error %T, want *UndefinedVariableError", err)
	}
}

func TestFormatUnrecognizedFilter(t *testing.T) {
	_, err := Format(Vars{"x": "y"}, "${x|upper}")
	if err == nil {
		t.Fatal("Format succeeded, want UnrecognizedFilterError")
	}
	if _, ok := err.(*UnrecognizedFilterError); !ok {
		t.Errorf("got error %T, want *UnrecognizedFilterError", err)
	}
}

func TestFormatReindentsMultilineValue(t *testing.T) {
	got, err := Format(Vars{"x": "  b\nc"}, "a", "${x}")
	if err != nil {
		t.Fatalf("Format failed: %s", err)
	}
	want := "a\n  b\n  c"
	if got != want {
		t.Errorf("got %s, want %s", pretty.String(got), pretty.String(want))
	}
}

func TestFormatReindentDoesNothingWithoutLeadingWhitespace(t *testing.T) {
	got, err := Format(Vars{"x": "b\nc"}, "${x}")
	if err != nil {
		t.Fatalf("Format failed: %s", err)
	}
	want := "b\nc"
	if got != want {
		t.Errorf("got %s, want %s", pretty.String(got), pretty.String(want))
	}
}
