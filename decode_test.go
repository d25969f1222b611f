// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"strings"
	"testing"
)

func TestDecodeGrammar(t *testing.T) {
	const doc = `{
		"start_rule": "start",
		"rules": [
			{
				"name": "start",
				"expr": {
					"kind": "sequence",
					"elements": [
						{"kind": "labeled", "label": "a", "expr": {"kind": "literal", "value": "x"}},
						{"kind": "rule_ref", "name": "tail"}
					]
				}
			},
			{
				"name": "tail",
				"display_name": "tail rule",
				"has_display_name": true,
				"expr": {
					"kind": "class",
					"parts": [{"lo": 97, "hi": 122}],
					"raw_text": "[a-z]"
				}
			}
		]
	}`

	g, err := DecodeGrammar(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeGrammar failed: %s", err)
	}
	if g.StartRule != "start" {
		t.Errorf("StartRule = %q, want %q", g.StartRule, "start")
	}
	if len(g.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(g.Rules))
	}

	start, ok := g.Rules["start"]
	if !ok {
		t.Fatal("missing rule \"start\"")
	}
	seq, ok := start.Expr.(*Sequence)
	if !ok {
		t.Fatalf("start.Expr is %T, want *Sequence", start.Expr)
	}
	if len(seq.Elements) != 2 {
		t.Fatalf("got %d sequence elements, want 2", len(seq.Elements))
	}
	lbl, ok := seq.Elements[0].(*Labeled)
	if !ok {
		t.Fatalf("element 0 is %T, want *Labeled", seq.Elements[0])
	}
	if lbl.Label != "a" {
		t.Errorf("label = %q, want %q", lbl.Label, "a")
	}
	lit, ok := lbl.Expr.(*Literal)
	if !ok || lit.Value != "x" {
		t.Errorf("labeled expr = %#v, want Literal{Value: \"x\"}", lbl.Expr)
	}
	ref, ok := seq.Elements[1].(*RuleRef)
	if !ok || ref.Name != "tail" {
		t.Errorf("element 1 = %#v, want RuleRef{Name: \"tail\"}", seq.Elements[1])
	}

	tail, ok := g.Rules["tail"]
	if !ok {
		t.Fatal("missing rule \"tail\"")
	}
	if !tail.HasDisplayName || tail.DisplayName != "tail rule" {
		t.Errorf("tail displayName = (%q, %v), want (%q, true)", tail.DisplayName, tail.HasDisplayName, "tail rule")
	}
	class, ok := tail.Expr.(*Class)
	if !ok {
		t.Fatalf("tail.Expr is %T, want *Class", tail.Expr)
	}
	if len(class.Parts) != 1 || class.Parts[0].Lo != 'a' || class.Parts[0].Hi != 'z' {
		t.Errorf("class parts = %#v, want [{'a','z'}]", class.Parts)
	}
	if class.RawText != "[a-z]" {
		t.Errorf("class raw text = %q, want %q", class.RawText, "[a-z]")
	}
}

func TestDecodeGrammarUnknownKind(t *testing.T) {
	const doc = `{
		"start_rule": "start",
		"rules": [
			{"name": "start", "expr": {"kind": "nonsense"}}
		]
	}`
	_, err := DecodeGrammar(strings.NewReader(doc))
	if err == nil {
		t.Fatal("DecodeGrammar succeeded, want an error for an unknown node kind")
	}
}
