// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"strings"
	"testing"

	"github.com/eaburns/pretty"
)

func grammarWithStart(expr Node) *Grammar {
	return &Grammar{
		StartRule: "start",
		Rules: map[string]*Rule{
			"start": {Name: "start", Expr: expr},
		},
	}
}

// Scenario 1: a single literal rule emits a substr check, position
// advance and a quoted-literal match failure report.
func TestEmitSingleLiteral(t *testing.T) {
	g := grammarWithStart(&Literal{Value: "abc"})
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	for _, want := range []string{
		`peg$input.substr(peg$pos, 3) === "abc"`,
		`peg$pos += 3;`,
		`peg$matchFailed("\"abc\"");`,
		`function peg$parse_start() {`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Emit output missing %s\nfull output:\n%s", pretty.String(want), out)
		}
	}
}

// Scenario 2: ordered choice unfolds right-to-left, so the first
// alternative's fragment appears lexically first and a failure of the
// first alternative falls through to trying the second.
func TestEmitOrderedChoicePrefersFirstAlternative(t *testing.T) {
	g := grammarWithStart(&Choice{Alternatives: []Node{
		&Literal{Value: "a"},
		&Literal{Value: "ab"},
	}})
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	firstIdx := strings.Index(out, `"a"`)
	secondIdx := strings.Index(out, `"ab"`)
	if firstIdx < 0 || secondIdx < 0 {
		t.Fatalf("Emit output missing an alternative's literal:\n%s", out)
	}
	if firstIdx > secondIdx {
		t.Errorf("first alternative's fragment should precede the second's in the unfolded choice")
	}
	if !strings.Contains(out, "!== null") {
		t.Errorf("Emit output missing the choice's success test")
	}
}

// Scenario 3: zero_or_more always succeeds and accumulates into an
// array via a loop.
func TestEmitZeroOrMore(t *testing.T) {
	g := grammarWithStart(&ZeroOrMore{Expr: &Literal{Value: "a"}})
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	for _, want := range []string{"= [];", "for (;;) {", ".push("} {
		if !strings.Contains(out, want) {
			t.Errorf("Emit output missing %s", pretty.String(want))
		}
	}
}

// Scenario 4: a character class reports its raw source text on a
// failed match.
func TestEmitClassWithRange(t *testing.T) {
	g := grammarWithStart(&OneOrMore{Expr: &Class{
		Parts:   []ClassPart{{Lo: 'a', Hi: 'z'}},
		RawText: "[a-z]",
	}})
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	for _, want := range []string{"/^[a-z]/", `matchFailed("[a-z]");`} {
		if !strings.Contains(out, want) {
			t.Errorf("Emit output missing %s\nfull output:\n%s", pretty.String(want), out)
		}
	}
}

// Scenario 5: an action's code runs with its sequence's labels bound
// as formal parameters, in label order.
func TestEmitActionBindsSequenceLabels(t *testing.T) {
	g := grammarWithStart(&Action{
		Expr: &Sequence{Elements: []Node{
			&Labeled{Label: "a", Expr: &Literal{Value: "x"}},
			&Labeled{Label: "b", Expr: &Literal{Value: "y"}},
		}},
		Code: "return a + b;",
	})
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	if !strings.Contains(out, "function(a, b) { return a + b; }") {
		t.Errorf("Emit output missing action closure with (a, b) params:\n%s", out)
	}
}

// Scenario 7: a sequence containing a newline literal still emits a
// computeErrorPosition helper that recognizes \n as a line break when
// the parse ultimately fails.
func TestEmitSequenceWithNewlineLiteral(t *testing.T) {
	g := grammarWithStart(&Sequence{Elements: []Node{
		&Literal{Value: "a"},
		&Literal{Value: "\n"},
		&Literal{Value: "b"},
	}})
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	if !strings.Contains(out, `ch === "\n"`) {
		t.Errorf("Emit output missing newline recognition in computeErrorPosition:\n%s", out)
	}
	if !strings.Contains(out, `"\n"`) {
		t.Errorf("Emit output missing escaped newline literal:\n%s", out)
	}
}

// Determinism: emitting the same AST twice yields byte-identical
// output, per spec.md §8 — the per-rule allocator reset and sorted
// rule table make this observable even across multiple rules.
func TestEmitIsDeterministic(t *testing.T) {
	g := &Grammar{
		StartRule: "start",
		Rules: map[string]*Rule{
			"start": {Name: "start", Expr: &Sequence{Elements: []Node{
				&RuleRef{Name: "a"},
				&RuleRef{Name: "b"},
			}}},
			"a": {Name: "a", Expr: &Literal{Value: "a"}},
			"b": {Name: "b", Expr: &Literal{Value: "b"}},
		},
	}
	first, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	second, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	if first != second {
		t.Errorf("Emit is not deterministic:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
	if !strings.Contains(first, "peg$parse_a") || !strings.Contains(first, "peg$parse_b") {
		t.Errorf("Emit output missing one of the rule-reference targets")
	}
}

// A rule with a displayName reports its own name, not its expansion's
// internals, on failure (spec.md §4.4.3 and the reportMatchFailures
// asymmetry noted in spec.md's Open Question).
func TestEmitRuleDisplayNameReportsItsOwnName(t *testing.T) {
	g := &Grammar{
		StartRule: "start",
		Rules: map[string]*Rule{
			"start": {
				Name:           "start",
				DisplayName:    "start rule",
				HasDisplayName: true,
				Expr:           &Literal{Value: "x"},
			},
		},
	}
	out, err := Emit(g, nil)
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	if !strings.Contains(out, `matchFailed("start rule");`) {
		t.Errorf("Emit output missing displayName match failure report:\n%s", out)
	}
}

// Config.Prefix disambiguates the shared state and helper names so two
// grammars emitted into the same file don't collide.
func TestEmitHonorsConfigPrefix(t *testing.T) {
	g := grammarWithStart(&Literal{Value: "a"})
	out, err := Emit(g, &Config{Prefix: "gen1$"})
	if err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	if !strings.Contains(out, "gen1$pos") || strings.Contains(out, "peg$pos") {
		t.Errorf("Emit output did not honor custom prefix:\n%s", out)
	}
}

func TestEmitUnknownNodeKind(t *testing.T) {
	g := grammarWithStart(unknownNode{})
	_, err := Emit(g, nil)
	if err == nil {
		t.Fatal("Emit succeeded, want UnknownNodeKindError")
	}
	if _, ok := err.(*UnknownNodeKindError); !ok {
		t.Errorf("got error %T, want *UnknownNodeKindError", err)
	}
}

type unknownNode struct{}

func (unknownNode) Kind() string { return "nonsense" }
