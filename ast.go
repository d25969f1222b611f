// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// Node is a node in a grammar AST: either a Rule's top-level expression
// or one of the PEG operator nodes nested beneath it. Kind returns the
// tag used by the AST Visitor Dispatch (dispatch.go) to pick an emission
// function; it is also how errors.go reports UnknownNodeKindError.
type Node interface {
	Kind() string
}

// Kind tags, one per node variant in spec.md §3.
const (
	KindChoice      = "choice"
	KindSequence    = "sequence"
	KindLabeled     = "labeled"
	KindSimpleAnd   = "simple_and"
	KindSimpleNot   = "simple_not"
	KindSemanticAnd = "semantic_and"
	KindSemanticNot = "semantic_not"
	KindOptional    = "optional"
	KindZeroOrMore  = "zero_or_more"
	KindOneOrMore   = "one_or_more"
	KindAction      = "action"
	KindRuleRef     = "rule_ref"
	KindLiteral     = "literal"
	KindAny         = "any"
	KindClass       = "class"
)

// A Grammar is the root of a validated PEG grammar AST: the sole input
// to Emit. Rules is a mapping from rule name to Rule; per spec.md §3 its
// iteration order need not be deterministic, so emit_grammar.go sorts
// names wherever determinism matters.
type Grammar struct {
	// Initializer is user code to run once before parsing begins.
	// It is empty when the grammar has no initializer block.
	Initializer string
	HasInitializer bool

	// StartRule names the rule invoked by parse(input) when no
	// explicit start rule is given.
	StartRule string

	// Rules maps rule name to its definition.
	Rules map[string]*Rule

	// SourceText is the original grammar source this AST was parsed
	// from, if known. Emit embeds it verbatim so the generated
	// parser's toSource() (spec.md §6) can return it without the
	// core needing to reconstruct grammar syntax from the AST.
	SourceText string
}

// A Rule defines one production of the grammar.
type Rule struct {
	Name string

	// DisplayName, when HasDisplayName is true, is a human-readable
	// label used for "expected X" reporting; it also suppresses
	// reporting of the rule's internal failures (spec.md §4.4.3).
	DisplayName    string
	HasDisplayName bool

	Expr Node
}

// A Choice is an ordered choice between alternatives; the first to
// match wins.
type Choice struct {
	Alternatives []Node
}

func (*Choice) Kind() string { return KindChoice }

// A Sequence requires every element to match, in order.
type Sequence struct {
	Elements []Node
}

func (*Sequence) Kind() string { return KindSequence }

// A Labeled binds the result of Expr to Label, for use by an enclosing
// Action's code.
type Labeled struct {
	Label string
	Expr  Node
}

func (*Labeled) Kind() string { return KindLabeled }

// A SimpleAnd is the syntactic "&e" lookahead predicate: succeeds
// without consuming input iff Expr matches.
type SimpleAnd struct {
	Expr Node
}

func (*SimpleAnd) Kind() string { return KindSimpleAnd }

// A SimpleNot is the syntactic "!e" lookahead predicate: succeeds
// without consuming input iff Expr fails to match.
type SimpleNot struct {
	Expr Node
}

func (*SimpleNot) Kind() string { return KindSimpleNot }

// A SemanticAnd is a "&{code}" predicate: succeeds without consuming
// input iff Code, evaluated as a boolean, is truthy.
type SemanticAnd struct {
	Code string
}

func (*SemanticAnd) Kind() string { return KindSemanticAnd }

// A SemanticNot is a "!{code}" predicate: succeeds without consuming
// input iff Code, evaluated as a boolean, is falsy.
type SemanticNot struct {
	Code string
}

func (*SemanticNot) Kind() string { return KindSemanticNot }

// An Optional matches Expr zero or one times; it never fails.
type Optional struct {
	Expr Node
}

func (*Optional) Kind() string { return KindOptional }

// A ZeroOrMore matches Expr any number of times, greedily; it never
// fails.
type ZeroOrMore struct {
	Expr Node
}

func (*ZeroOrMore) Kind() string { return KindZeroOrMore }

// A OneOrMore matches Expr one or more times, greedily; it fails iff
// the first match fails.
type OneOrMore struct {
	Expr Node
}

func (*OneOrMore) Kind() string { return KindOneOrMore }

// An Action succeeds iff Expr succeeds, transforming the result through
// Code. Code is run with the labeled sub-results of Expr (or of Expr
// itself, if Expr is a Labeled) bound as formal parameters; see
// spec.md §4.4.11.
type Action struct {
	Expr Node
	Code string
}

func (*Action) Kind() string { return KindAction }

// A RuleRef invokes another rule's parse function by name.
type RuleRef struct {
	Name string
}

func (*RuleRef) Kind() string { return KindRuleRef }

// A Literal matches an exact string.
type Literal struct {
	Value string
}

func (*Literal) Kind() string { return KindLiteral }

// Any matches any single character.
type Any struct{}

func (*Any) Kind() string { return KindAny }

// A ClassPart is one element of a character class: either a single rune
// (Lo == Hi) or an inclusive range [Lo, Hi].
type ClassPart struct {
	Lo, Hi rune
}

// Single reports whether p denotes a single rune rather than a range.
func (p ClassPart) Single() bool { return p.Lo == p.Hi }

// A Class matches a single rune against an ordered set of ClassParts,
// optionally inverted. RawText is the grammar's original source text
// for the class, used verbatim in "expected" error reporting.
type Class struct {
	Parts    []ClassPart
	Inverted bool
	RawText  string
}

func (*Class) Kind() string { return KindClass }
