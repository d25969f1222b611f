// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// A Context threads the per-Emit Config and the current rule's
// Allocator through every emission function. It carries no mutable
// parse-time state of its own: the emitter is stateless beyond id
// allocation (spec.md §5).
type Context struct {
	Config *Config
	Ids    *Allocator
}

func (c *Context) prefix() string { return c.Config.prefix() }

// EmitFunc emits the text fragment for one AST node, binding its
// result to resultVar per the Fragment Contract (spec.md §4.4).
type EmitFunc func(ctx *Context, n Node, resultVar string) (string, error)

// dispatchTable is the AST Visitor Dispatch of spec.md §4.3: a mapping
// from node kind to emission function, reshaped from the teacher's
// reflect.Type-keyed template map (gen.go) into a kind-tag-keyed
// function map, per spec.md §9's recommendation to dispatch via a
// closed sum type rather than reflection. It is filled in by init
// because the emitters it holds call back into Dispatch.
var dispatchTable map[string]EmitFunc

func init() {
	dispatchTable = map[string]EmitFunc{
		KindChoice:      emitChoice,
		KindSequence:    emitSequence,
		KindLabeled:     emitLabeled,
		KindSimpleAnd:   emitSimpleAnd,
		KindSimpleNot:   emitSimpleNot,
		KindSemanticAnd: emitSemanticAnd,
		KindSemanticNot: emitSemanticNot,
		KindOptional:    emitOptional,
		KindZeroOrMore:  emitZeroOrMore,
		KindOneOrMore:   emitOneOrMore,
		KindAction:      emitAction,
		KindRuleRef:     emitRuleRef,
		KindLiteral:     emitLiteral,
		KindAny:         emitAny,
		KindClass:       emitClass,
	}
}

// Dispatch emits n's fragment by looking up its Kind in dispatchTable.
// It fails with UnknownNodeKindError for a Kind with no registered
// emitter — a sign of a malformed AST, not a valid grammar construct.
func Dispatch(ctx *Context, n Node, resultVar string) (string, error) {
	fn, ok := dispatchTable[n.Kind()]
	if !ok {
		return "", &UnknownNodeKindError{Kind: n.Kind()}
	}
	return fn(ctx, n, resultVar)
}
