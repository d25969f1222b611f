// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// emitLabeled implements the "labeled" operator (spec.md §4.4.6): a
// pass-through binding the inner expression to resultVar. The binding
// itself is consumed by the enclosing Action emitter (emit_action.go),
// which inspects the Sequence/Labeled shape of its subexpression.
func emitLabeled(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Labeled)
	return Dispatch(ctx, n.Expr, resultVar)
}
