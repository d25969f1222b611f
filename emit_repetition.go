// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// emitOptional implements the "?" operator (spec.md §4.4.12): always
// succeeds, yielding the subexpression's result if it matched, or the
// empty-string sentinel if it didn't.
func emitOptional(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Optional)
	exprVar, exprFrag, err := declare(ctx, "result", n.Expr)
	if err != nil {
		return "", err
	}
	return Format(Vars{
		"exprFrag":  exprFrag,
		"exprVar":   exprVar,
		"resultVar": resultVar,
	},
		"${exprFrag}",
		`${resultVar} = ${exprVar} !== null ? ${exprVar} : "";`,
	)
}

// emitZeroOrMore implements the "*" operator (spec.md §4.4.13): always
// succeeds, greedily collecting every match into an array.
func emitZeroOrMore(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*ZeroOrMore)
	iterVar, iterFrag, err := declare(ctx, "result", n.Expr)
	if err != nil {
		return "", err
	}
	return Format(Vars{
		"resultVar": resultVar,
		"iterFrag":  iterFrag,
		"iterVar":   iterVar,
	},
		"${resultVar} = [];",
		"for (;;) {",
		"  ${iterFrag}",
		"  if (${iterVar} !== null) {",
		"    ${resultVar}.push(${iterVar});",
		"  } else {",
		"    break;",
		"  }",
		"}",
	)
}

// emitOneOrMore implements the "+" operator (spec.md §4.4.14): fails iff
// the first match fails; otherwise behaves like zero_or_more seeded
// with that first match.
func emitOneOrMore(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*OneOrMore)
	firstVar, firstFrag, err := declare(ctx, "result", n.Expr)
	if err != nil {
		return "", err
	}
	iterVar, iterFrag, err := declare(ctx, "result", n.Expr)
	if err != nil {
		return "", err
	}
	return Format(Vars{
		"firstFrag": firstFrag,
		"firstVar":  firstVar,
		"iterFrag":  iterFrag,
		"iterVar":   iterVar,
		"resultVar": resultVar,
	},
		"${firstFrag}",
		"if (${firstVar} === null) {",
		"  ${resultVar} = null;",
		"} else {",
		"  ${resultVar} = [${firstVar}];",
		"  for (;;) {",
		"    ${iterFrag}",
		"    if (${iterVar} !== null) {",
		"      ${resultVar}.push(${iterVar});",
		"    } else {",
		"      break;",
		"    }",
		"  }",
		"}",
	)
}
