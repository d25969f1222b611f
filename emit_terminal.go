// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "strconv"

// emitRuleRef implements the "rule_ref" operator (spec.md §4.4.15):
// delegates to the referenced rule's own parse function. A rule
// reference never reports a match failure itself; the referenced
// rule's own displayName (if any) is what gets reported.
func emitRuleRef(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*RuleRef)
	return Format(Vars{
		"resultVar": resultVar,
		"fn":        ctx.ruleFn(n.Name),
	}, "${resultVar} = ${fn}();")
}

// emitLiteral implements the "literal" operator (spec.md §4.4.16): an
// exact substring match at the current position.
func emitLiteral(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Literal)
	length := len([]rune(n.Value))
	quoted := Quote(n.Value)
	// The reported expectation is the quoted literal text itself, so the
	// descriptor passed to matchFailed needs an extra quoting level: its
	// runtime value must be the string `"abc"`, quotes included.
	descriptor := Quote(quoted)
	return Format(Vars{
		"resultVar":  resultVar,
		"quoted":     quoted,
		"descriptor": descriptor,
		"length":     strconv.Itoa(length),
		"input":      ctx.inputVar(),
		"pos":        ctx.posVar(),
		"report":     ctx.reportVar(),
		"matchFail":  ctx.matchFailedFn(),
	},
		"if (${input}.substr(${pos}, ${length}) === ${quoted}) {",
		"  ${resultVar} = ${quoted};",
		"  ${pos} += ${length};",
		"} else {",
		"  ${resultVar} = null;",
		"  if (${report}) {",
		"    ${matchFail}(${descriptor});",
		"  }",
		"}",
	)
}

// emitAny implements the "any" operator (spec.md §4.4.17): matches a
// single arbitrary character.
func emitAny(ctx *Context, node Node, resultVar string) (string, error) {
	return Format(Vars{
		"resultVar": resultVar,
		"input":     ctx.inputVar(),
		"pos":       ctx.posVar(),
		"report":    ctx.reportVar(),
		"matchFail": ctx.matchFailedFn(),
	},
		"if (${pos} < ${input}.length) {",
		"  ${resultVar} = ${input}.charAt(${pos});",
		"  ${pos}++;",
		"} else {",
		"  ${resultVar} = null;",
		"  if (${report}) {",
		`    ${matchFail}("any character");`,
		"  }",
		"}",
	)
}
