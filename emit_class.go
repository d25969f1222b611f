// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "strings"

// emitClass implements the "class" operator (spec.md §4.4.18): matches
// a single character against a set of literal characters and ranges,
// optionally inverted.
//
// Two degenerate shapes get special-cased rather than handed to the
// regexp engine: an empty, non-inverted class can never match
// anything, and an empty, inverted class matches every character, so
// it collapses to the same shape as the "any" operator.
func emitClass(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Class)

	if len(n.Parts) == 0 && !n.Inverted {
		return Format(Vars{
			"resultVar": resultVar,
			"raw":       Quote(n.RawText),
			"report":    ctx.reportVar(),
			"matchFail": ctx.matchFailedFn(),
		},
			"${resultVar} = null;",
			"if (${report}) {",
			"  ${matchFail}(${raw});",
			"}",
		)
	}
	if len(n.Parts) == 0 && n.Inverted {
		return Format(Vars{
			"resultVar": resultVar,
			"input":     ctx.inputVar(),
			"pos":       ctx.posVar(),
			"report":    ctx.reportVar(),
			"matchFail": ctx.matchFailedFn(),
			"raw":       Quote(n.RawText),
		},
			"if (${pos} < ${input}.length) {",
			"  ${resultVar} = ${input}.charAt(${pos});",
			"  ${pos}++;",
			"} else {",
			"  ${resultVar} = null;",
			"  if (${report}) {",
			"    ${matchFail}(${raw});",
			"  }",
			"}",
		)
	}

	regex := classRegex(n)
	return Format(Vars{
		"resultVar": resultVar,
		"regex":     regex,
		"raw":       Quote(n.RawText),
		"input":     ctx.inputVar(),
		"pos":       ctx.posVar(),
		"report":    ctx.reportVar(),
		"matchFail": ctx.matchFailedFn(),
	},
		"if (${pos} < ${input}.length && ${regex}.test(${input}.charAt(${pos}))) {",
		"  ${resultVar} = ${input}.charAt(${pos});",
		"  ${pos}++;",
		"} else {",
		"  ${resultVar} = null;",
		"  if (${report}) {",
		"    ${matchFail}(${raw});",
		"  }",
		"}",
	)
}

// classRegex builds a JavaScript regular expression literal matching
// exactly the characters described by a class's parts.
func classRegex(n *Class) string {
	var body strings.Builder
	body.WriteString("/^[")
	if n.Inverted {
		body.WriteString("^")
	}
	for _, p := range n.Parts {
		if p.Single() {
			body.WriteString(EscapeClassChar(p.Lo))
		} else {
			body.WriteString(EscapeClassChar(p.Lo))
			body.WriteString("-")
			body.WriteString(EscapeClassChar(p.Hi))
		}
	}
	body.WriteString("]/")
	return body.String()
}
