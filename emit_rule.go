// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// emitRule implements the per-rule emission protocol of spec.md
// §4.4.3: a packrat cache check, the rule's own expression, and, for a
// rule with a displayName, the save/clear/restore of match-failure
// reporting that lets a named rule report its own name instead of its
// expansion's internals (spec.md's "Ambiguity note" / Open Question on
// this asymmetry — see DESIGN.md).
//
// The Allocator is reset before emitting the rule body, per spec.md
// §4.2: fresh identifiers are scoped to one rule at a time so a minor
// edit to one rule never perturbs the generated text of another.
func emitRule(ctx *Context, rule *Rule) (string, error) {
	ctx.Ids.Reset()

	resultVar, body, err := declare(ctx, "result", rule.Expr)
	if err != nil {
		return "", err
	}

	if rule.HasDisplayName {
		savedReport := ctx.Ids.Next("savedReportMatchFailures")
		body, err = Format(Vars{
			"savedReport": savedReport,
			"report":      ctx.reportVar(),
			"body":        body,
			"resultVar":   resultVar,
			"matchFail":   ctx.matchFailedFn(),
			"display":     Quote(rule.DisplayName),
		},
			"var ${savedReport} = ${report};",
			"${report} = false;",
			"${body}",
			"${report} = ${savedReport};",
			"if (${resultVar} === null && ${savedReport}) {",
			"  ${matchFail}(${display});",
			"}",
		)
		if err != nil {
			return "", err
		}
	}

	return Format(Vars{
		"fn":        ctx.ruleFn(rule.Name),
		"name":      rule.Name,
		"pos":       ctx.posVar(),
		"cache":     ctx.cacheVar(),
		"body":      body,
		"resultVar": resultVar,
	},
		"function ${fn}() {",
		"  var cacheKey = \"${name}@\" + ${pos};",
		"  var cached = ${cache}[cacheKey];",
		"  if (cached) {",
		"    ${pos} = cached.nextPos;",
		"    return cached.result;",
		"  }",
		"",
		"  ${body}",
		"",
		"  ${cache}[cacheKey] = { nextPos: ${pos}, result: ${resultVar} };",
		"  return ${resultVar};",
		"}",
	)
}
