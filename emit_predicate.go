// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// emitSimpleAnd implements the "&e" syntactic lookahead predicate
// (spec.md §4.4.7): succeeds, consuming nothing, iff Expr matches.
func emitSimpleAnd(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*SimpleAnd)
	return emitPredicateScaffold(ctx, n.Expr, resultVar, false)
}

// emitSimpleNot implements the "!e" syntactic lookahead predicate
// (spec.md §4.4.8): succeeds, consuming nothing, iff Expr fails.
func emitSimpleNot(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*SimpleNot)
	return emitPredicateScaffold(ctx, n.Expr, resultVar, true)
}

// emitPredicateScaffold implements the shared save/disable/restore
// dance of both syntactic predicates: match-failure reporting is
// disabled while probing the subexpression, since a predicate's probe
// is never itself a reportable failure (spec.md §4.4.7-4.4.8).
func emitPredicateScaffold(ctx *Context, expr Node, resultVar string, negate bool) (string, error) {
	savedPos := ctx.Ids.Next("pos")
	savedReport := ctx.Ids.Next("savedReportMatchFailures")
	subVar, subFrag, err := declare(ctx, "result", expr)
	if err != nil {
		return "", err
	}

	matchedBranch, failedBranch := "", ""
	empty, err := Format(Vars{"resultVar": resultVar}, `${resultVar} = "";`)
	if err != nil {
		return "", err
	}
	null, err := Format(Vars{"resultVar": resultVar}, "${resultVar} = null;")
	if err != nil {
		return "", err
	}
	restorePos, err := Format(Vars{"savedPos": savedPos, "pos": ctx.posVar()}, "${pos} = ${savedPos};")
	if err != nil {
		return "", err
	}

	if negate {
		// !e: failure of e is success of the predicate, without
		// having consumed anything to restore.
		matchedBranch, err = Format(Vars{"empty": empty}, "${empty}")
		if err != nil {
			return "", err
		}
		failedBranch, err = Format(Vars{"null": null, "restorePos": restorePos}, "${null}", "${restorePos}")
		if err != nil {
			return "", err
		}
	} else {
		// &e: success of e is success of the predicate, restoring
		// the position it consumed to reach that success.
		matchedBranch, err = Format(Vars{"empty": empty, "restorePos": restorePos}, "${empty}", "${restorePos}")
		if err != nil {
			return "", err
		}
		failedBranch, err = Format(Vars{"null": null}, "${null}")
		if err != nil {
			return "", err
		}
	}

	cond := "!=="
	if negate {
		cond = "==="
	}

	return Format(Vars{
		"savedPos":      savedPos,
		"savedReport":   savedReport,
		"subFrag":       subFrag,
		"subVar":        subVar,
		"cond":          cond,
		"matchedBranch": matchedBranch,
		"failedBranch":  failedBranch,
		"pos":           ctx.posVar(),
		"report":        ctx.reportVar(),
	},
		"var ${savedPos} = ${pos};",
		"var ${savedReport} = ${report};",
		"${report} = false;",
		"${subFrag}",
		"${report} = ${savedReport};",
		"if (${subVar} ${cond} null) {",
		"  ${matchedBranch}",
		"} else {",
		"  ${failedBranch}",
		"}",
	)
}

// emitSemanticAnd implements the "&{code}" predicate (spec.md §4.4.9):
// succeeds, consuming nothing, iff Code evaluates truthy.
func emitSemanticAnd(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*SemanticAnd)
	return emitSemanticScaffold(ctx, n.Code, resultVar, false)
}

// emitSemanticNot implements the "!{code}" predicate (spec.md §4.4.10):
// succeeds, consuming nothing, iff Code evaluates falsy.
func emitSemanticNot(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*SemanticNot)
	return emitSemanticScaffold(ctx, n.Code, resultVar, true)
}

func emitSemanticScaffold(ctx *Context, code string, resultVar string, negate bool) (string, error) {
	okVar := ctx.Ids.Next("ok")
	cond := ""
	if negate {
		cond = "!"
	}
	return Format(Vars{
		"okVar":     okVar,
		"code":      code,
		"resultVar": resultVar,
		"cond":      cond,
	},
		"var ${okVar} = (function() { ${code} })();",
		"${resultVar} = ${cond}${okVar} ? \"\" : null;",
	)
}
