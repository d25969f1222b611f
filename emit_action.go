// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"strconv"
	"strings"
)

// emitAction implements the "action" operator (spec.md §4.4.11): runs
// Code with the labels of Expr bound to their matched values, iff Expr
// matches. Labels are discovered structurally: a top-level Labeled
// subexpression binds its own label to the whole result, and a
// Sequence binds each of its direct Labeled elements to the
// corresponding slot of the array the sequence produces. Any other
// shape of Expr carries no bindings into Code.
func emitAction(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Action)

	exprVar, exprFrag, err := declare(ctx, "result", n.Expr)
	if err != nil {
		return "", err
	}

	names, accessors := actionBindings(n.Expr, exprVar)

	params := strings.Join(names, ", ")
	args := strings.Join(accessors, ", ")

	body, err := Format(Vars{
		"resultVar": resultVar,
		"code":      n.Code,
		"params":    params,
		"args":      args,
	},
		"${resultVar} = (function(${params}) { ${code} })(${args});",
	)
	if err != nil {
		return "", err
	}

	return Format(Vars{
		"exprFrag":  exprFrag,
		"exprVar":   exprVar,
		"resultVar": resultVar,
		"body":      body,
	},
		"${exprFrag}",
		"if (${exprVar} !== null) {",
		"  ${body}",
		"} else {",
		"  ${resultVar} = null;",
		"}",
	)
}

// actionBindings returns, in order, the label names visible to an
// action's code and the expression that fetches each one's value out
// of exprVar.
func actionBindings(expr Node, exprVar string) (names, accessors []string) {
	switch e := expr.(type) {
	case *Labeled:
		return []string{e.Label}, []string{exprVar}
	case *Sequence:
		for i, el := range e.Elements {
			if lbl, ok := el.(*Labeled); ok {
				names = append(names, lbl.Label)
				accessors = append(accessors, indexAccessor(exprVar, i))
			}
		}
		return names, accessors
	default:
		return nil, nil
	}
}

func indexAccessor(exprVar string, i int) string {
	return exprVar + "[" + strconv.Itoa(i) + "]"
}
