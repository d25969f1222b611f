// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "strings"

// emitSequence implements the "sequence" operator (spec.md §4.4.5): all
// elements must match in order; on success resultVar is the array of
// each element's result.
func emitSequence(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Sequence)

	savedPosVar := ctx.Ids.Next("pos")
	savedPosDecl, err := Format(Vars{"v": savedPosVar, "pos": ctx.posVar()}, "var ${v} = ${pos};")
	if err != nil {
		return "", err
	}

	elemVars := make([]string, len(n.Elements))
	elemFrags := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		v, frag, err := declare(ctx, "result", e)
		if err != nil {
			return "", err
		}
		elemVars[i] = v
		elemFrags[i] = frag
	}

	body, err := Format(Vars{
		"resultVar": resultVar,
		"elems":     "[" + strings.Join(elemVars, ", ") + "]",
	}, "${resultVar} = ${elems};")
	if err != nil {
		return "", err
	}

	for i := len(n.Elements) - 1; i >= 0; i-- {
		body, err = Format(Vars{
			"frag":      elemFrags[i],
			"v":         elemVars[i],
			"body":      body,
			"resultVar": resultVar,
			"savedPos":  savedPosVar,
			"pos":       ctx.posVar(),
		},
			"${frag}",
			"if (${v} !== null) {",
			"  ${body}",
			"} else {",
			"  ${resultVar} = null;",
			"  ${pos} = ${savedPos};",
			"}",
		)
		if err != nil {
			return "", err
		}
	}

	return Format(Vars{"savedPosDecl": savedPosDecl, "body": body}, "${savedPosDecl}", "${body}")
}
