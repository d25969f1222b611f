// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// emitChoice implements the "choice" operator (spec.md §4.4.4): ordered
// alternatives, first match wins. It unfolds right-to-left so that the
// generated text evaluates left-to-right with first-match short-circuit.
func emitChoice(ctx *Context, node Node, resultVar string) (string, error) {
	n := node.(*Choice)

	accumulated, err := Format(Vars{"resultVar": resultVar}, "${resultVar} = null;")
	if err != nil {
		return "", err
	}
	for i := len(n.Alternatives) - 1; i >= 0; i-- {
		altVar, altFrag, err := declare(ctx, "result", n.Alternatives[i])
		if err != nil {
			return "", err
		}
		accumulated, err = Format(Vars{
			"altFrag":     altFrag,
			"altVar":      altVar,
			"resultVar":   resultVar,
			"accumulated": accumulated,
		},
			"${altFrag}",
			"if (${altVar} !== null) {",
			"  ${resultVar} = ${altVar};",
			"} else {",
			"  ${accumulated}",
			"}",
		)
		if err != nil {
			return "", err
		}
	}
	return accumulated, nil
}
