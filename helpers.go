// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// declare allocates a fresh identifier with the given prefix, declares
// it in the emitted text, then emits n's fragment assigning into it, as
// required by the Fragment Contract (spec.md §4.4): a resultVar must
// already exist as a variable before an operator emitter assigns to it.
func declare(ctx *Context, prefix string, n Node) (resultVar, fragment string, err error) {
	resultVar = ctx.Ids.Next(prefix)
	decl, err := Format(Vars{"v": resultVar}, "var ${v};")
	if err != nil {
		return "", "", err
	}
	body, err := Dispatch(ctx, n, resultVar)
	if err != nil {
		return "", "", err
	}
	fragment, err = Format(Vars{"decl": decl, "body": body}, "${decl}", "${body}")
	if err != nil {
		return "", "", err
	}
	return resultVar, fragment, nil
}
