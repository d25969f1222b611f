// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "fmt"

// UndefinedVariableError is returned by Format when a template
// references a ${NAME} that vars does not define. It indicates a bug in
// an emission function, not in the input Grammar.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined template variable: %s", e.Name)
}

// UnrecognizedFilterError is returned by Format when a ${NAME|FILTER}
// reference names a filter other than "string".
type UnrecognizedFilterError struct {
	Name string
}

func (e *UnrecognizedFilterError) Error() string {
	return fmt.Sprintf("unrecognized template filter: %s", e.Name)
}

// UnknownNodeKindError is returned by Dispatch when a Node's Kind does
// not match any registered emission function.
type UnknownNodeKindError struct {
	Kind string
}

func (e *UnknownNodeKindError) Error() string {
	return fmt.Sprintf("unknown AST node kind: %s", e.Kind)
}
