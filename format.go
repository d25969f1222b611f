// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"regexp"
	"strings"
)

// Vars is a mapping from template variable name to its interpolated
// string value, used by Format.
type Vars map[string]string

// interpRe matches ${NAME} and ${NAME|FILTER}.
var interpRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:\|([A-Za-z_][A-Za-z0-9_]*))?\}`)

// leadingWS matches the leading whitespace prefix of a line.
var leadingWS = regexp.MustCompile(`^\s+`)

// Format is the Template Engine (spec.md §4.1): it interpolates ${NAME}
// and ${NAME|FILTER} references in each of parts against vars, re-indents
// multi-line substitutions to match the indentation of the line they
// land on, and joins the results with a single newline.
//
// The only recognized filter is "string", which wraps the value in
// double quotes using the scripting-language escape rules in escape.go.
// An unresolved NAME fails with UndefinedVariableError; any other filter
// fails with UnrecognizedFilterError.
func Format(vars Vars, parts ...string) (string, error) {
	out := make([]string, len(parts))
	for i, part := range parts {
		rendered, err := interpolate(part, vars)
		if err != nil {
			return "", err
		}
		out[i] = reindent(rendered)
	}
	return strings.Join(out, "\n"), nil
}

func interpolate(part string, vars Vars) (string, error) {
	var outErr error
	rendered := interpRe.ReplaceAllStringFunc(part, func(m string) string {
		if outErr != nil {
			return ""
		}
		sub := interpRe.FindStringSubmatch(m)
		name, filter := sub[1], sub[2]
		val, ok := vars[name]
		if !ok {
			outErr = &UndefinedVariableError{Name: name}
			return ""
		}
		if filter == "" {
			return val
		}
		if filter != "string" {
			outErr = &UnrecognizedFilterError{Name: filter}
			return ""
		}
		return Quote(val)
	})
	if outErr != nil {
		return "", outErr
	}
	return rendered, nil
}

// reindent prepends the leading whitespace prefix of value's first line
// to every subsequent line, so a multi-line substitution inherits the
// indentation of the template line it occupies.
func reindent(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	lines := strings.Split(value, "\n")
	prefix := leadingWS.FindString(lines[0])
	if prefix == "" {
		return value
	}
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
