// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// A Config specifies code-generation options, generalizing the
// teacher's Config{Prefix string} (gen.go) to this emitter's helper
// names instead of Go identifiers.
type Config struct {
	// Prefix is prepended to every helper name the grammar emitter
	// inlines (padLeft, escape, quote, matchFailed, ...), so that
	// multiple generated parsers can coexist in one file without
	// colliding. The zero value is replaced by "peg$" (see
	// DESIGN.md Open Question 3).
	Prefix string
}

func (c *Config) prefix() string {
	if c == nil || c.Prefix == "" {
		return "peg$"
	}
	return c.Prefix
}
