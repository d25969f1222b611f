// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

// Names of the shared parser state and helper functions every emitted
// rule reads or writes (spec.md §5). Each is qualified by the
// Context's Config.Prefix so that two grammars emitted into the same
// output file never collide, mirroring the teacher's blanket use of
// {{$pre := $.Config.Prefix}} across gen.go's templates.
func (c *Context) posVar() string              { return c.prefix() + "pos" }
func (c *Context) inputVar() string            { return c.prefix() + "input" }
func (c *Context) cacheVar() string            { return c.prefix() + "cache" }
func (c *Context) reportVar() string           { return c.prefix() + "reportMatchFailures" }
func (c *Context) rightmostPosVar() string     { return c.prefix() + "rightmostMatchFailuresPos" }
func (c *Context) rightmostExpectedVar() string {
	return c.prefix() + "rightmostMatchFailuresExpected"
}
func (c *Context) matchFailedFn() string          { return c.prefix() + "matchFailed" }
func (c *Context) buildErrorMessageFn() string     { return c.prefix() + "buildErrorMessage" }
func (c *Context) computeErrorPositionFn() string  { return c.prefix() + "computeErrorPosition" }
func (c *Context) padLeftFn() string               { return c.prefix() + "padLeft" }
func (c *Context) escapeFn() string                { return c.prefix() + "escape" }
func (c *Context) quoteFn() string                  { return c.prefix() + "quote" }
func (c *Context) parseFn() string                  { return c.prefix() + "parse" }
func (c *Context) syntaxErrorFn() string            { return c.prefix() + "SyntaxError" }

func (c *Context) ruleFn(name string) string { return c.prefix() + "parse_" + name }
