// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"sort"
)

// Emit implements spec.md §4.4.1 `grammar`: it produces the complete,
// self-contained parser text for g. cfg may be nil, in which case the
// default Config (identifier prefix "peg$") is used.
//
// The emitted text is a single self-invoking expression evaluating to
// an object with parse, SyntaxError and toSource members, mirroring
// the shape classic PEG.js-lineage parsers export (spec.md GLOSSARY).
func Emit(g *Grammar, cfg *Config) (string, error) {
	ctx := &Context{Config: cfg, Ids: NewAllocator()}

	names := make([]string, 0, len(g.Rules))
	for name := range g.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	ruleFns := make([]string, len(names))
	tableEntries := make([]string, len(names))
	for i, name := range names {
		fn, err := emitRule(ctx, g.Rules[name])
		if err != nil {
			return "", err
		}
		ruleFns[i] = fn

		entry, err := Format(Vars{
			"name": Quote(name),
			"fn":   ctx.ruleFn(name),
		}, "${name}: ${fn}")
		if err != nil {
			return "", err
		}
		tableEntries[i] = entry
	}

	startRule := Quote(g.StartRule)

	parseFn, err := emitParseFunction(ctx, g, tableEntries, ruleFns, startRule)
	if err != nil {
		return "", err
	}

	syntaxErrorDecl, err := emitSyntaxErrorConstructor(ctx)
	if err != nil {
		return "", err
	}

	toSource, err := Format(Vars{
		"source": Quote(g.SourceText),
	}, "function() { return ${source}; }")
	if err != nil {
		return "", err
	}

	return Format(Vars{
		"escapeFn":   emitEscapeHelper(ctx),
		"quoteFn":    emitQuoteHelper(ctx),
		"padLeftFn":  emitPadLeftHelper(ctx),
		"parseFn":    parseFn,
		"syntaxErr":  syntaxErrorDecl,
		"toSource":   toSource,
		"parseName":  ctx.parseFn(),
		"syntaxName": ctx.syntaxErrorFn(),
	},
		"(function() {",
		"  ${escapeFn}",
		"",
		"  ${quoteFn}",
		"",
		"  ${padLeftFn}",
		"",
		"  ${parseFn}",
		"",
		"  ${syntaxErr}",
		"",
		"  return {",
		"    parse: ${parseName},",
		"    SyntaxError: ${syntaxName},",
		"    toSource: ${toSource}",
		"  };",
		"})()",
	)
}

func emitParseFunction(ctx *Context, g *Grammar, tableEntries, ruleFns []string, startRule string) (string, error) {
	initializer := ""
	if g.HasInitializer {
		initializer = g.Initializer
	}

	body, err := Format(Vars{
		"name":            ctx.parseFn(),
		"pos":             ctx.posVar(),
		"report":          ctx.reportVar(),
		"rightmostPos":    ctx.rightmostPosVar(),
		"rightmostExpect": ctx.rightmostExpectedVar(),
		"cache":           ctx.cacheVar(),
		"input":           ctx.inputVar(),
		"startRule":       startRule,
		"matchFail":       ctx.matchFailedFn(),
		"buildMsg":        ctx.buildErrorMessageFn(),
		"computePos":      ctx.computeErrorPositionFn(),
		"syntaxName":      ctx.syntaxErrorFn(),
		"initializer":     initializer,
		"rules":           joinBlocks(ruleFns),
		"table":           "{\n    " + joinEntries(tableEntries) + "\n  }",
		"quote":           ctx.quoteFn(),
	},
		"function ${name}(${input}, startRule) {",
		"  var ${pos} = 0;",
		"  var ${report} = true;",
		"  var ${rightmostPos} = 0;",
		"  var ${rightmostExpect} = [];",
		"  var ${cache} = {};",
		"",
		"  if (startRule === undefined) {",
		"    startRule = ${startRule};",
		"  }",
		"",
		"  function ${matchFail}(failure) {",
		"    if (${pos} < ${rightmostPos}) { return; }",
		"    if (${pos} > ${rightmostPos}) {",
		"      ${rightmostPos} = ${pos};",
		"      ${rightmostExpect} = [];",
		"    }",
		"    ${rightmostExpect}.push(failure);",
		"  }",
		"",
		"  function ${buildMsg}() {",
		"    var expected = ${rightmostExpect}.slice().sort();",
		"    var deduped = [];",
		"    for (var i = 0; i < expected.length; i++) {",
		"      if (i === 0 || expected[i] !== expected[i - 1]) {",
		"        deduped.push(expected[i]);",
		"      }",
		"    }",
		"    var expectedText;",
		"    if (deduped.length === 0) {",
		"      expectedText = \"end of input\";",
		"    } else if (deduped.length === 1) {",
		"      expectedText = deduped[0];",
		"    } else {",
		"      expectedText = deduped.slice(0, -1).join(\", \") + \" or \" + deduped[deduped.length - 1];",
		"    }",
		"    var actualPos = Math.max(${pos}, ${rightmostPos});",
		"    var actualText = actualPos < ${input}.length",
		"      ? ${quote}(${input}.charAt(actualPos))",
		"      : \"end of input\";",
		"    return \"Expected \" + expectedText + \" but \" + actualText + \" found.\";",
		"  }",
		"",
		"  function ${computePos}() {",
		"    var line = 1;",
		"    var column = 1;",
		"    var seenCR = false;",
		"    for (var i = 0; i < ${rightmostPos}; i++) {",
		"      var ch = ${input}.charAt(i);",
		"      if (ch === \"\\n\") {",
		"        if (!seenCR) { line++; }",
		"        column = 1;",
		"        seenCR = false;",
		"      } else if (ch === \"\\r\" || ch === \"\\u2028\" || ch === \"\\u2029\") {",
		"        line++;",
		"        column = 1;",
		"        seenCR = true;",
		"      } else {",
		"        column++;",
		"        seenCR = false;",
		"      }",
		"    }",
		"    return { line: line, column: column };",
		"  }",
		"",
		"  ${initializer}",
		"",
		"  ${rules}",
		"",
		"  var startRuleFunctions = ${table};",
		"  if (!startRuleFunctions.hasOwnProperty(startRule)) {",
		"    throw new Error(\"Invalid rule name: \" + ${quote}(startRule) + \".\");",
		"  }",
		"",
		"  var parseResult = startRuleFunctions[startRule]();",
		"",
		"  if (parseResult !== null && ${pos} === ${input}.length) {",
		"    return parseResult;",
		"  }",
		"",
		"  var errorPosition = ${computePos}();",
		"  throw new ${syntaxName}(",
		"    ${buildMsg}(),",
		"    errorPosition.line,",
		"    errorPosition.column",
		"  );",
		"}",
	)
	if err != nil {
		return "", err
	}
	return body, nil
}

func emitSyntaxErrorConstructor(ctx *Context) (string, error) {
	return Format(Vars{"name": ctx.syntaxErrorFn()},
		"function ${name}(message, line, column) {",
		"  this.message = message;",
		"  this.line = line;",
		"  this.column = column;",
		"  this.name = \"SyntaxError\";",
		"}",
		"${name}.prototype = Error.prototype;",
	)
}

func emitEscapeHelper(ctx *Context) string {
	fn, _ := Format(Vars{"name": ctx.escapeFn(), "padLeft": ctx.padLeftFn()},
		"function ${name}(ch) {",
		"  var code = ch.charCodeAt(0);",
		"  if (code <= 0xFF) {",
		"    return \"\\\\x\" + ${padLeft}(code.toString(16).toUpperCase(), \"0\", 2);",
		"  }",
		"  return \"\\\\u\" + ${padLeft}(code.toString(16).toUpperCase(), \"0\", 4);",
		"}",
	)
	return fn
}

func emitQuoteHelper(ctx *Context) string {
	fn, _ := Format(Vars{"name": ctx.quoteFn(), "escapeFn": ctx.escapeFn()},
		`function ${name}(s) {`,
		`  return '"' + s`,
		`    .replace(/\\/g, "\\\\")`,
		`    .replace(/"/g, "\\\"")`,
		`    .replace(/\r/g, "\\r")`,
		`    .replace(/\n/g, "\\n")`,
		`    .replace(/[\x80-\uFFFF]/g, ${escapeFn}) + '"';`,
		`}`,
	)
	return fn
}

func emitPadLeftHelper(ctx *Context) string {
	fn, _ := Format(Vars{"name": ctx.padLeftFn()},
		"function ${name}(s, pad, len) {",
		"  var result = s;",
		"  var padLength = len - s.length;",
		"  for (var i = 0; i < padLength; i++) {",
		"    result = pad + result;",
		"  }",
		"  return result;",
		"}",
	)
	return fn
}

func joinBlocks(blocks []string) string {
	out := ""
	for i, b := range blocks {
		if i > 0 {
			out += "\n\n"
		}
		out += b
	}
	return out
}

func joinEntries(entries []string) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += ",\n    "
		}
		out += e
	}
	return out
}
