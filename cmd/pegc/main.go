// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

// Command pegc reads a JSON-encoded, already-validated grammar AST and
// emits its generated parser text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/glyphgrammar/pegc"
)

var (
	out    = flag.String("o", "", "output file path")
	prefix = flag.String("p", "peg$", "identifier prefix")
)

func main() {
	flag.Parse()
	args := flag.Args()

	in := bufio.NewReader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = bufio.NewReader(f)
	}

	g, err := pegc.DecodeGrammar(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
		w = f
	}

	src, err := pegc.Emit(g, &pegc.Config{Prefix: *prefix})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := io.WriteString(w, src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
