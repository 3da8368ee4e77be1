// Package minilang is the front end of the minilang teaching language.
//
// Package: minilang
// Title: minilang Compiler Front End
// Description: Runs the three front end phases in order (tokenize, parse,
//              analyze) and returns tokens, syntax tree, symbol table and all
//              diagnostics of one compilation. The phases live in the
//              subpackages parser, ast, semantic and diag and can be used on
//              their own.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	c := minilang.New(minilang.Options{Logger: logger, WarnUnused: true})
//	res, err := c.Compile(ctx, "hello.ml", src)
//	if err != nil {
//		return err // context cancelled
//	}
//	for _, d := range res.Diagnostics.Diagnostics() {
//		fmt.Fprintln(os.Stderr, d)
//	}
//	if res.Program != nil {
//		fmt.Print(ast.Render(res.Program))
//	}
//
// Errors in the source never abort a compilation. A Result is always
// complete unless its context was cancelled, and Result.Err reports whether
// any phase found an error.
package minilang
