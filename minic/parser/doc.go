// Package parser builds a MiniC syntax tree from a token slice.
//
// # Overview
//
// The parser is a hand-written recursive-descent parser. Declarations and
// statements each have their own parse function; binary operators are
// handled by precedence climbing over a single table.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Lexer     │────▶│   Parser    │
//	│  (string)   │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────────────────────────┐
//	                    │           diag.List             │
//	                    └─────────────────────────────────┘
//
// # Precedence
//
// From loosest to tightest:
//
//	=            right associative, target must be an identifier,
//	             an array access or a member access
//	? :          right associative
//	||
//	&&
//	== !=
//	< > <= >=
//	+ -
//	* / %
//	- !          prefix
//	() [] .      postfix, left to right
//
// # Error Recovery
//
// Parse never fails. A syntax error is recorded as a diagnostic and the
// parser skips ahead to the next ';', '}' or declaration or statement
// keyword, then resumes. Recovery points are the top-level declaration
// loop, the member loop of a class body and the statement loop of a
// block, so one bad statement costs only that statement.
//
// Running out of input while a ';', '}' or ')' is still expected closes the
// open constructs with what they hold. Only the first end-of-file
// diagnostic is kept.
//
// # Usage
//
//	prog, diags := parser.ParseSource(src)
//	for _, d := range diags {
//	    fmt.Println(d)
//	}
//
// or, with tokens at hand:
//
//	p := parser.New(tokens)
//	prog := p.Parse()
//	if p.HasErrors() {
//	    ...
//	}
package parser
