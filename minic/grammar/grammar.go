// Package grammar holds the EBNF description of MiniC that the hand-written
// lexer and parser implement.
package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// Start is the production a MiniC source file derives from.
const Start = "Program"

//go:embed minic.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Load parses the grammar and verifies that every production is defined
// and reachable from Start.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("minic.ebnf", strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Terminals returns the sorted, distinct tokens used by the syntactic
// productions of g, that is the keywords and punctuation of the language.
func Terminals(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if isLexical(name) {
			continue
		}
		collect(prod.Expr, seen)
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func collect(x ebnf.Expression, seen map[string]bool) {
	switch x := x.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collect(e, seen)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collect(e, seen)
		}
	case *ebnf.Group:
		collect(x.Body, seen)
	case *ebnf.Option:
		collect(x.Body, seen)
	case *ebnf.Repetition:
		collect(x.Body, seen)
	case *ebnf.Token:
		seen[x.String] = true
	}
}

func isLexical(name string) bool {
	for _, r := range name {
		return !unicode.IsUpper(r)
	}
	return false
}
