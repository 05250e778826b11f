package parser

import (
	"fmt"

	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/diag"
	"github.com/dhamidi/minic/minic/lexer"
	"github.com/dhamidi/minic/minic/token"
)

type Parser struct {
	tokens      []token.Token
	pos         int
	diags       diag.List
	eofReported bool
}

// New returns a parser over tokens. A missing trailing EOF token is
// supplied.
func New(tokens []token.Token) *Parser {
	toks := make([]token.Token, len(tokens), len(tokens)+1)
	copy(toks, tokens)
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Line: 1, Column: 1}
		if len(toks) > 0 {
			last := toks[len(toks)-1]
			eof.Offset = last.End()
			eof.Line = last.Line
			eof.Column = last.Column + len([]rune(last.Text))
		}
		toks = append(toks, eof)
	}
	return &Parser{tokens: toks}
}

// ParseSource lexes src in diagnostics mode and parses the result. The
// returned list holds the lexical diagnostics followed by the syntactic
// ones.
func ParseSource(src string) (*ast.Program, diag.List) {
	res := lexer.TokenizeWithDiagnostics(src)
	p := New(res.Tokens)
	prog := p.Parse()
	diags := make(diag.List, 0, len(res.Diagnostics)+len(p.diags))
	diags = append(diags, res.Diagnostics...)
	diags = append(diags, p.diags...)
	return prog, diags
}

func (p *Parser) HasErrors() bool {
	return p.diags.HasErrors()
}

func (p *Parser) Diagnostics() diag.List {
	return p.diags
}

// Parse builds the program. It always returns a non-nil tree; syntax
// errors are reported through Diagnostics.
func (p *Parser) Parse() (prog *ast.Program) {
	p.pos = 0
	p.diags = nil
	p.eofReported = false

	prog = &ast.Program{Decls: []ast.Decl{}}
	defer func() {
		if r := recover(); r != nil {
			p.diags = append(p.diags, diag.Errorf(p.peek(), "Internal parser error: %v", r))
		}
	}()

	for !p.check(token.EOF) {
		start := p.pos
		decl, err := p.parseDeclaration(false)
		if err != nil {
			p.recoverAt(err, start)
			continue
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog
}

// syntaxError is the panic-mode signal. It unwinds to the nearest
// statement or declaration loop and never leaves the package.
type syntaxError struct {
	tok token.Token
	msg string
}

func (e *syntaxError) Error() string {
	return e.msg
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) error {
	return &syntaxError{tok: tok, msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) report(d diag.Diagnostic) {
	if d.AtEOF() {
		if p.eofReported {
			return
		}
		p.eofReported = true
	}
	p.diags = append(p.diags, d)
}

func (p *Parser) reportAt(tok token.Token, format string, args ...any) {
	p.report(diag.Errorf(tok, format, args...))
}

// recoverAt records err and skips to the next synchronization point.
// start is the token index where the failed construct began.
func (p *Parser) recoverAt(err error, start int) {
	se, ok := err.(*syntaxError)
	if !ok {
		se = &syntaxError{tok: p.peek(), msg: err.Error()}
	}
	p.reportAt(se.tok, "%s", se.msg)
	p.synchronize(start)
}

// synchronize discards tokens up to a statement or declaration boundary:
// past a ';', or before a '}' or a token that starts a declaration or
// statement. At least one token is consumed when the failed construct
// consumed none.
func (p *Parser) synchronize(start int) {
	if p.pos == start && !p.check(token.EOF) {
		if p.advance().Kind == token.Semicolon {
			return
		}
	}
	for !p.check(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.RBrace,
			token.KwFn, token.KwClass, token.KwPublic,
			token.KwInt, token.KwFloat, token.KwBool, token.KwChar, token.KwString, token.KwVoid,
			token.KwIf, token.KwWhile, token.KwFor, token.KwReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorf(p.peek(), "%s", msg)
}

// closeWith consumes a closing token. At end of file it records msg and
// returns false so that the caller can finish its node with what it has.
func (p *Parser) closeWith(kind token.Kind, msg string) (bool, error) {
	if p.check(kind) {
		p.advance()
		return true, nil
	}
	if p.check(token.EOF) {
		p.reportAt(p.peek(), "%s", msg)
		return false, nil
	}
	return false, p.errorf(p.peek(), "%s", msg)
}
