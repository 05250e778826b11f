// Package lexer turns MiniC source text into tokens.
//
// A Lexer owns a mutable cursor and is not safe for concurrent use. Both
// Tokenize and TokenizeWithDiagnostics rescan from the start of the
// source, so calling them again on the same Lexer yields the same tokens.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/minic/minic/diag"
	"github.com/dhamidi/minic/minic/token"
)

// Error is a fatal lexical error.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

type Result struct {
	Tokens      []token.Token
	Diagnostics diag.List
}

func (r Result) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}

type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

func New(source string) *Lexer {
	return &Lexer{input: source, line: 1, column: 1}
}

func Tokenize(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

func TokenizeWithDiagnostics(source string) Result {
	return New(source).TokenizeWithDiagnostics()
}

func (l *Lexer) reset() {
	l.pos = 0
	l.line = 1
	l.column = 1
}

// Tokenize scans the whole source and stops at the first lexical error.
// Unrecognised characters are returned as token.Bad tokens.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	l.reset()
	var tokens []token.Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return append(tokens, l.eof()), nil
}

// TokenizeWithDiagnostics never fails. Lexical errors and unrecognised
// characters become Error diagnostics and scanning resumes after the
// offending run of characters.
func (l *Lexer) TokenizeWithDiagnostics() Result {
	l.reset()
	var res Result
	for {
		tok, ok, err := l.next()
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, diag.Diagnostic{
				Level:   diag.Error,
				Message: err.Message,
				Line:    err.Line,
				Column:  err.Column,
			})
			l.skipRun()
			continue
		}
		if !ok {
			break
		}
		if tok.Kind == token.Bad {
			res.Diagnostics = append(res.Diagnostics, diag.Diagnostic{
				Level:   diag.Error,
				Message: fmt.Sprintf("Unknown character '%s'", tok.Text),
				Line:    tok.Line,
				Column:  tok.Column,
			})
			continue
		}
		res.Tokens = append(res.Tokens, tok)
	}
	res.Tokens = append(res.Tokens, l.eof())
	return res
}

func (l *Lexer) eof() token.Token {
	return token.Token{Kind: token.EOF, Offset: l.pos, Line: l.line, Column: l.column}
}

// skipRun advances past contiguous punctuation so that recovery never
// rescans the character that caused the error.
func (l *Lexer) skipRun() {
	for {
		ch := l.peek()
		if l.pos >= len(l.input) || unicode.IsSpace(ch) || unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '"' || ch == '\'' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) errorf(line, column int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

func (l *Lexer) peek() rune {
	return l.peekN(0)
}

func (l *Lexer) peekN(n int) rune {
	pos := l.pos
	for i := 0; ; i++ {
		if pos >= len(l.input) {
			return 0
		}
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if i == n {
			return r
		}
		pos += size
	}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) match(want rune) bool {
	if l.peek() != want {
		return false
	}
	l.advance()
	return true
}

// next returns the next token, or ok == false at end of input.
func (l *Lexer) next() (tok token.Token, ok bool, err *Error) {
	for {
		for unicode.IsSpace(l.peek()) {
			l.advance()
		}
		if l.pos >= len(l.input) {
			return token.Token{}, false, nil
		}
		if l.peek() == '/' && l.peekN(1) == '/' {
			l.skipLineComment()
			continue
		}
		if l.peek() == '/' && l.peekN(1) == '*' {
			if err := l.skipBlockComment(); err != nil {
				return token.Token{}, false, err
			}
			continue
		}
		break
	}

	ch := l.peek()
	switch {
	case isDigit(ch):
		tok, err = l.scanNumber()
	case unicode.IsLetter(ch) || ch == '_':
		tok = l.scanIdentOrKeyword()
	case ch == '"' || ch == '\'':
		tok, err = l.scanQuoted()
	default:
		tok, err = l.scanOperator()
	}
	if err != nil {
		return token.Token{}, false, err
	}
	return tok, true, nil
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() *Error {
	l.advance()
	l.advance()
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
	return l.errorf(l.line, l.column, "Unterminated block comment")
}

type mark struct {
	offset int
	line   int
	column int
}

func (l *Lexer) mark() mark {
	return mark{offset: l.pos, line: l.line, column: l.column}
}

func (l *Lexer) token(kind token.Kind, start mark, text string) token.Token {
	return token.Token{Kind: kind, Text: text, Offset: start.offset, Line: start.line, Column: start.column}
}

func (l *Lexer) scanNumber() (token.Token, *Error) {
	start := l.mark()
	kind := token.Number

	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		kind = token.Float
		l.advance()
		if !isDigit(l.peek()) {
			return token.Token{}, l.errorf(l.line, l.column, "Expected digit after '.' in number")
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		kind = token.Float
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			return token.Token{}, l.errorf(l.line, l.column, "Expected digit in exponent")
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	return l.token(kind, start, l.input[start.offset:l.pos]), nil
}

func (l *Lexer) scanIdentOrKeyword() token.Token {
	start := l.mark()
	l.advance()
	for {
		ch := l.peek()
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			break
		}
		l.advance()
	}
	text := l.input[start.offset:l.pos]
	return l.token(token.Lookup(text), start, text)
}

// scanQuoted reads a string or char literal, decoding escapes. The token
// text keeps the quotes around the decoded content.
func (l *Lexer) scanQuoted() (token.Token, *Error) {
	start := l.mark()
	quote := l.advance()
	kind, what := token.String, "string"
	if quote == '\'' {
		kind, what = token.Char, "character"
	}

	var sb strings.Builder
	sb.WriteRune(quote)
	for l.peek() != quote {
		if l.pos >= len(l.input) {
			return token.Token{}, l.errorf(start.line, start.column, "Unterminated %s literal", what)
		}
		if l.peek() == '\\' {
			l.advance()
			r, err := l.scanEscape()
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(l.advance())
	}
	l.advance()
	sb.WriteRune(quote)
	return l.token(kind, start, sb.String()), nil
}

func (l *Lexer) scanEscape() (rune, *Error) {
	if l.pos >= len(l.input) {
		return 0, l.errorf(l.line, l.column, "Unterminated escape sequence")
	}
	var r rune
	switch ch := l.peek(); ch {
	case 'n':
		r = '\n'
	case 'r':
		r = '\r'
	case 't':
		r = '\t'
	case '\\':
		r = '\\'
	case '\'':
		r = '\''
	case '"':
		r = '"'
	case '0':
		r = 0
	default:
		return 0, l.errorf(l.line, l.column, "Unknown escape sequence: \\%c", ch)
	}
	l.advance()
	return r, nil
}

func (l *Lexer) scanOperator() (token.Token, *Error) {
	start := l.mark()
	ch := l.advance()

	var kind token.Kind
	switch ch {
	case '=':
		kind = token.Assign
		if l.match('=') {
			kind = token.Eq
		}
	case '!':
		kind = token.Not
		if l.match('=') {
			kind = token.NotEq
		}
	case '<':
		kind = token.Less
		if l.match('=') {
			kind = token.LessEq
		}
	case '>':
		kind = token.Greater
		if l.match('=') {
			kind = token.GreaterEq
		}
	case '&':
		if !l.match('&') {
			return token.Token{}, l.errorf(l.line, l.column, "Expected '&'")
		}
		kind = token.And
	case '|':
		if !l.match('|') {
			return token.Token{}, l.errorf(l.line, l.column, "Expected '|'")
		}
		kind = token.Or
	case '-':
		kind = token.Minus
		if l.match('>') {
			kind = token.Arrow
		}
	case '+':
		kind = token.Plus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	default:
		kind = token.Bad
	}
	return l.token(kind, start, l.input[start.offset:l.pos]), nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
