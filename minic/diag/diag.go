// Package diag holds the leveled diagnostics reported by the lexer and
// the parser.
package diag

import (
	"errors"
	"fmt"

	"github.com/dhamidi/minic/minic/token"
)

type Level int

const (
	Error Level = iota
	Warning
	Info
)

func (l Level) String() string {
	switch l {
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	}
	return "Unknown"
}

// Diagnostic is a single report. Token is nil for lexical diagnostics,
// which only know a line and column.
type Diagnostic struct {
	Level   Level
	Message string
	Token   *token.Token
	Line    int
	Column  int
}

func Errorf(tok token.Token, format string, args ...any) Diagnostic {
	return Diagnostic{
		Level:   Error,
		Message: fmt.Sprintf(format, args...),
		Token:   &tok,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (d Diagnostic) AtEOF() bool {
	return d.Token != nil && d.Token.Kind == token.EOF
}

func (d Diagnostic) String() string {
	switch {
	case d.AtEOF():
		return fmt.Sprintf("%s: %s at end of file", d.Level, d.Message)
	case d.Token != nil:
		return fmt.Sprintf("%s: %s at line %d, column %d ('%s')", d.Level, d.Message, d.Token.Line, d.Token.Column, d.Token.Text)
	default:
		return fmt.Sprintf("%s: %s at line %d, column %d", d.Level, d.Message, d.Line, d.Column)
	}
}

type List []Diagnostic

func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Level == Error {
			return true
		}
	}
	return false
}

func (l List) Errors() List {
	var out List
	for _, d := range l {
		if d.Level == Error {
			out = append(out, d)
		}
	}
	return out
}

// Err returns nil when l holds no errors, otherwise one error joining
// every Error-level diagnostic.
func (l List) Err() error {
	var errs []error
	for _, d := range l.Errors() {
		errs = append(errs, errors.New(d.String()))
	}
	return errors.Join(errs...)
}
