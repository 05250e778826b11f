package format

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/minic/minic/diag"
	"github.com/dhamidi/minic/minic/token"
)

type TokenJSONEncoder struct {
	w io.Writer
}

func NewTokenJSONEncoder(w io.Writer) *TokenJSONEncoder {
	return &TokenJSONEncoder{w: w}
}

func (e *TokenJSONEncoder) Encode(toks []token.Token, diags diag.List) error {
	text, err := e.MarshalText(toks, diags)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *TokenJSONEncoder) MarshalText(toks []token.Token, diags diag.List) ([]byte, error) {
	return json.MarshalIndent(newTokenDocument(toks, diags), "", "  ")
}

type TokenYAMLEncoder struct {
	w io.Writer
}

func NewTokenYAMLEncoder(w io.Writer) *TokenYAMLEncoder {
	return &TokenYAMLEncoder{w: w}
}

func (e *TokenYAMLEncoder) Encode(toks []token.Token, diags diag.List) error {
	text, err := e.MarshalText(toks, diags)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenYAMLEncoder) MarshalText(toks []token.Token, diags diag.List) ([]byte, error) {
	return yaml.Marshal(newTokenDocument(toks, diags))
}

type tokenDocument struct {
	Tokens      []tokenRecord      `json:"tokens" yaml:"tokens"`
	Diagnostics []diagnosticRecord `json:"diagnostics" yaml:"diagnostics"`
}

type tokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Offset int    `json:"offset" yaml:"offset"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func newTokenDocument(toks []token.Token, diags diag.List) tokenDocument {
	doc := tokenDocument{
		Tokens:      make([]tokenRecord, len(toks)),
		Diagnostics: diagnosticRecords(diags),
	}
	for i, tok := range toks {
		doc.Tokens[i] = tokenRecord{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: tok.Offset,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}
	return doc
}

// diagnosticRecord is the serialized form of a diagnostic. Token holds
// the offending token's text; it is empty for lexical diagnostics and
// for diagnostics at end of file, which set EOF instead.
type diagnosticRecord struct {
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Token   string `json:"token,omitempty" yaml:"token,omitempty"`
	EOF     bool   `json:"eof,omitempty" yaml:"eof,omitempty"`
}

func diagnosticRecords(diags diag.List) []diagnosticRecord {
	out := make([]diagnosticRecord, len(diags))
	for i, d := range diags {
		out[i] = diagnosticRecord{
			Level:   d.Level.String(),
			Message: d.Message,
			Line:    d.Line,
			Column:  d.Column,
			EOF:     d.AtEOF(),
		}
		if d.Token != nil && !d.AtEOF() {
			out[i].Token = d.Token.Text
		}
	}
	return out
}
