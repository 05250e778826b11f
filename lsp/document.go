package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/diag"
	"github.com/dhamidi/minic/minic/parser"
	"github.com/dhamidi/minic/minic/token"
)

// document is one open text document and the result of parsing it.
type document struct {
	uri     protocol.DocumentUri
	version protocol.Integer
	text    string
	lines   []string
	prog    *ast.Program
	diags   diag.List
}

func newDocument(uri protocol.DocumentUri, version protocol.Integer, text string, maxBytes int64) *document {
	doc := &document{
		uri:     uri,
		version: version,
		text:    text,
		lines:   strings.Split(text, "\n"),
	}
	if maxBytes > 0 && int64(len(text)) > maxBytes {
		doc.prog = &ast.Program{Decls: []ast.Decl{}}
		doc.diags = diag.List{{
			Level:   diag.Error,
			Message: fmt.Sprintf("File is larger than %d bytes and was not parsed", maxBytes),
			Line:    1,
			Column:  1,
		}}
		return doc
	}
	doc.prog, doc.diags = parser.ParseSource(text)
	return doc
}

// position converts a 1-based line and rune column into an LSP position,
// whose character offset counts UTF-16 code units.
func (d *document) position(line, column int) protocol.Position {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	pos := protocol.Position{Line: protocol.UInteger(line - 1)}
	if line > len(d.lines) {
		return pos
	}
	runes := []rune(d.lines[line-1])
	if column-1 > len(runes) {
		column = len(runes) + 1
	}
	pos.Character = protocol.UInteger(len(utf16.Encode(runes[:column-1])))
	return pos
}

// lineColumn is the inverse of position.
func (d *document) lineColumn(pos protocol.Position) (int, int) {
	line := int(pos.Line) + 1
	if line > len(d.lines) {
		return line, int(pos.Character) + 1
	}
	units := 0
	column := 1
	for _, r := range d.lines[line-1] {
		if units >= int(pos.Character) {
			break
		}
		units += len(utf16.Encode([]rune{r}))
		column++
	}
	return line, column
}

// tokenRange spans tok on its line. Zero-width tokens such as EOF get a
// one-character range.
func (d *document) tokenRange(tok token.Token) protocol.Range {
	start := d.position(tok.Line, tok.Column)
	width := len([]rune(tok.Text))
	if width == 0 {
		width = 1
	}
	return protocol.Range{Start: start, End: d.position(tok.Line, tok.Column+width)}
}

func (d *document) diagnostics() []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(d.diags))
	source := lsName
	for _, dg := range d.diags {
		var rng protocol.Range
		if dg.Token != nil {
			rng = d.tokenRange(*dg.Token)
		} else {
			start := d.position(dg.Line, dg.Column)
			rng = protocol.Range{Start: start, End: d.position(dg.Line, dg.Column+1)}
		}
		severity := severity(dg.Level)
		out = append(out, protocol.Diagnostic{
			Range:    rng,
			Severity: &severity,
			Source:   &source,
			Message:  dg.Message,
		})
	}
	return out
}

func severity(level diag.Level) protocol.DiagnosticSeverity {
	switch level {
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	case diag.Info:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityError
}

func (d *document) symbols() []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, decl := range d.prog.Decls {
		symbols = append(symbols, d.symbol(decl, false))
	}
	return symbols
}

func (d *document) symbol(decl ast.Decl, member bool) protocol.DocumentSymbol {
	rng := d.tokenRange(decl.Token())
	sym := protocol.DocumentSymbol{
		Name:           decl.DeclName(),
		Range:          rng,
		SelectionRange: rng,
	}
	detail := signature(decl)
	if detail != "" {
		sym.Detail = &detail
	}

	switch n := decl.(type) {
	case *ast.ClassDecl:
		sym.Kind = protocol.SymbolKindClass
		for _, m := range n.Members {
			sym.Children = append(sym.Children, d.symbol(m, true))
		}
	case *ast.FunctionDecl:
		sym.Kind = protocol.SymbolKindFunction
		if member {
			sym.Kind = protocol.SymbolKindMethod
		}
	case *ast.VariableDecl:
		sym.Kind = protocol.SymbolKindVariable
		if member {
			sym.Kind = protocol.SymbolKindField
		}
	default:
		sym.Kind = protocol.SymbolKindVariable
	}
	return sym
}

// signature renders the declared type of decl, as shown in symbol details
// and hovers.
func signature(n ast.Node) string {
	switch n := n.(type) {
	case *ast.FunctionDecl:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.TypeName + " " + p.Name
		}
		return fmt.Sprintf("fn %s(%s) -> %s", n.Name, strings.Join(params, ", "), n.ReturnType)
	case *ast.VariableDecl:
		return n.TypeName + " " + n.Name
	case *ast.ParameterDecl:
		return n.TypeName + " " + n.Name
	case *ast.ClassDecl:
		return "class " + n.Name
	}
	return ""
}

// nodeAt returns the innermost node whose token covers the given 1-based
// line and column, or nil.
func (d *document) nodeAt(line, column int) ast.Node {
	var found ast.Node
	ast.Inspect(d.prog, func(n ast.Node) bool {
		tok := n.Token()
		if tok.Line == line && column >= tok.Column && column < tok.Column+max(len([]rune(tok.Text)), 1) {
			found = n
		}
		return true
	})
	return found
}

func (d *document) hover(pos protocol.Position) *protocol.Hover {
	line, column := d.lineColumn(pos)
	n := d.nodeAt(line, column)
	if n == nil {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**", n.Kind())
	if sig := signature(n); sig != "" {
		fmt.Fprintf(&sb, "\n\n```minic\n%s\n```", sig)
	} else if tok := n.Token(); tok.Text != "" {
		fmt.Fprintf(&sb, " `%s`", tok.Text)
	}
	if lit, ok := n.(*ast.LiteralExpr); ok && lit.Value != nil {
		fmt.Fprintf(&sb, "\n\nvalue: `%s`", lit.Value)
	}

	rng := d.tokenRange(n.Token())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sb.String(),
		},
		Range: &rng,
	}
}
