package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/diag"
	"github.com/dhamidi/minic/minic/lexer"
	"github.com/dhamidi/minic/minic/token"
)

func parseTokens(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	p := New(toks)
	return p.Parse(), p
}

func messages(diags diag.List) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestMissingSemicolonBeforeBrace(t *testing.T) {
	prog, p := parseTokens(t, "fn main() { x = 5 }")

	require.True(t, p.HasErrors())
	require.Len(t, p.Diagnostics(), 1)
	d := p.Diagnostics()[0]
	assert.Equal(t, diag.Error, d.Level)
	assert.Contains(t, d.Message, "Expected ';'")
	assert.Equal(t, "Error: Expected ';' after expression at line 1, column 19 ('}')", d.String())

	require.Len(t, prog.Decls, 1)
	assert.Equal(t, "main", prog.Decls[0].DeclName())
}

func TestMissingClosingBrace(t *testing.T) {
	prog, p := parseTokens(t, "fn main() { return; ")

	require.True(t, p.HasErrors())
	require.Len(t, p.Diagnostics(), 1)
	d := p.Diagnostics()[0]
	assert.Contains(t, d.Message, "Expected '}'")
	assert.True(t, d.AtEOF())
	assert.True(t, strings.HasSuffix(d.String(), "at end of file"), d.String())

	require.Len(t, prog.Decls, 1)
	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.ReturnStmt{}, stmts[0])
}

func TestRecoveryKeepsFunction(t *testing.T) {
	prog, p := parseTokens(t, "fn main() { int x = ; int y = 10; }")

	require.True(t, p.HasErrors())
	assert.Equal(t, []string{"Expected expression"}, messages(p.Diagnostics()))
	require.NotEmpty(t, prog.Decls)

	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	y := stmts[0].(*ast.VariableDecl)
	assert.Equal(t, "y", y.Name)
	assert.Equal(t, ast.IntValue(10), y.Init.(*ast.LiteralExpr).Value)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	prog, p := parseTokens(t, "fn main() { 10 = x; }")

	require.True(t, p.HasErrors())
	require.Len(t, p.Diagnostics(), 1)
	d := p.Diagnostics()[0]
	assert.Contains(t, d.Message, "Invalid assignment target")
	assert.Equal(t, token.Assign, d.Token.Kind)

	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	bin := stmts[0].(*ast.ExprStmt).X.(*ast.BinaryExpr)
	assert.Equal(t, token.Assign, bin.Op)
	assert.IsType(t, &ast.LiteralExpr{}, bin.Left)
}

func TestAssignableTargets(t *testing.T) {
	for _, src := range []string{"x = 1;", "a[0] = 1;", "p.x = 1;", "a.b[i].c = 1;"} {
		t.Run(src, func(t *testing.T) {
			_, diags := ParseSource("fn main() { " + src + " }")
			assert.Empty(t, diags)
		})
	}
	for _, src := range []string{"f() = 1;", "(a + b) = 1;", "-x = 1;", "new P() = 1;"} {
		t.Run(src, func(t *testing.T) {
			_, diags := ParseSource("fn main() { " + src + " }")
			assert.Equal(t, []string{"Invalid assignment target"}, messages(diags))
		})
	}
}

func TestTruncatedAtEndOfFile(t *testing.T) {
	prog, p := parseTokens(t, "fn main() { x = 5")

	require.True(t, p.HasErrors())
	require.Len(t, p.Diagnostics(), 1)
	assert.True(t, p.Diagnostics()[0].AtEOF())
	assert.Contains(t, p.Diagnostics()[0].Message, "Expected ';'")

	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.ExprStmt{}, stmts[0])
}

func TestTruncatedCallAtEndOfFile(t *testing.T) {
	prog, diags := ParseSource("fn main() { f(1, 2")

	require.Len(t, diags, 1)
	assert.Equal(t, "Expected ')' after arguments", diags[0].Message)

	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	call := stmts[0].(*ast.ExprStmt).X.(*ast.CallExpr)
	assert.Len(t, call.Args, 2)
}

func TestTruncatedParametersAtEndOfFile(t *testing.T) {
	prog, diags := ParseSource("fn main(int a")

	require.Len(t, diags, 1)
	assert.Equal(t, "Expected ')' after parameters", diags[0].Message)
	require.Len(t, prog.Decls, 1)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	assert.Len(t, fn.Params, 1)
	assert.NotNil(t, fn.Body)
}

func TestRecoveryContinuesAfterEachStatement(t *testing.T) {
	prog, diags := ParseSource("fn main() { x = ; y = ; z = 1; }")

	assert.Equal(t, []string{"Expected expression", "Expected expression"}, messages(diags))
	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	assert.Equal(t, "z", stmts[0].(*ast.ExprStmt).X.(*ast.BinaryExpr).Left.(*ast.IdentExpr).Name)
}

func TestRecoveryAtTopLevel(t *testing.T) {
	prog, diags := ParseSource("x = 5; fn main() { }")

	assert.Equal(t, []string{"Expected declaration"}, messages(diags))
	require.Len(t, prog.Decls, 1)
	assert.Equal(t, "main", prog.Decls[0].DeclName())
}

func TestRecoveryInClassBody(t *testing.T) {
	prog, diags := ParseSource("class A { int x = ; int y; } fn main() { }")

	assert.Equal(t, []string{"Expected expression"}, messages(diags))
	require.Len(t, prog.Decls, 2)
	class := prog.Decls[0].(*ast.ClassDecl)
	require.Len(t, class.Members, 1)
	assert.Equal(t, "y", class.Members[0].DeclName())
}

func TestRecoveryStopsAtStatementKeyword(t *testing.T) {
	prog, diags := ParseSource("fn main() { x = 1 + return 2; }")

	assert.Equal(t, []string{"Expected expression"}, messages(diags))
	stmts := mainBody(t, prog)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.ReturnStmt{}, stmts[0])
}

func TestUnexpectedCharacter(t *testing.T) {
	_, p := parseTokens(t, "fn main() { x = @; }")

	require.Len(t, p.Diagnostics(), 1)
	assert.Equal(t, "Unexpected character '@'", p.Diagnostics()[0].Message)
}

func TestLexicalDiagnosticsComeFirst(t *testing.T) {
	_, diags := ParseSource("fn main() { x = @; }")

	assert.Equal(t, []string{"Unknown character '@'", "Expected expression"}, messages(diags))
	assert.Nil(t, diags[0].Token)
	assert.Equal(t, 17, diags[0].Column)
}

func TestLiteralErrors(t *testing.T) {
	prog, diags := ParseSource("int big = 99999999999999999999; char c = 'ab';")

	assert.Equal(t, []string{"Integer literal out of range", "Invalid character literal"}, messages(diags))
	require.Len(t, prog.Decls, 2)
	assert.Equal(t, ast.IntValue(0), prog.Decls[0].(*ast.VariableDecl).Init.(*ast.LiteralExpr).Value)
	assert.Equal(t, ast.CharValue(0), prog.Decls[1].(*ast.VariableDecl).Init.(*ast.LiteralExpr).Value)
}

func TestMalformedInputTerminates(t *testing.T) {
	inputs := []string{
		"}}}}",
		")(",
		"fn",
		"class",
		"fn main(",
		"fn main() { if",
		"fn main() { if ( }",
		"fn main() { for (int i = 0",
		"fn main() { while (x) }",
		"new",
		"int",
		"= = =",
		"class A { fn }",
		"class A { class B { } }",
		"public",
		"fn main() { a ? b }",
		"fn main() { a.; }",
		"fn main() { new 5; }",
		"fn main() { new Point; }",
		"fn main() { x = [1]; }",
		"fn f(int) { }",
		";;;",
		"fn main() { ; }",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			prog, diags := ParseSource(src)
			require.NotNil(t, prog)
			assert.NotNil(t, prog.Decls)
			assert.True(t, diags.HasErrors(), "expected errors for %q", src)
		})
	}
}

func TestOnlyFirstEndOfFileDiagnostic(t *testing.T) {
	_, diags := ParseSource("class A { fn f() { if (x) { y = (1 + ")

	eofs := 0
	for _, d := range diags {
		if d.AtEOF() {
			eofs++
		}
	}
	assert.Equal(t, 1, eofs)
}

func TestDiagnosticsErr(t *testing.T) {
	_, diags := ParseSource("fn main() { x = 5 }")
	err := diags.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected ';' after expression")

	_, diags = ParseSource("fn main() { }")
	assert.NoError(t, diags.Err())
}
