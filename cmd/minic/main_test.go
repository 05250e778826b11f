package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout.String(), stderr.String(), err}
}

// workspace switches into a temporary directory holding the given files
// and a colourless minic.toml.
func workspace(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	files["minic.toml"] = "[output]\ncolor = false\n"
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestTokensCmd(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "int x;"})

	res := run(t, "tokens", "main.mc")
	require.NoError(t, res.err)
	assert.Equal(t, "Token(int, 'int' at 1:1)\nToken(Identifier, 'x' at 1:5)\nToken(;, ';' at 1:6)\nToken(EOF, '' at 1:7)\n", res.stdout)
}

func TestTokensCmdStrictError(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "string s = \"open"})

	res := run(t, "tokens", "main.mc")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "Unterminated string")
	assert.Empty(t, res.stdout)
}

func TestTokensCmdDiagnostics(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "int x @ 1;"})

	res := run(t, "tokens", "--diagnostics", "--format", "json", "main.mc")
	require.ErrorIs(t, res.err, errHasErrors)

	var doc struct {
		Tokens      []map[string]any `json:"tokens"`
		Diagnostics []map[string]any `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
	assert.Len(t, doc.Tokens, 5)
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, "Unknown character '@'", doc.Diagnostics[0]["message"])
}

func TestParseCmd(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "fn main() { x = 1 + 2; }"})

	res := run(t, "parse", "main.mc")
	require.NoError(t, res.err)
	assert.Equal(t, `Program
  FunctionDecl main() -> void
    BlockStmt
      ExprStmt
        BinaryExpr =
          IdentExpr x
          BinaryExpr +
            LiteralExpr 1
            LiteralExpr 2
`, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestParseCmdPositions(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "int x = 1;"})

	res := run(t, "parse", "--positions", "main.mc")
	require.NoError(t, res.err)
	assert.Equal(t, "Program\n  VariableDecl int x [1:5]\n    LiteralExpr 1 [1:9]\n", res.stdout)
}

func TestParseCmdReportsDiagnostics(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "fn main() { x = 5 }"})

	res := run(t, "parse", "main.mc")
	require.ErrorIs(t, res.err, errHasErrors)
	assert.Contains(t, res.stdout, "FunctionDecl main() -> void")
	assert.Equal(t, "main.mc:1:19: Error: Expected ';' after expression ('}')\n", res.stderr)
}

func TestParseCmdYAML(t *testing.T) {
	workspace(t, map[string]string{"main.mc": "int x = 1;"})

	res := run(t, "parse", "-f", "yaml", "main.mc")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "kind: VariableDecl")
}

func TestParseCmdFormatFromConfig(t *testing.T) {
	workspace(t, map[string]string{
		"main.mc":   "int x = 1;",
		"json.toml": "[output]\nformat = \"json\"\ncolor = false\n",
	})

	res := run(t, "--config", "json.toml", "parse", "main.mc")
	require.NoError(t, res.err)
	assert.True(t, json.Valid([]byte(res.stdout)), res.stdout)
}

func TestCheckCmd(t *testing.T) {
	workspace(t, map[string]string{
		"good.mc": "fn main() { }",
		"bad.mc":  "fn main() {\n  return\n}",
	})

	res := run(t, "check", "good.mc", "bad.mc")
	require.ErrorIs(t, res.err, errHasErrors)
	assert.Equal(t, "bad.mc:3:1: Error: Expected ';' after return value ('}')\n2 file(s) checked, 1 error(s)\n", res.stdout)

	res = run(t, "check", "good.mc")
	require.NoError(t, res.err)
	assert.Equal(t, "1 file(s) checked, no errors\n", res.stdout)
}

func TestCheckCmdMaxBytes(t *testing.T) {
	workspace(t, map[string]string{
		"main.mc":    "fn main() { }",
		"small.toml": "[input]\nmax_bytes = 4\n",
	})

	res := run(t, "--config", "small.toml", "check", "main.mc")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "larger than input.max_bytes (4)")
}

func TestBadConfig(t *testing.T) {
	workspace(t, map[string]string{
		"main.mc":  "int x;",
		"bad.toml": "[output]\nformat = \"xml\"\n",
	})

	res := run(t, "--config", "bad.toml", "parse", "main.mc")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "load config")
}

func TestMissingFile(t *testing.T) {
	workspace(t, map[string]string{})

	res := run(t, "parse", "absent.mc")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, os.ErrNotExist)
}

func TestGrammarCmd(t *testing.T) {
	workspace(t, map[string]string{})

	res := run(t, "grammar")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Program     = { Declaration } .")

	res = run(t, "grammar", "--terminals")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "->")
	assert.Contains(t, res.stdout, "while")
}
