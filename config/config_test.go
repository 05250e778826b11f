package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minic.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(4<<20), cfg.Input.MaxBytes)
	assert.Equal(t, "tree", cfg.Output.Format)
	assert.True(t, cfg.UseColor())
	assert.Nil(t, cfg.LogFile())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[input]
max_bytes = 1024

[output]
format = "json"
color = false

[log]
verbosity = 2
file = "/tmp/minic.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1024), cfg.Input.MaxBytes)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.UseColor())
	assert.Equal(t, 2, cfg.Log.Verbosity)
	require.NotNil(t, cfg.LogFile())
	assert.Equal(t, "/tmp/minic.log", *cfg.LogFile())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[output]\nformat = \"yaml\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, int64(4<<20), cfg.Input.MaxBytes)
	assert.True(t, cfg.UseColor())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"syntax", "[input\n", "failed to parse config"},
		{"unknown key", "[output]\nstyle = \"x\"\n", `unknown config key "output.style"`},
		{"bad format", "[output]\nformat = \"xml\"\n", "output.format"},
		{"negative size", "[input]\nmax_bytes = -1\n", "input.max_bytes"},
		{"verbosity", "[log]\nverbosity = 9\n", "log.verbosity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultPath, []byte("[log]\nverbosity = 1\n"), 0o644))
	cfg, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Log.Verbosity)
}
