package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/projct/internal/printer"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projct.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.General.Path)
	assert.True(t, cfg.General.UseGitignore)
	assert.Nil(t, cfg.General.MaxDepth)
	assert.Equal(t, DefaultOutputFile, cfg.Output.Filename)
	assert.Equal(t, DefaultMaxFileSize, cfg.Output.MaxFileSize)
	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, -1, cfg.MaxDepth())
}

func TestDefault_MaxFileSizeMatchesPrinter(t *testing.T) {
	assert.Equal(t, printer.DefaultMaxFileSize, Default().Output.MaxFileSize)
	assert.Equal(t, printer.New().MaxFileSize(), DefaultMaxFileSize)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[general]
path = "src"
max_depth = 3
use_gitignore = false
show_ignored = true
show_binary = true

[output]
filename = "dump.txt"
max_file_size = 2048
show_line_numbers = true

[filters]
include_patterns = ["*.go", "*.md"]
exclude_patterns = ["*_test.go"]
ignore_patterns = ["vendor/"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.General.Path)
	require.NotNil(t, cfg.General.MaxDepth)
	assert.Equal(t, 3, cfg.MaxDepth())
	assert.False(t, cfg.General.UseGitignore)
	assert.True(t, cfg.General.ShowIgnored)
	assert.True(t, cfg.General.ShowBinary)
	assert.Equal(t, "dump.txt", cfg.Output.Filename)
	assert.Equal(t, int64(2048), cfg.Output.MaxFileSize)
	assert.True(t, cfg.Output.ShowLineNumbers)
	assert.Equal(t, []string{"*.go", "*.md"}, cfg.Filters.IncludePatterns)
	assert.Equal(t, []string{"*_test.go"}, cfg.Filters.ExcludePatterns)
	assert.Equal(t, []string{"vendor/"}, cfg.Filters.IgnorePatterns)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[output]\nfilename = \"x.txt\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "x.txt", cfg.Output.Filename)
	assert.Equal(t, ".", cfg.General.Path)
	assert.True(t, cfg.General.UseGitignore)
	assert.Equal(t, DefaultMaxFileSize, cfg.Output.MaxFileSize)
	assert.Nil(t, cfg.General.MaxDepth)
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[general\npath = "))
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Default().General, cfg.General)
	assert.Equal(t, DefaultOutputFile, cfg.Output.Filename)
}

func TestLoad_DirectoryIsAnError(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, DefaultOutputFile, cfg.Output.Filename)
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	depth := 5
	cfg := Default()
	cfg.General.MaxDepth = &depth
	cfg.Output.Filename = "from-config.txt"

	fs := pflag.NewFlagSet("projct", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--line-numbers",
		"--no-gitignore",
		"--max-size", "10",
		"--ignore", "*.tmp,dist/",
		"--exclude", "*.lock",
		"-q",
		"--no-color",
	}))
	require.NoError(t, ApplyFlags(cfg, fs))

	assert.Equal(t, 5, cfg.MaxDepth(), "unset flag keeps the config value")
	assert.Equal(t, "from-config.txt", cfg.Output.Filename)
	assert.True(t, cfg.Output.ShowLineNumbers)
	assert.False(t, cfg.General.UseGitignore)
	assert.Equal(t, int64(10), cfg.Output.MaxFileSize)
	assert.Equal(t, []string{"*.tmp", "dist/"}, cfg.Filters.IgnorePatterns)
	assert.Equal(t, []string{"*.lock"}, cfg.Filters.ExcludePatterns)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.UseColors)
}

func TestApplyFlags_MaxDepth(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "zero", args: []string{"--max-depth", "0"}, want: 0},
		{name: "positive", args: []string{"--max-depth=2"}, want: 2},
		{name: "negative clears", args: []string{"--max-depth", "-1"}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth := 7
			cfg := Default()
			cfg.General.MaxDepth = &depth

			fs := pflag.NewFlagSet("projct", pflag.ContinueOnError)
			RegisterFlags(fs)
			require.NoError(t, fs.Parse(tt.args))
			require.NoError(t, ApplyFlags(cfg, fs))
			assert.Equal(t, tt.want, cfg.MaxDepth())
		})
	}
}

func TestWriteDefault_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projct.toml")
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[general]")
	assert.Contains(t, string(data), "[output]")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.General.Path)
	assert.Equal(t, DefaultOutputFile, cfg.Output.Filename)
}
