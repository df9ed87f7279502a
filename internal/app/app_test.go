package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/projct/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newConfig(root, output string) *config.Config {
	cfg := config.Default()
	cfg.General.Path = root
	cfg.Output.Filename = output
	cfg.Quiet = true
	return cfg
}

func fixture(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "proj")
	writeFile(t, root, ".gitignore", "build/\n*.log\n")
	writeFile(t, root, "build/keep.txt", "kept")
	writeFile(t, root, "build/.gitignore", "!keep.txt\n")
	writeFile(t, root, "build/other.txt", "dropped")
	writeFile(t, root, "debug.log", "noise")
	writeFile(t, root, "src/main.go", "package main\n")
	writeFile(t, root, "logo.png", "\x89PNG\x00\x00")
	writeFile(t, root, "README.md", "# proj\n")
	return root
}

func TestRun_WritesTreeAndContents(t *testing.T) {
	root := fixture(t)
	output := filepath.Join(root, "output.txt")

	require.NoError(t, New(newConfig(root, output), &bytes.Buffer{}).Run())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "proj/\n" +
		"├── src/\n" +
		"│   └── main.go\n" +
		"└── README.md\n" +
		"\n" + filepath.Join("src", "main.go") + ":\npackage main\n" +
		"\nREADME.md:\n# proj\n"
	assert.Equal(t, want, string(data))
}

func TestRun_RerunExcludesOwnOutput(t *testing.T) {
	root := fixture(t)
	output := filepath.Join(root, "output.txt")
	cfg := newConfig(root, output)

	require.NoError(t, New(cfg, &bytes.Buffer{}).Run())
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, New(cfg, &bytes.Buffer{}).Run())
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.NotContains(t, string(second), "output.txt")
}

func TestRun_FiltersAndLineNumbers(t *testing.T) {
	root := fixture(t)
	output := filepath.Join(t.TempDir(), "dump.txt")
	cfg := newConfig(root, output)
	cfg.Filters.IncludePatterns = []string{"*.go", "*.md"}
	cfg.Filters.ExcludePatterns = []string{"README*"}
	cfg.Output.ShowLineNumbers = true

	require.NoError(t, New(cfg, &bytes.Buffer{}).Run())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "└── README.md\n", "filters do not touch the tree")
	assert.True(t, strings.HasSuffix(text, "\n"+filepath.Join("src", "main.go")+":\n   1: package main\n"), text)
	assert.NotContains(t, text, "keep.txt:")
}

func TestRun_ShowSkipped(t *testing.T) {
	root := fixture(t)
	cfg := newConfig(root, filepath.Join(t.TempDir(), "out.txt"))
	cfg.ShowSkipped = true
	var stderr bytes.Buffer

	require.NoError(t, New(cfg, &stderr).Run())
	assert.Contains(t, stderr.String(), "Skipped FILE: debug.log [Ignored (Gitignore/Custom Rule)]")
	assert.Contains(t, stderr.String(), "Skipped FILE: logo.png [Skipped (Binary File)]")
	assert.Contains(t, stderr.String(), "Skipped DIR : build [Ignored (Gitignore/Custom Rule)]")
}

func TestRun_InvalidRoot(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "file.txt", "x")

	err := New(newConfig(filepath.Join(tmp, "missing"), filepath.Join(tmp, "o.txt")), &bytes.Buffer{}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = New(newConfig(filepath.Join(tmp, "file.txt"), filepath.Join(tmp, "o.txt")), &bytes.Buffer{}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRun_OutputNotCreatable(t *testing.T) {
	root := fixture(t)
	output := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")

	err := New(newConfig(root, output), &bytes.Buffer{}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
