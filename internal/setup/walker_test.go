package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/projct/internal/utils"
	"github.com/bethropolis/projct/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(messages *[]string) InfoLogger {
	return func(format string, args ...interface{}) {
		*messages = append(*messages, fmt.Sprintf(format, args...))
	}
}

func TestConfigureWalker_WiresResolverAndOptions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.log\n")
	writeFile(t, root, "app.log", "x")
	writeFile(t, root, "notes.tmp", "x")
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "out.txt", "old dump")

	var infos []string
	resolver, opts, err := ConfigureWalker(WalkerConfig{
		RootDir:        root,
		MaxDepth:       -1,
		UseGitignore:   true,
		OutputFileName: "out.txt",
		IgnorePatterns: []string{" *.tmp ", ""},
		Logger:         &utils.MemoryLogger{},
	}, collect(&infos))
	require.NoError(t, err)
	require.NotNil(t, resolver)
	require.NotNil(t, resolver.Index())

	res, err := walker.Walk(root, resolver, opts...)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "main.go")}, res.Files)
	assert.Contains(t, infos, "Using custom ignore patterns: [*.tmp]")
}

func TestConfigureWalker_GitignoreDisabled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.log\n")
	writeFile(t, root, "app.log", "x")

	resolver, opts, err := ConfigureWalker(WalkerConfig{
		RootDir:      root,
		MaxDepth:     -1,
		UseGitignore: false,
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, resolver.Index())

	res, err := walker.Walk(root, resolver, opts...)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, ".gitignore"),
		filepath.Join(root, "app.log"),
	}, res.Files)
}

func TestConfigureWalker_MaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/deep.txt", "x")
	writeFile(t, root, "top.txt", "x")

	var infos []string
	resolver, opts, err := ConfigureWalker(WalkerConfig{RootDir: root, MaxDepth: 1, UseGitignore: true}, collect(&infos))
	require.NoError(t, err)

	res, err := walker.Walk(root, resolver, opts...)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "top.txt")}, res.Files)
	assert.Contains(t, infos, "Limiting traversal to depth 1.")
}
