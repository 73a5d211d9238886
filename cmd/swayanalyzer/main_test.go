package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/config"
)

func TestExecuteNoopWhenNothingRequested(t *testing.T) {
	err := execute(&config.Options{}, false)
	assert.NoError(t, err)
}

func TestExecuteFailsWithoutLinkedParser(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.sw")
	require.NoError(t, os.WriteFile(file, []byte("contract;\n"), 0o644))

	prev := Parse
	Parse = nil
	defer func() { Parse = prev }()

	err := execute(&config.Options{Files: []string{file}}, false)
	assert.Error(t, err)
}

func TestExecuteRunsWithLinkedParser(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.sw")
	require.NoError(t, os.WriteFile(file, []byte("contract;\n"), 0o644))

	prev := Parse
	Parse = func(path string, src []byte) (*swayast.Module, error) {
		return &swayast.Module{}, nil
	}
	defer func() { Parse = prev }()

	err := execute(&config.Options{Files: []string{file}, Detectors: []string{"magic-number"}}, false)
	assert.NoError(t, err)
}

func TestCollectFilesDeduplicatesAndSorts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "proj", "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proj", "Forc.toml"), []byte("[project]\nname = \"proj\"\n"), 0o644))
	a := filepath.Join(dir, "proj", "src", "a.sw")
	b := filepath.Join(dir, "proj", "src", "b.sw")
	require.NoError(t, os.WriteFile(a, []byte("library;\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("library;\n"), 0o644))

	files, err := collectFiles(&config.Options{Directory: dir, Files: []string{a}}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}
