package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourovoros-io/sway-analyzer-go/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "token", "Forc.toml"), "[project]\nname = \"token\"\n")
	writeFile(t, filepath.Join(root, "token", "src", "main.sw"), "contract;\n")
	// A stray manifest with no src/ sibling must not be discovered.
	writeFile(t, filepath.Join(root, "not_a_project", "Forc.toml"), "[project]\nname = \"orphan\"\n")

	d := project.New()
	projects, err := d.Discover(root)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "token", projects[0].Name)
	assert.Equal(t, filepath.Join(root, "token"), projects[0].RootPath)
}

func TestSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Forc.toml"), "[project]\nname = \"demo\"\n")
	writeFile(t, filepath.Join(root, "src", "main.sw"), "contract;\n")
	writeFile(t, filepath.Join(root, "src", "utils.sw"), "library;\n")
	writeFile(t, filepath.Join(root, "src", "README.md"), "not source\n")

	p := &project.Project{RootPath: root, Name: "demo"}
	files, err := p.SourceFiles("")
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, ".sw", filepath.Ext(f))
	}
}
