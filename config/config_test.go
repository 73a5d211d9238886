package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourovoros-io/sway-analyzer-go/config"
)

func TestLoadMissingFile(t *testing.T) {
	o, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &config.Options{}, o)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
display_format: json
directory: ./contracts
detectors: [weak-prng, magic-number]
sorting: severity
`), 0o644))

	o, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", o.DisplayFormat)
	assert.Equal(t, "./contracts", o.Directory)
	assert.Equal(t, []string{"weak-prng", "magic-number"}, o.Detectors)
	assert.Equal(t, "severity", o.Sorting)
}

func TestMergePrefersCLI(t *testing.T) {
	base := &config.Options{DisplayFormat: "text", Directory: "./file-opts", Sorting: "line"}
	cli := &config.Options{Directory: "./cli-opts"}

	merged := config.Merge(base, cli)
	assert.Equal(t, "text", merged.DisplayFormat) // untouched by cli
	assert.Equal(t, "./cli-opts", merged.Directory) // cli wins
	assert.Equal(t, "line", merged.Sorting)
}
