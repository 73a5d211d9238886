// Package config loads the analyzer's optional `.swayanalyzer.yaml`
// options file (§6 "Configuration") and layers CLI flag values on top of
// it, the same two-layer precedence the CLI entry point (cmd/swayanalyzer)
// applies before a run starts.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options mirrors §6's recognized configuration fields.
type Options struct {
	DisplayFormat string   `yaml:"display_format"`
	Directory     string   `yaml:"directory"`
	Files         []string `yaml:"files"`
	Detectors     []string `yaml:"detectors"`
	Sorting       string   `yaml:"sorting"`
}

// Load reads and parses a YAML options file. A missing file is not an
// error here — the CLI treats "no options file" as "use flag defaults"
// — callers that require the file to exist should stat it first.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Options{}, nil
		}
		return nil, err
	}
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Merge layers cli over base: any non-zero-value field on cli wins, so a
// flag the user actually passed always overrides the options file, and an
// omitted flag falls through to whatever the file (or the flag default)
// already set.
func Merge(base, cli *Options) *Options {
	out := *base
	if cli.DisplayFormat != "" {
		out.DisplayFormat = cli.DisplayFormat
	}
	if cli.Directory != "" {
		out.Directory = cli.Directory
	}
	if len(cli.Files) > 0 {
		out.Files = cli.Files
	}
	if len(cli.Detectors) > 0 {
		out.Detectors = cli.Detectors
	}
	if cli.Sorting != "" {
		out.Sorting = cli.Sorting
	}
	return &out
}
