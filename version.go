// Package swayanalyzer exposes the module's own self-description, parsed
// from its embedded go.mod the same way the teacher's
// inspector/repository.Detector.extractGoModuleName parses a target Go
// project's go.mod with golang.org/x/mod/modfile — here turned inward, to
// back the CLI's `--version` banner.
package swayanalyzer

import (
	_ "embed"

	"golang.org/x/mod/modfile"
)

//go:embed go.mod
var goModSource []byte

// ModulePath returns this analyzer's own module path, as declared in its
// go.mod, or "" if the embedded file somehow fails to parse (which would
// mean the build is broken, not that the module lacks a path).
func ModulePath() string {
	mod, err := modfile.Parse("go.mod", goModSource, nil)
	if err != nil || mod.Module == nil {
		return ""
	}
	return mod.Module.Mod.Path
}

// GoVersion returns the `go` directive's version string from go.mod.
func GoVersion() string {
	mod, err := modfile.Parse("go.mod", goModSource, nil)
	if err != nil || mod.Go == nil {
		return ""
	}
	return mod.Go.Version
}
