// Package resolve implements the name/import-resolution helpers detectors
// use to recognize a sensitive library function regardless of how it was
// imported: use-tree -> local-name resolution, pattern/expression ident
// folding, and attribute checks.
package resolve

import (
	"strings"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
)

// LocalName resolves the local name under which fullPath is visible after
// tree was brought into scope by a `use` item, handling nested `::`
// prefixes, grouped imports, and `as` renames. It returns ok=false if
// fullPath is not imported by tree at all.
func LocalName(tree swayast.UseTree, fullPath string) (string, bool) {
	segments := strings.Split(fullPath, "::")
	return localName(tree, segments)
}

func localName(tree swayast.UseTree, segments []string) (string, bool) {
	switch tree.Kind {
	case swayast.UseTreeName:
		if len(segments) == 1 && segments[0] == tree.Name {
			return tree.Name, true
		}
		return "", false

	case swayast.UseTreeRename:
		if len(segments) == 1 && segments[0] == tree.Name {
			return tree.Alias, true
		}
		return "", false

	case swayast.UseTreeGlob:
		// A wildcard import brings every name into scope under its own
		// name; we can only resolve it once we know the specific leaf
		// being searched for, which is exactly `segments[len-1]` here.
		if len(segments) == 1 {
			return segments[0], true
		}
		return "", false

	case swayast.UseTreePath:
		if len(segments) == 0 || segments[0] != tree.Name {
			return "", false
		}
		if tree.Prefix == nil {
			return "", false
		}
		return localName(*tree.Prefix, segments[1:])

	case swayast.UseTreeGroup:
		for _, child := range tree.Children {
			if name, ok := localName(child, segments); ok {
				return name, true
			}
		}
		return "", false
	}
	return "", false
}

// AllLocalNames returns every terminal local name that tree introduces
// into scope: a plain leaf's own name, a rename's alias, or the flattened
// set of names introduced by every child of a group. A glob import
// introduces no enumerable name and contributes nothing — recognizing its
// members would require resolving the wildcard's target module, which
// this resolver does not attempt.
func AllLocalNames(tree swayast.UseTree) []string {
	switch tree.Kind {
	case swayast.UseTreeName:
		return []string{tree.Name}
	case swayast.UseTreeRename:
		return []string{tree.Alias}
	case swayast.UseTreeGlob:
		return nil
	case swayast.UseTreePath:
		if tree.Prefix == nil {
			return nil
		}
		return AllLocalNames(*tree.Prefix)
	case swayast.UseTreeGroup:
		var out []string
		for _, child := range tree.Children {
			out = append(out, AllLocalNames(child)...)
		}
		return out
	}
	return nil
}

// LocalNames collects every alias that makes fullPath locally visible
// across a set of use-trees (one file may import the same path more than
// once under different names via separate `use` statements, or the same
// statement's group may not — each ItemUse carries exactly one tree).
func LocalNames(trees []swayast.UseTree, fullPath string) []string {
	var out []string
	for _, t := range trees {
		if name, ok := LocalName(t, fullPath); ok {
			out = append(out, name)
		}
	}
	return out
}
