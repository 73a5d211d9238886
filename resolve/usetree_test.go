package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
)

// std::asset::transfer
func pathTree(name string, tail swayast.UseTree) swayast.UseTree {
	t := tail
	return swayast.UseTree{Kind: swayast.UseTreePath, Name: name, Prefix: &t}
}

func TestLocalNamePlain(t *testing.T) {
	tree := pathTree("std", pathTree("asset", swayast.UseTree{Kind: swayast.UseTreeName, Name: "transfer"}))

	name, ok := resolve.LocalName(tree, "std::asset::transfer")
	assert.True(t, ok)
	assert.Equal(t, "transfer", name)

	_, ok = resolve.LocalName(tree, "std::asset::force_transfer_to_contract")
	assert.False(t, ok)
}

func TestLocalNameRename(t *testing.T) {
	tree := pathTree("std", pathTree("asset", swayast.UseTree{Kind: swayast.UseTreeRename, Name: "transfer", Alias: "xfer"}))

	name, ok := resolve.LocalName(tree, "std::asset::transfer")
	assert.True(t, ok)
	assert.Equal(t, "xfer", name)
}

func TestLocalNameGroup(t *testing.T) {
	group := swayast.UseTree{
		Kind: swayast.UseTreeGroup,
		Children: []swayast.UseTree{
			pathTree("asset", swayast.UseTree{Kind: swayast.UseTreeName, Name: "transfer"}),
			pathTree("logging", swayast.UseTree{Kind: swayast.UseTreeRename, Name: "log", Alias: "l"}),
		},
	}
	tree := pathTree("std", group)

	name, ok := resolve.LocalName(tree, "std::logging::log")
	assert.True(t, ok)
	assert.Equal(t, "l", name)

	name, ok = resolve.LocalName(tree, "std::asset::transfer")
	assert.True(t, ok)
	assert.Equal(t, "transfer", name)
}

func TestHasAttribute(t *testing.T) {
	attrs := []swayast.AttributeDecl{
		{Name: "storage", Args: []swayast.AttributeArg{{Name: "read"}, {Name: "write"}}},
	}
	assert.True(t, resolve.HasAttribute(attrs, "storage", []string{"write"}))
	assert.False(t, resolve.HasAttribute(attrs, "storage", []string{"write", "read_write_oops"}))
	assert.True(t, resolve.HasAttribute(attrs, "storage", nil))
	assert.False(t, resolve.HasAttribute(attrs, "payable", nil))
}
