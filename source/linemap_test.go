package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ourovoros-io/sway-analyzer-go/source"
)

func TestMapLine(t *testing.T) {
	src := []byte("fn main() {\n    let x = 1;\n    x\n}\n")
	m := source.Build(src)

	line, err := m.Line(0)
	assert.NoError(t, err)
	assert.Equal(t, 1, line)

	// offset of "let" on the second line
	line, err = m.Line(16)
	assert.NoError(t, err)
	assert.Equal(t, 2, line)

	_, err = m.Line(len(src) + 10)
	assert.Error(t, err)
}

func TestMapLineMonotone(t *testing.T) {
	src := []byte("a\nbb\nccc\n")
	m := source.Build(src)

	prev := 0
	for o := 0; o < len(src); o++ {
		line, err := m.Line(o)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, line, prev)
		prev = line
	}
}
