package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0) // top-left dot of cell 0
	b.setPixel(3, 3) // bottom-right dot of cell 1
	lines := b.toLines()
	require.Len(t, lines, 1)
	runes := []rune(lines[0])
	assert.Equal(t, rune(0x2801), runes[0])
	assert.Equal(t, rune(0x2880), runes[1])

	// out-of-range coords are dropped, not wrapped
	b.setPixel(-1, 0)
	b.setPixel(0, -2)
	b.setPixel(4, 0)
	b.setPixel(0, 4)
	assert.Equal(t, lines, b.toLines())
}

func TestBrailleDrawLine(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLineMicro(0, 0, 7, 0)
	lines := b.toLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "⠉⠉⠉⠉", lines[0])

	// a vertical line stays in one cell column
	v := newBrailleBuf(2, 2)
	v.drawLineMicro(0, 0, 0, 7)
	for _, line := range v.toLines() {
		runes := []rune(line)
		assert.Equal(t, ' ', runes[1])
		assert.NotEqual(t, ' ', runes[0])
	}
}
