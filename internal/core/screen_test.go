package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 3)

	require.Equal(t, 12, s.Width())
	require.Equal(t, 3, s.Height())
	assert.Equal(t, strings.Repeat(" ", 12), s.Row(1))
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p[0], p[1], 'x', ColorRed)
		assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(p[0], p[1]), "cell %v", p)
	}
	assert.Equal(t, "    \n    \n    \n    ", s.String())
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 0, "ab", ColorRed)
	s.Set(4, 1, 'z')

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"first colored rune", 1, 0, Cell{'a', ColorRed}},
		{"second colored rune", 2, 0, Cell{'b', ColorRed}},
		{"plain set", 4, 1, Cell{'z', ColorDefault}},
		{"untouched", 0, 0, Cell{' ', ColorDefault}},
		{"out of bounds", 9, 9, Cell{' ', ColorDefault}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.GetCell(tc.x, tc.y))
		})
	}

	s.Clear()
	assert.Equal(t, Cell{' ', ColorDefault}, s.GetCell(1, 0), "clear resets colors")
}

func TestScreenTextClipsAtEdge(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "wave 12")

	assert.Equal(t, "     wav", s.Row(0))
}

func TestScreenCenteredTextCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCenteredColored(0, "▲▲", ColorYellow)

	assert.Equal(t, Cell{'▲', ColorYellow}, s.GetCell(4, 0))
	assert.Equal(t, Cell{'▲', ColorYellow}, s.GetCell(5, 0))
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill('.')
	s.DrawBox(NewRect(0, 0, 4, 3))
	s.DrawRect(NewRect(1, 1, 2, 1), '#')
	s.DrawHLine(0, 3, 6, '=')

	want := strings.Join([]string{
		"┌──┐..",
		"│##│..",
		"└──┘..",
		"======",
	}, "\n")
	assert.Equal(t, want, s.String())
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 8, "gone")

	s.Resize(4, 2)
	assert.Equal(t, "Hell\n    ", s.String())

	s.Resize(7, 3)
	assert.Equal(t, "Hell   ", s.Row(0), "cropped cells stay cropped")
	assert.Equal(t, strings.Repeat(" ", 7), s.Row(2))
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	assert.Equal(t, "   ", s.Row(-1))
	assert.Equal(t, "   ", s.Row(1))
}
