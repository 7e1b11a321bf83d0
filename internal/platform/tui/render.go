package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// colorStyles holds one lipgloss style per core.Color. Row 0 is the HUD
// and gets the bold variants.
var colorStyles, hudStyles = buildStyles()

func buildStyles() (plain, bold [core.ColorCount]lipgloss.Style) {
	for c := core.Color(0); c < core.ColorCount; c++ {
		s := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		plain[c] = s
		bold[c] = s.Bold(true)
	}
	return plain, bold
}

func styleFor(c core.Color, row int) lipgloss.Style {
	if c >= core.ColorCount {
		c = core.ColorDefault
	}
	if row == 0 {
		return hudStyles[c]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color, y).Render(run.String()))
		}
	}
	return sb.String()
}
