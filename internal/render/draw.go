package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// BarWidth is the number of cells of a HUD gauge.
const BarWidth = 10

// Draw renders a snapshot: playfield, HUD row and the phase overlay.
func Draw(dst *core.Screen, snap sim.Snapshot, theme Theme) {
	dst.Clear()
	vp := NewViewport(snap.Bounds, dst.Width(), dst.Height())

	if theme.Ground != 0 {
		_, row := vp.Cell(0, theme.GroundY)
		if vp.Inside(0, row) {
			dst.DrawHLine(0, row, dst.Width(), theme.Ground)
		}
	}

	for _, v := range snap.Entities {
		drawEntity(dst, vp, v, theme.Glyph(v))
	}

	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawEntity(dst *core.Screen, vp Viewport, v sim.EntityView, g Glyph) {
	cx, cy := vp.Cell(v.X, v.Y)
	if !g.Fill {
		if vp.Inside(cx, cy) {
			dst.SetColored(cx, cy, g.Rune, g.Color)
		}
		return
	}

	box := v.HalfW > 0 && v.HalfH > 0
	var rx, ry int
	if box {
		rx, ry = vp.Span(v.HalfW, v.HalfH)
	} else {
		rx, ry = vp.Span(v.Radius, v.Radius)
	}

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if !box && !insideEllipse(dx, dy, rx, ry) {
				continue
			}
			if vp.Inside(cx+dx, cy+dy) {
				dst.SetColored(cx+dx, cy+dy, g.Rune, g.Color)
			}
		}
	}
}

func insideEllipse(dx, dy, rx, ry int) bool {
	nx := float64(dx) / float64(max(rx, 1))
	ny := float64(dy) / float64(max(ry, 1))
	return nx*nx+ny*ny <= 1
}

// HUDLine formats the HUD row without colours.
func HUDLine(snap sim.Snapshot) string {
	parts := []string{core.FormatClock(snap.Time), fmt.Sprintf("Score %d", snap.Score)}
	for _, item := range snap.HUD {
		parts = append(parts, hudText(item))
	}
	return " " + strings.Join(parts, "  ")
}

func hudText(item sim.HUDItem) string {
	if !item.Bar {
		return item.Label + " " + item.Value
	}
	text := item.Label + " " + Bar(item.Ratio, BarWidth)
	if item.Value != "" {
		text += " " + item.Value
	}
	return text
}

// Bar draws a gauge of width cells filled to ratio.
func Bar(ratio float64, width int) string {
	filled := int(core.ClampF(ratio, 0, 1)*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	x := 1
	write := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}
	write(core.FormatClock(snap.Time), core.ColorDefault)
	write(fmt.Sprintf("Score %d", snap.Score), core.ColorBrightWhite)
	for _, item := range snap.HUD {
		write(hudText(item), item.Color)
	}
}

func drawOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch snap.Phase {
	case sim.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case sim.PhaseChoosing:
		lines := []string{"Choose an upgrade", ""}
		for i, c := range snap.Choices {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, c))
		}
		drawCenteredBox(dst, "UPGRADE", lines...)
	case sim.PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Time: %s", snap.Score, core.FormatClock(snap.Time)),
			"Press R to restart")
	case sim.PhaseWon:
		drawCenteredBox(dst, "YOU WIN",
			fmt.Sprintf("Score: %d  Time: %s", snap.Score, core.FormatClock(snap.Time)),
			"Press R to play again")
	}
}

// drawCenteredBox draws a framed message in the center of the screen.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	frame := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(frame, ' ')
	dst.DrawBox(frame)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}
