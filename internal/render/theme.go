// Package render draws simulation snapshots onto a core.Screen.
//
// World units are mapped onto terminal cells by a Viewport; the top row is
// reserved for the HUD. Games choose glyphs through a Theme.
package render

import (
	"maps"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// Glyph is how one entity looks on screen.
type Glyph struct {
	Rune  rune
	Color core.Color
	Fill  bool // fill the scaled body instead of marking the centre cell
}

// Theme maps entities to glyphs. Tag entries win over kind entries.
type Theme struct {
	Kinds map[sim.Kind]Glyph
	Tags  map[string]Glyph

	// Ground draws a horizontal line at world height GroundY when set.
	Ground  rune
	GroundY float64
}

// DefaultTheme returns glyphs for every kind.
func DefaultTheme() Theme {
	return Theme{
		Kinds: map[sim.Kind]Glyph{
			sim.KindPlayer:          {Rune: '@', Color: core.ColorBrightCyan, Fill: true},
			sim.KindEnemy:           {Rune: 'X', Color: core.ColorBrightRed, Fill: true},
			sim.KindProjectile:      {Rune: '•', Color: core.ColorBrightYellow},
			sim.KindEnemyProjectile: {Rune: '*', Color: core.ColorRed},
			sim.KindParticle:        {Rune: '·', Color: core.ColorOrange},
			sim.KindPickup:          {Rune: '$', Color: core.ColorBrightGreen, Fill: true},
			sim.KindHazard:          {Rune: '▓', Color: core.ColorGreen, Fill: true},
			sim.KindDeployable:      {Rune: 'o', Color: core.ColorYellow},
		},
		Tags: map[string]Glyph{},
	}
}

// WithTag returns a copy of the theme with a glyph for tag.
func (t Theme) WithTag(tag string, g Glyph) Theme {
	t.Tags = maps.Clone(t.Tags)
	if t.Tags == nil {
		t.Tags = make(map[string]Glyph)
	}
	t.Tags[tag] = g
	return t
}

// WithGround returns a copy of the theme with a ground line.
func (t Theme) WithGround(r rune, worldY float64) Theme {
	t.Ground = r
	t.GroundY = worldY
	return t
}

// Glyph resolves the glyph of a view. An entity colour overrides the
// glyph colour.
func (t Theme) Glyph(v sim.EntityView) Glyph {
	g, ok := t.Tags[v.Tag]
	if !ok || v.Tag == "" {
		g, ok = t.Kinds[v.Kind]
	}
	if !ok {
		g = Glyph{Rune: '?'}
	}
	if v.Color != core.ColorDefault {
		g.Color = v.Color
	}
	return g
}
