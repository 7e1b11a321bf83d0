// Package wings implements Wings: a side-scrolling shooter where enemy
// squadrons fly in from the right and shot-down islands drop weapons.
package wings

import (
	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/render"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// Package-level config path and difficulty preset (set by CLI)
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// skin layers the game glyphs, power-up letters included, over base.
func skin(base render.Theme) render.Theme {
	t := base.
		WithTag("island", render.Glyph{Rune: '▓', Color: core.ColorGreen, Fill: true}).
		WithTag("orbit-saw", render.Glyph{Rune: '✱', Color: core.ColorBrightCyan, Fill: true}).
		WithTag("saw", render.Glyph{Rune: '✱', Color: core.ColorCyan}).
		WithTag("homing", render.Glyph{Rune: '»', Color: core.ColorBrightMagenta}).
		WithTag("wave", render.Glyph{Rune: '~', Color: core.ColorBrightYellow}).
		WithTag("rocket", render.Glyph{Rune: '◄', Color: core.ColorRed})
	letters := map[string]rune{
		"spread": 'S', "rapid": 'R', "homing": 'M', "saw": 'W',
		"wave": 'V', "orbit": 'O', "health": 'H',
	}
	for kind, letter := range letters {
		t = t.WithTag(powerPrefix+kind, render.Glyph{Rune: letter, Color: core.ColorBrightYellow})
	}
	return t
}

// Game implements Wings.
type Game struct {
	cfg     config.WingsConfig
	runtime core.RuntimeConfig
	world   *sim.World
	rules   *rules
	base    render.Theme
	theme   render.Theme
}

// New creates a new Wings game instance.
func New() *Game {
	return NewWithTheme(render.DefaultTheme())
}

// NewWithTheme creates a game that draws its glyphs over base.
func NewWithTheme(base render.Theme) *Game {
	return &Game{base: base}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "wings"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Wings"
}

func (g *Game) Summary() string {
	return "Fly right, collect power-ups and unleash the special on the swarm."
}

// Reset loads the config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadWings(configPath)
	if err != nil {
		cfg = config.DefaultWingsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.WingsConfig) {
	g.cfg = cfg
	g.theme = skin(g.base)
	g.runtime = runtime

	r := &rules{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	w := sim.NewWorld(sim.Bounds{W: cfg.World.Width, H: cfg.World.Height}, runtime.Seed, r)
	w.Stats.Special = cfg.Special.MaxEnergy

	pc := cfg.Player
	w.SetPlayer(&sim.Entity{
		Pos:       core.V(pc.X, w.Bounds.H/2),
		Radius:    pc.Radius,
		Speed:     pc.Speed,
		Health:    pc.Health,
		MaxHealth: pc.Health,
	})
	w.AddWeapon(r.weapon("basic"))

	w.AddSpawner(&sim.Spawner{
		Name:     "enemies",
		Interval: cfg.Enemies.Interval,
		Schedule: r.spawnInterval,
		Count:    r.spawnCount,
		Emit:     r.spawnEnemies,
	})
	w.AddSpawner(&sim.Spawner{
		Name:     "islands",
		Interval: cfg.Islands.Interval,
		Emit:     r.spawnIslands,
	})

	g.world = w
	g.rules = r
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.Step(g.runtime.TickSeconds(), in)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	render.Draw(dst, g.world.Snapshot(), g.theme)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// Snapshot returns the render data of the current step.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register("wings", func() registry.Game {
		return New()
	})
}
