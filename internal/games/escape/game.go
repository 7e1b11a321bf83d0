// Package escape implements Boat Escape: outrun chasing boats, sink them
// with dropped barrels and collect containers until the hold is full.
package escape

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

// skin layers the game glyphs over base.
func skin(base render.Theme) render.Theme {
	return base.
		WithTag("boat", render.Glyph{Rune: '◆', Color: core.ColorBrightRed, Fill: true}).
		WithTag("barrel", render.Glyph{Rune: 'o', Color: core.ColorOrange, Fill: true}).
		WithTag("container", render.Glyph{Rune: '▣', Color: core.ColorBrightGreen, Fill: true})
}

// Game implements Boat Escape.
type Game struct {
	cfg     config.EscapeConfig
	runtime core.RuntimeConfig
	world   *sim.World
	base    render.Theme
	theme   render.Theme
}

// New creates a new Boat Escape game instance.
func New() *Game {
	return NewWithTheme(render.DefaultTheme())
}

// NewWithTheme creates a game that draws its glyphs over base.
func NewWithTheme(base render.Theme) *Game {
	return &Game{base: base}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "escape"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Boat Escape"
}

func (g *Game) Summary() string {
	return "Outrun the patrol boats and haul 20 containers to the harbor."
}

// Reset loads the config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadEscape(configPath)
	if err != nil {
		cfg = config.DefaultEscapeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.EscapeConfig) {
	g.cfg = cfg
	g.theme = skin(g.base)
	g.runtime = runtime

	r := newRules(cfg)
	w := sim.NewWorld(sim.Bounds{W: cfg.World.Width, H: cfg.World.Height}, runtime.Seed, r)
	w.Shuffle = sim.ParseShuffleMode(cfg.Upgrades.Shuffle)

	w.SetPlayer(&sim.Entity{
		Pos:       w.Bounds.Center(),
		Radius:    cfg.Player.Radius,
		Speed:     cfg.Player.Speed,
		Health:    cfg.Player.Health,
		MaxHealth: cfg.Player.Health,
	})
	w.AddWeapon(r.barrelDropper())

	w.AddSpawner(&sim.Spawner{
		Name:       "boats",
		Interval:   cfg.Boats.Interval,
		Difficulty: r.difficulty,
		Emit:       r.spawnBoats,
	})
	w.AddSpawner(&sim.Spawner{
		Name:     "containers",
		Interval: cfg.Containers.Interval,
		Emit:     r.spawnContainers,
	})

	g.world = w
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
	registry.Register("escape", func() registry.Game {
		return New()
	})
}
