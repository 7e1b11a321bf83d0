// Package survivors implements Survivors: hold out against an endless horde
// with automatic weapons, levelling up from kills until the timer runs out.
package survivors

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
		WithTag("grunt", render.Glyph{Rune: 'x', Color: core.ColorRed, Fill: true}).
		WithTag("boss", render.Glyph{Rune: 'T', Color: core.ColorBrightMagenta, Fill: true}).
		WithTag("bullet", render.Glyph{Rune: '•', Color: core.ColorBrightYellow}).
		WithTag("bomb", render.Glyph{Rune: '●', Color: core.ColorOrange}).
		WithTag("mine", render.Glyph{Rune: '+', Color: core.ColorBrightRed})
}

// Game implements Survivors.
type Game struct {
	cfg     config.SurvivorsConfig
	runtime core.RuntimeConfig
	world   *sim.World
	rules   *rules
	base    render.Theme
	theme   render.Theme
}

// New creates a new Survivors game instance.
func New() *Game {
	return NewWithTheme(render.DefaultTheme())
}

// NewWithTheme creates a game that draws its glyphs over base.
func NewWithTheme(base render.Theme) *Game {
	return &Game{base: base}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "survivors"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Survivors"
}

func (g *Game) Summary() string {
	return "Last five minutes against an endless horde, leveling your weapons."
}

// Reset loads the config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSurvivors(configPath)
	if err != nil {
		cfg = config.DefaultSurvivorsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.SurvivorsConfig) {
	g.cfg = cfg
	g.theme = skin(g.base)
	g.runtime = runtime

	r := newRules(cfg)
	w := sim.NewWorld(sim.Bounds{W: cfg.World.Width, H: cfg.World.Height}, runtime.Seed, r)
	w.Shuffle = sim.ParseShuffleMode(cfg.Upgrades.Shuffle)
	w.Stats.Level = 1
	w.Stats.ExpToLevel = cfg.Levels.FirstLevel

	w.SetPlayer(&sim.Entity{
		Pos:       w.Bounds.Center(),
		Radius:    cfg.Player.Radius,
		Speed:     cfg.Player.Speed,
		Health:    cfg.Player.Health,
		MaxHealth: cfg.Player.Health,
	})
	w.AddWeapon(r.autoGun())
	w.AddSpawner(&sim.Spawner{
		Name:       "horde",
		Interval:   cfg.Spawns.Interval,
		Difficulty: r.difficulty,
		Count:      r.hordeSize,
		Emit:       r.spawnHorde,
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
	registry.Register("survivors", func() registry.Game {
		return New()
	})
}
