// Package invaders implements Invaders: a marching formation descends while
// the cannon below fires straight up.
package invaders

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

// Game implements Invaders.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	world   *sim.World
	rules   *rules
	base    render.Theme
	theme   render.Theme
}

// New creates a new Invaders game instance.
func New() *Game {
	return NewWithTheme(render.DefaultTheme())
}

// NewWithTheme creates a game that draws its glyphs over base.
func NewWithTheme(base render.Theme) *Game {
	return &Game{base: base}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

func (g *Game) Summary() string {
	return "Hold the line against a descending formation."
}

// Reset loads the config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.InvadersConfig) {
	g.cfg = cfg
	g.runtime = runtime

	r := &rules{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		direction:  1,
		speed:      cfg.Formation.Speed,
	}
	w := sim.NewWorld(sim.Bounds{W: cfg.World.Width, H: cfg.World.Height}, runtime.Seed, r)
	w.PlayerClamp = sim.ClampX

	pc := cfg.Player
	w.SetPlayer(&sim.Entity{
		Tag:       "cannon",
		Pos:       core.V(w.Bounds.W/2, w.Bounds.H-pc.BottomGap),
		Radius:    pc.Radius,
		Speed:     pc.Speed,
		Health:    pc.Health,
		MaxHealth: pc.Health,
	})
	w.AddWeapon(r.cannon())
	w.AddSpawner(&sim.Spawner{
		Name:       "enemy-fire",
		Interval:   cfg.EnemyFire.Interval,
		Difficulty: r.difficulty,
		Emit:       r.returnFire,
	})
	r.spawnFormation(w)

	g.world = w
	g.rules = r
	g.theme = g.base.
		WithTag("cannon", render.Glyph{Rune: '▲', Color: core.ColorBrightGreen, Fill: true}).
		WithTag("invader", render.Glyph{Rune: 'M', Color: core.ColorBrightMagenta, Fill: true}).
		WithTag("shot", render.Glyph{Rune: '|', Color: core.ColorBrightYellow}).
		WithGround('─', w.Bounds.H-cfg.Player.Invasion)
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
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
