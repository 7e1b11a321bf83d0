// Package extraction implements Extraction: fly a helicopter down to the
// landing target under missile fire and touch down gently.
package extraction

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

// Game implements Extraction.
type Game struct {
	cfg     config.ExtractionConfig
	runtime core.RuntimeConfig
	world   *sim.World
	rules   *rules
	base    render.Theme
	theme   render.Theme
}

// New creates a new Extraction game instance.
func New() *Game {
	return NewWithTheme(render.DefaultTheme())
}

// NewWithTheme creates a game that draws its glyphs over base.
func NewWithTheme(base render.Theme) *Game {
	return &Game{base: base}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "extraction"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Extraction"
}

func (g *Game) Summary() string {
	return "Bring the helicopter down on the target before the missiles do."
}

// Reset loads the config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadExtraction(configPath)
	if err != nil {
		cfg = config.DefaultExtractionConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ExtractionConfig) {
	g.cfg = cfg
	g.runtime = runtime

	r := &rules{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
	w := sim.NewWorld(sim.Bounds{W: cfg.World.Width, H: cfg.World.Height}, runtime.Seed, r)
	w.PlayerClamp = sim.ClampX

	h := cfg.Helicopter
	w.SetPlayer(&sim.Entity{
		Tag:       "helicopter",
		Pos:       core.V(w.Bounds.W/2, h.StartY),
		Half:      core.V(h.Width/2, h.Height/2),
		Health:    float64(h.HitPoints),
		MaxHealth: float64(h.HitPoints),
	})
	r.target = w.Spawn(&sim.Entity{
		Kind:   sim.KindHazard,
		Tag:    "target",
		Pos:    core.V(w.Bounds.W/2, w.Bounds.H-cfg.Target.GroundOffset),
		Radius: cfg.Target.Radius,
		Pinned: true,
	})

	w.AddSpawner(&sim.Spawner{
		Name:       "missiles",
		Interval:   cfg.Missiles.Interval,
		Difficulty: r.difficulty,
		Emit:       r.launchMissiles,
	})

	g.world = w
	g.rules = r
	g.theme = g.base.
		WithTag("helicopter", render.Glyph{Rune: '▓', Color: core.ColorBrightCyan, Fill: true}).
		WithTag("missile", render.Glyph{Rune: '^', Color: core.ColorBrightRed, Fill: true}).
		WithTag("target", render.Glyph{Rune: 'H', Color: core.ColorBrightYellow, Fill: true}).
		WithGround('═', r.groundY(w))
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

// Desperate reports whether the helicopter is within half a screen of the
// target height.
func (g *Game) Desperate() bool {
	return g.rules.desperate
}

// Register the game with the registry
func init() {
	registry.Register("extraction", func() registry.Game {
		return New()
	})
}
