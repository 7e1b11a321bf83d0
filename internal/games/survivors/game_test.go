package survivors

import (
	"math"
	"testing"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWith(testRuntime, config.DefaultSurvivorsConfig())
	return g
}

// quiet strips weapons and spawners so a test controls every entity.
func quiet(g *Game) *sim.World {
	g.world.Weapons = nil
	g.world.Spawners = nil
	return g.world
}

func dummy(x, y float64) *sim.Entity {
	return &sim.Entity{
		Kind: sim.KindEnemy, Tag: "grunt", Pos: core.V(x, y),
		Radius: 30, Health: 20, MaxHealth: 20, Reward: 10,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHordeSize(t *testing.T) {
	g := newTestGame(t)
	tests := []struct {
		mult     float64
		expected int
	}{
		{1, 1},
		{2, 2},
		{5, 3},
		{30, 8},
	}
	for _, tc := range tests {
		if got := g.rules.hordeSize(tc.mult, 0); got != tc.expected {
			t.Errorf("hordeSize(%v) = %d, expected %d", tc.mult, got, tc.expected)
		}
	}
}

func TestBossChance(t *testing.T) {
	g := newTestGame(t)
	if got := g.rules.bossChance(0); !approx(got, 0.1) {
		t.Errorf("bossChance(0) = %v, expected 0.1", got)
	}
	if got := g.rules.bossChance(600); !approx(got, 0.2) {
		t.Errorf("bossChance(600) = %v, expected 0.2", got)
	}
}

func TestSpawnedEnemiesScaleWithTime(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	w.Time = 30
	g.rules.spawnHorde(w, 6)

	enemies := w.Entities(sim.KindEnemy)
	if len(enemies) != 6 {
		t.Fatalf("expected 6 enemies, got %d", len(enemies))
	}
	for _, e := range enemies {
		if w.Bounds.Contains(e.Pos, 0) {
			t.Errorf("enemy spawned on screen at %v", e.Pos)
		}
		base := g.cfg.Enemy
		if e.Tag == "boss" {
			base = g.cfg.Boss
		}
		if e.Health != base.Health+60 {
			t.Errorf("%s health = %v, expected %v", e.Tag, e.Health, base.Health+60)
		}
		if e.Speed < base.Speed+60 || e.Speed >= base.Speed+90 {
			t.Errorf("%s speed = %v outside [%v, %v)", e.Tag, e.Speed, base.Speed+60, base.Speed+90)
		}
		if e.Steering != sim.SteerChase {
			t.Errorf("%s should chase the player", e.Tag)
		}
	}
}

func TestAutoGunFiresAtNearestEnemy(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	w.Spawn(dummy(900, 400))
	w.Spawn(dummy(1100, 400))

	g.Step(core.NewInputFrame())

	shots := w.Entities(sim.KindProjectile)
	if len(shots) != 1 {
		t.Fatalf("expected the first shot immediately, got %d", len(shots))
	}
	if !approx(shots[0].Vel.X(), 500) || !approx(shots[0].Vel.Y(), 0) {
		t.Errorf("shot velocity = %v, expected (500, 0)", shots[0].Vel)
	}
	if shots[0].Damage != 10 {
		t.Errorf("shot damage = %v, expected 10", shots[0].Damage)
	}
}

func TestAutoGunHoldsFireWithoutTargets(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	g.Step(core.NewInputFrame())

	if n := w.Count(sim.KindProjectile); n != 0 {
		t.Errorf("expected no shots without enemies, got %d", n)
	}
	if !w.Weapon(weaponAutoGun).Ready(w.Mods) {
		t.Error("gun should stay ready while there is nothing to shoot")
	}
}

func TestContactDamage(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	e := dummy(600, 400)
	e.Damage = 600
	w.Spawn(e)

	g.Step(core.NewInputFrame())
	if !approx(w.Player.Health, 90) {
		t.Errorf("player health = %v, expected 90", w.Player.Health)
	}
}

func TestKillRewards(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	e := w.Spawn(dummy(100, 100))

	w.Kill(e, nil)

	if w.Score != 10 || w.Stats.Kills != 1 || w.Stats.Exp != 1 {
		t.Errorf("score=%d kills=%d exp=%v, expected 10/1/1", w.Score, w.Stats.Kills, w.Stats.Exp)
	}
	if n := w.Count(sim.KindParticle); n != 15 {
		t.Errorf("expected a 15 particle burst, got %d", n)
	}
}

func TestLevelUpOffersUpgrades(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	w.Stats.Exp = 11

	res := g.Step(core.NewInputFrame())
	if !res.State.Choosing {
		t.Fatal("reaching the exp threshold should open an upgrade choice")
	}
	if w.Stats.Level != 2 || w.Stats.ExpToLevel != 15 || w.Stats.Exp != 1 {
		t.Errorf("level=%d expToLevel=%v exp=%v, expected 2/15/1", w.Stats.Level, w.Stats.ExpToLevel, w.Stats.Exp)
	}
	if n := len(w.Offers()); n != 3 {
		t.Errorf("expected 3 offers, got %d", n)
	}

	tick := w.Tick
	g.Step(core.NewInputFrame())
	if w.Tick != tick {
		t.Error("simulation should not advance while choosing")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionChoice2)
	res = g.Step(in)
	if res.State.Choosing || res.State.Paused {
		t.Errorf("choosing should resume the run, state = %+v", res.State)
	}
}

func TestBombDetonatesOnContact(t *testing.T) {
	g := newTestGame(t)
	w := quiet(g)
	w.Spawn(dummy(900, 200))
	w.Spawn(dummy(1000, 200))
	far := w.Spawn(dummy(1150, 600))
	w.Spawn(g.rules.bomb(core.V(900, 200), core.Vec2{}, 1))

	g.Step(core.NewInputFrame())

	if n := w.Count(sim.KindEnemy); n != 1 || !far.Alive() {
		t.Errorf("only the enemy outside the blast should survive, %d left", n)
	}
	if w.Score != 20 {
		t.Errorf("Score = %d, expected 20", w.Score)
	}
	if n := w.Count(sim.KindDeployable); n != 0 {
		t.Errorf("bomb should be gone, %d deployables left", n)
	}
}

func TestBombFuse(t *testing.T) {
	g := newTestGame(t)
	w := quiet(g)
	w.Spawn(dummy(350, 150))
	w.Spawn(g.rules.bomb(core.V(300, 100), core.Vec2{}, 1))

	g.Step(core.NewInputFrame())
	if w.Count(sim.KindEnemy) != 1 {
		t.Fatal("bomb should not go off before the fuse burns down")
	}

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	if w.Count(sim.KindEnemy) != 0 {
		t.Error("fuse explosion should catch the nearby enemy")
	}
	if w.Count(sim.KindParticle) == 0 {
		t.Error("expected explosion particles")
	}
}

func TestBlastGrowsWithLevel(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	tests := []struct {
		entity     *sim.Entity
		wantDamage float64
		wantRadius float64
	}{
		{g.rules.bomb(core.Vec2{}, core.Vec2{}, 1), 100, 180},
		{g.rules.bomb(core.Vec2{}, core.Vec2{}, 3), 300, 240},
		{g.rules.mine(core.Vec2{}, 1), 40, 75},
		{g.rules.mine(core.Vec2{}, 2), 80, 90},
	}
	for _, tc := range tests {
		d, r := g.rules.blast(w, tc.entity)
		if d != tc.wantDamage || r != tc.wantRadius {
			t.Errorf("%s level %d blast = (%v, %v), expected (%v, %v)",
				tc.entity.Tag, tc.entity.Level, d, r, tc.wantDamage, tc.wantRadius)
		}
	}
}

func TestMineArmsBeforeTriggering(t *testing.T) {
	g := newTestGame(t)
	w := quiet(g)
	w.Spawn(dummy(300, 300))
	w.Spawn(g.rules.mine(core.V(300, 300), 1))

	g.Step(core.NewInputFrame())
	if w.Count(sim.KindEnemy) != 1 {
		t.Fatal("mine should not trigger while arming")
	}

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if w.Count(sim.KindEnemy) != 0 {
		t.Error("armed mine should kill the enemy on top of it")
	}
	if w.Count(sim.KindDeployable) != 0 {
		t.Error("mine should be spent")
	}
}

func TestCatalogue(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	apply := func(id string) {
		t.Helper()
		for _, u := range g.rules.catalogue {
			if u.ID == id {
				u.Apply(w)
				return
			}
		}
		t.Fatalf("no upgrade %q", id)
	}

	apply(weaponAutoGun)
	if len(w.Weapons) != 1 || w.Weapons[0].Level != 2 {
		t.Fatalf("owned gun should level up, weapons=%d level=%d", len(w.Weapons), w.Weapons[0].Level)
	}
	if got := w.Weapons[0].Interval(w.Mods); !approx(got, 0.15) {
		t.Errorf("level 2 gun cooldown = %v, expected 0.15", got)
	}

	apply(weaponBombs)
	apply(weaponMines)
	if len(w.Weapons) != 3 {
		t.Errorf("expected 3 weapons, got %d", len(w.Weapons))
	}

	apply("speed")
	if !approx(w.Mods.SpeedMul, 1.2) {
		t.Errorf("SpeedMul = %v, expected 1.2", w.Mods.SpeedMul)
	}

	apply("max-health")
	if w.Player.MaxHealth != 125 || w.Player.Health != 125 {
		t.Errorf("health = %v/%v, expected 125/125", w.Player.Health, w.Player.MaxHealth)
	}

	w.Player.Health = 110
	apply("armor")
	if w.Player.Health != 125 {
		t.Errorf("armor heal should clamp to max, got %v", w.Player.Health)
	}
}

func TestMineLayerDropsUnderPlayer(t *testing.T) {
	g := newTestGame(t)
	w := quiet(g)
	w.AddWeapon(g.rules.mineLayer())

	g.Step(core.NewInputFrame())

	mines := w.Entities(sim.KindDeployable)
	if len(mines) != 1 {
		t.Fatalf("expected one mine, got %d", len(mines))
	}
	if mines[0].Pos != w.Player.Pos || mines[0].Tag != "mine" {
		t.Errorf("mine at %v tag %q, expected under the player", mines[0].Pos, mines[0].Tag)
	}
}

func TestSurvivingWins(t *testing.T) {
	g := newTestGame(t)
	g.world.Time = 299.99

	res := g.Step(core.NewInputFrame())
	if !res.State.Won {
		t.Error("surviving the clock should win")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t)
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			in.Set(core.ActionChoice1)
			switch (i / 60) % 4 {
			case 0:
				in.Set(core.ActionUp)
			case 1:
				in.Set(core.ActionRight)
			case 2:
				in.Set(core.ActionDown)
			default:
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}
		return g.Snapshot().Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: snapshot hashes differ. Run1=%x, Run2=%x", h1, h2)
	}
}
