// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// WorldConfig is the size of the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Health float64 `yaml:"health"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Ramp      float64 `yaml:"ramp"`       // seconds per +1 of the spawn multiplier
	HeadStart float64 `yaml:"head_start"` // seconds of progression granted at start
}

// UpgradesConfig defines how upgrade offers are drawn.
type UpgradesConfig struct {
	Shuffle string `yaml:"shuffle"` // "fisher-yates" or "comparator"
	Choices int    `yaml:"choices"`
}

// EscapeConfig contains all configuration for Boat Escape.
type EscapeConfig struct {
	World       WorldConfig      `yaml:"world"`
	ScrollSpeed float64          `yaml:"scroll_speed"`
	Player      PlayerConfig     `yaml:"player"`
	Barrels     EscapeBarrels    `yaml:"barrels"`
	Boats       EscapeBoats      `yaml:"boats"`
	Containers  EscapeContainers `yaml:"containers"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	Upgrades    UpgradesConfig   `yaml:"upgrades"`
}

// EscapeBarrels defines the auto-dropped barrels.
type EscapeBarrels struct {
	Interval  float64 `yaml:"interval"`
	Radius    float64 `yaml:"radius"`
	Damage    float64 `yaml:"damage"`
	Pierce    int     `yaml:"pierce"`
	Explosion float64 `yaml:"explosion"` // particle count of a hit
}

// EscapeBoats defines the chasing boats.
type EscapeBoats struct {
	Interval        float64 `yaml:"interval"`
	SpawnX          float64 `yaml:"spawn_x"`
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`
	SpeedJitter     float64 `yaml:"speed_jitter"`
	SpeedPerSecond  float64 `yaml:"speed_per_second"`
	Health          float64 `yaml:"health"`
	HealthPerSecond float64 `yaml:"health_per_second"`
	ContactDamage   float64 `yaml:"contact_damage"` // per second
	Reward          int     `yaml:"reward"`
}

// EscapeContainers defines the collectible containers.
type EscapeContainers struct {
	Interval float64 `yaml:"interval"`
	Radius   float64 `yaml:"radius"`
	Reward   int     `yaml:"reward"`
	Goal     int     `yaml:"goal"`
}

// ExtractionConfig contains all configuration for Extraction.
type ExtractionConfig struct {
	World      WorldConfig        `yaml:"world"`
	Helicopter ExtractionHeli     `yaml:"helicopter"`
	Target     ExtractionTarget   `yaml:"target"`
	Missiles   ExtractionMissiles `yaml:"missiles"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// ExtractionHeli defines the helicopter.
type ExtractionHeli struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	StartY     float64 `yaml:"start_y"`
	Gravity    float64 `yaml:"gravity"`
	Thrust     float64 `yaml:"thrust"`
	Horizontal float64 `yaml:"horizontal_speed"`
	SafeSpeed  float64 `yaml:"safe_speed"`
	CrashSpeed float64 `yaml:"crash_speed"`
	HitPoints  int     `yaml:"hit_points"`
}

// ExtractionTarget defines the landing target on the ground.
type ExtractionTarget struct {
	GroundOffset float64 `yaml:"ground_offset"`
	Radius       float64 `yaml:"radius"`
	LandingZone  float64 `yaml:"landing_zone"`
	GroundLevel  float64 `yaml:"ground_level"` // distance of the ground from the bottom edge
	HitBonus     int     `yaml:"hit_bonus"`
	TimeBonus    int     `yaml:"time_bonus"` // points per second left of par
	ParTime      float64 `yaml:"par_time"`
}

// ExtractionMissiles defines the ground-launched missiles.
type ExtractionMissiles struct {
	Interval float64 `yaml:"interval"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
}

// InvadersConfig contains all configuration for Invaders.
type InvadersConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     InvadersPlayer   `yaml:"player"`
	Formation  InvadersGrid     `yaml:"formation"`
	EnemyFire  InvadersFire     `yaml:"enemy_fire"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersPlayer defines the cannon.
type InvadersPlayer struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	Health      float64 `yaml:"health"`
	BottomGap   float64 `yaml:"bottom_gap"`
	FireRate    float64 `yaml:"fire_interval"`
	ShotSpeed   float64 `yaml:"shot_speed"`
	ShotRadius  float64 `yaml:"shot_radius"`
	ShotDamage  float64 `yaml:"shot_damage"`
	Invasion    float64 `yaml:"invasion_line"` // distance from the bottom edge
	HitReward   int     `yaml:"hit_reward"`
	HitParticle float64 `yaml:"hit_particles"`
}

// InvadersGrid defines the enemy formation.
type InvadersGrid struct {
	Cell      float64 `yaml:"cell"`
	StartY    float64 `yaml:"start_y"`
	RowFrac   float64 `yaml:"row_fraction"`
	ColFrac   float64 `yaml:"col_fraction"`
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`
	MinFactor float64 `yaml:"min_factor"`
	MaxFactor float64 `yaml:"max_factor"`
	Drop      float64 `yaml:"drop"`
}

// InvadersFire defines return fire from the formation.
type InvadersFire struct {
	Interval float64 `yaml:"interval"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Damage   float64 `yaml:"damage"`
}

// SurvivorsConfig contains all configuration for Survivors.
type SurvivorsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Spawns     SurvivorsSpawns  `yaml:"spawns"`
	Enemy      SurvivorsEnemy   `yaml:"enemy"`
	Boss       SurvivorsEnemy   `yaml:"boss"`
	Levels     SurvivorsLevels  `yaml:"levels"`
	Weapons    SurvivorsWeapons `yaml:"weapons"`
	WinTime    float64          `yaml:"win_time"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Upgrades   UpgradesConfig   `yaml:"upgrades"`
}

// SurvivorsSpawns defines the horde spawner.
type SurvivorsSpawns struct {
	Interval     float64 `yaml:"interval"`
	EdgeOffset   float64 `yaml:"edge_offset"`
	MaxCount     int     `yaml:"max_count"`
	BossChance   float64 `yaml:"boss_chance"`
	BossRampTime float64 `yaml:"boss_ramp_time"` // seconds until the chance grows by BossChance
}

// SurvivorsEnemy is the stat line of one enemy variant.
type SurvivorsEnemy struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`
	SpeedJitter     float64 `yaml:"speed_jitter"`
	SpeedPerSecond  float64 `yaml:"speed_per_second"`
	Health          float64 `yaml:"health"`
	HealthPerSecond float64 `yaml:"health_per_second"`
	ContactDamage   float64 `yaml:"contact_damage"`
	Reward          int     `yaml:"reward"`
}

// SurvivorsLevels defines experience and levelling.
type SurvivorsLevels struct {
	FirstLevel float64 `yaml:"first_level"`
	Growth     float64 `yaml:"growth"`
}

// SurvivorsWeapons defines the three weapon families.
type SurvivorsWeapons struct {
	AutoGun SurvivorsAutoGun `yaml:"auto_gun"`
	Bombs   SurvivorsBombs   `yaml:"bombs"`
	Mines   SurvivorsMines   `yaml:"mines"`
}

// SurvivorsAutoGun defines the starting gun.
type SurvivorsAutoGun struct {
	Damage   float64 `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
}

// SurvivorsBombs defines the bomb launcher.
type SurvivorsBombs struct {
	Damage     float64 `yaml:"damage"`
	Cooldown   float64 `yaml:"cooldown"`
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	Fuse       float64 `yaml:"fuse"`
	Blast      float64 `yaml:"blast"`
	BlastLevel float64 `yaml:"blast_per_level"`
}

// SurvivorsMines defines the mine layer.
type SurvivorsMines struct {
	Damage     float64 `yaml:"damage"`
	Cooldown   float64 `yaml:"cooldown"`
	Radius     float64 `yaml:"radius"`
	Arm        float64 `yaml:"arm"`
	Life       float64 `yaml:"life"`
	Blast      float64 `yaml:"blast"`
	BlastLevel float64 `yaml:"blast_per_level"`
}

// WingsConfig contains all configuration for Wings.
type WingsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     WingsPlayer      `yaml:"player"`
	Enemies    WingsEnemies     `yaml:"enemies"`
	Islands    WingsIslands     `yaml:"islands"`
	Orbit      WingsOrbit       `yaml:"orbit"`
	Special    WingsSpecial     `yaml:"special"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WingsPlayer defines the plane.
type WingsPlayer struct {
	X              float64 `yaml:"x"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	Health         float64 `yaml:"health"`
	BulletRadius   float64 `yaml:"bullet_radius"`
	MaxWeaponLevel int     `yaml:"max_weapon_level"`
	ContactDamage  float64 `yaml:"contact_damage"` // per second taken while touching an enemy
	RamDamage      float64 `yaml:"ram_damage"`     // per second dealt to the touched enemy
}

// WingsEnemies defines enemy waves.
type WingsEnemies struct {
	Radius      float64 `yaml:"radius"`
	Health      float64 `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	SpeedStep   float64 `yaml:"speed_step"` // speed factor added per wave
	WaveLength  float64 `yaml:"wave_length"`
	Interval    float64 `yaml:"interval"`
	IntervalMin float64 `yaml:"interval_min"`
	IntervalCut float64 `yaml:"interval_cut"` // seconds removed per wave
	BaseCount   int     `yaml:"base_count"`
	CountStep   int     `yaml:"count_step"`
	MaxCount    int     `yaml:"max_count"`
	FireEvery   float64 `yaml:"fire_every"`
	FireStep    float64 `yaml:"fire_step"` // fire rate factor added per wave
	ShotSpeed   float64 `yaml:"shot_speed"`
	ShotDamage  float64 `yaml:"shot_damage"`
	ShotRadius  float64 `yaml:"shot_radius"`
	Reward      int     `yaml:"reward"`
	Energy      float64 `yaml:"energy"`
	WaveAmp     float64 `yaml:"wave_amplitude"`
	WaveFreq    float64 `yaml:"wave_frequency"`
}

// WingsIslands defines the floating islands that drop power-ups.
type WingsIslands struct {
	Interval float64 `yaml:"interval"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Health   float64 `yaml:"health"`
	Reward   int     `yaml:"reward"`
	Heal     float64 `yaml:"heal"`
}

// WingsOrbit defines the orbiting saws.
type WingsOrbit struct {
	Distance float64 `yaml:"distance"`
	Radius   float64 `yaml:"radius"`
	Spin     float64 `yaml:"spin"`
	DPS      float64 `yaml:"dps"`
}

// WingsSpecial defines the screen-clearing special.
type WingsSpecial struct {
	MaxEnergy float64 `yaml:"max_energy"`
	Duration  float64 `yaml:"duration"`
	Radius    float64 `yaml:"radius"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset adjusts a difficulty section for a preset.
// Easy stretches the ramp by half, hard starts 30 seconds in, fixed freezes
// the multiplier at 1.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Enabled = false
	case DifficultyEasy:
		cfg.Enabled = true
		cfg.Ramp *= 1.5
	case DifficultyNormal:
		cfg.Enabled = true
	case DifficultyHard:
		cfg.Enabled = true
		cfg.HeadStart = 30
	}
}
