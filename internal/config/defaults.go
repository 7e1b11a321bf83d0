package config

import (
	_ "embed"
)

//go:embed defaults/escape.yaml
var defaultEscapeYAML []byte

//go:embed defaults/extraction.yaml
var defaultExtractionYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/survivors.yaml
var defaultSurvivorsYAML []byte

//go:embed defaults/wings.yaml
var defaultWingsYAML []byte

func defaultUpgrades() UpgradesConfig {
	return UpgradesConfig{Shuffle: "fisher-yates", Choices: 3}
}

// DefaultEscapeConfig returns the default Boat Escape configuration.
func DefaultEscapeConfig() EscapeConfig {
	return EscapeConfig{
		World:       WorldConfig{Width: 1280, Height: 720},
		ScrollSpeed: 150,
		Player:      PlayerConfig{Radius: 50, Speed: 300, Health: 100},
		Barrels: EscapeBarrels{
			Interval:  0.8,
			Radius:    20,
			Damage:    100,
			Pierce:    0,
			Explosion: 30,
		},
		Boats: EscapeBoats{
			Interval:        2.0,
			SpawnX:          -20,
			Radius:          39,
			Speed:           100,
			SpeedJitter:     30,
			SpeedPerSecond:  2,
			Health:          30,
			HealthPerSecond: 2,
			ContactDamage:   600,
			Reward:          10,
		},
		Containers: EscapeContainers{
			Interval: 5.0,
			Radius:   30,
			Reward:   50,
			Goal:     20,
		},
		Difficulty: DifficultyConfig{Enabled: true, Ramp: 30},
		Upgrades:   defaultUpgrades(),
	}
}

// DefaultExtractionConfig returns the default Extraction configuration.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Helicopter: ExtractionHeli{
			Width:      204,
			Height:     136,
			StartY:     100,
			Gravity:    150,
			Thrust:     175,
			Horizontal: 120,
			SafeSpeed:  300,
			CrashSpeed: 400,
			HitPoints:  2,
		},
		Target: ExtractionTarget{
			GroundOffset: 80,
			Radius:       40,
			LandingZone:  100,
			GroundLevel:  20,
			HitBonus:     1000,
			TimeBonus:    10,
			ParTime:      60,
		},
		Missiles: ExtractionMissiles{
			Interval: 2.0,
			Width:    20,
			Height:   40,
			Speed:    250,
		},
		Difficulty: DifficultyConfig{Enabled: true},
	}
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Player: InvadersPlayer{
			Radius:      40,
			Speed:       300,
			Health:      30,
			BottomGap:   100,
			FireRate:    0.3,
			ShotSpeed:   600,
			ShotRadius:  8,
			ShotDamage:  1,
			Invasion:    50,
			HitReward:   10,
			HitParticle: 20,
		},
		Formation: InvadersGrid{
			Cell:      60,
			StartY:    80,
			RowFrac:   0.3,
			ColFrac:   0.8,
			Radius:    25,
			Speed:     36,
			MinFactor: 3,
			MaxFactor: 10,
			Drop:      20,
		},
		EnemyFire: InvadersFire{
			Interval: 1.5,
			Speed:    300,
			Radius:   6,
			Damage:   10,
		},
		Difficulty: DifficultyConfig{Enabled: true, Ramp: 30},
	}
}

// DefaultSurvivorsConfig returns the default Survivors configuration.
func DefaultSurvivorsConfig() SurvivorsConfig {
	return SurvivorsConfig{
		World:  WorldConfig{Width: 1200, Height: 800},
		Player: PlayerConfig{Radius: 35, Speed: 200, Health: 100},
		Spawns: SurvivorsSpawns{
			Interval:     0.5,
			EdgeOffset:   20,
			MaxCount:     8,
			BossChance:   0.1,
			BossRampTime: 600,
		},
		Enemy: SurvivorsEnemy{
			Radius:          30,
			Speed:           50,
			SpeedJitter:     30,
			SpeedPerSecond:  2,
			Health:          20,
			HealthPerSecond: 2,
			ContactDamage:   600,
			Reward:          10,
		},
		Boss: SurvivorsEnemy{
			Radius:          40,
			Speed:           30,
			SpeedJitter:     30,
			SpeedPerSecond:  2,
			Health:          100,
			HealthPerSecond: 2,
			ContactDamage:   1500,
			Reward:          50,
		},
		Levels: SurvivorsLevels{FirstLevel: 10, Growth: 1.5},
		Weapons: SurvivorsWeapons{
			AutoGun: SurvivorsAutoGun{Damage: 10, Cooldown: 0.3, Speed: 500, Radius: 5},
			Bombs: SurvivorsBombs{
				Damage:     100,
				Cooldown:   1.5,
				Speed:      300,
				Radius:     8,
				Fuse:       0.8,
				Blast:      150,
				BlastLevel: 30,
			},
			Mines: SurvivorsMines{
				Damage:     40,
				Cooldown:   1.5,
				Radius:     10,
				Arm:        0.3,
				Life:       10,
				Blast:      60,
				BlastLevel: 15,
			},
		},
		WinTime:    300,
		Difficulty: DifficultyConfig{Enabled: true, Ramp: 60},
		Upgrades:   defaultUpgrades(),
	}
}

// DefaultWingsConfig returns the default Wings configuration.
func DefaultWingsConfig() WingsConfig {
	return WingsConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Player: WingsPlayer{
			X:              150,
			Radius:         55,
			Speed:          360,
			Health:         100,
			BulletRadius:   20,
			MaxWeaponLevel: 5,
			ContactDamage:  1200,
			RamDamage:      1800,
		},
		Enemies: WingsEnemies{
			Radius:      42,
			Health:      50,
			Speed:       180,
			SpeedStep:   0.3,
			WaveLength:  10,
			Interval:    3,
			IntervalMin: 0.15,
			IntervalCut: 0.5,
			BaseCount:   2,
			CountStep:   2,
			MaxCount:    10,
			FireEvery:   2,
			FireStep:    0.5,
			ShotSpeed:   400,
			ShotDamage:  10,
			ShotRadius:  10,
			Reward:      100,
			Energy:      10,
			WaveAmp:     150,
			WaveFreq:    3,
		},
		Islands: WingsIslands{
			Interval: 4,
			Speed:    80,
			Radius:   60,
			Health:   100,
			Reward:   200,
			Heal:     30,
		},
		Orbit:      WingsOrbit{Distance: 160, Radius: 25, Spin: 3, DPS: 300},
		Special:    WingsSpecial{MaxEnergy: 100, Duration: 1.5, Radius: 200},
		Difficulty: DifficultyConfig{Enabled: true},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "escape":
		return defaultEscapeYAML
	case "extraction":
		return defaultExtractionYAML
	case "invaders":
		return defaultInvadersYAML
	case "survivors":
		return defaultSurvivorsYAML
	case "wings":
		return defaultWingsYAML
	default:
		return nil
	}
}
