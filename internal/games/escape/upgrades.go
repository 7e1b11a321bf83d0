package escape

import (
	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// catalogue lists the upgrades a container can offer.
func catalogue(cfg config.EscapeConfig) []sim.Upgrade {
	return []sim.Upgrade{
		{
			ID: "speed", Name: "Speed Boost", Description: "+30% movement speed",
			Apply: func(w *sim.World) { w.Player.Speed = cfg.Player.Speed * 1.3 },
		},
		{
			ID: "barrel-damage", Name: "Barrel Damage", Description: "Barrels deal +50 damage",
			Apply: func(w *sim.World) { w.Mods.BonusDamage += 50 },
		},
		{
			ID: "explosion", Name: "Explosion Size", Description: "Barrel explosions are 50% larger",
			Apply: func(w *sim.World) { w.Mods.ExplosionSize *= 1.5 },
		},
		{
			ID: "rapid-fire", Name: "Rapid Fire", Description: "Drop barrels 30% faster",
			Apply: func(w *sim.World) { w.Mods.CooldownMul *= 0.7 },
		},
		{
			ID: "max-health", Name: "Max Health Up", Description: "+50 max health and heal to full",
			Apply: sim.RaiseMaxHealth(50),
		},
		{
			ID: "armor", Name: "Armor", Description: "Gain +25 health immediately",
			Apply: sim.HealBy(25),
		},
		{
			ID: "pierce", Name: "Barrel Pierce", Description: "Barrels hit one more boat before exploding",
			Apply: func(w *sim.World) { w.Mods.Pierce++ },
		},
		{
			ID: "magnet", Name: "Container Magnet", Description: "Collect containers from further away",
			Apply: func(w *sim.World) { w.Mods.CollectRadius *= 1.5 },
		},
		{
			ID: "regen", Name: "Regeneration", Description: "Regenerate 2 health per second",
			Apply: func(w *sim.World) { w.Mods.Regen += 2 },
		},
	}
}
