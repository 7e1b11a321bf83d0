package survivors

import "github.com/vovakirdan/horde-arcade/internal/sim"

// catalogue lists the level-up rewards. Weapon entries add the weapon or
// level up the owned one.
func catalogue(r *rules) []sim.Upgrade {
	return []sim.Upgrade{
		{
			ID: weaponAutoGun, Name: "Auto Gun", Description: "Shoots the nearest enemy automatically",
			Apply: func(w *sim.World) { w.AddWeapon(r.autoGun()) },
		},
		{
			ID: weaponBombs, Name: "Bomb Launcher", Description: "Launches bombs with huge explosions",
			Apply: func(w *sim.World) { w.AddWeapon(r.bombLauncher()) },
		},
		{
			ID: weaponMines, Name: "Mine Layer", Description: "Drops mines that explode when enemies get close",
			Apply: func(w *sim.World) { w.AddWeapon(r.mineLayer()) },
		},
		{
			ID: "speed", Name: "Speed Boost", Description: "+20% movement speed",
			Apply: sim.ScaleSpeed(1.2),
		},
		{
			ID: "max-health", Name: "Max Health Up", Description: "+25 max health and heal to full",
			Apply: sim.RaiseMaxHealth(25),
		},
		{
			ID: "armor", Name: "Armor", Description: "Restore 20 health",
			Apply: sim.HealBy(20),
		},
	}
}
