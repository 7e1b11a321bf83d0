package sim

// Weapon is a recurring attack owned by the player.
type Weapon struct {
	ID       string
	Name     string
	Level    int
	MaxLevel int // 0 means no cap

	// Cooldown returns the base seconds between shots at a level.
	Cooldown func(level int) float64

	// Fire emits the shot. It returns false when there was nothing to shoot
	// at; the weapon then stays ready and tries again next step.
	Fire func(w *World, wp *Weapon) bool

	Timer float64
}

// Interval returns the cooldown after the player's modifiers.
func (wp *Weapon) Interval(mods Modifiers) float64 {
	if wp.Cooldown == nil {
		return 0
	}
	return wp.Cooldown(wp.Level) * mods.CooldownMul
}

// Ready reports whether the cooldown has elapsed.
func (wp *Weapon) Ready(mods Modifiers) bool {
	return wp.Timer+timerEpsilon >= wp.Interval(mods)
}

// Update advances the cooldown and fires when ready. It reports whether a
// shot was fired.
func (wp *Weapon) Update(w *World, dt float64) bool {
	wp.Timer += dt
	if !wp.Ready(w.Mods) || wp.Fire == nil {
		return false
	}
	if !wp.Fire(w, wp) {
		return false
	}
	wp.Timer = 0
	return true
}

// LevelUp raises the level by one up to MaxLevel.
func (wp *Weapon) LevelUp() bool {
	if wp.MaxLevel > 0 && wp.Level >= wp.MaxLevel {
		return false
	}
	wp.Level++
	return true
}

// Weapon returns the owned weapon with the id, or nil.
func (w *World) Weapon(id string) *Weapon {
	for _, wp := range w.Weapons {
		if wp.ID == id {
			return wp
		}
	}
	return nil
}

// AddWeapon gives the player a weapon. Owning one with the same id levels
// it up instead of adding a duplicate.
func (w *World) AddWeapon(wp *Weapon) *Weapon {
	if owned := w.Weapon(wp.ID); owned != nil {
		owned.LevelUp()
		return owned
	}
	if wp.Level < 1 {
		wp.Level = 1
	}
	w.Weapons = append(w.Weapons, wp)
	return wp
}

// FireWeapons updates every owned weapon.
func (w *World) FireWeapons(dt float64) {
	for _, wp := range w.Weapons {
		wp.Update(w, dt)
	}
}
