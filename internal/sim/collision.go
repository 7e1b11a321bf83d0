package sim

// Resolve runs the collision phases in their fixed order. Later phases see
// the removals made by earlier ones.
//
//  1. area effects (game rules)
//  2. player projectiles and deployables against enemies and hazards
//  3. enemy projectiles against shields and the player
//  4. contact damage between the player and enemies or hazards
//  5. pickups against the player
func (w *World) Resolve(dt float64) {
	w.rules.AreaEffects(w, dt)
	w.resolveProjectiles(dt)
	w.resolveEnemyProjectiles()
	w.resolveContact(dt)
	w.resolvePickups()
}

func (w *World) resolveProjectiles(dt float64) {
	for _, kind := range [...]Kind{KindProjectile, KindDeployable} {
		for _, proj := range w.lists[kind] {
			if !proj.Alive() || !proj.Armed() {
				continue
			}
			w.projectileSweep(proj, dt)
		}
	}
}

// projectileSweep hits every overlapping target until the projectile is
// spent. Pass-through projectiles deal Damage per second to every target
// they overlap and are never spent by hits.
func (w *World) projectileSweep(proj *Entity, dt float64) {
	for _, kind := range [...]Kind{KindEnemy, KindHazard} {
		for _, target := range w.lists[kind] {
			if !target.Alive() || !Overlaps(proj, target) {
				continue
			}

			if proj.PassThrough {
				w.Hurt(target, proj.Damage*dt, proj)
				w.rules.ProjectileHit(w, proj, target)
				continue
			}

			if proj.hasHit(target.ID) {
				continue
			}
			proj.markHit(target.ID)
			proj.Pierce.Hits++
			w.Hurt(target, proj.Damage, proj)
			w.rules.ProjectileHit(w, proj, target)

			if proj.Pierce.Spent() && proj.Bounces <= 0 {
				proj.Dead = true
			}
			if !proj.Alive() {
				return
			}
		}
	}
}

func (w *World) resolveEnemyProjectiles() {
	for _, shield := range w.lists[KindProjectile] {
		if !shield.Shield || !shield.Alive() {
			continue
		}
		for _, ep := range w.lists[KindEnemyProjectile] {
			if ep.Alive() && Overlaps(shield, ep) {
				ep.Dead = true
			}
		}
	}

	p := w.Player
	if p == nil {
		return
	}
	for _, ep := range w.lists[KindEnemyProjectile] {
		if !p.Alive() {
			return
		}
		if !ep.Alive() || !Overlaps(ep, p) {
			continue
		}
		w.Hurt(p, ep.Damage, ep)
		ep.Dead = true
	}
}

func (w *World) resolveContact(dt float64) {
	p := w.Player
	if p == nil {
		return
	}
	for _, kind := range [...]Kind{KindEnemy, KindHazard} {
		for _, e := range w.lists[kind] {
			if !p.Alive() {
				return
			}
			if !e.Alive() || !e.Armed() || (e.Damage <= 0 && e.SelfDamage <= 0) {
				continue
			}
			if !Overlaps(e, p) {
				continue
			}
			w.Hurt(p, e.Damage*dt, e)
			w.Hurt(e, e.SelfDamage*dt, p)
		}
	}
}

func (w *World) resolvePickups() {
	p := w.Player
	if p == nil || !p.Alive() {
		return
	}

	probe := *p
	probe.Radius *= w.Mods.CollectRadius
	probe.Half = probe.Half.Mul(w.Mods.CollectRadius)

	for _, pickup := range w.lists[KindPickup] {
		if !pickup.Alive() || !Overlaps(&probe, pickup) {
			continue
		}
		pickup.Dead = true
		w.Stats.Collected++
		w.rules.Collected(w, pickup)
		// An opened offer leaves the rest for the step after the choice.
		if w.phase != PhaseRunning {
			return
		}
	}
}
