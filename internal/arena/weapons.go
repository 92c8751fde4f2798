package arena

import (
	"robowar/internal/grid"
	"robowar/internal/util"
)

const (
	grenadeMinDamage = 10
	grenadeMaxDamage = 40
	grenadeRadius    = 1 // 3x3 blast
)

func (m *Match) shotPhase(e *entity) {
	target, ok := e.bot.ShotLocation()
	if !ok {
		return
	}
	if e.ammo <= 0 {
		m.log.WithField("robot", e.name).Debug("shot requested with no grenades left")
		return
	}
	e.ammo--
	e.shots++
	t := target
	m.emit(Event{Type: EvShot, Actor: e.name, Pos: &t, Note: "grenade"})
	if !grid.InBounds(target, m.rows, m.cols) {
		return
	}
	for _, v := range m.robots {
		if !v.alive || abs(v.pos.R-target.R) > grenadeRadius || abs(v.pos.C-target.C) > grenadeRadius {
			continue
		}
		dmg := applyDamage(v, util.IntBetween(m.rng, grenadeMinDamage, grenadeMaxDamage))
		if v != e {
			e.hits++
			e.damageDealt += dmg
		}
		m.emit(Event{Type: EvHit, Actor: e.name, Target: v.name, Damage: dmg, HP: v.health})
		if v.health <= 0 {
			v.alive = false
			m.emit(Event{Type: EvDestroyed, Actor: e.name, Target: v.name})
		}
	}
}

// applyDamage applies raw damage to v after armor and wears the armor down by one.
func applyDamage(v *entity, raw int) int {
	dmg := raw * (10 - v.armor) / 10
	if v.armor > 0 {
		v.armor--
	}
	v.health -= dmg
	if v.health < 0 {
		v.health = 0
	}
	return dmg
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
