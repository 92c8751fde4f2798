package arena

import (
	"robowar/internal/grid"
	"robowar/internal/robot"
)

// move walks e one cell at a time, never further than its spec allows.
// It stops short of board edges, mounds and other robots, and a pit ends
// the walk for good.
func (m *Match) move(e *entity, mv robot.Move) {
	if e.trapped || mv.Dist <= 0 || mv.Dir == grid.Stationary || !mv.Dir.Valid() {
		return
	}
	from := e.pos
	steps := min(mv.Dist, e.spec.Move)
	note := ""
	for range steps {
		next := e.pos.Add(mv.Dir.Delta())
		if !grid.InBounds(next, m.rows, m.cols) {
			note = "edge"
			break
		}
		if m.mounds[next] {
			note = "mound"
			break
		}
		if o := m.occupant(next); o != nil {
			note = "blocked by " + o.name
			break
		}
		e.pos = next
		if m.pits[next] {
			e.trapped = true
			break
		}
	}
	if e.pos != from {
		p := e.pos
		m.emit(Event{Type: EvMove, Actor: e.name, Pos: &p, Dir: mv.Dir.String(), Dist: grid.Manhattan(from, e.pos), Note: note})
	}
	if e.trapped {
		p := e.pos
		m.emit(Event{Type: EvTrapped, Actor: e.name, Pos: &p})
	}
}
