package arena

import (
	"robowar/internal/grid"
	"robowar/internal/robot"
)

// beam lists the cells a radar sweep from `from` toward d covers, nearest
// first. The beam is three cells wide and runs to the board edge.
func (m *Match) beam(from grid.Pos, d grid.Direction) []grid.Pos {
	if d == grid.Stationary || !d.Valid() {
		return nil
	}
	step := d.Delta()
	var lanes []grid.Pos
	if d.Diagonal() {
		// the diagonal cell and its two neighbours on the side facing back to `from`
		lanes = []grid.Pos{{}, {R: -step.R}, {C: -step.C}}
	} else {
		perp := grid.Pos{R: step.C, C: step.R}
		lanes = []grid.Pos{{}, perp, perp.Scale(-1)}
	}

	var cells []grid.Pos
	for k := 1; ; k++ {
		centre := from.Add(step.Scale(k))
		hit := false
		for _, off := range lanes {
			p := centre.Add(off)
			if !grid.InBounds(p, m.rows, m.cols) {
				continue
			}
			hit = true
			if p != from {
				cells = append(cells, p)
			}
		}
		if !hit {
			return cells
		}
	}
}

// scan reports everything e's radar sees toward d.
func (m *Match) scan(e *entity, d grid.Direction) []robot.Detection {
	var out []robot.Detection
	for _, p := range m.beam(e.pos, d) {
		if o := m.occupant(p); o != nil && o != e {
			out = append(out, robot.Detection{Type: robot.ObjectRobot, Pos: p})
		}
		if m.mounds[p] {
			out = append(out, robot.Detection{Type: robot.ObjectMound, Pos: p})
		}
		if m.pits[p] {
			out = append(out, robot.Detection{Type: robot.ObjectPit, Pos: p})
		}
	}
	return out
}
