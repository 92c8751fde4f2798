package robot

import "robowar/internal/grid"

// Dummy is a target: it never moves and never shoots.
type Dummy struct{}

func NewDummy() *Dummy { return &Dummy{} }

func (*Dummy) Spec() Spec                            { return Spec{Name: "Dummy", Move: 1, Armor: 0, Weapon: Grenade} }
func (*Dummy) Movement(Context) Move                 { return Move{Dir: grid.Stationary} }
func (*Dummy) RadarDirection(Context) grid.Direction { return grid.North }
func (*Dummy) ProcessRadar(Context, []Detection)     {}
func (*Dummy) ShotLocation() (grid.Pos, bool)        { return grid.Pos{}, false }

// Roamer walks straight until the board edge, then turns a quarter
// clockwise. Its radar sweeps the full compass and it grenades the closest
// robot it sees within range.
type Roamer struct {
	heading   grid.Direction
	sweep     grid.Direction
	target    grid.Pos
	hasTarget bool
}

func NewRoamer() *Roamer {
	return &Roamer{heading: grid.East, sweep: grid.North}
}

func (*Roamer) Spec() Spec { return Spec{Name: "Roamer", Move: 2, Armor: 2, Weapon: Grenade} }

func (r *Roamer) Movement(ctx Context) Move {
	loc := ctx.Location()
	rows, cols := ctx.BoardSize()
	for range 4 {
		if grid.InBounds(loc.Add(r.heading.Delta()), rows, cols) {
			return Move{Dir: r.heading, Dist: ctx.MoveBudget()}
		}
		r.heading = r.heading.Clockwise(2)
	}
	return Move{Dir: grid.Stationary}
}

func (r *Roamer) RadarDirection(Context) grid.Direction {
	d := r.sweep
	r.sweep = r.sweep.Clockwise(1)
	return d
}

func (r *Roamer) ProcessRadar(ctx Context, detections []Detection) {
	r.hasTarget = false
	loc := ctx.Location()
	best := GrenadeRange + 1
	for _, d := range detections {
		if d.Type != ObjectRobot {
			continue
		}
		if dist := grid.Manhattan(loc, d.Pos); dist < best {
			best, r.target, r.hasTarget = dist, d.Pos, true
		}
	}
}

func (r *Roamer) ShotLocation() (grid.Pos, bool) { return r.target, r.hasTarget }
