package robot

import "robowar/internal/grid"

// GrenadeRange is the farthest Manhattan distance Skullzz will lob a grenade.
const GrenadeRange = 10

// Radar sweeps used once Skullzz holds a corner. Each one faces into the board.
var (
	TopLeftPattern     = []grid.Direction{grid.East, grid.Southeast, grid.South, grid.Southeast}
	TopRightPattern    = []grid.Direction{grid.West, grid.Southwest, grid.South, grid.Southwest}
	BottomLeftPattern  = []grid.Direction{grid.North, grid.Northeast, grid.East, grid.Northeast}
	BottomRightPattern = []grid.Direction{grid.West, grid.Northwest, grid.North, grid.Northwest}
)

// Skullzz runs to the nearest corner, sits there sweeping its radar into
// the board and grenades the first robot that shows up in range.
type Skullzz struct {
	reachedCorner bool
	radarCursor   int
	pattern       []grid.Direction
	target        grid.Pos
	hasTarget     bool
}

func NewSkullzz() *Skullzz {
	return &Skullzz{pattern: TopLeftPattern}
}

func (s *Skullzz) Spec() Spec {
	return Spec{Name: "Skullzz", Move: 3, Armor: 4, Weapon: Grenade}
}

// Holding reports whether Skullzz has settled in its corner.
func (s *Skullzz) Holding() bool { return s.reachedCorner }

// NearestCorner returns the board corner closest to loc. Ties keep the
// earliest of top-left, top-right, bottom-left, bottom-right.
func NearestCorner(loc grid.Pos, rows, cols int) grid.Pos {
	corners := grid.Corners(rows, cols)
	best := corners[0]
	bestDist := grid.Manhattan(loc, best)
	for _, c := range corners[1:] {
		if d := grid.Manhattan(loc, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (s *Skullzz) Movement(ctx Context) Move {
	if s.reachedCorner {
		return Move{Dir: grid.Stationary}
	}
	loc := ctx.Location()
	rows, cols := ctx.BoardSize()
	delta := NearestCorner(loc, rows, cols).Sub(loc)

	dist := min(ctx.MoveBudget(), grid.Manhattan(delta, grid.Pos{}))
	if dist <= 0 {
		s.reachedCorner = true
		return Move{Dir: grid.HeadingOf(delta.R, delta.C)}
	}
	return Move{Dir: grid.HeadingOf(delta.R, delta.C), Dist: dist}
}

func (s *Skullzz) RadarDirection(ctx Context) grid.Direction {
	if s.reachedCorner {
		s.selectPattern(ctx)
	}
	d := s.pattern[s.radarCursor]
	s.radarCursor = (s.radarCursor + 1) % len(s.pattern)
	return d
}

// selectPattern matches the current cell exactly against the corners and
// leaves the pattern alone when it is not on one.
func (s *Skullzz) selectPattern(ctx Context) {
	rows, cols := ctx.BoardSize()
	c := grid.Corners(rows, cols)
	switch ctx.Location() {
	case c[0]:
		s.pattern = TopLeftPattern
	case c[1]:
		s.pattern = TopRightPattern
	case c[2]:
		s.pattern = BottomLeftPattern
	case c[3]:
		s.pattern = BottomRightPattern
	}
}

func (s *Skullzz) ProcessRadar(ctx Context, detections []Detection) {
	s.hasTarget = false
	loc := ctx.Location()
	for _, d := range detections {
		if d.Type == ObjectRobot && grid.Manhattan(loc, d.Pos) <= GrenadeRange {
			s.target, s.hasTarget = d.Pos, true
			return
		}
	}
}

func (s *Skullzz) ShotLocation() (grid.Pos, bool) {
	return s.target, s.hasTarget
}
