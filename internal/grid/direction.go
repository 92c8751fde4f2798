package grid

import "fmt"

// Direction is the engine's 8-point compass code. 1 is north and codes
// increase clockwise; 0 means no heading.
type Direction int

const (
	Stationary Direction = iota
	North
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

var dirNames = [...]string{"stationary", "north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

var dirDeltas = [...]Pos{
	{0, 0},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
}

func (d Direction) Valid() bool { return d >= Stationary && d <= Northwest }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return dirNames[d]
}

// Delta is the unit step for d. Invalid directions do not move.
func (d Direction) Delta() Pos {
	if !d.Valid() {
		return Pos{}
	}
	return dirDeltas[d]
}

// Diagonal reports whether d is one of the four intercardinal headings.
func (d Direction) Diagonal() bool {
	return d == Northeast || d == Southeast || d == Southwest || d == Northwest
}

// Clockwise rotates d by n eighth-turns. Stationary stays put.
func (d Direction) Clockwise(n int) Direction {
	if d == Stationary || !d.Valid() {
		return d
	}
	i := (int(d) - 1 + n) % 8
	if i < 0 {
		i += 8
	}
	return Direction(i + 1)
}

// HeadingOf maps the sign pattern of a row/column delta onto a compass
// heading. A zero delta has no heading.
func HeadingOf(dr, dc int) Direction {
	switch {
	case dr == 0 && dc == 0:
		return Stationary
	case dr < 0 && dc == 0:
		return North
	case dr > 0 && dc == 0:
		return South
	case dr == 0 && dc > 0:
		return East
	case dr == 0 && dc < 0:
		return West
	case dr < 0 && dc > 0:
		return Northeast
	case dr < 0 && dc < 0:
		return Northwest
	case dr > 0 && dc > 0:
		return Southeast
	default:
		return Southwest
	}
}
