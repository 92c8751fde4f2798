package grid

// Pos is a board cell. Row 0 is the top (north) edge.
type Pos struct {
	R int `json:"row"`
	C int `json:"col"`
}

func (a Pos) Add(b Pos) Pos   { return Pos{a.R + b.R, a.C + b.C} }
func (a Pos) Sub(b Pos) Pos   { return Pos{a.R - b.R, a.C - b.C} }
func (a Pos) Scale(k int) Pos { return Pos{a.R * k, a.C * k} }

func Manhattan(a, b Pos) int { return abs(a.R-b.R) + abs(a.C-b.C) }

func InBounds(p Pos, rows, cols int) bool {
	return p.R >= 0 && p.R < rows && p.C >= 0 && p.C < cols
}

// Corners lists the four extreme cells in the fixed order
// top-left, top-right, bottom-left, bottom-right.
func Corners(rows, cols int) [4]Pos {
	return [4]Pos{
		{0, 0},
		{0, cols - 1},
		{rows - 1, 0},
		{rows - 1, cols - 1},
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
