package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid arena config")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads an arena file, fills unset fields with defaults and validates
// the result.
func Load(path string) (*Arena, error) {
	var a Arena
	if err := loadYAML(path, &a); err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}
	a.applyDefaults()
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}
	return &a, nil
}

func (a *Arena) Validate() error {
	rows, cols := a.Board.Rows, a.Board.Cols
	if rows < 2 || cols < 2 {
		return fmt.Errorf("%w: board %dx%d smaller than 2x2", ErrInvalid, rows, cols)
	}
	if a.Rules.MaxTurns < 1 || a.Rules.GrenadeAmmo < 0 || a.Rules.MaxHealth < 1 {
		return fmt.Errorf("%w: rules %+v", ErrInvalid, a.Rules)
	}
	onBoard := func(r, c int) bool { return r >= 0 && r < rows && c >= 0 && c < cols }

	blocked := map[[2]int]bool{}
	for i, o := range a.Obstacles {
		if o.Type != ObstacleMound && o.Type != ObstaclePit {
			return fmt.Errorf("%w: obstacle %d has unknown type %q", ErrInvalid, i, o.Type)
		}
		if !onBoard(o.Row, o.Col) {
			return fmt.Errorf("%w: obstacle %d at (%d,%d) is off the board", ErrInvalid, i, o.Row, o.Col)
		}
		blocked[[2]int{o.Row, o.Col}] = true
	}

	if len(a.Robots) == 0 {
		return fmt.Errorf("%w: no robots", ErrInvalid)
	}
	free := rows*cols - len(blocked)
	if len(a.Robots) > free {
		return fmt.Errorf("%w: %d robots do not fit on %d free cells", ErrInvalid, len(a.Robots), free)
	}
	taken := map[[2]int]bool{}
	for i, r := range a.Robots {
		if r.Kind == "" {
			return fmt.Errorf("%w: robot %d has no kind", ErrInvalid, i)
		}
		if r.Pos == nil {
			continue
		}
		if !onBoard(r.Pos[0], r.Pos[1]) {
			return fmt.Errorf("%w: robot %d at %v is off the board", ErrInvalid, i, *r.Pos)
		}
		if blocked[*r.Pos] || taken[*r.Pos] {
			return fmt.Errorf("%w: robot %d at %v overlaps another object", ErrInvalid, i, *r.Pos)
		}
		taken[*r.Pos] = true
	}
	return nil
}
