package robot

import (
	"errors"
	"fmt"

	"robowar/internal/grid"
)

var (
	ErrInvalidSpec  = errors.New("invalid robot spec")
	ErrUnknownRobot = errors.New("unknown robot kind")
)

// ObjectType is the radar's one-letter classification of a detected cell.
type ObjectType byte

const (
	ObjectRobot ObjectType = 'R'
	ObjectMound ObjectType = 'M'
	ObjectPit   ObjectType = 'P'
)

type Detection struct {
	Type ObjectType
	grid.Pos
}

type Weapon int

const (
	Grenade Weapon = iota + 1
)

func (w Weapon) String() string {
	switch w {
	case Grenade:
		return "grenade"
	}
	return fmt.Sprintf("weapon(%d)", int(w))
}

// Spec is a robot's fixed loadout.
type Spec struct {
	Name   string
	Move   int
	Armor  int
	Weapon Weapon
}

const (
	MaxMove          = 5
	MaxArmor         = 5
	MaxMovePlusArmor = 7
)

func (s Spec) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	case s.Move < 1 || s.Move > MaxMove:
		return fmt.Errorf("%w: %s move %d outside [1,%d]", ErrInvalidSpec, s.Name, s.Move, MaxMove)
	case s.Armor < 0 || s.Armor > MaxArmor:
		return fmt.Errorf("%w: %s armor %d outside [0,%d]", ErrInvalidSpec, s.Name, s.Armor, MaxArmor)
	case s.Move+s.Armor > MaxMovePlusArmor:
		return fmt.Errorf("%w: %s move+armor %d exceeds %d", ErrInvalidSpec, s.Name, s.Move+s.Armor, MaxMovePlusArmor)
	case s.Weapon != Grenade:
		return fmt.Errorf("%w: %s has %v", ErrInvalidSpec, s.Name, s.Weapon)
	}
	return nil
}

// Context is the host engine's read-only view for one robot during one
// callback. Implementations must not be retained past the call.
type Context interface {
	Location() grid.Pos
	BoardSize() (rows, cols int)
	MoveBudget() int
}

type Move struct {
	Dir  grid.Direction
	Dist int
}

// Robot is the per-tick behaviour the engine drives. Calls for one robot
// are serialised by the engine.
type Robot interface {
	Spec() Spec
	Movement(ctx Context) Move
	RadarDirection(ctx Context) grid.Direction
	ProcessRadar(ctx Context, detections []Detection)
	ShotLocation() (grid.Pos, bool)
}
