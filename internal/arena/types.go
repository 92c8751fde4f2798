package arena

import (
	"encoding/json"

	"robowar/internal/grid"
	"robowar/internal/robot"
)

type Event struct {
	Turn   int       `json:"turn"`
	Type   string    `json:"type"`
	Actor  string    `json:"actor,omitempty"`
	Target string    `json:"target,omitempty"`
	Pos    *grid.Pos `json:"pos,omitempty"`
	Dir    string    `json:"dir,omitempty"`
	Dist   int       `json:"dist,omitempty"`
	Damage int       `json:"damage,omitempty"`
	HP     int       `json:"hp,omitempty"`
	Note   string    `json:"note,omitempty"`
}

const (
	EvSpawn     = "spawn"
	EvRadar     = "radar"
	EvShot      = "shot"
	EvHit       = "hit"
	EvDestroyed = "destroyed"
	EvMove      = "move"
	EvTrapped   = "trapped"
	EvEnd       = "end"
)

// entity is the engine-side record of one robot. The robot itself only
// ever sees a Context snapshot of it.
type entity struct {
	name    string
	kind    string
	bot     robot.Robot
	spec    robot.Spec
	pos     grid.Pos
	health  int
	armor   int
	ammo    int
	alive   bool
	trapped bool

	shots       int
	hits        int
	damageDealt int
}

type RobotSummary struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Pos         grid.Pos `json:"pos"`
	Health      int      `json:"health"`
	Armor       int      `json:"armor"`
	Ammo        int      `json:"ammo"`
	Alive       bool     `json:"alive"`
	Trapped     bool     `json:"trapped,omitempty"`
	Shots       int      `json:"shots"`
	Hits        int      `json:"hits"`
	DamageDealt int      `json:"damage_dealt"`
}

type Result struct {
	MatchID   string         `json:"match_id"`
	Seed      int64          `json:"seed"`
	Board     [2]int         `json:"board"`
	Turns     int            `json:"turns"`
	Winner    string         `json:"winner,omitempty"`
	Draw      bool           `json:"draw"`
	Survivors []string       `json:"survivors"`
	Robots    []RobotSummary `json:"robots"`
	Events    []Event        `json:"events,omitempty"`
}

func (e *entity) summary() RobotSummary {
	return RobotSummary{
		Name: e.name, Kind: e.kind, Pos: e.pos,
		Health: e.health, Armor: e.armor, Ammo: e.ammo,
		Alive: e.alive, Trapped: e.trapped,
		Shots: e.shots, Hits: e.hits, DamageDealt: e.damageDealt,
	}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
