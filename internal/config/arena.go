package config

type Arena struct {
	Board     BoardConfig `yaml:"board"`
	Rules     RulesConfig `yaml:"rules"`
	Obstacles []Obstacle  `yaml:"obstacles"`
	Robots    []RobotDef  `yaml:"robots"`
}

type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type RulesConfig struct {
	MaxTurns    int `yaml:"max_turns"`
	GrenadeAmmo int `yaml:"grenade_ammo"`
	MaxHealth   int `yaml:"max_health"`
}

// Obstacle types understood by the arena.
const (
	ObstacleMound = "mound"
	ObstaclePit   = "pit"
)

type Obstacle struct {
	Type string `yaml:"type"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

type RobotDef struct {
	Kind string  `yaml:"kind"`
	Pos  *[2]int `yaml:"pos"` // row, col; omitted = random free cell
}

// Default is the built-in arena: Skullzz against a roamer and a dummy on an
// open 20x20 board.
func Default() *Arena {
	a := &Arena{
		Robots: []RobotDef{{Kind: "skullzz"}, {Kind: "roamer"}, {Kind: "dummy"}},
	}
	a.applyDefaults()
	return a
}

func (a *Arena) applyDefaults() {
	if a.Board.Rows == 0 {
		a.Board.Rows = 20
	}
	if a.Board.Cols == 0 {
		a.Board.Cols = 20
	}
	if a.Rules.MaxTurns == 0 {
		a.Rules.MaxTurns = 200
	}
	if a.Rules.GrenadeAmmo == 0 {
		a.Rules.GrenadeAmmo = 10
	}
	if a.Rules.MaxHealth == 0 {
		a.Rules.MaxHealth = 100
	}
}
