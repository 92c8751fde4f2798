package arena

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"robowar/internal/config"
	"robowar/internal/grid"
	"robowar/internal/robot"
	"robowar/internal/util"
)

// Match is one game on one board. It is not safe for concurrent use; run
// separate matches in parallel instead.
type Match struct {
	ID   uuid.UUID
	Seed int64

	rows, cols int
	rules      config.RulesConfig
	mounds     map[grid.Pos]bool
	pits       map[grid.Pos]bool
	robots     []*entity
	rng        *rand.Rand

	turn   int
	record bool
	events []Event
	log    *logrus.Entry
}

// snapshot is the Context a robot sees during one callback.
type snapshot struct {
	loc        grid.Pos
	rows, cols int
	budget     int
}

func (s snapshot) Location() grid.Pos          { return s.loc }
func (s snapshot) BoardSize() (rows, cols int) { return s.rows, s.cols }
func (s snapshot) MoveBudget() int             { return s.budget }

// NewMatch sets up the board and roster described by cfg. A nil cfg uses
// config.Default.
func NewMatch(cfg *config.Arena, seed int64, log *logrus.Logger) (*Match, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	id := uuid.New()
	m := &Match{
		ID:     id,
		Seed:   seed,
		rows:   cfg.Board.Rows,
		cols:   cfg.Board.Cols,
		rules:  cfg.Rules,
		mounds: map[grid.Pos]bool{},
		pits:   map[grid.Pos]bool{},
		rng:    util.New(seed),
		log:    log.WithFields(logrus.Fields{"match": id.String(), "seed": seed}),
	}
	for _, o := range cfg.Obstacles {
		p := grid.Pos{R: o.Row, C: o.Col}
		switch o.Type {
		case config.ObstacleMound:
			m.mounds[p] = true
		case config.ObstaclePit:
			m.pits[p] = true
		}
	}

	seen := map[string]int{}
	taken := map[grid.Pos]bool{}
	var pending []*entity
	for i, def := range cfg.Robots {
		bot, err := robot.New(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("robot %d: %w", i, err)
		}
		spec := bot.Spec()
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("robot %d: %w", i, err)
		}
		seen[spec.Name]++
		name := spec.Name
		if n := seen[spec.Name]; n > 1 {
			name = fmt.Sprintf("%s#%d", spec.Name, n)
		}
		e := &entity{
			name:   name,
			kind:   def.Kind,
			bot:    bot,
			spec:   spec,
			health: cfg.Rules.MaxHealth,
			armor:  spec.Armor,
			ammo:   cfg.Rules.GrenadeAmmo,
			alive:  true,
		}
		if def.Pos != nil {
			e.pos = grid.Pos{R: def.Pos[0], C: def.Pos[1]}
			taken[e.pos] = true
		} else {
			pending = append(pending, e)
		}
		m.robots = append(m.robots, e)
	}
	// Fixed placements are already in taken, so random ones never land on them.
	for _, e := range pending {
		p, ok := m.randomFreeCell(taken)
		if !ok {
			return nil, fmt.Errorf("%w: no free cell for %s", config.ErrInvalid, e.name)
		}
		e.pos = p
		taken[p] = true
	}
	return m, nil
}

func (m *Match) randomFreeCell(taken map[grid.Pos]bool) (grid.Pos, bool) {
	var free []grid.Pos
	for r := range m.rows {
		for c := range m.cols {
			p := grid.Pos{R: r, C: c}
			if !m.mounds[p] && !m.pits[p] && !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return grid.Pos{}, false
	}
	return free[m.rng.Intn(len(free))], true
}

func (m *Match) emit(ev Event) {
	ev.Turn = m.turn
	if m.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		m.log.WithFields(logrus.Fields{"turn": ev.Turn, "actor": ev.Actor, "target": ev.Target}).Trace(ev.Type)
	}
	if m.record {
		m.events = append(m.events, ev)
	}
}

func (m *Match) view(e *entity) snapshot {
	budget := e.spec.Move
	if e.trapped {
		budget = 0
	}
	return snapshot{loc: e.pos, rows: m.rows, cols: m.cols, budget: budget}
}

func (m *Match) occupant(p grid.Pos) *entity {
	for _, e := range m.robots {
		if e.alive && e.pos == p {
			return e
		}
	}
	return nil
}

func (m *Match) living() int {
	n := 0
	for _, e := range m.robots {
		if e.alive {
			n++
		}
	}
	return n
}

// Run plays the match to completion. When record is set the full event
// log is kept in the result.
func (m *Match) Run(record bool) Result {
	m.record = record
	for _, e := range m.robots {
		p := e.pos
		m.emit(Event{Type: EvSpawn, Actor: e.name, Pos: &p, HP: e.health})
	}

	for m.turn = 1; m.turn <= m.rules.MaxTurns; m.turn++ {
		for _, e := range m.robots {
			if !e.alive {
				continue
			}
			m.radarPhase(e)
			m.shotPhase(e)
			if !e.alive {
				continue
			}
			m.movePhase(e)
		}
		if m.living() <= 1 {
			break
		}
	}
	turns := min(m.turn, m.rules.MaxTurns)
	m.turn = turns

	res := Result{
		MatchID:   m.ID.String(),
		Seed:      m.Seed,
		Board:     [2]int{m.rows, m.cols},
		Turns:     turns,
		Survivors: []string{},
	}
	for _, e := range m.robots {
		res.Robots = append(res.Robots, e.summary())
		if e.alive {
			res.Survivors = append(res.Survivors, e.name)
		}
	}
	if len(res.Survivors) == 1 {
		res.Winner = res.Survivors[0]
	} else {
		res.Draw = true
	}
	m.emit(Event{Type: EvEnd, Actor: res.Winner, Note: fmt.Sprintf("%d survivors", len(res.Survivors))})
	if record {
		res.Events = m.events
	}
	m.log.WithFields(logrus.Fields{"turns": turns, "winner": res.Winner, "draw": res.Draw}).Debug("match finished")
	return res
}

func (m *Match) radarPhase(e *entity) {
	dir := e.bot.RadarDirection(m.view(e))
	dets := m.scan(e, dir)
	m.emit(Event{Type: EvRadar, Actor: e.name, Dir: dir.String(), Note: fmt.Sprintf("%d contacts", len(dets))})
	e.bot.ProcessRadar(m.view(e), dets)
}

func (m *Match) movePhase(e *entity) {
	mv := e.bot.Movement(m.view(e))
	m.move(e, mv)
}
