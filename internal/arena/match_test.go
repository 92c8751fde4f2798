package arena

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robowar/internal/config"
	"robowar/internal/grid"
)

func summaryOf(t *testing.T, res Result, name string) RobotSummary {
	t.Helper()
	for _, r := range res.Robots {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no robot %q in result", name)
	return RobotSummary{}
}

func TestRun_SkullzzSettlesInCorner(t *testing.T) {
	m, err := NewMatch(arenaOf(10, 10, 20,
		config.RobotDef{Kind: "skullzz", Pos: at(4, 3)},
		config.RobotDef{Kind: "dummy", Pos: at(9, 9)},
	), 5, quietLogger())
	require.NoError(t, err)

	res := m.Run(false)
	assert.True(t, res.Draw)
	assert.Equal(t, 20, res.Turns)
	assert.Nil(t, res.Events)

	s := summaryOf(t, res, "Skullzz")
	assert.Equal(t, grid.Pos{R: 0, C: 0}, s.Pos)
	assert.Equal(t, 0, s.Shots, "dummy is out of grenade range")
	assert.Equal(t, 100, s.Health)
}

func TestRun_SkullzzGrenadesDummy(t *testing.T) {
	m, err := NewMatch(arenaOf(10, 10, 50,
		config.RobotDef{Kind: "skullzz", Pos: at(0, 0)},
		config.RobotDef{Kind: "dummy", Pos: at(3, 3)},
	), 11, quietLogger())
	require.NoError(t, err)

	res := m.Run(true)
	require.False(t, res.Draw)
	assert.Equal(t, "Skullzz", res.Winner)
	assert.Equal(t, []string{"Skullzz"}, res.Survivors)
	assert.LessOrEqual(t, res.Turns, 20)

	s := summaryOf(t, res, "Skullzz")
	assert.Equal(t, 100, s.Health, "blast never reaches the corner")
	assert.LessOrEqual(t, s.Shots, 10)
	assert.Equal(t, 10-s.Shots, s.Ammo)
	assert.Equal(t, s.Shots, s.Hits)

	var destroyed []Event
	for _, ev := range res.Events {
		if ev.Type == EvDestroyed {
			destroyed = append(destroyed, ev)
		}
	}
	require.Len(t, destroyed, 1)
	assert.Equal(t, "Dummy", destroyed[0].Target)
	assert.Equal(t, EvEnd, res.Events[len(res.Events)-1].Type)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() Result {
		m, err := NewMatch(config.Default(), 424242, quietLogger())
		require.NoError(t, err)
		return m.Run(true)
	}
	a, b := run(), run()
	assert.NotEqual(t, a.MatchID, b.MatchID)
	assert.Equal(t, a.Turns, b.Turns)
	assert.Equal(t, a.Robots, b.Robots)
	assert.Equal(t, a.Events, b.Events)
}

func TestResult_JSON(t *testing.T) {
	m, err := NewMatch(config.Default(), 1, quietLogger())
	require.NoError(t, err)
	res := m.Run(false)

	var back map[string]any
	require.NoError(t, json.Unmarshal(MarshalPretty(res), &back))
	assert.Equal(t, res.MatchID, back["match_id"])
	assert.Contains(t, back, "survivors")
	assert.NotContains(t, back, "events")
}

func TestRunBatch(t *testing.T) {
	sum, err := RunBatch(context.Background(), config.Default(), 6, 3, 99, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Runs)

	wins := 0
	for _, w := range sum.Wins {
		wins += w
	}
	assert.Equal(t, 6, wins+sum.Draws)
	assert.ElementsMatch(t, []string{"Skullzz", "Roamer", "Dummy"}, sum.Ranking)
	assert.Greater(t, sum.AvgTurns, 0.0)

	again, err := RunBatch(context.Background(), config.Default(), 6, 1, 99, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, sum, again, "worker count does not change outcomes")
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunBatch(ctx, config.Default(), 4, 2, 1, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_BadConfig(t *testing.T) {
	_, err := RunBatch(context.Background(), arenaOf(6, 6, 5, config.RobotDef{Kind: "nope"}), 3, 2, 1, quietLogger())
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := summarize([]Result{
		{Turns: 10, Winner: "B", Robots: []RobotSummary{{Name: "A", DamageDealt: 30}, {Name: "B", DamageDealt: 90}}},
		{Turns: 30, Draw: true, Robots: []RobotSummary{{Name: "A", DamageDealt: 10}, {Name: "B"}}},
	})
	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 20.0, s.AvgTurns)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, s.Wins)
	assert.Equal(t, 0.5, s.WinRate["B"])
	assert.Equal(t, 20.0, s.Damage["A"])
	assert.Equal(t, []string{"B", "A"}, s.Ranking)

	empty := summarize(nil)
	assert.Equal(t, 0, empty.Runs)
}
