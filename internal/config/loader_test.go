package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArena(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FillsDefaults(t *testing.T) {
	a, err := Load(writeArena(t, `
robots:
  - kind: skullzz
  - kind: dummy
    pos: [4, 7]
`))
	require.NoError(t, err)
	assert.Equal(t, BoardConfig{Rows: 20, Cols: 20}, a.Board)
	assert.Equal(t, RulesConfig{MaxTurns: 200, GrenadeAmmo: 10, MaxHealth: 100}, a.Rules)
	require.Len(t, a.Robots, 2)
	assert.Nil(t, a.Robots[0].Pos)
	assert.Equal(t, &[2]int{4, 7}, a.Robots[1].Pos)
}

func TestLoad_FullFile(t *testing.T) {
	a, err := Load(writeArena(t, `
board: {rows: 12, cols: 16}
rules: {max_turns: 50, grenade_ammo: 3, max_health: 60}
obstacles:
  - {type: mound, row: 4, col: 7}
  - {type: pit, row: 9, col: 9}
robots:
  - {kind: skullzz, pos: [6, 8]}
  - {kind: roamer}
`))
	require.NoError(t, err)
	assert.Equal(t, 12, a.Board.Rows)
	assert.Equal(t, 16, a.Board.Cols)
	assert.Equal(t, 3, a.Rules.GrenadeAmmo)
	assert.Equal(t, []Obstacle{{Type: ObstacleMound, Row: 4, Col: 7}, {Type: ObstaclePit, Row: 9, Col: 9}}, a.Obstacles)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeArena(t, "robots: [\n"))
	assert.Error(t, err)

	cases := map[string]string{
		"tiny board":      "board: {rows: 1, cols: 5}\nrobots: [{kind: dummy}]",
		"no robots":       "board: {rows: 5, cols: 5}",
		"bad obstacle":    "obstacles: [{type: lava, row: 1, col: 1}]\nrobots: [{kind: dummy}]",
		"obstacle off":    "obstacles: [{type: pit, row: 30, col: 1}]\nrobots: [{kind: dummy}]",
		"robot off":       "robots: [{kind: dummy, pos: [-1, 2]}]",
		"robot on mound":  "obstacles: [{type: mound, row: 1, col: 1}]\nrobots: [{kind: dummy, pos: [1, 1]}]",
		"robots stacked":  "robots: [{kind: dummy, pos: [2, 2]}, {kind: roamer, pos: [2, 2]}]",
		"kindless robot":  "robots: [{pos: [2, 2]}]",
		"negative ammo":   "rules: {grenade_ammo: -1}\nrobots: [{kind: dummy}]",
		"too many robots": "board: {rows: 2, cols: 2}\nrobots: [{kind: a}, {kind: b}, {kind: c}, {kind: d}, {kind: e}]",
	}
	for name, body := range cases {
		_, err := Load(writeArena(t, body))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestDefault(t *testing.T) {
	a := Default()
	require.NoError(t, a.Validate())
	assert.Len(t, a.Robots, 3)
	assert.Equal(t, "skullzz", a.Robots[0].Kind)
}
