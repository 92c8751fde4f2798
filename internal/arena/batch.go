package arena

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"robowar/internal/config"
	"robowar/internal/util"
)

const defaultWorkers = 8

type Summary struct {
	Runs     int                `json:"runs"`
	Draws    int                `json:"draws"`
	AvgTurns float64            `json:"avg_turns"`
	Wins     map[string]int     `json:"wins"`
	WinRate  map[string]float64 `json:"win_rate"`
	Damage   map[string]float64 `json:"avg_damage_dealt"`
	Ranking  []string           `json:"ranking"`
}

// RunBatch plays n independent matches of cfg with at most workers running
// at once. Match i uses util.MatchSeed(seed, i).
func RunBatch(ctx context.Context, cfg *config.Arena, n, workers int, seed int64, log *logrus.Logger) (Summary, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	results := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := NewMatch(cfg, util.MatchSeed(seed, i), log)
			if err != nil {
				return err
			}
			results[i] = m.Run(false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	return summarize(results), nil
}

func summarize(results []Result) Summary {
	s := Summary{
		Runs:    len(results),
		Wins:    map[string]int{},
		WinRate: map[string]float64{},
		Damage:  map[string]float64{},
	}
	if len(results) == 0 {
		return s
	}
	turns := 0
	for _, r := range results {
		turns += r.Turns
		if r.Draw {
			s.Draws++
		} else {
			s.Wins[r.Winner]++
		}
		for _, rb := range r.Robots {
			s.Damage[rb.Name] += float64(rb.DamageDealt)
			if _, ok := s.Wins[rb.Name]; !ok {
				s.Wins[rb.Name] = 0
			}
		}
	}
	n := float64(len(results))
	s.AvgTurns = float64(turns) / n
	for name, w := range s.Wins {
		s.WinRate[name] = float64(w) / n
		s.Ranking = append(s.Ranking, name)
	}
	for name := range s.Damage {
		s.Damage[name] /= n
	}
	sort.Slice(s.Ranking, func(i, j int) bool {
		a, b := s.Ranking[i], s.Ranking[j]
		if s.Wins[a] != s.Wins[b] {
			return s.Wins[a] > s.Wins[b]
		}
		return a < b
	})
	return s
}
