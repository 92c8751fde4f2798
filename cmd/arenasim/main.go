package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"robowar/internal/arena"
	"robowar/internal/config"
)

func main() {
	var cfgPath, out, level string
	var seed int64
	var n, workers int
	var saveLog bool
	flag.StringVar(&cfgPath, "config", "assets/arena.yaml", "arena YAML file (empty = built-in arena)")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of matches")
	flag.IntVar(&workers, "workers", 8, "parallel matches in batch mode")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.StringVar(&level, "level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Fatal("bad -level")
	}
	log.SetLevel(lvl)

	cfg := config.Default()
	if cfgPath != "" {
		if cfg, err = config.Load(cfgPath); err != nil {
			log.WithError(err).Fatal("config")
		}
	}

	if n <= 1 {
		m, err := arena.NewMatch(cfg, seed, log)
		if err != nil {
			log.WithError(err).Fatal("setup")
		}
		res := m.Run(saveLog)
		if err := os.WriteFile(out, arena.MarshalPretty(res), 0644); err != nil {
			log.WithError(err).Fatal("write result")
		}
		log.WithFields(logrus.Fields{
			"match":  res.MatchID,
			"turns":  res.Turns,
			"winner": res.Winner,
			"draw":   res.Draw,
			"out":    out,
		}).Info("match finished")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	sum, err := arena.RunBatch(ctx, cfg, n, workers, seed, log)
	if err != nil {
		log.WithError(err).Fatal("batch")
	}
	if err := os.WriteFile(out, arena.MarshalPretty(sum), 0644); err != nil {
		log.WithError(err).Fatal("write summary")
	}
	log.WithFields(logrus.Fields{
		"runs":    sum.Runs,
		"draws":   sum.Draws,
		"ranking": sum.Ranking,
		"out":     filepath.Base(out),
	}).Info("batch finished")
}
