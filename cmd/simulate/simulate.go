package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pitch/configs"
	"github.com/younwookim/pitch/internal/application/match"
	"github.com/younwookim/pitch/internal/application/replay"
	"github.com/younwookim/pitch/internal/application/system"
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/infrastructure/config"
	"github.com/younwookim/pitch/internal/infrastructure/metrics"
)

var errNoTicks = errors.New("ticks must be positive for an AI match")

// options holds the parsed command line
type options struct {
	seed        int64
	ticks       int
	matches     int
	formation   string
	configDir   string
	replay      string
	metricsAddr string
}

// result summarises one simulated match
type result struct {
	MatchID string
	Seed    int64
	Ticks   uint64
	Score   match.Scoreboard
}

// inputFunc yields the input for the next tick, false when exhausted
type inputFunc func() (system.InputState, bool)

func loadConfig(dir, formation string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll(formation)
	}
	return config.NewFSLoader(configs.FS, "configs").LoadAll(formation)
}

// run plays the requested matches, writes one summary line per match to out
// and feeds every tick into collector
func run(ctx context.Context, opts options, out io.Writer, collector *metrics.Collector, logger *log.Logger) ([]result, error) {
	if opts.replay != "" {
		res, err := runReplay(ctx, opts, collector, logger)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "replay %s: %s (%d ticks)\n", res.MatchID, res.Score.String(), res.Ticks)
		return []result{res}, nil
	}

	if opts.ticks <= 0 {
		return nil, errNoTicks
	}
	cfg, err := loadConfig(opts.configDir, opts.formation)
	if err != nil {
		return nil, err
	}

	matches := max(opts.matches, 1)
	results := make([]result, 0, matches)
	for i := 0; i < matches; i++ {
		seed := opts.seed + int64(i)
		m, err := match.New(cfg.Match, cfg.Formation, seed, match.WithAIOnly())
		if err != nil {
			return results, err
		}

		ticks := 0
		idle := func() (system.InputState, bool) {
			ticks++
			return system.InputState{}, ticks <= opts.ticks
		}

		res := result{MatchID: fmt.Sprintf("sim-%d", seed), Seed: seed}
		res.Score, err = play(ctx, m, idle, cfg.Match.Display.Framerate, collector, logger.With("seed", seed))
		res.Ticks = m.Tick()
		results = append(results, res)
		fmt.Fprintf(out, "match %d (seed %d): %s (%d ticks)\n", i+1, seed, res.Score.String(), res.Ticks)
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func runReplay(ctx context.Context, opts options, collector *metrics.Collector, logger *log.Logger) (result, error) {
	data, err := replay.LoadReplay(opts.replay)
	if err != nil {
		return result{}, err
	}

	cfg, err := loadConfig(opts.configDir, data.Formation)
	if err != nil {
		return result{}, err
	}

	var matchOpts []match.Option
	if data.AIOnly {
		matchOpts = append(matchOpts, match.WithAIOnly())
	}
	m, err := match.New(cfg.Match, cfg.Formation, data.Seed, matchOpts...)
	if err != nil {
		return result{}, err
	}

	r, err := replay.NewReplayer(*data)
	if err != nil {
		return result{}, err
	}
	logger.Info("replaying", "file", opts.replay, "match", r.MatchID(), "frames", r.TotalFrames(), "seed", r.Seed())

	score, err := play(ctx, m, r.GetInput, cfg.Match.Display.Framerate, collector, logger.With("match", r.MatchID()))
	if err != nil {
		err = fmt.Errorf("replay stopped with %d of %d frames left: %w", r.Remaining(), r.TotalFrames(), err)
	}
	return result{MatchID: r.MatchID(), Seed: r.Seed(), Ticks: m.Tick(), Score: score}, err
}

// play steps m until next is exhausted or ctx is cancelled. After a goal the
// formation resets before the next tick, the same order the windowed host
// uses once its goal freeze ends.
func play(ctx context.Context, m *match.Match, next inputFunc, framerate int, collector *metrics.Collector, logger *log.Logger) (match.Scoreboard, error) {
	var score match.Scoreboard
	dt := 1.0 / float64(framerate)

	for {
		if err := ctx.Err(); err != nil {
			return score, err
		}
		in, ok := next()
		if !ok {
			break
		}

		start := time.Now()
		m.Step(in, dt)
		collector.Observe(m.Events(), time.Since(start))

		for _, e := range m.Events() {
			if e.Kind == entity.EventKick {
				logger.Debug("kick", "actor", e.Actor, "team", e.Team, "mode", e.Mode, "tick", e.Tick)
			}
		}
		if score.Record(m.Events()) {
			logger.Info("goal", "team", score.LastScorer, "score", score.String(), "tick", score.LastTick)
			m.ResetFormation()
		}
	}

	collector.MatchFinished()
	logger.Info("full time", "score", score.String(), "ticks", m.Tick())
	return score, nil
}
