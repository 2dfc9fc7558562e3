package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pitch/internal/infrastructure/logging"
	"github.com/younwookim/pitch/internal/infrastructure/metrics"
)

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", 1, "Seed of the first match; later matches use seed+1, seed+2, ...")
	flag.IntVar(&opts.ticks, "ticks", 5*60*60, "Ticks per AI match")
	flag.IntVar(&opts.matches, "matches", 1, "Number of AI matches to play")
	flag.StringVar(&opts.formation, "formation", "433", "Formation name under formations/")
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.StringVar(&opts.replay, "replay", "", "Replay file to play back instead of an AI match")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(os.Stderr, "simulate", *level)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	collector := metrics.NewCollector()
	if opts.metricsAddr != "" {
		go func() {
			if err := collector.Serve(ctx, opts.metricsAddr, logger); err != nil {
				logger.Error("metrics endpoint failed", "err", err)
			}
		}()
	}

	if _, err := run(ctx, opts, os.Stdout, collector, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("simulation failed", "err", err)
	}

	// Keep the endpoint up for scraping until interrupted
	if opts.metricsAddr != "" && ctx.Err() == nil {
		logger.Info("simulation finished, serving metrics until interrupted")
		<-ctx.Done()
	}
}
