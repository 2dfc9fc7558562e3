// Package metrics exports match counters for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/younwookim/pitch/internal/domain/entity"
)

const namespace = "pitch"

// Collector folds match events into Prometheus metrics on its own registry
type Collector struct {
	registry *prometheus.Registry

	goals        *prometheus.CounterVec
	kicks        *prometheus.CounterVec
	ticks        prometheus.Counter
	matches      prometheus.Counter
	tickDuration prometheus.Histogram
}

// NewCollector creates and registers the match metrics
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		goals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goals_total",
			Help:      "Goals scored, by team.",
		}, []string{"team"}),
		kicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kicks_total",
			Help:      "Kicks performed, by team and mode.",
		}, []string{"team", "mode"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks executed.",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Matches played to completion.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one simulation tick.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	c.registry.MustRegister(c.goals, c.kicks, c.ticks, c.matches, c.tickDuration)
	return c
}

// Observe records one tick's events and its duration
func (c *Collector) Observe(events []entity.Event, elapsed time.Duration) {
	c.ticks.Inc()
	c.tickDuration.Observe(elapsed.Seconds())

	for _, e := range events {
		switch e.Kind {
		case entity.EventGoal:
			c.goals.WithLabelValues(e.Team.String()).Inc()
		case entity.EventKick:
			c.kicks.WithLabelValues(e.Team.String(), e.Mode.String()).Inc()
		}
	}
}

// MatchFinished counts a completed match
func (c *Collector) MatchFinished() {
	c.matches.Inc()
}

// Registry returns the registry the metrics live on
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns the /metrics HTTP handler
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled
func (c *Collector) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
