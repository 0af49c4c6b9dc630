package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/msgqueue/internal/cancel"
	"github.com/randomizedcoder/msgqueue/internal/logging"
	"github.com/randomizedcoder/msgqueue/internal/queue"
)

func run(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	sugar, err := logging.NewSugaredLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer sugar.Desugar().Sync() //nolint:errcheck // best-effort flush; ignore sync errors

	sugar.Infow("config",
		"capacity", cfg.Capacity,
		"readers", cfg.Readers,
		"writers", cfg.Writers,
		"duration", cfg.Duration,
		"minDelay", cfg.MinDelay,
		"maxDelay", cfg.MaxDelay,
		"match", cfg.Match,
	)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = runDemo(ctx, cfg, sugar)
	return err
}

// runDemo starts every reader and writer, waits for cfg.Duration (or ctx),
// closes the queue and joins all workers. Close comes before the stop flag
// so that workers parked in a blocking call are released rather than left
// waiting for a peer that has already exited.
func runDemo(ctx context.Context, cfg *Config, log *zap.SugaredLogger) (*tally, error) {
	q, err := queue.New[string](cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}

	stop := cancel.NewContext(context.Background())
	defer stop.Cancel()

	t := &tally{}
	g := new(errgroup.Group)
	for i := 0; i < cfg.Readers; i++ {
		r := &reader{id: i, mode: readerModeFor(i), q: q, cfg: cfg, stop: stop, tally: t, log: log}
		g.Go(r.run)
	}
	for i := 0; i < cfg.Writers; i++ {
		w := newWriter(i, q, cfg, stop, t, log)
		g.Go(w.run)
	}

	timer := time.NewTimer(cfg.Duration)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		log.Infow("interrupted, shutting down", "reason", context.Cause(ctx))
	}

	q.Close()
	stop.Cancel()

	if err := g.Wait(); err != nil {
		return t, fmt.Errorf("worker failed: %w", err)
	}

	log.Infow("the demo finished successfully",
		"pushed", t.pushed.snapshot(),
		"popped", t.popped.snapshot(),
		"buffered", q.Len(),
	)
	return t, nil
}
