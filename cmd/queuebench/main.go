// Command queuebench measures multi-producer multi-consumer throughput of
// the queue implementations for a fixed run time.
//
// Usage:
//
//	go run ./cmd/queuebench --producers 4 --consumers 4 --size 1024 --duration 2s
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/randomizedcoder/msgqueue/internal/logging"
)

// Config holds the benchmark settings
type Config struct {
	Verbose   bool
	Producers int
	Consumers int
	Size      int
	Duration  time.Duration
	Every     int
}

func main() {
	app := &cli.App{
		Name:  "queuebench",
		Usage: "Compare bounded queue throughput against a channel and a lock-free ring",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Enable verbose logging"},
			&cli.IntFlag{Name: "producers", Aliases: []string{"p"}, Usage: "Number of producer goroutines", Value: 4},
			&cli.IntFlag{Name: "consumers", Aliases: []string{"c"}, Usage: "Number of consumer goroutines", Value: 4},
			&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "Queue capacity", Value: 1024},
			&cli.DurationFlag{Name: "duration", Aliases: []string{"d"}, Usage: "Run time per implementation", Value: time.Second},
			&cli.IntFlag{Name: "every", Usage: "Producers read the clock once per this many operations", Value: 1000},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "queuebench: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := &Config{
		Verbose:   c.Bool("verbose"),
		Producers: c.Int("producers"),
		Consumers: c.Int("consumers"),
		Size:      c.Int("size"),
		Duration:  c.Duration("duration"),
		Every:     c.Int("every"),
	}
	if cfg.Producers < 1 || cfg.Consumers < 1 || cfg.Duration <= 0 {
		return fmt.Errorf("producers, consumers and duration must be positive")
	}

	sugar, err := logging.NewSugaredLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer sugar.Desugar().Sync() //nolint:errcheck // best-effort flush; ignore sync errors

	fmt.Printf("Benchmarking MPMC queues (%dP/%dC, size=%d, %v each)\n",
		cfg.Producers, cfg.Consumers, cfg.Size, cfg.Duration)
	fmt.Printf("Architecture: %s/%s, GOMAXPROCS=%d\n", runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0))
	fmt.Println("─────────────────────────────────────────────────")

	var results []result
	for _, b := range benches() {
		sugar.Debugw("running", "impl", b.name)
		res, err := b.run(cfg)
		if err != nil {
			return fmt.Errorf("failed to run %s: %w", b.name, err)
		}
		sugar.Debugw("finished", "impl", b.name, "consumed", res.consumed, "elapsed", res.elapsed)
		results = append(results, res)
	}

	printResults(results)
	return nil
}

func printResults(results []result) {
	fmt.Printf("\nResults (%-22s %12s %12s  %10s  %7s):\n", "impl", "pushed", "consumed", "rate", "speedup")
	baseline := results[0].opsPerSec()
	for _, r := range results {
		ops := r.opsPerSec()
		speedup := 0.0
		if baseline > 0 {
			speedup = ops / baseline
		}
		fmt.Printf("  %-24s %12d %12d  %8.2f M/s  %6.2fx\n", r.name, r.pushed, r.consumed, ops/1e6, speedup)
	}
	fmt.Printf("\nNote: ShardedRing is MPSC, so it always runs a single consumer.\n")
}
