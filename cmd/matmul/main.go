// Command matmul multiplies two matrices given on the command line.
//
//	matmul -a "1 2 3; 4 5 6" -b "1 2; 3 4; 5 6" -workers 4 -counters atomic
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/ib-77/densemul/pkg/dense"
	"github.com/ib-77/densemul/pkg/engine"
	"github.com/ib-77/densemul/pkg/metrics"
	"github.com/ib-77/densemul/pkg/num"
	"github.com/ib-77/densemul/pkg/pool"
)

var errSequentialOnly = errors.New("flag does not apply with -sequential")

type config struct {
	a, b       string
	workers    int
	sequential bool
	float      bool
	timeout    time.Duration
	counters   string
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.a, "a", "", `left matrix, e.g. "1 2 3; 4 5 6"`)
	flag.StringVar(&cfg.b, "b", "", `right matrix, e.g. "1 2; 3 4; 5 6"`)
	flag.IntVar(&cfg.workers, "workers", engine.DefaultWorkers, "number of workers")
	flag.BoolVar(&cfg.sequential, "sequential", false, "multiply on one goroutine")
	flag.BoolVar(&cfg.float, "float", false, "parse elements as float64 instead of int64")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "max wait for a single reply, 0 for none")
	flag.StringVar(&cfg.counters, "counters", "none", "counter table: atomic, striped or none")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("matmul failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	if cfg.float {
		return multiply(ctx, cfg, out, parseFloat)
	}
	return multiply(ctx, cfg, out, parseInt)
}

func multiply[T num.Number](ctx context.Context, cfg config, out io.Writer, parse func(string) (T, error)) error {
	a, err := parseMatrix(cfg.a, parse)
	if err != nil {
		return fmt.Errorf("parse -a: %w", err)
	}
	b, err := parseMatrix(cfg.b, parse)
	if err != nil {
		return fmt.Errorf("parse -b: %w", err)
	}

	var c *dense.Matrix[T]
	if cfg.sequential {
		if cfg.counters != "" && cfg.counters != "none" {
			return fmt.Errorf("-counters %s: %w", cfg.counters, errSequentialOnly)
		}
		if cfg.timeout != 0 {
			return fmt.Errorf("-timeout %s: %w", cfg.timeout, errSequentialOnly)
		}
		slog.Debug("multiplying on one goroutine, -workers ignored", "workers", cfg.workers)
		c, err = dense.Multiply(a, b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, c)
		return err
	}

	workers := cfg.workers
	if workers <= 0 {
		workers = engine.DefaultWorkers
	}
	counters, err := newCounters(cfg.counters, workers)
	if err != nil {
		return err
	}

	ctx = pool.WithReplyTimeout(pool.WithWorkerOptions(ctx, workers), cfg.timeout)
	if counters != nil {
		ctx = engine.WithCounters(ctx, counters)
	}

	c, err = engine.MultiplyContext(ctx, a, b)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, c); err != nil {
		return err
	}

	if counters != nil {
		snap := counters.Snapshot()
		for _, k := range slices.Sorted(maps.Keys(snap)) {
			if _, err := fmt.Fprintf(out, "%s=%d\n", k, snap[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

func newCounters(kind string, workers int) (metrics.Counters, error) {
	switch kind {
	case "", "none":
		return nil, nil
	case "atomic":
		return metrics.NewAtomicTable(engine.CounterKeys(workers)...), nil
	case "striped":
		return metrics.NewStripedTable(), nil
	default:
		return nil, fmt.Errorf("unknown counter table %q", kind)
	}
}
