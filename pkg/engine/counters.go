package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ib-77/densemul/pkg/metrics"
	"github.com/ib-77/densemul/pkg/num"
	"github.com/ib-77/densemul/pkg/pool"
)

const CountersOptionKey pool.OptionKey = "counters"

const (
	KeyTasksIssued     = "tasks.issued"
	KeyRepliesReceived = "replies.received"
	KeyRepliesDropped  = "replies.dropped"
	KeyWorkersFailed   = "workers.failed"
)

// WithCounters makes MultiplyContext count its work in c.
func WithCounters(ctx context.Context, c metrics.Counters) context.Context {
	return context.WithValue(ctx, CountersOptionKey, c)
}

func GetCounters(ctx context.Context) metrics.Counters {
	c, _ := ctx.Value(CountersOptionKey).(metrics.Counters)
	return c
}

// WorkerKey is the counter of tasks taken by worker w.
func WorkerKey(w int) string {
	return fmt.Sprintf("worker.%d.tasks", w)
}

// CounterKeys lists every key touched by a run on workers workers, for
// tables like metrics.AtomicTable that need their keys up front.
func CounterKeys(workers int) []string {
	keys := []string{KeyTasksIssued, KeyRepliesReceived, KeyRepliesDropped, KeyWorkersFailed}
	for w := range workers {
		keys = append(keys, WorkerKey(w))
	}
	return keys
}

func inc(c metrics.Counters, key string) {
	if c == nil {
		return
	}
	if _, err := c.Inc(key); err != nil {
		slog.Debug("counter not updated", "key", key, "error", err)
	}
}

func hooks[T num.Number](c metrics.Counters) pool.Hooks[T] {
	if c == nil {
		return pool.Hooks[T]{}
	}
	return pool.Hooks[T]{
		OnTask: func(worker int, _ pool.Task[T]) { inc(c, WorkerKey(worker)) },
		OnDrop: func(int, pool.Reply[T]) { inc(c, KeyRepliesDropped) },
		OnFail: func(int, error) { inc(c, KeyWorkersFailed) },
	}
}
