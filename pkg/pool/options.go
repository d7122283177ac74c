package pool

import (
	"context"
	"time"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	ReplyOptionKey  OptionKey = "reply_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ReplyOptions bound how long a consumer waits for one reply.
// A zero Timeout means no bound.
type ReplyOptions struct {
	Timeout time.Duration
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func WithReplyTimeout(ctx context.Context, timeout time.Duration) context.Context {
	return context.WithValue(ctx, ReplyOptionKey, ReplyOptions{Timeout: timeout})
}

func GetReplyTimeout(ctx context.Context, defaultTimeout time.Duration) time.Duration {
	options, ok := ctx.Value(ReplyOptionKey).(ReplyOptions)
	if ok {
		return options.Timeout
	}
	return defaultTimeout
}
