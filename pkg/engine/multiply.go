package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/ib-77/densemul/pkg/dense"
	"github.com/ib-77/densemul/pkg/metrics"
	"github.com/ib-77/densemul/pkg/num"
	"github.com/ib-77/densemul/pkg/pool"
)

// DefaultWorkers is the pool size used when none is given.
const DefaultWorkers = 4

// Multiply computes a×b on workers workers, DefaultWorkers if workers <= 0.
// The result equals dense.Multiply(a, b) element for element.
func Multiply[T num.Number](a, b *dense.Matrix[T], workers int) (*dense.Matrix[T], error) {
	return MultiplyContext(pool.WithWorkerOptions(context.Background(), workers), a, b)
}

// MustMultiply is Multiply with DefaultWorkers that panics on error.
func MustMultiply[T num.Number](a, b *dense.Matrix[T]) *dense.Matrix[T] {
	c, err := Multiply(a, b, DefaultWorkers)
	if err != nil {
		panic(fmt.Sprintf("matrix multiply error: %v", err))
	}
	return c
}

// MultiplyContext computes a×b with the worker count, reply timeout and
// counters carried by ctx (pool.WithWorkerOptions, pool.WithReplyTimeout,
// WithCounters).
func MultiplyContext[T num.Number](ctx context.Context, a, b *dense.Matrix[T]) (*dense.Matrix[T], error) {
	if err := dense.CheckProduct(a, b); err != nil {
		return nil, err
	}

	workers := pool.GetWorkerMaxCount(ctx, DefaultWorkers)
	timeout := pool.GetReplyTimeout(ctx, 0)
	counters := GetCounters(ctx)

	// stop ends the workers early when the call gives up.
	poolCtx, stop := context.WithCancel(ctx)
	defer stop()

	n := a.Rows() * b.Cols()
	p, err := pool.Start(poolCtx, workers, pool.PerWorker(n, workers), hooks[T](counters))
	if err != nil {
		return nil, err
	}

	replies, err := issue(p, a, b, counters)
	p.Close()
	if err != nil {
		stop()
		_ = p.Wait()
		return nil, err
	}

	data := make([]T, n)
	if err := collect(ctx, p, replies, data, timeout, counters); err != nil {
		stop()
		_ = p.Wait()
		return nil, err
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return dense.New(data, a.Rows(), b.Cols()), nil
}

// issue sends one task per output cell in row-major order and returns the
// reply ends in the same order.
func issue[T num.Number](p *pool.Pool[T], a, b *dense.Matrix[T], counters metrics.Counters) ([]<-chan pool.Reply[T], error) {
	replies := make([]<-chan pool.Reply[T], 0, a.Rows()*b.Cols())

	cols := make([]num.Vector[T], b.Cols())
	for j := range cols {
		cols[j] = b.Col(j)
	}

	for i := 0; i < a.Rows(); i++ {
		row := a.Row(i)
		for j := 0; j < b.Cols(); j++ {
			send, recv := pool.NewReply[T]()
			task := pool.Task[T]{Index: i*b.Cols() + j, Row: row, Col: cols[j], Reply: send}
			if err := p.SubmitRouted(task); err != nil {
				return nil, err
			}
			inc(counters, KeyTasksIssued)
			replies = append(replies, recv)
		}
	}
	return replies, nil
}

// collect waits for every reply in issuance order and stores its value.
func collect[T num.Number](ctx context.Context, p *pool.Pool[T], replies []<-chan pool.Reply[T],
	data []T, timeout time.Duration, counters metrics.Counters) error {

	var timer *time.Timer
	if timeout > 0 {
		timer = time.NewTimer(timeout)
		defer timer.Stop()
	}

	for k, recv := range replies {
		if timer != nil {
			timer.Reset(timeout)
		}

		reply, err := await(ctx, p, recv, timer)
		if err != nil {
			return fmt.Errorf("task %d: %w", k, err)
		}
		if !reply.IsSuccess() {
			if reply.IsEmpty() {
				return fmt.Errorf("task %d: %w", k, ErrMissingReply)
			}
			return fmt.Errorf("task %d: %w", k, reply.Err())
		}

		cell := reply.Result()
		data[cell.Index] = cell.Value
		inc(counters, KeyRepliesReceived)
	}
	return nil
}

func await[T num.Number](ctx context.Context, p *pool.Pool[T], recv <-chan pool.Reply[T],
	timer *time.Timer) (pool.Reply[T], error) {

	var expired <-chan time.Time
	if timer != nil {
		expired = timer.C
	}

	select {
	case reply := <-recv:
		return reply, nil
	case <-p.Done():
		// The reply may have been sent just before the pool stopped.
		select {
		case reply := <-recv:
			return reply, nil
		default:
		}
		if err := ctx.Err(); err != nil {
			return pool.Reply[T]{}, err
		}
		return pool.Reply[T]{}, p.Err()
	case <-expired:
		return pool.Reply[T]{}, ErrReplyTimeout
	}
}
