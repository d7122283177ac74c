package pool

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/densemul/pkg/num"
	"github.com/ib-77/densemul/pkg/rop/solo"
)

// Hooks are optional callbacks invoked from worker goroutines.
type Hooks[T num.Number] struct {
	OnTask  func(worker int, task Task[T])
	OnReply func(worker int, reply Reply[T])
	OnDrop  func(worker int, reply Reply[T])
	OnFail  func(worker int, err error)

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Pool is a fixed set of workers with one queue each. Submit and Close must
// be called from a single producer goroutine.
type Pool[T num.Number] struct {
	id     uuid.UUID
	queues []chan Task[T]
	group  *errgroup.Group
	ctx    context.Context
	hooks  Hooks[T]
	log    *slog.Logger
	closed atomic.Bool
}

// Start launches workers goroutines, each owning a queue of capacity
// queueCap. They run until Close, a worker failure, or the end of ctx.
func Start[T num.Number](ctx context.Context, workers, queueCap int, hooks Hooks[T]) (*Pool[T], error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers=%d: %w", workers, ErrBadWorkerCount)
	}
	queueCap = max(queueCap, 0)

	group, gctx := errgroup.WithContext(ctx)
	p := &Pool[T]{
		id:     uuid.New(),
		queues: make([]chan Task[T], workers),
		group:  group,
		ctx:    gctx,
		hooks:  hooks,
	}

	logger := hooks.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p.log = logger.With("pool", p.id.String(), "workers", workers)

	for w := range workers {
		queue := make(chan Task[T], queueCap)
		p.queues[w] = queue
		group.Go(func() error {
			return p.work(gctx, w, queue)
		})
	}

	p.log.Debug("pool started", "queue_cap", queueCap)
	return p, nil
}

func (p *Pool[T]) ID() uuid.UUID {
	return p.id
}

func (p *Pool[T]) Workers() int {
	return len(p.queues)
}

// Route returns the worker for task index: index mod Workers().
func (p *Pool[T]) Route(index int) int {
	return index % len(p.queues)
}

// Submit puts task on the queue of the given worker. It fails instead of
// blocking once the pool has stopped.
func (p *Pool[T]) Submit(worker int, task Task[T]) error {
	if worker < 0 || worker >= len(p.queues) {
		return fmt.Errorf("worker %d of %d: %w", worker, len(p.queues), ErrBadWorker)
	}
	if p.closed.Load() {
		return ErrClosed
	}

	select {
	case <-p.ctx.Done():
		return fmt.Errorf("%w: %w", ErrStopped, context.Cause(p.ctx))
	default:
	}

	select {
	case p.queues[worker] <- task:
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("%w: %w", ErrStopped, context.Cause(p.ctx))
	}
}

// SubmitRouted submits task to Route(task.Index).
func (p *Pool[T]) SubmitRouted(task Task[T]) error {
	return p.Submit(p.Route(task.Index), task)
}

// Close closes every queue. Workers finish what is queued and exit.
// Calling Close more than once is safe.
func (p *Pool[T]) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	for _, q := range p.queues {
		close(q)
	}
}

// Done is closed as soon as a worker fails or the parent context ends.
// It is also closed after Wait returns.
func (p *Pool[T]) Done() <-chan struct{} {
	return p.ctx.Done()
}

// Err returns the reason Done was closed, or nil.
func (p *Pool[T]) Err() error {
	if p.ctx.Err() == nil {
		return nil
	}
	return context.Cause(p.ctx)
}

// Wait closes the queues if needed and joins all workers. It returns the
// first error that ended a worker.
func (p *Pool[T]) Wait() error {
	p.Close()
	err := p.group.Wait()
	if err != nil {
		p.log.Debug("pool stopped", "error", err)
	} else {
		p.log.Debug("pool stopped")
	}
	return err
}

func (p *Pool[T]) work(ctx context.Context, worker int, queue <-chan Task[T]) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task, ok := <-queue:
			if !ok {
				return ctx.Err()
			}

			if p.hooks.OnTask != nil {
				p.hooks.OnTask(worker, task)
			}

			reply := solo.Try(ctx, solo.Succeed(task), dot[T])
			if reply.IsCancel() {
				return reply.Err()
			}
			if reply.IsFailure() {
				err := fmt.Errorf("worker %d, task %d: %w: %w", worker, task.Index, ErrWorkerFailed, reply.Err())
				p.log.Error("worker stopped", "worker", worker, "task", task.Index, "error", reply.Err())
				if p.hooks.OnFail != nil {
					p.hooks.OnFail(worker, err)
				}
				return err
			}

			p.deliver(worker, task.Reply, reply)
		}
	}
}

// deliver hands reply over without blocking. A reply nobody can receive is
// logged and dropped.
func (p *Pool[T]) deliver(worker int, out chan<- Reply[T], reply Reply[T]) {
	select {
	case out <- reply:
		if p.hooks.OnReply != nil {
			p.hooks.OnReply(worker, reply)
		}
	default:
		p.log.Warn("reply dropped", "worker", worker, "task", reply.Result().Index, "reply", reply.Id())
		if p.hooks.OnDrop != nil {
			p.hooks.OnDrop(worker, reply)
		}
	}
}

func dot[T num.Number](_ context.Context, task Task[T]) (Cell[T], error) {
	v, err := num.Dot(task.Row, task.Col)
	if err != nil {
		return Cell[T]{Index: task.Index}, err
	}
	return Cell[T]{Index: task.Index, Value: v}, nil
}
