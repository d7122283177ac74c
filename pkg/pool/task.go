package pool

import (
	"github.com/ib-77/densemul/pkg/num"
	"github.com/ib-77/densemul/pkg/rop"
)

// Cell is one computed output element and its flat row-major index.
type Cell[T num.Number] struct {
	Index int
	Value T
}

// Reply is what a worker sends back for a task.
type Reply[T num.Number] = rop.Result[Cell[T]]

// Task asks a worker for Dot(Row, Col). Reply is written at most once.
type Task[T num.Number] struct {
	Index int
	Row   num.Vector[T]
	Col   num.Vector[T]
	Reply chan<- Reply[T]
}

// NewReply makes a one-shot reply channel. The send end goes into a Task,
// the receive end stays with whoever waits for the answer.
func NewReply[T num.Number]() (chan<- Reply[T], <-chan Reply[T]) {
	ch := make(chan Reply[T], 1)
	return ch, ch
}

// PerWorker is the queue capacity that lets tasks tasks be spread over
// workers queues by Route without the producer ever blocking.
func PerWorker(tasks, workers int) int {
	if workers <= 0 || tasks <= 0 {
		return 0
	}
	return (tasks + workers - 1) / workers
}
