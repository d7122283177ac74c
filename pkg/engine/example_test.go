package engine_test

import (
	"context"
	"fmt"

	"github.com/ib-77/densemul/pkg/dense"
	"github.com/ib-77/densemul/pkg/engine"
	"github.com/ib-77/densemul/pkg/metrics"
	"github.com/ib-77/densemul/pkg/pool"
)

func ExampleMultiply() {
	a := dense.New([]int{1, 2, 3, 4}, 2, 2)

	c, err := engine.Multiply(a, a, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: {7 10, 15 22}
}

func ExampleMultiplyContext() {
	const workers = 2
	a := dense.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := dense.New([]int{1, 2, 3, 4, 5, 6}, 3, 2)

	counters := metrics.NewAtomicTable(engine.CounterKeys(workers)...)
	ctx := engine.WithCounters(pool.WithWorkerOptions(context.Background(), workers), counters)

	c, err := engine.MultiplyContext(ctx, a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	snap := counters.Snapshot()
	fmt.Println(c)
	fmt.Println(snap[engine.KeyTasksIssued], snap[engine.WorkerKey(0)], snap[engine.WorkerKey(1)])
	// Output:
	// {22 28, 49 64}
	// 4 2 2
}
