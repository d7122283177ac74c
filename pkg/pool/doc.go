// Package pool runs a fixed set of long-lived workers, each draining its own
// task queue. A task carries two vectors and a one-shot reply channel; the
// worker computes their dot product and answers on that channel.
//
// Routing is static: task k goes to worker k mod W (see Route). Workers exit
// when their queue is closed, when another worker fails, or when the parent
// context ends. A worker whose dot product fails stops its loop; the failure
// is reported by Wait and signalled on Done, so a caller waiting for replies
// can stop waiting.
//
// Options travel in the context, as in:
//
//	ctx = pool.WithWorkerOptions(ctx, 8)
//	ctx = pool.WithReplyTimeout(ctx, time.Second)
package pool
