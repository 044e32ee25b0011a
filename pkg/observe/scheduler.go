package observe

import (
	"sync"

	"github.com/verdant-ui/verdant/internal/metrics"
)

// The scheduler stands in for the platform's same-turn-deferred
// callback queue: writes enqueue reaction runs, and the host drains
// the queue once the current synchronous block of code has finished.
// UI drivers flush after each event handler returns; headless hosts
// and tests call Flush directly.
//
// Each schedule call produces exactly one future run. There is no
// dedup and no dirty set: a reaction reached by two writes in the same
// synchronous block runs twice in the next flush, both runs observing
// the final values of both writes. Once enqueued, a run cannot be
// cancelled; disposal makes it a no-op instead.
type scheduler struct {
	mu    sync.Mutex
	queue []*Reaction
}

var defaultScheduler scheduler

// schedule appends one deferred run for r.
func schedule(r *Reaction) {
	defaultScheduler.mu.Lock()
	defaultScheduler.queue = append(defaultScheduler.queue, r)
	depth := len(defaultScheduler.queue)
	defaultScheduler.mu.Unlock()

	metrics.ScheduledRuns.Inc()
	metrics.QueueDepth.Set(float64(depth))
}

// Flush runs the deferred phase: queued reactions execute in FIFO
// order until the queue is empty. Runs enqueued while flushing execute
// in the same flush. Each run is individually isolated; a panicking
// reaction never blocks the rest of the queue.
func Flush() {
	for {
		defaultScheduler.mu.Lock()
		if len(defaultScheduler.queue) == 0 {
			defaultScheduler.mu.Unlock()
			metrics.QueueDepth.Set(0)
			return
		}
		r := defaultScheduler.queue[0]
		defaultScheduler.queue = defaultScheduler.queue[1:]
		defaultScheduler.mu.Unlock()

		r.Invoke()
	}
}

// Pending returns the number of queued deferred runs.
func Pending() int {
	defaultScheduler.mu.Lock()
	defer defaultScheduler.mu.Unlock()
	return len(defaultScheduler.queue)
}
