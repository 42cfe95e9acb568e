package performer

import "sync"

// BlockingPerformer turns a callback-based Block into a synchronous call:
// the calling goroutine waits on a condition variable until the block
// signals completion, then the completion is delivered on the calling
// goroutine. Grounded on the wait/signal loop a file watcher uses to block
// a caller until the next debounced event arrives.
type BlockingPerformer struct{}

// Perform runs block, blocking the calling goroutine until it completes,
// then invokes consume with the result.
func (BlockingPerformer) Perform(block Block, consume func(err error)) {
	var mu sync.Mutex
	cond := sync.NewCond(&mu)
	done := false
	var result error

	go block(func(err error) {
		mu.Lock()
		result = err
		done = true
		mu.Unlock()
		cond.Signal()
	})

	mu.Lock()
	for !done {
		cond.Wait()
	}
	mu.Unlock()

	consume(result)
}
