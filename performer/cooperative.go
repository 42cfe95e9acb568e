package performer

import "golang.org/x/sync/errgroup"

// CooperativePerformer schedules a Block onto an errgroup.Group the caller
// supplies, for hosts that already run their own scheduler and want the
// block's completion joined into a larger wait-group rather than blocking
// a dedicated goroutine.
type CooperativePerformer struct {
	Group *errgroup.Group
}

// NewCooperativePerformer wraps a fresh errgroup.Group.
func NewCooperativePerformer() *CooperativePerformer {
	return &CooperativePerformer{Group: &errgroup.Group{}}
}

// Perform schedules block onto the group; consume is invoked on the group's
// goroutine once block has reported completion.
func (p *CooperativePerformer) Perform(block Block, consume func(err error)) {
	p.Group.Go(func() error {
		done := make(chan error, 1)
		block(func(err error) { done <- err })
		err := <-done
		consume(err)
		return err
	})
}

// Wait blocks until every scheduled Block has completed, returning the
// first non-nil error observed, if any.
func (p *CooperativePerformer) Wait() error {
	return p.Group.Wait()
}
