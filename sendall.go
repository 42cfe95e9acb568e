package httpcall

import (
	"golang.org/x/sync/errgroup"

	"github.com/relaycore/httpcall/call"
)

// SendAll dispatches every target concurrently through c.Do and returns
// their Calls in the same order as targets, regardless of which completed
// first. It returns the first error observed across the group, if any;
// every Call is still returned so callers can inspect partial results.
func (c *Client) SendAll(targets []RequestTarget) ([]*call.Call, error) {
	results := make([]*call.Call, len(targets))
	var group errgroup.Group
	for i, target := range targets {
		i, target := i, target
		group.Go(func() error {
			result, err := c.Do(target)
			results[i] = result
			return err
		})
	}
	err := group.Wait()
	return results, err
}
