package performer

import (
	"errors"
	"testing"
	"time"
)

func TestBlockingPerformerWaitsForCompletion(t *testing.T) {
	var got error
	BlockingPerformer{}.Perform(func(done func(err error)) {
		time.Sleep(10 * time.Millisecond)
		done(nil)
	}, func(err error) { got = err })
	if got != nil {
		t.Fatalf("got = %v, want nil", got)
	}
}

func TestBlockingPerformerPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	var got error
	BlockingPerformer{}.Perform(func(done func(err error)) {
		done(boom)
	}, func(err error) { got = err })
	if got != boom {
		t.Fatalf("got = %v, want boom", got)
	}
}

func TestCooperativePerformerJoinsOnWait(t *testing.T) {
	p := NewCooperativePerformer()
	var results []error
	for i := 0; i < 3; i++ {
		p.Perform(func(done func(err error)) { done(nil) }, func(err error) { results = append(results, err) })
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %v, want 3 entries", results)
	}
}
