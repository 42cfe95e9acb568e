package pipeline

import (
	"errors"
	"testing"
)

func TestCombineInvokesInOrder(t *testing.T) {
	var order []int
	p := Combine(
		func(param any, next Next) { order = append(order, 1); next(nil) },
		func(param any, next Next) { order = append(order, 2); next(nil) },
		func(param any, next Next) { order = append(order, 3); next(nil) },
	)
	var outerErr error
	called := false
	p(nil, func(err error) { called = true; outerErr = err })
	if !called || outerErr != nil {
		t.Fatalf("outer not called cleanly: called=%v err=%v", called, outerErr)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v", order)
	}
}

func TestCombineShortCircuitsOnError(t *testing.T) {
	var ran []int
	boom := errors.New("boom")
	p := Combine(
		func(param any, next Next) { ran = append(ran, 1); next(boom) },
		func(param any, next Next) { ran = append(ran, 2); next(nil) },
	)
	var got error
	p(nil, func(err error) { got = err })
	if got != boom {
		t.Fatalf("outer error = %v, want boom", got)
	}
	if len(ran) != 1 {
		t.Fatalf("ran = %v, want only the first pipe to run", ran)
	}
}

func TestCombineTranslatesPanicToError(t *testing.T) {
	p := Combine(func(param any, next Next) { panic(errors.New("raised")) })
	var got error
	p(nil, func(err error) { got = err })
	if got == nil || got.Error() != "raised" {
		t.Fatalf("got = %v, want raised", got)
	}
}

func TestCombineEmptyCallsOuterImmediately(t *testing.T) {
	p := Combine()
	called := false
	p("x", func(err error) { called = true })
	if !called {
		t.Fatalf("expected outer continuation to fire with zero pipes")
	}
}
