package sink

import "testing"

func TestFlushRunsFirstImmediatelyThenQueues(t *testing.T) {
	var ran []int
	var s Flush
	s.Push(func() { ran = append(ran, 1) })
	s.Push(func() { ran = append(ran, 2) })
	if len(ran) != 1 || ran[0] != 1 {
		t.Fatalf("ran = %v, want only [1] before any Flush", ran)
	}
	s.Flush()
	if len(ran) != 2 || ran[1] != 2 {
		t.Fatalf("ran = %v, want [1 2] after Flush", ran)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (runnable 2 still in flight)", s.Len())
	}
}

func TestSkipDropsWhileBusy(t *testing.T) {
	var ran []int
	var s Skip
	if ok := s.Push(func() { ran = append(ran, 1) }); !ok {
		t.Fatalf("expected first push to run")
	}
	if ok := s.Push(func() { ran = append(ran, 2) }); ok {
		t.Fatalf("expected second push to be dropped while busy")
	}
	s.Flush()
	if ok := s.Push(func() { ran = append(ran, 3) }); !ok {
		t.Fatalf("expected push after Flush to run")
	}
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 3 {
		t.Fatalf("ran = %v, want [1 3]", ran)
	}
}
