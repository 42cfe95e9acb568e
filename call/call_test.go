package call

import (
	"errors"
	"testing"

	"github.com/relaycore/httpcall/message"
)

func TestNewStampsRequestID(t *testing.T) {
	c := New(message.NewRequest(message.RequestLine{Method: message.MethodGET, Target: "/", Version: message.HTTP11}, nil, message.BodyEmpty))
	if c.RequestID() == "" {
		t.Fatalf("expected a stamped request id")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(message.NewRequest(message.RequestLine{Method: message.MethodGET, Target: "/", Version: message.HTTP11}, nil, message.BodyEmpty))
	c.Err = errors.New("boom")
	clone := c.Clone()

	clone.Extras.Put("extra", "value")
	if _, ok := c.Extras.Get("extra"); ok {
		t.Fatalf("mutating clone's Extras leaked into original")
	}
	if clone.Err == nil || clone.Err.Error() != "boom" {
		t.Fatalf("clone.Err = %v, want shared boom error", clone.Err)
	}
	_ = clone.Request.Headers.Put("X-Test", "1")
	if _, ok := c.Request.Headers.Get("X-Test"); ok {
		t.Fatalf("mutating clone's Request leaked into original")
	}
}

func TestFailed(t *testing.T) {
	c := New(message.NewRequest(message.RequestLine{Method: message.MethodGET, Target: "/", Version: message.HTTP11}, nil, message.BodyEmpty))
	if c.Failed() {
		t.Fatalf("fresh call should not be failed")
	}
	c.Err = errors.New("x")
	if !c.Failed() {
		t.Fatalf("call with Err set should be failed")
	}
}
