// Package call models a single request/response exchange as it moves
// through the pipeline and dispatch core: the Request it carries, the
// Response it eventually receives, any error, and an open-ended metadata
// bag that pipes and callbacks use to pass extra state to each other.
package call

import (
	"github.com/google/uuid"
	"github.com/relaycore/httpcall/internal/ordered"
	"github.com/relaycore/httpcall/message"
)

// ExtraRequestID is the Extras key under which Call stamps a correlation id.
const ExtraRequestID = "request-id"

// Call is the unit of state threaded through a pipeline invocation: the
// request being sent, the response once received, a terminal error if the
// exchange failed, and Extras for anything else a pipe or callback wants to
// attach along the way.
type Call struct {
	Request  message.Request
	Response message.Response
	Err      error
	Extras   *ordered.Map[any]
}

// New builds a Call for req, stamping a fresh correlation id into Extras.
func New(req message.Request) *Call {
	c := &Call{Request: req, Extras: ordered.New[any](identity)}
	c.Extras.Put(ExtraRequestID, uuid.NewString())
	return c
}

func identity(s string) string { return s }

// RequestID returns the correlation id stamped at construction, or "" if
// Extras was since mutated to remove it.
func (c *Call) RequestID() string {
	v, ok := c.Extras.Get(ExtraRequestID)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Failed reports whether the exchange ended in error.
func (c *Call) Failed() bool { return c.Err != nil }

// Clone returns an independent Call: Request and Response are deep-copied,
// Extras is shallow-copied (its values are shared, only the map structure
// is new), and Err is shared as-is since error values are themselves
// conventionally immutable.
func (c *Call) Clone() *Call {
	return &Call{
		Request:  c.Request.Clone(),
		Response: c.Response.Clone(),
		Err:      c.Err,
		Extras:   c.Extras.Clone(func(v any) any { return v }),
	}
}
