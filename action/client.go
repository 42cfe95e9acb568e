package action

import "github.com/relaycore/httpcall/internal/obslog"

// Callback reacts to a dispatched event.
type Callback func(name string, param any)

type registration struct {
	action   Action
	callback Callback
}

// Client is the ordered callback registry from spec.md §4.3: On appends a
// registration, Perform (aka trigger) walks the registry in registration
// order and invokes every callback whose action accepts the event.
type Client struct {
	registrations []registration
}

// NewClient returns an empty Client.
func NewClient() *Client {
	return &Client{}
}

// On registers cb against a, appended after any existing registrations.
func (c *Client) On(a Action, cb Callback) {
	c.registrations = append(c.registrations, registration{action: a, callback: cb})
}

// Perform publishes every name in a.Triggers with param, invoking each
// registered callback at most once per name it accepts, in registration
// order. A callback's panic or the callback's own EXCEPTION semantics are
// isolated: the panic is recovered and re-dispatched as an EXCEPTION event,
// and dispatch continues with the remaining registrations (spec.md §4.3).
func (c *Client) Perform(a Action, param any) {
	for _, name := range a.Triggers {
		c.dispatch(name, param)
	}
}

// Trigger is an alias for Perform matching the spec's "perform a.k.a.
// trigger" naming.
func (c *Client) Trigger(a Action, param any) { c.Perform(a, param) }

func (c *Client) dispatch(name string, param any) {
	for _, reg := range c.registrations {
		if !reg.action.Predicate(name, param) {
			continue
		}
		c.invoke(reg, name, param)
	}
}

func (c *Client) invoke(reg registration, name string, param any) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = &panicError{value: r}
			}
			c.dispatchException(err)
		}
	}()
	reg.callback(name, param)
}

// dispatchException re-publishes the recovered error on EXCEPTION. A panic
// raised by an EXCEPTION callback itself is swallowed and logged, never
// re-raised (spec.md §4.3: nested throwables are diagnostic-only).
func (c *Client) dispatchException(err error) {
	defer func() {
		if r := recover(); r != nil {
			obslog.Logger().WithField("recovered", r).Warn("action: exception callback panicked; swallowing")
		}
	}()
	for _, reg := range c.registrations {
		if !reg.action.Predicate("exception", error(err)) {
			continue
		}
		reg.callback("exception", error(err))
	}
}

type panicError struct{ value any }

func (p *panicError) Error() string { return "action: callback panicked" }

func (p *panicError) Unwrap() any { return p.value }
