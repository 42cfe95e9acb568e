// Package httpcall is the root façade: it composes the action dispatch
// core, the pipeline engine, a transport engine and a performer into a
// single programmable HTTP/1.1 client.
package httpcall

import (
	"github.com/relaycore/httpcall/action"
	"github.com/relaycore/httpcall/call"
	"github.com/relaycore/httpcall/engine"
	"github.com/relaycore/httpcall/internal/obslog"
	"github.com/relaycore/httpcall/performer"
	"github.com/relaycore/httpcall/pipeline"
)

// Client is the user-facing entry point: a named-event dispatcher, a
// middleware pipeline, a transport engine, and the performer that bridges
// the two together, all built up through a fluent New(...)/With... surface
// (grounded on the teacher's builder-pattern service construction).
type Client struct {
	actions   *action.Client
	pipes     []pipeline.Pipe
	engine    engine.ClientEngine
	performer performer.Performer
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithEngine overrides the transport engine (default engine.DefaultEngine{}).
func WithEngine(e engine.ClientEngine) Option {
	return func(c *Client) { c.engine = e }
}

// WithPerformer overrides the performer (default performer.BlockingPerformer{}).
func WithPerformer(p performer.Performer) Option {
	return func(c *Client) { c.performer = p }
}

// WithPipe appends a pipeline stage, run in registration order before the
// transport engine.
func WithPipe(p pipeline.Pipe) Option {
	return func(c *Client) { c.pipes = append(c.pipes, p) }
}

// WithMiddleware injects a Middleware's callbacks into the client's action
// dispatcher.
func WithMiddleware(m action.Middleware) Option {
	return func(c *Client) { m.Inject(c.actions) }
}

// New builds a Client with sensible defaults: engine.DefaultEngine and a
// blocking performer, both overridable via Option.
func New(opts ...Option) *Client {
	c := &Client{
		actions:   action.NewClient(),
		engine:    engine.DefaultEngine{},
		performer: performer.BlockingPerformer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// On registers cb against a on this client's dispatcher.
func (c *Client) On(a action.Action, cb action.Callback) { c.actions.On(a, cb) }

// Do executes req.Request through the configured Performer and waits for it
// to finish, returning the completed Call. req.Request.Line.Target must
// already carry whatever form (origin or absolute) the wire expects;
// req.Host, req.Port and req.UseTLS supply the network address to dial.
func (c *Client) Do(req RequestTarget) (*call.Call, error) {
	cursor := call.New(req.Request)
	c.actions.Perform(action.CONNECT, cursor)
	c.actions.Perform(action.REQUEST, cursor)

	chain := pipeline.Combine(append(append([]pipeline.Pipe{}, c.pipes...), c.terminalPipe(req))...)

	var resultErr error
	finished := make(chan struct{})
	c.performer.Perform(func(done func(err error)) {
		chain(cursor, func(err error) { done(err) })
	}, func(err error) {
		resultErr = err
		close(finished)
	})
	<-finished

	cursor.Err = resultErr
	if resultErr != nil {
		c.fireDisconnected(resultErr, cursor)
		return cursor, resultErr
	}

	c.actions.Perform(action.RESPONSE, cursor)
	c.actions.Perform(action.CONNECTED, cursor)
	return cursor, nil
}

// terminalPipe wraps the transport engine as the last stage of the chain:
// it writes cursor.Response back from the engine's RequestContext.
func (c *Client) terminalPipe(target RequestTarget) pipeline.Pipe {
	return func(param any, next pipeline.Next) {
		cursor := param.(*call.Call)
		ctx := &engine.RequestContext{
			Request: cursor.Request,
			Host:    target.Host,
			Port:    target.Port,
			UseTLS:  target.UseTLS,
		}
		c.engine.Connect(ctx, func(err error) {
			if err != nil {
				next(err)
				return
			}
			cursor.Response = ctx.Response
			next(nil)
		})
	}
}

func (c *Client) fireDisconnected(err error, cursor *call.Call) {
	name := "disconnected"
	if te, ok := err.(*engine.TransportError); ok {
		name = string(te.Stage)
	}
	obslog.Logger().WithField("request-id", cursor.RequestID()).WithError(err).Warn("httpcall: call failed")
	triggers := []string{name}
	if name != "disconnected" {
		triggers = append(triggers, "disconnected")
	}
	c.actions.Perform(action.Action{Triggers: triggers, Predicate: action.DISCONNECTED.Predicate}, cursor)
}
