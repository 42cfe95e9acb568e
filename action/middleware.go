package action

// Middleware registers its own callbacks against a Client when injected,
// the same "hook adapter" idiom the dispatch core uses for composing
// independent cross-cutting behaviours (logging, auth, retry) without the
// Client itself knowing about them.
type Middleware interface {
	Inject(client *Client)
}

// MiddlewareFunc adapts a plain function to Middleware.
type MiddlewareFunc func(client *Client)

// Inject calls f(client).
func (f MiddlewareFunc) Inject(client *Client) { f(client) }

// Combine returns a Middleware that injects every m in order.
func Combine(middlewares ...Middleware) Middleware {
	return MiddlewareFunc(func(client *Client) {
		for _, m := range middlewares {
			m.Inject(client)
		}
	})
}
