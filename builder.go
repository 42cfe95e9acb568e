package httpcall

import (
	"strconv"

	"github.com/relaycore/httpcall/message"
	"github.com/relaycore/httpcall/uri"
)

// RequestTarget pairs a wire-ready Request with the network address the
// engine should dial; Uri.Authority supplies Host/Port, Uri.Scheme
// decides UseTLS.
type RequestTarget struct {
	Request message.Request
	Host    string
	Port    string
	UseTLS  bool
}

// RequestBuilder assembles a RequestTarget from a target URI, method,
// headers and body via a fluent surface (grounded on the teacher's
// "prepare request, execute, read response" example shape).
type RequestBuilder struct {
	method  message.Method
	target  uri.Uri
	headers *message.Headers
	body    message.Body
}

// NewRequest starts a builder for method against target.
func NewRequest(method message.Method, target uri.Uri) *RequestBuilder {
	return &RequestBuilder{method: method, target: target, headers: message.NewHeaders(), body: message.BodyEmpty}
}

// Header stores value under name via Headers.Put; calling it again for the
// same name adds another value, and both are written on the wire.
func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
	_ = b.headers.Put(name, value)
	return b
}

// Body sets the request body.
func (b *RequestBuilder) Body(body message.Body) *RequestBuilder {
	b.body = body
	return b
}

// Build resolves the builder into a RequestTarget ready for Client.Do. The
// request-target is the URI's path-and-query (origin-form); Host is taken
// from the authority, defaulting the port to 80/443 by scheme.
func (b *RequestBuilder) Build() (RequestTarget, error) {
	host := b.target.Authority.Host.String()
	port, hasPort := b.target.Authority.Port.Int()
	useTLS := b.target.Scheme.String() == uri.SchemeHTTPS.String()
	if !hasPort {
		if useTLS {
			port = 443
		} else {
			port = 80
		}
	}
	b.headers.ComputeIfAbsent("Host", func() string { return host })

	requestTarget := b.target.Path.String()
	if b.target.Query.Len() > 0 {
		requestTarget += "?" + b.target.Query.String()
	}
	if requestTarget == "" {
		requestTarget = "/"
	}

	line := message.RequestLine{Method: b.method, Target: requestTarget, Version: message.HTTP11}
	req := message.NewRequest(line, b.headers, b.body)

	return RequestTarget{
		Request: req,
		Host:    host,
		Port:    strconv.Itoa(port),
		UseTLS:  useTLS,
	}, nil
}
