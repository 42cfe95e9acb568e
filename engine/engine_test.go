package engine

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/relaycore/httpcall/message"
)

func newTestServer(t *testing.T) (*httptest.Server, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	r.GET("/gone", func(c *gin.Context) {
		c.String(404, "missing")
	})
	srv := httptest.NewServer(r)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	return srv, u.Hostname(), u.Port()
}

func buildGetRequest(target string, host string) message.Request {
	headers := message.NewHeaders()
	_ = headers.Put("Host", host)
	_ = headers.Put("Connection", "close")
	line := message.RequestLine{Method: message.MethodGET, Target: target, Version: message.HTTP11}
	return message.NewRequest(line, headers, message.BodyEmpty)
}

func TestDefaultEngineConnectSuccess(t *testing.T) {
	srv, host, port := newTestServer(t)
	defer srv.Close()

	ctx := &RequestContext{
		Request: buildGetRequest("/ping", host),
		Host:    host,
		Port:    port,
	}

	var gotErr error
	DefaultEngine{}.Connect(ctx, func(err error) { gotErr = err })

	if gotErr != nil {
		t.Fatalf("Connect error: %v", gotErr)
	}
	if ctx.Response.Line.Code != message.StatusOK {
		t.Fatalf("status = %v, want 200", ctx.Response.Line.Code)
	}
	if got := string(ctx.Response.Body.Bytes()); got != "pong" {
		t.Fatalf("body = %q, want pong", got)
	}
}

func TestDefaultEngineConnectNotFound(t *testing.T) {
	srv, host, port := newTestServer(t)
	defer srv.Close()

	ctx := &RequestContext{
		Request: buildGetRequest("/gone", host),
		Host:    host,
		Port:    port,
	}

	var gotErr error
	DefaultEngine{}.Connect(ctx, func(err error) { gotErr = err })

	if gotErr != nil {
		t.Fatalf("Connect error: %v", gotErr)
	}
	if ctx.Response.Line.Code != message.StatusNotFound {
		t.Fatalf("status = %v, want 404", ctx.Response.Line.Code)
	}
}

func TestDefaultEngineConnectRefused(t *testing.T) {
	ctx := &RequestContext{
		Request: buildGetRequest("/ping", "127.0.0.1"),
		Host:    "127.0.0.1",
		Port:    "1", // reserved, nothing listens here
	}

	var gotErr error
	DefaultEngine{}.Connect(ctx, func(err error) { gotErr = err })

	if gotErr == nil {
		t.Fatalf("expected a connection error")
	}
	te, ok := gotErr.(*TransportError)
	if !ok || te.Stage != StageNotSent {
		t.Fatalf("gotErr = %v, want *TransportError{Stage: StageNotSent}", gotErr)
	}
}
