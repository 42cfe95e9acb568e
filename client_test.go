package httpcall

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/relaycore/httpcall/action"
	"github.com/relaycore/httpcall/message"
	"github.com/relaycore/httpcall/uri"
)

func newTestTarget(t *testing.T, srv *httptest.Server, path string) uri.Uri {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	parsed, err := uri.Parse("http://" + u.Host + path)
	if err != nil {
		t.Fatalf("uri.Parse: %v", err)
	}
	return parsed
}

func TestClientDoFiresLifecycleEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) { c.String(200, "hi") })
	srv := httptest.NewServer(r)
	defer srv.Close()

	target := newTestTarget(t, srv, "/ok")

	var seen []string
	client := New()
	client.On(action.REQUEST, func(name string, param any) { seen = append(seen, "request") })
	client.On(action.RESPONSE, func(name string, param any) { seen = append(seen, "response") })
	client.On(action.CONNECTED, func(name string, param any) { seen = append(seen, "connected") })

	req, err := NewRequest(message.MethodGET, target).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	result, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := string(result.Response.Body.Bytes()); got != "hi" {
		t.Fatalf("body = %q, want hi", got)
	}
	if len(seen) != 3 || seen[0] != "request" || seen[1] != "response" || seen[2] != "connected" {
		t.Fatalf("seen = %v, want [request response connected]", seen)
	}
}

func TestClientDoFiresDisconnectedOnFailure(t *testing.T) {
	target, err := uri.Parse("http://127.0.0.1:1/never")
	if err != nil {
		t.Fatalf("uri.Parse: %v", err)
	}
	client := New()
	var fired bool
	client.On(action.DISCONNECTED, func(name string, param any) { fired = true })

	req, err := NewRequest(message.MethodGET, target).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, err = client.Do(req)
	if err == nil {
		t.Fatalf("expected an error dialing a closed port")
	}
	if !fired {
		t.Fatalf("expected DISCONNECTED to fire")
	}
}

func TestSendAllReturnsResultsInTargetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/a", func(c *gin.Context) { c.String(200, "a") })
	r.GET("/b", func(c *gin.Context) { c.String(200, "b") })
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New()
	reqA, _ := NewRequest(message.MethodGET, newTestTarget(t, srv, "/a")).Build()
	reqB, _ := NewRequest(message.MethodGET, newTestTarget(t, srv, "/b")).Build()

	results, err := client.SendAll([]RequestTarget{reqA, reqB})
	if err != nil {
		t.Fatalf("SendAll: %v", err)
	}
	if string(results[0].Response.Body.Bytes()) != "a" || string(results[1].Response.Body.Bytes()) != "b" {
		t.Fatalf("results out of order: %q %q", results[0].Response.Body.Bytes(), results[1].Response.Body.Bytes())
	}
}
