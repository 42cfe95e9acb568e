package message

import "testing"

func TestRequestRoundTrip(t *testing.T) {
	raw := "GET http://example.com/ HTTP/1.1\r\nHost: example.com\r\n\r\n"
	req, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Line.Method != MethodGET {
		t.Fatalf("method = %v, want GET", req.Line.Method)
	}
	if got, want := req.Line.Target, "http://example.com/"; got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
	host, ok := req.Headers.Get("Host")
	if !ok || host != "example.com" {
		t.Fatalf("Host header = %q, %v", host, ok)
	}
	if got := req.String(); got != raw {
		t.Fatalf("String() = %q, want %q", got, raw)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	raw := "HTTP/1.1 404 Not Found\r\nContent-Length: 3\r\n\r\nabc"
	resp, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if resp.Line.Code != StatusNotFound {
		t.Fatalf("code = %v, want 404", resp.Line.Code)
	}
	if got, want := resp.Line.Reason.String(), "Not Found"; got != want {
		t.Fatalf("reason = %q, want %q", got, want)
	}
	if got, want := string(resp.Body.Bytes()), "abc"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
	if got := resp.String(); got != raw {
		t.Fatalf("String() = %q, want %q", got, raw)
	}
}

func TestResponseMissingReasonUsesStandard(t *testing.T) {
	raw := "HTTP/1.1 200\r\n\r\n"
	resp, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if got, want := resp.Line.Reason.String(), "OK"; got != want {
		t.Fatalf("reason = %q, want %q", got, want)
	}
}

func TestHeadersCaseInsensitiveCasePreserving(t *testing.T) {
	h := NewHeaders()
	if err := h.Put("Content-Type", "application/json"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, ok := h.Get("content-type"); !ok || v != "application/json" {
		t.Fatalf("Get case-insensitive failed: %q, %v", v, ok)
	}
	names := h.Names()
	if len(names) != 1 || names[0] != "Content-Type" {
		t.Fatalf("Names() = %v, want [Content-Type]", names)
	}
}

func TestHeadersRepeatedValues(t *testing.T) {
	h := NewHeaders()
	_ = h.Put("Set-Cookie", "a=1")
	_ = h.Put("Set-Cookie", "b=2")
	vals := h.Values("set-cookie")
	if len(vals) != 2 || vals[0] != "a=1" || vals[1] != "b=2" {
		t.Fatalf("Values() = %v", vals)
	}
}

func TestHeadersComputeRemovesWhenNotKept(t *testing.T) {
	h := NewHeaders()
	_ = h.Put("X-Flag", "1")
	h.Compute("X-Flag", func(current string, present bool) (string, bool) {
		return "", false
	})
	if _, ok := h.Get("X-Flag"); ok {
		t.Fatalf("expected X-Flag removed")
	}
}

func TestBodyJSONGetSet(t *testing.T) {
	body, err := NewJSONBody(`{"name":"a","count":1}`)
	if err != nil {
		t.Fatalf("NewJSONBody: %v", err)
	}
	res, ok := body.Get("name")
	if !ok || res.String() != "a" {
		t.Fatalf("Get(name) = %v, %v", res, ok)
	}
	next, err := body.WithSet("count", 2)
	if err != nil {
		t.Fatalf("WithSet: %v", err)
	}
	res2, _ := next.Get("count")
	if res2.Int() != 2 {
		t.Fatalf("count after WithSet = %v, want 2", res2.Int())
	}
}

func TestMimeParseAndMatches(t *testing.T) {
	m, err := ParseMime("application/json; charset=utf-8")
	if err != nil {
		t.Fatalf("ParseMime: %v", err)
	}
	if !m.Matches(MimeJSON) {
		t.Fatalf("expected %v to match MimeJSON", m)
	}
	if m.Parameters["charset"] != "utf-8" {
		t.Fatalf("params = %v", m.Parameters)
	}
}
