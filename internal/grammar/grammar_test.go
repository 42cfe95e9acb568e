package grammar

import "testing"

func TestMatchScheme(t *testing.T) {
	cases := map[string]bool{
		"http":  true,
		"https": true,
		"a+b-c": true,
		"1http": false,
		"":      false,
	}
	for input, want := range cases {
		if got := MatchScheme(input); got != want {
			t.Fatalf("MatchScheme(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestMatchStatusCode(t *testing.T) {
	if !MatchStatusCode("200") {
		t.Fatalf("expected 200 to match")
	}
	if MatchStatusCode("1000") {
		t.Fatalf("expected 1000 to be rejected")
	}
	if MatchStatusCode("20") {
		t.Fatalf("expected two-digit code to be rejected")
	}
}

func TestMatchMethod(t *testing.T) {
	if !MatchMethod("GET") {
		t.Fatalf("expected GET to match")
	}
	if MatchMethod("GE T") {
		t.Fatalf("expected 'GE T' to be rejected")
	}
}

func TestMatchHTTPVersion(t *testing.T) {
	if !MatchHTTPVersion("HTTP/1.1") {
		t.Fatalf("expected HTTP/1.1 to match")
	}
	if MatchHTTPVersion("HTTP/2") {
		t.Fatalf("expected HTTP/2 to be rejected (missing minor digit)")
	}
}

func TestMatchHostEmptyIsUnspecified(t *testing.T) {
	if !MatchHost("") {
		t.Fatalf("expected empty host to be valid (UNSPECIFIED sentinel)")
	}
	if !MatchHost("example.com") {
		t.Fatalf("expected reg-name host to match")
	}
	if !MatchHost("127.0.0.1") {
		t.Fatalf("expected IPv4 host to match")
	}
	if !MatchHost("[::1]") {
		t.Fatalf("expected IP-literal host to match")
	}
}

func TestMatchMime(t *testing.T) {
	if !MatchMime("application/json") {
		t.Fatalf("expected application/json to match")
	}
	if !MatchMime(`text/plain; charset=utf-8`) {
		t.Fatalf("expected parameterised mime to match")
	}
	if MatchMime("application") {
		t.Fatalf("expected missing subtype to be rejected")
	}
}
