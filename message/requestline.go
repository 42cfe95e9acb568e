package message

import (
	"fmt"
	"strings"
)

// RequestLine is "method SP request-target SP HTTP-version" (RFC 7230 §3.1.1).
type RequestLine struct {
	Method  Method
	Target  string
	Version HttpVersion
}

// ParseRequestLine splits and validates a raw request-line (no trailing CRLF).
func ParseRequestLine(s string) (RequestLine, error) {
	parts := strings.SplitN(s, " ", 3)
	if len(parts) != 3 {
		return RequestLine{}, fmt.Errorf("message: malformed request-line %q", s)
	}
	method, err := ParseMethod(parts[0])
	if err != nil {
		return RequestLine{}, err
	}
	version, err := ParseHttpVersion(parts[2])
	if err != nil {
		return RequestLine{}, err
	}
	return RequestLine{Method: method, Target: parts[1], Version: version}, nil
}

// String renders the request-line without a trailing CRLF.
func (l RequestLine) String() string {
	return l.Method.String() + " " + l.Target + " " + l.Version.String()
}
