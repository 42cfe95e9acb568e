package message

import "github.com/relaycore/httpcall/internal/grammar"

// Method is an HTTP request method token (RFC 7230 §3.1.1).
type Method struct{ value string }

// Well-known method constants, process-lived and safely shared (spec.md §3.3).
var (
	MethodGET     = Method{value: "GET"}
	MethodHEAD    = Method{value: "HEAD"}
	MethodPOST    = Method{value: "POST"}
	MethodPUT     = Method{value: "PUT"}
	MethodDELETE  = Method{value: "DELETE"}
	MethodCONNECT = Method{value: "CONNECT"}
	MethodOPTIONS = Method{value: "OPTIONS"}
	MethodTRACE   = Method{value: "TRACE"}
	MethodPATCH   = Method{value: "PATCH"}
)

// ParseMethod validates s as an HTTP token.
func ParseMethod(s string) (Method, error) {
	if err := grammar.Check(grammar.CategoryMethod, s, grammar.MatchMethod); err != nil {
		return Method{}, err
	}
	return Method{value: s}, nil
}

// MustConstructMethod skips validation.
func MustConstructMethod(s string) Method { return Method{value: s} }

// String returns the method's textual form.
func (m Method) String() string { return m.value }
