package message

import "github.com/relaycore/httpcall/internal/grammar"

// HttpVersion is a "HTTP/" 1*DIGIT "." 1*DIGIT token.
type HttpVersion struct{ value string }

// Well-known version constants.
var (
	HTTP10 = HttpVersion{value: "HTTP/1.0"}
	HTTP11 = HttpVersion{value: "HTTP/1.1"}
)

// ParseHttpVersion validates s against the http-version grammar.
func ParseHttpVersion(s string) (HttpVersion, error) {
	if err := grammar.Check(grammar.CategoryHTTPVersion, s, grammar.MatchHTTPVersion); err != nil {
		return HttpVersion{}, err
	}
	return HttpVersion{value: s}, nil
}

// MustConstructHttpVersion skips validation.
func MustConstructHttpVersion(s string) HttpVersion { return HttpVersion{value: s} }

// String returns the version's textual form.
func (v HttpVersion) String() string { return v.value }

// IsZero reports whether this is the unset zero value.
func (v HttpVersion) IsZero() bool { return v.value == "" }
