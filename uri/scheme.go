package uri

import "github.com/relaycore/httpcall/internal/grammar"

// Scheme is the RFC 3986 scheme component of a URI. The zero value is the
// empty scheme; use ParseScheme to obtain a validated one, or
// MustConstructScheme to skip validation.
type Scheme struct{ value string }

// Well-known scheme constants, process-lived and safely shared (spec.md §3.3).
var (
	SchemeHTTP  = Scheme{value: "http"}
	SchemeHTTPS = Scheme{value: "https"}
)

// ParseScheme validates s against the RFC 3986 scheme grammar.
func ParseScheme(s string) (Scheme, error) {
	if err := grammar.Check(grammar.CategoryScheme, s, grammar.MatchScheme); err != nil {
		return Scheme{}, err
	}
	return Scheme{value: s}, nil
}

// MustConstructScheme skips validation; the caller attests s is a valid scheme.
func MustConstructScheme(s string) Scheme { return Scheme{value: s} }

// String returns the scheme's textual form.
func (s Scheme) String() string { return s.value }

// IsZero reports whether this is the unset zero value.
func (s Scheme) IsZero() bool { return s.value == "" }
