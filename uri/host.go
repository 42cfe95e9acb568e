package uri

import "github.com/relaycore/httpcall/internal/grammar"

// Host is an RFC 3986 IP-literal, IPv4address, or reg-name. The empty string
// is the UNSPECIFIED sentinel (spec.md §3.1).
type Host struct{ value string }

// HostUnspecified is the empty-host sentinel instance.
var HostUnspecified = Host{}

// ParseHost validates s against the host grammar.
func ParseHost(s string) (Host, error) {
	if err := grammar.Check(grammar.CategoryHost, s, grammar.MatchHost); err != nil {
		return Host{}, err
	}
	return Host{value: s}, nil
}

// MustConstructHost skips validation.
func MustConstructHost(s string) Host { return Host{value: s} }

// String returns the host's textual form.
func (h Host) String() string { return h.value }

// IsUnspecified reports whether this host is the empty sentinel.
func (h Host) IsUnspecified() bool { return h.value == "" }
