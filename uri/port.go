package uri

import (
	"strconv"

	"github.com/relaycore/httpcall/internal/grammar"
)

// Port is a decimal TCP port number, or the empty sentinel meaning
// "unspecified, use the scheme default". See DESIGN.md Open Question 2:
// ParsePort rejects values outside 0..65535 even though the bare grammar
// (an unbounded decimal string) would accept them.
type Port struct {
	value string
	set   bool
}

// PortUnspecified is the empty-port sentinel.
var PortUnspecified = Port{}

// ParsePort validates s as an empty string or a decimal integer in 0..65535.
func ParsePort(s string) (Port, error) {
	if s == "" {
		return Port{}, nil
	}
	if err := grammar.Check(grammar.CategoryPort, s, grammar.MatchPort); err != nil {
		return Port{}, err
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n > 65535 {
		return Port{}, &grammar.Error{Category: grammar.CategoryPort, Input: s}
	}
	return Port{value: s, set: true}, nil
}

// MustConstructPort skips validation.
func MustConstructPort(s string) Port {
	if s == "" {
		return Port{}
	}
	return Port{value: s, set: true}
}

// FromInt builds a Port from an int without range validation: a negative n
// yields PortUnspecified, and any other value is stored verbatim, values
// above 65535 included (the same no-encode contract as MustConstructPort).
func FromInt(n int) Port {
	if n < 0 {
		return Port{}
	}
	return Port{value: strconv.Itoa(n), set: true}
}

// String returns the port's textual form, or "" when unspecified.
func (p Port) String() string { return p.value }

// IsUnspecified reports whether no port was set.
func (p Port) IsUnspecified() bool { return !p.set }

// Int returns the numeric port and whether one was set.
func (p Port) Int() (int, bool) {
	if !p.set {
		return 0, false
	}
	n, err := strconv.Atoi(p.value)
	if err != nil {
		return 0, false
	}
	return n, true
}
