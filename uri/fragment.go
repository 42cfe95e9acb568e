package uri

import "github.com/relaycore/httpcall/internal/grammar"

// Fragment is a percent-encodable RFC 3986 fragment component.
type Fragment struct {
	value string
	set   bool
}

// FragmentAbsent is the "no fragment present" sentinel, distinct from an
// empty-but-present fragment ("#").
var FragmentAbsent = Fragment{}

// ParseFragment validates s against the fragment grammar.
func ParseFragment(s string) (Fragment, error) {
	if err := grammar.Check(grammar.CategoryFragment, s, grammar.MatchFragment); err != nil {
		return Fragment{}, err
	}
	return Fragment{value: s, set: true}, nil
}

// MustConstructFragment skips validation.
func MustConstructFragment(s string) Fragment { return Fragment{value: s, set: true} }

// String returns the fragment's textual form.
func (f Fragment) String() string { return f.value }

// IsAbsent reports whether no fragment was ever set (as opposed to set to "").
func (f Fragment) IsAbsent() bool { return !f.set }
