package uri

import "github.com/relaycore/httpcall/internal/grammar"

// Path is a percent-encodable RFC 3986 path component.
type Path struct{ value string }

// PathEmpty is the empty-path sentinel.
var PathEmpty = Path{}

// ParsePath validates s against the path grammar.
func ParsePath(s string) (Path, error) {
	if err := grammar.Check(grammar.CategoryPath, s, grammar.MatchPath); err != nil {
		return Path{}, err
	}
	return Path{value: s}, nil
}

// MustConstructPath skips validation.
func MustConstructPath(s string) Path { return Path{value: s} }

// String returns the path's textual form.
func (p Path) String() string { return p.value }
