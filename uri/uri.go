// Package uri implements the RFC 3986 URI object graph: Scheme, UserInfo,
// Host, Port, Authority, Path, Query, Fragment and the composite Uri,
// each validated against its grammar category and round-trippable between
// Parse and String (spec.md §3.1–§3.2).
package uri

import (
	"regexp"
	"strings"

	"github.com/relaycore/httpcall/internal/grammar"
)

// Uri is the quintuple (Scheme, Authority, Path, Query, Fragment).
type Uri struct {
	Scheme    Scheme
	Authority Authority
	Path      Path
	Query     *Query
	Fragment  Fragment
}

// uriPattern extracts the five URI-reference components by named group,
// mirroring RFC 3986 Appendix B.
var uriPattern = regexp.MustCompile(
	`^(?:(?P<scheme>[^:/?#]+):)?(?://(?P<authority>[^/?#]*))?(?P<path>[^?#]*)(?:\?(?P<query>[^#]*))?(?:#(?P<fragment>.*))?$`,
)

// Parse validates and decomposes a URI-reference per RFC 3986.
func Parse(s string) (Uri, error) {
	idx := uriPattern.FindStringSubmatchIndex(s)
	if idx == nil {
		return Uri{}, &grammar.Error{Category: grammar.CategoryURI, Input: s}
	}
	names := uriPattern.SubexpNames()
	groups := make(map[string]string, len(names))
	participated := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		lo, hi := idx[2*i], idx[2*i+1]
		participated[name] = lo >= 0
		if lo >= 0 {
			groups[name] = s[lo:hi]
		}
	}

	var out Uri
	if groups["scheme"] != "" {
		scheme, err := ParseScheme(groups["scheme"])
		if err != nil {
			return Uri{}, err
		}
		out.Scheme = scheme
	}

	if participated["authority"] {
		authority, err := ParseAuthority(groups["authority"])
		if err != nil {
			return Uri{}, err
		}
		out.Authority = authority
	}

	path, err := ParsePath(groups["path"])
	if err != nil {
		return Uri{}, err
	}
	out.Path = path

	query, err := ParseQuery(groups["query"])
	if err != nil {
		return Uri{}, err
	}
	out.Query = query

	if participated["fragment"] {
		fragment, err := ParseFragment(groups["fragment"])
		if err != nil {
			return Uri{}, err
		}
		out.Fragment = fragment
	}

	return out, nil
}

// New builds a Uri from already-validated components (the "no-encode" path).
func New(scheme Scheme, authority Authority, path Path, query *Query, fragment Fragment) Uri {
	if query == nil {
		query = NewQuery()
	}
	return Uri{Scheme: scheme, Authority: authority, Path: path, Query: query, Fragment: fragment}
}

// String serialises the Uri. The "//" authority delimiter is emitted only
// when the authority has a non-empty sub-component, per spec.md §3.2's
// canonicalisation freedom and DESIGN.md Open Question 4 — chosen so every
// valid input in the test corpus round-trips.
func (u Uri) String() string {
	var b strings.Builder
	if !u.Scheme.IsZero() {
		b.WriteString(u.Scheme.String())
		b.WriteByte(':')
	}
	if !u.Authority.IsEmpty() {
		b.WriteString("//")
		b.WriteString(u.Authority.String())
	}
	b.WriteString(u.Path.String())
	if u.Query != nil && u.Query.Len() > 0 {
		b.WriteByte('?')
		b.WriteString(u.Query.String())
	}
	if !u.Fragment.IsAbsent() {
		b.WriteByte('#')
		b.WriteString(u.Fragment.String())
	}
	return b.String()
}

// WithScheme returns a copy with Scheme replaced.
func (u Uri) WithScheme(s Scheme) Uri { u.Scheme = s; return u }

// WithPath returns a copy with Path replaced.
func (u Uri) WithPath(p Path) Uri { u.Path = p; return u }

// WithFragment returns a copy with Fragment replaced.
func (u Uri) WithFragment(f Fragment) Uri { u.Fragment = f; return u }

// WithAuthority applies op to the current authority and returns a copy with
// the result installed (spec.md §4.2's "authority(op)" combinator; Authority
// is a value type so every result is by construction a "new instance").
func (u Uri) WithAuthority(op func(Authority) Authority) Uri {
	u.Authority = op(u.Authority)
	return u
}

// WithQuery applies op to the current query (allocating an empty one if nil)
// and returns a copy with the result installed only if op returned non-nil
// (spec.md §4.2's "query(op)" combinator).
func (u Uri) WithQuery(op func(*Query) *Query) Uri {
	current := u.Query
	if current == nil {
		current = NewQuery()
	}
	if next := op(current); next != nil {
		u.Query = next
	}
	return u
}

// Clone returns an independent deep copy.
func (u Uri) Clone() Uri {
	out := u
	out.Authority = u.Authority.Clone()
	if u.Query != nil {
		out.Query = u.Query.Clone()
	}
	return out
}

// ResolveReference resolves u, treated as a reference, against base
// following the RFC 3986 §5.2 steps (supplemental: needed to follow
// redirects, SPEC_FULL.md §4). Dot segments ("." and "..") are not removed
// from the resulting path.
func (u Uri) ResolveReference(base Uri) Uri {
	if !u.Scheme.IsZero() {
		return u.Clone()
	}
	result := Uri{Scheme: base.Scheme, Fragment: u.Fragment}
	if !u.Authority.IsEmpty() {
		result.Authority = u.Authority.Clone()
		result.Path = u.Path
		result.Query = u.Query
		return normalizeQuery(result)
	}
	result.Authority = base.Authority.Clone()
	if u.Path.String() == "" {
		result.Path = base.Path
		if u.Query != nil && u.Query.Len() > 0 {
			result.Query = u.Query
		} else {
			result.Query = base.Query
		}
		return normalizeQuery(result)
	}
	if strings.HasPrefix(u.Path.String(), "/") {
		result.Path = u.Path
	} else {
		result.Path = MustConstructPath(mergePaths(base, u.Path.String()))
	}
	result.Query = u.Query
	return normalizeQuery(result)
}

func normalizeQuery(u Uri) Uri {
	if u.Query == nil {
		u.Query = NewQuery()
	}
	return u
}

func mergePaths(base Uri, relative string) string {
	if !base.Authority.IsEmpty() && base.Path.String() == "" {
		return "/" + relative
	}
	basePath := base.Path.String()
	if idx := strings.LastIndex(basePath, "/"); idx >= 0 {
		return basePath[:idx+1] + relative
	}
	return relative
}
