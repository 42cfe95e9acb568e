package uri

import (
	"strings"

	"github.com/relaycore/httpcall/internal/grammar"
	"github.com/relaycore/httpcall/internal/ordered"
)

// Query is the structurally-ordered mapping attribute-name -> attribute-value
// parsed from a URI's query component. Names are unique and insertion order
// is observable in String() (spec.md §3.2).
type Query struct {
	m *ordered.Map[string]
}

func identity(s string) string { return s }

// NewQuery constructs an empty Query.
func NewQuery() *Query {
	return &Query{m: ordered.New[string](identity)}
}

// ParseQuery splits s on "&" and each pair on the first "=", validating
// every name and value against the query grammar.
func ParseQuery(s string) (*Query, error) {
	q := NewQuery()
	if s == "" {
		return q, nil
	}
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		if err := grammar.Check(grammar.CategoryQuery, name, grammar.MatchQuery); err != nil {
			return nil, err
		}
		if err := grammar.Check(grammar.CategoryQuery, value, grammar.MatchQuery); err != nil {
			return nil, err
		}
		q.m.Put(name, value)
	}
	return q, nil
}

// Get returns the value stored under name.
func (q *Query) Get(name string) (string, bool) { return q.m.Get(name) }

// Put inserts or overwrites name's value.
func (q *Query) Put(name, value string) { q.m.Put(name, value) }

// Remove deletes name, if present.
func (q *Query) Remove(name string) { q.m.Remove(name) }

// Compute applies op to name's current value, storing or removing per
// spec.md §4.2 ("returning null/None removes").
func (q *Query) Compute(name string, op func(current string, present bool) (string, bool)) {
	q.m.Compute(name, op)
}

// ComputeIfAbsent stores supplier() under name only if absent.
func (q *Query) ComputeIfAbsent(name string, supplier func() string) {
	q.m.ComputeIfAbsent(name, supplier)
}

// ComputeIfPresent replaces name's value with op(current) only if present.
func (q *Query) ComputeIfPresent(name string, op func(current string) (string, bool)) {
	q.m.ComputeIfPresent(name, op)
}

// Names returns the attribute names in insertion order.
func (q *Query) Names() []string { return q.m.Keys() }

// Len reports the number of attributes.
func (q *Query) Len() int { return q.m.Len() }

// String serialises attributes as "name=value" pairs joined by "&".
func (q *Query) String() string {
	var b strings.Builder
	first := true
	q.m.Range(func(name, value string) {
		if !first {
			b.WriteByte('&')
		}
		first = false
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	})
	return b.String()
}

// Clone returns an independent deep copy.
func (q *Query) Clone() *Query {
	return &Query{m: q.m.Clone(identity)}
}
