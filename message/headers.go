package message

import (
	"strings"

	"github.com/relaycore/httpcall/internal/grammar"
	"github.com/relaycore/httpcall/internal/ordered"
)

// Headers is the ordered mapping field-name -> field-value. Lookup is
// case-insensitive; the originally supplied casing is preserved for
// serialisation (spec.md §3.2, DESIGN.md Open Question 3). Repeated
// field-names (RFC 7230 permits them) are tracked separately and exposed
// read-only via Values.
type Headers struct {
	m       *ordered.Map[string]
	repeats map[string][]string // normalised name -> all values in arrival order
}

func lowerName(s string) string { return strings.ToLower(s) }

// NewHeaders constructs an empty Headers.
func NewHeaders() *Headers {
	return &Headers{m: ordered.New[string](lowerName), repeats: make(map[string][]string)}
}

// Get returns the most recently stored value under name.
func (h *Headers) Get(name string) (string, bool) { return h.m.Get(name) }

// Values returns every value seen for name, in arrival order. Supplemental
// accessor (DESIGN.md Open Question 3); Get/Put/Remove/Compute* keep the
// single-value contract spec.md names.
func (h *Headers) Values(name string) []string {
	return append([]string(nil), h.repeats[lowerName(name)]...)
}

// Put validates name and value against their grammar categories and stores
// value as the one Get returns. It also appends value to the list Values
// reports and String serialises, so an earlier value under the same name
// stays in that list until Remove.
func (h *Headers) Put(name, value string) error {
	if err := grammar.Check(grammar.CategoryFieldName, name, grammar.MatchFieldName); err != nil {
		return err
	}
	if err := grammar.Check(grammar.CategoryFieldValue, value, grammar.MatchFieldValue); err != nil {
		return err
	}
	h.putUnchecked(name, value)
	return nil
}

// putUnchecked stores name/value without grammar validation; used by Put
// after it has validated both, and by Clone, whose values were validated
// when first stored.
func (h *Headers) putUnchecked(name, value string) {
	key := lowerName(name)
	h.repeats[key] = append(h.repeats[key], value)
	h.m.Put(name, value)
}

// Remove deletes every value stored under name.
func (h *Headers) Remove(name string) {
	h.m.Remove(name)
	delete(h.repeats, lowerName(name))
}

// Compute applies op to name's current value, storing or removing per
// spec.md §4.2.
func (h *Headers) Compute(name string, op func(current string, present bool) (string, bool)) {
	current, present := h.Get(name)
	next, keep := op(current, present)
	if !keep {
		h.Remove(name)
		return
	}
	_ = h.Put(name, next)
}

// ComputeIfAbsent stores supplier() under name only if absent.
func (h *Headers) ComputeIfAbsent(name string, supplier func() string) {
	if _, ok := h.Get(name); ok {
		return
	}
	_ = h.Put(name, supplier())
}

// ComputeIfPresent replaces name's value with op(current) only if present.
func (h *Headers) ComputeIfPresent(name string, op func(current string) (string, bool)) {
	current, ok := h.Get(name)
	if !ok {
		return
	}
	next, keep := op(current)
	if !keep {
		h.Remove(name)
		return
	}
	_ = h.Put(name, next)
}

// Names returns field names in first-insertion order, original casing.
func (h *Headers) Names() []string { return h.m.Keys() }

// Len reports the number of distinct field names.
func (h *Headers) Len() int { return h.m.Len() }

// Range calls fn for each distinct field name in insertion order.
func (h *Headers) Range(fn func(name, value string)) { h.m.Range(fn) }

// ContentType returns the Content-Type header's Mime value, if present and
// well-formed; it is the canonical source of a body's MIME when the body
// itself does not override it (spec.md §3.2).
func (h *Headers) ContentType() (Mime, bool) {
	v, ok := h.Get("Content-Type")
	if !ok {
		return Mime{}, false
	}
	m, err := ParseMime(v)
	if err != nil {
		return Mime{}, false
	}
	return m, true
}

// String serialises as "Name: value\r\n" lines, one per stored value
// (repeats included): names in first-insertion order, and each name's
// values together in arrival order.
func (h *Headers) String() string {
	var b strings.Builder
	h.m.Range(func(name, _ string) {
		for _, v := range h.Values(name) {
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(v)
			b.WriteString("\r\n")
		}
	})
	return b.String()
}

// Clone returns an independent deep copy.
func (h *Headers) Clone() *Headers {
	out := NewHeaders()
	h.m.Range(func(name, _ string) {
		for _, v := range h.Values(name) {
			out.putUnchecked(name, v)
		}
	})
	return out
}
