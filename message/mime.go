package message

import (
	"sort"
	"strings"

	"github.com/relaycore/httpcall/internal/grammar"
)

// Mime is a "type/subtype ; name=value ; ..." media-type descriptor.
type Mime struct {
	Type       string
	Subtype    string
	Parameters map[string]string
}

// Well-known mime constants.
var (
	MimeJSON         = Mime{Type: "application", Subtype: "json"}
	MimeText         = Mime{Type: "text", Subtype: "plain"}
	MimeOctetStream  = Mime{Type: "application", Subtype: "octet-stream"}
	MimeFormURLEnc   = Mime{Type: "application", Subtype: "x-www-form-urlencoded"}
	MimeMultipart    = Mime{Type: "multipart", Subtype: "form-data"}
)

// ParseMime validates and decomposes s against the grammar's mime-type rule.
func ParseMime(s string) (Mime, error) {
	if err := grammar.Check(grammar.CategoryMimeType, s, grammar.MatchMime); err != nil {
		return Mime{}, err
	}
	parts := strings.Split(s, ";")
	typeSub := strings.SplitN(strings.TrimSpace(parts[0]), "/", 2)
	m := Mime{Type: typeSub[0], Subtype: typeSub[1], Parameters: map[string]string{}}
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kv := strings.SplitN(p, "=", 2)
		if len(kv) == 2 {
			m.Parameters[strings.TrimSpace(kv[0])] = strings.Trim(strings.TrimSpace(kv[1]), `"`)
		}
	}
	return m, nil
}

// MustConstructMime skips validation.
func MustConstructMime(typ, subtype string, params map[string]string) Mime {
	return Mime{Type: typ, Subtype: subtype, Parameters: params}
}

// String serialises as "type/subtype" followed by sorted "; name=value" pairs.
func (m Mime) String() string {
	var b strings.Builder
	b.WriteString(m.Type)
	b.WriteByte('/')
	b.WriteString(m.Subtype)
	if len(m.Parameters) > 0 {
		names := make([]string, 0, len(m.Parameters))
		for k := range m.Parameters {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, n := range names {
			b.WriteString("; ")
			b.WriteString(n)
			b.WriteByte('=')
			b.WriteString(m.Parameters[n])
		}
	}
	return b.String()
}

// IsZero reports whether this is the unset zero value.
func (m Mime) IsZero() bool { return m.Type == "" && m.Subtype == "" }

// Matches reports whether m and other share type and subtype, ignoring
// parameters ("application/json; charset=utf-8" matches "application/json").
func (m Mime) Matches(other Mime) bool {
	return strings.EqualFold(m.Type, other.Type) && strings.EqualFold(m.Subtype, other.Subtype)
}
