package uri

import (
	"strings"

	"github.com/relaycore/httpcall/internal/grammar"
)

// UserInfo is the ordered, colon-separated sequence of attribute strings in
// a URI's authority (RFC 3986 §3.2.1). Conventional indices: 0 = username,
// 1 = password. Setting an index beyond the current length grows the
// sequence (intervening gaps filled with ""); removing index k truncates k
// and every later entry, so the sequence never has gaps (spec.md §3.2).
type UserInfo struct {
	entries []string
}

// NewUserInfo builds a UserInfo from already-validated, no-encode attributes.
func NewUserInfo(attrs ...string) UserInfo {
	return UserInfo{entries: append([]string(nil), attrs...)}
}

// ParseUserInfo splits s on ":" and validates each attribute against the
// userinfo-no-colon grammar.
func ParseUserInfo(s string) (UserInfo, error) {
	if s == "" {
		return UserInfo{}, nil
	}
	parts := strings.Split(s, ":")
	for _, p := range parts {
		if err := grammar.Check(grammar.CategoryUserInfo, p, grammar.MatchUserInfoNC); err != nil {
			return UserInfo{}, err
		}
	}
	return UserInfo{entries: parts}, nil
}

// Len returns the number of attributes currently stored.
func (u UserInfo) Len() int { return len(u.entries) }

// Get returns the attribute at index k and whether k is in range.
func (u UserInfo) Get(k int) (string, bool) {
	if k < 0 || k >= len(u.entries) {
		return "", false
	}
	return u.entries[k], true
}

// Put sets the attribute at index k, growing the sequence with empty
// entries as needed so there are no gaps.
func (u *UserInfo) Put(k int, value string) {
	if k < 0 {
		return
	}
	for len(u.entries) <= k {
		u.entries = append(u.entries, "")
	}
	u.entries[k] = value
}

// Remove truncates the sequence at index k: k and every later entry are
// dropped.
func (u *UserInfo) Remove(k int) {
	if k < 0 || k >= len(u.entries) {
		return
	}
	u.entries = u.entries[:k]
}

// Compute applies op to the current value at k (with presence flag) and
// stores the result; op returning ok=false removes k (and truncates later
// entries, per Remove's invariant).
func (u *UserInfo) Compute(k int, op func(current string, present bool) (string, bool)) {
	current, present := u.Get(k)
	next, keep := op(current, present)
	if !keep {
		u.Remove(k)
		return
	}
	u.Put(k, next)
}

// ComputeIfAbsent sets index k to supplier() only if k is not yet populated.
func (u *UserInfo) ComputeIfAbsent(k int, supplier func() string) {
	if _, ok := u.Get(k); ok {
		return
	}
	u.Put(k, supplier())
}

// ComputeIfPresent replaces index k with op(current) only if k is already
// populated; op returning ok=false truncates from k onward.
func (u *UserInfo) ComputeIfPresent(k int, op func(current string) (string, bool)) {
	current, ok := u.Get(k)
	if !ok {
		return
	}
	next, keep := op(current)
	if !keep {
		u.Remove(k)
		return
	}
	u.Put(k, next)
}

// String serialises the sequence, joining entries with ":"; an empty
// sequence serialises to "".
func (u UserInfo) String() string { return strings.Join(u.entries, ":") }

// IsEmpty reports whether the sequence has no entries.
func (u UserInfo) IsEmpty() bool { return len(u.entries) == 0 }

// Clone returns an independent deep copy.
func (u UserInfo) Clone() UserInfo {
	return UserInfo{entries: append([]string(nil), u.entries...)}
}
