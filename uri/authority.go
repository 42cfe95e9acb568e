package uri

import "strings"

// Authority is the (UserInfo, Host, Port) triple of a URI, serialising as
// "userinfo@host:port" with empty components omitted (spec.md §3.2).
type Authority struct {
	UserInfo UserInfo
	Host     Host
	Port     Port
}

// AuthorityUnspecified is an authority with every component empty.
var AuthorityUnspecified = Authority{}

// IsEmpty reports whether every sub-component is empty, per the
// "//"-emission rule in spec.md §3.2 and DESIGN.md Open Question 4.
func (a Authority) IsEmpty() bool {
	return a.UserInfo.IsEmpty() && a.Host.IsUnspecified() && a.Port.IsUnspecified()
}

// String serialises the authority, omitting any empty component.
func (a Authority) String() string {
	var b strings.Builder
	if !a.UserInfo.IsEmpty() {
		b.WriteString(a.UserInfo.String())
		b.WriteByte('@')
	}
	b.WriteString(a.Host.String())
	if !a.Port.IsUnspecified() {
		b.WriteByte(':')
		b.WriteString(a.Port.String())
	}
	return b.String()
}

// Clone returns an independent deep copy.
func (a Authority) Clone() Authority {
	return Authority{UserInfo: a.UserInfo.Clone(), Host: a.Host, Port: a.Port}
}
