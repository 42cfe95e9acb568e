package uri

import (
	"strings"

	"github.com/relaycore/httpcall/internal/grammar"
)

// ParseAuthority parses "( userinfo "@" )? host ( ":" port )?" per RFC 3986
// §3.2, tolerating an IP-literal host's embedded colons by requiring it be
// bracket-delimited.
func ParseAuthority(s string) (Authority, error) {
	var userinfoPart, hostport string
	if idx := strings.LastIndex(s, "@"); idx >= 0 {
		userinfoPart, hostport = s[:idx], s[idx+1:]
	} else {
		hostport = s
	}

	userInfo, err := ParseUserInfo(userinfoPart)
	if err != nil {
		return Authority{}, err
	}

	hostPart, portPart, err := splitHostPort(hostport)
	if err != nil {
		return Authority{}, err
	}

	host, err := ParseHost(hostPart)
	if err != nil {
		return Authority{}, err
	}
	port, err := ParsePort(portPart)
	if err != nil {
		return Authority{}, err
	}

	return Authority{UserInfo: userInfo, Host: host, Port: port}, nil
}

func splitHostPort(hostport string) (host, port string, err error) {
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return "", "", &grammar.Error{Category: grammar.CategoryHost, Input: hostport}
		}
		host = hostport[:end+1]
		rest := hostport[end+1:]
		if rest == "" {
			return host, "", nil
		}
		if !strings.HasPrefix(rest, ":") {
			return "", "", &grammar.Error{Category: grammar.CategoryHost, Input: hostport}
		}
		return host, rest[1:], nil
	}
	if idx := strings.LastIndex(hostport, ":"); idx >= 0 {
		return hostport[:idx], hostport[idx+1:], nil
	}
	return hostport, "", nil
}
